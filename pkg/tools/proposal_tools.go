package tools

import (
	"context"

	"github.com/google/uuid"

	"github.com/junseok-oh/cloudquote/internal/models"
)

// buildSolution runs the full pipeline: extract a profile from the
// description, pick the top recommendation per relevant resource kind,
// and price the resulting bundle. Recommendation failures for a single
// kind are logged and skipped.
func (t *Toolkit) buildSolution(ctx context.Context, description string, args map[string]any) models.Solution {
	profile := profileFromArgs(args)
	region := t.pricing.ValidateRegion(regionFromArgs(args, profile))

	var components []models.Recommendation

	ec2, err := t.engine.RecommendEC2(ctx, profile, region)
	if err != nil {
		t.logger.Warn().Err(err).Msg("ec2 recommendation unavailable, skipping component")
	} else if len(ec2) > 0 {
		components = append(components, ec2[0])
	}

	if profile.StorageSizeGB != nil || profile.StorageType != "" {
		if recs := t.engine.RecommendEBS(ctx, profile, region); len(recs) > 0 {
			components = append(components, recs[0])
		}
	}
	if profile.DBEngine != "" {
		if recs := t.engine.RecommendRDS(ctx, profile, region); len(recs) > 0 {
			components = append(components, recs[0])
		}
	}

	switch profile.UseCase {
	case "cache":
		if recs := t.engine.RecommendElastiCache(ctx, profile, region); len(recs) > 0 {
			components = append(components, recs[0])
		}
	case "search":
		if recs := t.engine.RecommendOpenSearch(ctx, profile, region); len(recs) > 0 {
			components = append(components, recs[0])
		}
	case "archive":
		if recs := t.engine.RecommendS3(ctx, profile, region); len(recs) > 0 {
			components = append(components, recs[0])
		}
	case "web":
		if recs := t.engine.RecommendLoadBalancer(ctx, profile, region); len(recs) > 0 {
			components = append(components, recs[0])
		}
	}

	specs := make([]models.ResourceSpec, 0, len(components))
	for _, c := range components {
		specs = append(specs, specFromRecommendation(c))
	}

	return models.Solution{
		ID:           uuid.NewString(),
		Description:  description,
		Requirements: profile,
		Region:       region,
		Components:   components,
		CostReport:   t.aggregator.CalculateTotalCost(ctx, specs, region),
	}
}

func specFromRecommendation(rec models.Recommendation) models.ResourceSpec {
	spec := models.ResourceSpec{Type: rec.ResourceType}

	switch rec.ResourceType {
	case models.KindEC2:
		spec.InstanceType = rec.InstanceType
		spec.Count = 1
	case models.KindEBS:
		spec.VolumeType = rec.VolumeType
		spec.SizeGB = rec.SizeGB
	case models.KindS3:
		spec.StorageClass = rec.StorageClass
		spec.StorageGB = rec.SizeGB
	case models.KindRDS:
		spec.InstanceType = rec.InstanceType
		spec.Engine = rec.Engine
		spec.DeploymentOption = rec.DeploymentOption
	case models.KindElastiCache:
		spec.NodeType = rec.NodeType
		spec.Engine = rec.Engine
		spec.NodeCount = 1
	case models.KindOpenSearch:
		spec.NodeType = rec.NodeType
		spec.NodeCount = rec.NodeCount
		spec.SizeGB = rec.SizeGB
	case models.KindLoadBalancer:
		spec.LBType = rec.LBType
	}

	return spec
}

func (t *Toolkit) generateSolution(ctx context.Context, args map[string]any) string {
	description, err := requiredString(args, "description")
	if err != nil {
		return errorJSON(err.Error())
	}
	return respond(t.buildSolution(ctx, description, args))
}

func (t *Toolkit) generateSalesProposal(ctx context.Context, args map[string]any) string {
	description, err := requiredString(args, "description")
	if err != nil {
		return errorJSON(err.Error())
	}
	customer := stringArg(args, "customer")
	if customer == "" {
		customer = "Customer"
	}
	solution := t.buildSolution(ctx, description, args)
	return respond(t.assembler.SalesProposal(customer, solution))
}

func (t *Toolkit) generateMigrationProposal(ctx context.Context, args map[string]any) string {
	description, err := requiredString(args, "description")
	if err != nil {
		return errorJSON(err.Error())
	}
	currentEnv, err := requiredString(args, "current_environment")
	if err != nil {
		return errorJSON(err.Error())
	}
	customer := stringArg(args, "customer")
	if customer == "" {
		customer = "Customer"
	}
	solution := t.buildSolution(ctx, description, args)
	return respond(t.assembler.MigrationProposal(customer, currentEnv, solution))
}

func (t *Toolkit) generateComparisonProposal(ctx context.Context, args map[string]any) string {
	description, err := requiredString(args, "description")
	if err != nil {
		return errorJSON(err.Error())
	}
	competitor, err := requiredString(args, "competitor")
	if err != nil {
		return errorJSON(err.Error())
	}
	customer := stringArg(args, "customer")
	if customer == "" {
		customer = "Customer"
	}
	solution := t.buildSolution(ctx, description, args)
	return respond(t.assembler.ComparisonProposal(customer, competitor, solution))
}
