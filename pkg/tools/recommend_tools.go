package tools

import (
	"context"

	"github.com/junseok-oh/cloudquote/internal/models"
	"github.com/junseok-oh/cloudquote/pkg/recommend"
)

// profileFromArgs extracts a profile from the description argument and
// lets explicit arguments override individual fields.
func profileFromArgs(args map[string]any) models.RequirementProfile {
	profile := recommend.Extract(stringArg(args, "description"))

	if _, ok := args["cpu_cores"]; ok {
		n := intArg(args, "cpu_cores", 0)
		if n > 0 {
			profile.CPUCores = &n
		}
	}
	if _, ok := args["memory_gb"]; ok {
		f := floatArg(args, "memory_gb", 0)
		if f > 0 {
			profile.MemoryGB = &f
		}
	}
	if _, ok := args["storage_gb"]; ok {
		n := intArg(args, "storage_gb", 0)
		if n > 0 {
			profile.StorageSizeGB = &n
		}
	}
	if v := stringArg(args, "storage_type"); v != "" {
		profile.StorageType = v
	}
	if v := stringArg(args, "db_engine"); v != "" {
		profile.DBEngine = v
	}
	if v := stringArg(args, "cache_engine"); v != "" {
		profile.CacheEngine = v
	}
	if v := stringArg(args, "deployment_option"); v != "" {
		profile.DeploymentOption = v
	}
	if v := stringArg(args, "use_case"); v != "" {
		profile.UseCase = v
	}
	if v, ok := args["is_production"].(bool); ok {
		profile.IsProduction = v
	}
	return profile
}

func regionFromArgs(args map[string]any, profile models.RequirementProfile) string {
	if region := stringArg(args, "region"); region != "" {
		return region
	}
	return profile.Region
}

func (t *Toolkit) extractRequirements(_ context.Context, args map[string]any) string {
	description, err := requiredString(args, "description")
	if err != nil {
		return errorJSON(err.Error())
	}
	return respond(recommend.Extract(description))
}

func (t *Toolkit) recommendEC2(ctx context.Context, args map[string]any) string {
	profile := profileFromArgs(args)
	recs, err := t.engine.RecommendEC2(ctx, profile, regionFromArgs(args, profile))
	if err != nil {
		return errorJSON(err.Error())
	}
	return respond(recs)
}

func (t *Toolkit) recommendEBS(ctx context.Context, args map[string]any) string {
	profile := profileFromArgs(args)
	return respond(t.engine.RecommendEBS(ctx, profile, regionFromArgs(args, profile)))
}

func (t *Toolkit) recommendS3(ctx context.Context, args map[string]any) string {
	profile := profileFromArgs(args)
	return respond(t.engine.RecommendS3(ctx, profile, regionFromArgs(args, profile)))
}

func (t *Toolkit) recommendRDS(ctx context.Context, args map[string]any) string {
	profile := profileFromArgs(args)
	return respond(t.engine.RecommendRDS(ctx, profile, regionFromArgs(args, profile)))
}

func (t *Toolkit) recommendElastiCache(ctx context.Context, args map[string]any) string {
	profile := profileFromArgs(args)
	return respond(t.engine.RecommendElastiCache(ctx, profile, regionFromArgs(args, profile)))
}

func (t *Toolkit) recommendOpenSearch(ctx context.Context, args map[string]any) string {
	profile := profileFromArgs(args)
	return respond(t.engine.RecommendOpenSearch(ctx, profile, regionFromArgs(args, profile)))
}

func (t *Toolkit) recommendLoadBalancer(ctx context.Context, args map[string]any) string {
	profile := profileFromArgs(args)
	return respond(t.engine.RecommendLoadBalancer(ctx, profile, regionFromArgs(args, profile)))
}
