package recommend

import (
	"context"

	"github.com/google/uuid"

	"github.com/junseok-oh/cloudquote/internal/models"
)

// RecommendEBS picks volume types from the static table. An explicit
// storage type in the profile is honored first.
func (e *Engine) RecommendEBS(ctx context.Context, profile models.RequirementProfile, region string) []models.Recommendation {
	region = e.pricing.ValidateRegion(region)
	sizeGB := storageOrDefault(profile)

	var recs []models.Recommendation
	add := func(entry catalogEntry, rationale string) {
		if len(recs) >= maxRecommendations || hasVolumeType(recs, entry.ID) {
			return
		}
		rec := models.Recommendation{
			ID:           uuid.NewString(),
			ResourceType: models.KindEBS,
			VolumeType:   entry.ID,
			SizeGB:       sizeGB,
			Description:  entry.Description,
			Rationale:    rationale,
		}
		e.attachMonthlyPrice(&rec, func() (*models.ServicePricing, error) {
			return e.pricing.EBSVolumePricing(ctx, entry.ID, region, sizeGB)
		})
		recs = append(recs, rec)
	}

	if profile.StorageType != "" {
		if entry, ok := volumeTypeByID(profile.StorageType); ok {
			add(entry, models.RationaleExplicitRequest)
		}
	}

	if profile.IsProduction {
		if profile.UseCase == "database" {
			if entry, ok := volumeTypeByID("io2"); ok {
				add(entry, models.RationaleUseCaseMatch)
			}
		}
		if entry, ok := volumeTypeByID("gp3"); ok {
			add(entry, models.RationaleProductionGrade)
		}
		if sizeGB >= 2048 || profile.UseCase == "analytics" {
			if entry, ok := volumeTypeByID("st1"); ok {
				add(entry, models.RationaleSizeBased)
			}
		}
	} else {
		if entry, ok := volumeTypeByID("gp3"); ok {
			add(entry, models.RationaleCostEffective)
		}
		if profile.UseCase == "archive" {
			if entry, ok := volumeTypeByID("sc1"); ok {
				add(entry, models.RationaleUseCaseMatch)
			}
		}
	}

	return recs
}

// RecommendS3 picks storage classes keyed on the detected use case.
func (e *Engine) RecommendS3(ctx context.Context, profile models.RequirementProfile, region string) []models.Recommendation {
	region = e.pricing.ValidateRegion(region)
	sizeGB := storageOrDefault(profile)

	var recs []models.Recommendation
	add := func(entry catalogEntry, rationale string) {
		if len(recs) >= maxRecommendations || hasStorageClass(recs, entry.ID) {
			return
		}
		rec := models.Recommendation{
			ID:           uuid.NewString(),
			ResourceType: models.KindS3,
			StorageClass: entry.ID,
			SizeGB:       sizeGB,
			Description:  entry.Description,
			Rationale:    rationale,
		}
		e.attachMonthlyPrice(&rec, func() (*models.ServicePricing, error) {
			return e.pricing.S3StoragePricing(ctx, entry.ID, region, sizeGB)
		})
		recs = append(recs, rec)
	}

	switch profile.UseCase {
	case "archive":
		add(storageClassByID("glacier"), models.RationaleUseCaseMatch)
		add(storageClassByID("glacier_deep_archive"), models.RationaleCostEffective)
		add(storageClassByID("standard_ia"), models.RationaleAlternative)
	case "analytics":
		add(storageClassByID("intelligent_tiering"), models.RationaleUseCaseMatch)
		add(storageClassByID("standard"), models.RationaleAlternative)
	default:
		add(storageClassByID("standard"), models.RationaleGeneralPurpose)
		add(storageClassByID("intelligent_tiering"), models.RationaleAlternative)
	}

	if !profile.IsProduction {
		add(storageClassByID("onezone_ia"), models.RationaleCostEffective)
	}

	return recs
}

// RecommendRDS sizes an instance class from the memory floor and
// derives the deployment option from the environment class.
func (e *Engine) RecommendRDS(ctx context.Context, profile models.RequirementProfile, region string) []models.Recommendation {
	region = e.pricing.ValidateRegion(region)

	engine := profile.DBEngine
	if engine == "" {
		engine = "MySQL"
	}
	engineDesc := ""
	if info, ok := dbEngineCatalog[engine]; ok {
		engineDesc = info.Description
	}

	deployment := profile.DeploymentOption
	if deployment == "" {
		if profile.IsProduction {
			deployment = "Multi-AZ"
		} else {
			deployment = "Single-AZ"
		}
	}

	mem := defaultMemoryGB
	if profile.MemoryGB != nil {
		mem = *profile.MemoryGB
	}

	var recs []models.Recommendation
	add := func(entry catalogEntry, rationale string) {
		if len(recs) >= maxRecommendations || hasInstanceType(recs, entry.ID) {
			return
		}
		desc := entry.Description
		if engineDesc != "" {
			desc = entry.Description + "; " + engineDesc
		}
		rec := models.Recommendation{
			ID:               uuid.NewString(),
			ResourceType:     models.KindRDS,
			InstanceType:     entry.ID,
			Engine:           engine,
			DeploymentOption: deployment,
			Description:      desc,
			Rationale:        rationale,
		}
		e.attachHourlyPrice(&rec, 1, func() (*models.ServicePricing, error) {
			return e.pricing.RDSInstancePricing(ctx, entry.ID, engine, deployment, region)
		})
		recs = append(recs, rec)
	}

	if !profile.IsProduction {
		add(rdsNonProductionClass, models.RationaleCostEffective)
	}

	primary := len(rdsClassCatalog) - 1
	for i, row := range rdsClassCatalog {
		if mem >= row.MinGB {
			primary = i
			break
		}
	}
	add(rdsClassCatalog[primary].catalogEntry, rationaleForSize(profile))
	if primary > 0 {
		add(rdsClassCatalog[primary-1].catalogEntry, models.RationaleAlternative)
	}

	return recs
}

// RecommendElastiCache sizes a cache node from the memory floor.
func (e *Engine) RecommendElastiCache(ctx context.Context, profile models.RequirementProfile, region string) []models.Recommendation {
	region = e.pricing.ValidateRegion(region)

	engine := "Redis"
	if profile.CacheEngine != "" {
		engine = profile.CacheEngine
	}

	mem := defaultMemoryGB
	if profile.MemoryGB != nil {
		mem = *profile.MemoryGB
	}

	var recs []models.Recommendation
	add := func(entry catalogEntry, rationale string) {
		if len(recs) >= maxRecommendations || hasInstanceType(recs, entry.ID) {
			return
		}
		rec := models.Recommendation{
			ID:           uuid.NewString(),
			ResourceType: models.KindElastiCache,
			NodeType:     entry.ID,
			Engine:       engine,
			Description:  entry.Description,
			Rationale:    rationale,
		}
		e.attachHourlyPrice(&rec, 1, func() (*models.ServicePricing, error) {
			return e.pricing.ElastiCachePricing(ctx, entry.ID, engine, region)
		})
		recs = append(recs, rec)
	}

	if !profile.IsProduction {
		add(cacheNonProductionNode, models.RationaleCostEffective)
	}

	primary := len(cacheNodeCatalog) - 1
	for i, row := range cacheNodeCatalog {
		if mem >= row.MinGB {
			primary = i
			break
		}
	}
	add(cacheNodeCatalog[primary].catalogEntry, rationaleForSize(profile))
	if primary > 0 {
		add(cacheNodeCatalog[primary-1].catalogEntry, models.RationaleAlternative)
	}

	return recs
}

// RecommendOpenSearch sizes node type and count from the storage floor.
// Production domains get at least three nodes.
func (e *Engine) RecommendOpenSearch(ctx context.Context, profile models.RequirementProfile, region string) []models.Recommendation {
	region = e.pricing.ValidateRegion(region)
	sizeGB := storageOrDefault(profile)
	nodeCount := OpenSearchNodeCount(sizeGB, profile.IsProduction)

	mem := defaultMemoryGB
	if profile.MemoryGB != nil {
		mem = *profile.MemoryGB
	}

	var recs []models.Recommendation
	add := func(entry catalogEntry, rationale string) {
		if len(recs) >= maxRecommendations || hasInstanceType(recs, entry.ID) {
			return
		}
		rec := models.Recommendation{
			ID:           uuid.NewString(),
			ResourceType: models.KindOpenSearch,
			NodeType:     entry.ID,
			NodeCount:    nodeCount,
			SizeGB:       sizeGB,
			Description:  entry.Description,
			Rationale:    rationale,
		}
		e.attachHourlyPrice(&rec, nodeCount, func() (*models.ServicePricing, error) {
			return e.pricing.OpenSearchPricing(ctx, entry.ID, region)
		})
		recs = append(recs, rec)
	}

	if !profile.IsProduction {
		add(openSearchNonProductionNode, models.RationaleCostEffective)
	}

	primary := len(openSearchNodeCatalog) - 1
	for i, row := range openSearchNodeCatalog {
		if mem >= row.MinGB {
			primary = i
			break
		}
	}
	add(openSearchNodeCatalog[primary].catalogEntry, rationaleForSize(profile))
	if primary > 0 {
		add(openSearchNodeCatalog[primary-1].catalogEntry, models.RationaleAlternative)
	}

	return recs
}

// RecommendLoadBalancer picks a balancer type from the use case.
func (e *Engine) RecommendLoadBalancer(ctx context.Context, profile models.RequirementProfile, region string) []models.Recommendation {
	region = e.pricing.ValidateRegion(region)

	var recs []models.Recommendation
	add := func(entry catalogEntry, rationale string) {
		if len(recs) >= maxRecommendations || hasLBType(recs, entry.ID) {
			return
		}
		rec := models.Recommendation{
			ID:           uuid.NewString(),
			ResourceType: models.KindLoadBalancer,
			LBType:       entry.ID,
			Description:  entry.Description,
			Rationale:    rationale,
		}
		e.attachHourlyPrice(&rec, 1, func() (*models.ServicePricing, error) {
			return e.pricing.LoadBalancerPricing(ctx, entry.ID, region)
		})
		recs = append(recs, rec)
	}

	for _, entry := range lbTypeCatalog {
		if entry.UseCase == profile.UseCase {
			add(entry, models.RationaleUseCaseMatch)
		}
	}
	for _, entry := range lbTypeCatalog {
		rationale := models.RationaleAlternative
		if len(recs) == 0 && entry.ID == "application" {
			rationale = models.RationaleGeneralPurpose
		}
		add(entry, rationale)
	}

	return recs
}

// OpenSearchNodeCount applies the sizing heuristic: production domains
// require at least three nodes and grow by one per started 100 GB;
// non-production domains require at least one and grow per 200 GB.
func OpenSearchNodeCount(storageGB int, isProduction bool) int {
	if isProduction {
		n := storageGB/100 + 1
		if n < 3 {
			n = 3
		}
		return n
	}
	n := storageGB / 200
	if n < 1 {
		n = 1
	}
	return n
}

func storageOrDefault(profile models.RequirementProfile) int {
	if profile.StorageSizeGB != nil && *profile.StorageSizeGB > 0 {
		return *profile.StorageSizeGB
	}
	return defaultStorageGB
}

func rationaleForSize(profile models.RequirementProfile) string {
	if profile.MemoryGB != nil || profile.StorageSizeGB != nil {
		return models.RationaleSizeBased
	}
	if profile.IsProduction {
		return models.RationaleProductionGrade
	}
	return models.RationaleGeneralPurpose
}

func volumeTypeByID(id string) (catalogEntry, bool) {
	for _, entry := range volumeTypeCatalog {
		if entry.ID == id {
			return entry, true
		}
	}
	return catalogEntry{}, false
}

func storageClassByID(id string) catalogEntry {
	for _, entry := range storageClassCatalog {
		if entry.ID == id {
			return entry
		}
	}
	return catalogEntry{ID: id}
}

func hasVolumeType(recs []models.Recommendation, id string) bool {
	for _, r := range recs {
		if r.VolumeType == id {
			return true
		}
	}
	return false
}

func hasStorageClass(recs []models.Recommendation, id string) bool {
	for _, r := range recs {
		if r.StorageClass == id {
			return true
		}
	}
	return false
}

func hasInstanceType(recs []models.Recommendation, id string) bool {
	for _, r := range recs {
		if r.InstanceType == id || r.NodeType == id {
			return true
		}
	}
	return false
}

func hasLBType(recs []models.Recommendation, id string) bool {
	for _, r := range recs {
		if r.LBType == id {
			return true
		}
	}
	return false
}
