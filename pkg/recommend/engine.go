package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/junseok-oh/cloudquote/internal/models"
	"github.com/junseok-oh/cloudquote/pkg/pricing"
)

const (
	maxRecommendations = 5
	hoursPerMonth      = 24 * 30

	defaultCPUCores  = 2
	defaultMemoryGB  = 4.0
	defaultStorageGB = 100
)

// PriceSource is the slice of the pricing client the engine consumes.
type PriceSource interface {
	ValidateRegion(region string) string
	InstanceTypeCatalog(ctx context.Context, region string) ([]models.InstanceTypeInfo, error)
	EC2InstancePricing(ctx context.Context, instanceType, os, region string) (*models.ServicePricing, error)
	EBSVolumePricing(ctx context.Context, volumeType, region string, sizeGB int) (*models.ServicePricing, error)
	S3StoragePricing(ctx context.Context, storageClass, region string, storageGB int) (*models.ServicePricing, error)
	RDSInstancePricing(ctx context.Context, instanceClass, engine, deploymentOption, region string) (*models.ServicePricing, error)
	ElastiCachePricing(ctx context.Context, nodeType, engine, region string) (*models.ServicePricing, error)
	OpenSearchPricing(ctx context.Context, instanceType, region string) (*models.ServicePricing, error)
	LoadBalancerPricing(ctx context.Context, lbType, region string) (*models.ServicePricing, error)
}

// Engine ranks resource configurations against a requirement profile.
type Engine struct {
	pricing PriceSource
	logger  zerolog.Logger
}

// NewEngine builds a recommendation engine over the given price source.
func NewEngine(pricing PriceSource, logger zerolog.Logger) *Engine {
	return &Engine{pricing: pricing, logger: logger}
}

// RecommendEC2 filters the live instance-type catalogue by the
// profile's CPU and memory floors and returns up to five candidates.
// Close matches (both dimensions within 0.9x-1.5x of the request) come
// first; remaining slots are filled smallest-fit from families not yet
// represented, repeating families only when fewer than five exist.
func (e *Engine) RecommendEC2(ctx context.Context, profile models.RequirementProfile, region string) ([]models.Recommendation, error) {
	region = e.pricing.ValidateRegion(region)

	cpu := defaultCPUCores
	if profile.CPUCores != nil {
		cpu = *profile.CPUCores
	}
	mem := defaultMemoryGB
	if profile.MemoryGB != nil {
		mem = *profile.MemoryGB
	}

	catalog, err := e.pricing.InstanceTypeCatalog(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("loading instance type catalog: %w", err)
	}

	var candidates []models.InstanceTypeInfo
	for _, it := range catalog {
		if int(it.VCPU) < cpu || it.MemoryGiB < mem {
			continue
		}
		family := pricing.InstanceFamily(it.InstanceType)
		if profile.IsProduction && !profile.AllowBurstable && strings.HasPrefix(family, "t") {
			continue
		}
		candidates = append(candidates, it)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].VCPU != candidates[j].VCPU {
			return candidates[i].VCPU < candidates[j].VCPU
		}
		if candidates[i].MemoryGiB != candidates[j].MemoryGiB {
			return candidates[i].MemoryGiB < candidates[j].MemoryGiB
		}
		return candidates[i].InstanceType < candidates[j].InstanceType
	})

	closeMatch := func(it models.InstanceTypeInfo) bool {
		c := float64(it.VCPU)
		return c >= 0.9*float64(cpu) && c <= 1.5*float64(cpu) &&
			it.MemoryGiB >= 0.9*mem && it.MemoryGiB <= 1.5*mem
	}

	distinctFamilies := map[string]bool{}
	for _, it := range candidates {
		distinctFamilies[pricing.InstanceFamily(it.InstanceType)] = true
	}

	var recs []models.Recommendation
	usedFamilies := map[string]bool{}

	pick := func(it models.InstanceTypeInfo, rationale string) {
		family := pricing.InstanceFamily(it.InstanceType)
		rec := models.Recommendation{
			ID:           uuid.NewString(),
			ResourceType: models.KindEC2,
			InstanceType: it.InstanceType,
			VCPU:         it.VCPU,
			MemoryGiB:    it.MemoryGiB,
			Description:  e.familyDescription(family),
			Rationale:    rationale,
		}
		e.attachHourlyPrice(&rec, 1, func() (*models.ServicePricing, error) {
			return e.pricing.EC2InstancePricing(ctx, it.InstanceType, "", region)
		})
		recs = append(recs, rec)
		usedFamilies[family] = true
	}

	// First pass honors family diversity; a second pass relaxes it when
	// the catalogue has fewer distinct families than open slots.
	for pass := 0; pass < 2 && len(recs) < maxRecommendations; pass++ {
		if pass == 1 && len(distinctFamilies) >= maxRecommendations {
			break
		}
		for _, phase := range []bool{true, false} {
			for _, it := range candidates {
				if len(recs) >= maxRecommendations {
					break
				}
				if closeMatch(it) != phase {
					continue
				}
				family := pricing.InstanceFamily(it.InstanceType)
				if pass == 0 && usedFamilies[family] {
					continue
				}
				if alreadyPicked(recs, it.InstanceType) {
					continue
				}
				rationale := models.RationaleAlternative
				if phase {
					rationale = models.RationaleCloseMatch
				}
				pick(it, rationale)
			}
		}
	}

	return recs, nil
}

func (e *Engine) familyDescription(family string) string {
	if family == "" {
		return ""
	}
	if entry, ok := instanceFamilies[family[:1]]; ok {
		return entry.Description
	}
	return ""
}

func alreadyPicked(recs []models.Recommendation, instanceType string) bool {
	for _, r := range recs {
		if r.InstanceType == instanceType {
			return true
		}
	}
	return false
}

// attachHourlyPrice fetches a live quote and fills the price fields.
// Lookup failure is logged and leaves the fields unset.
func (e *Engine) attachHourlyPrice(rec *models.Recommendation, count int, fetch func() (*models.ServicePricing, error)) {
	sp, err := fetch()
	if err != nil {
		e.logger.Warn().Err(err).
			Str("resource_type", string(rec.ResourceType)).
			Msg("price attachment failed")
		return
	}
	if hourly, ok := sp.HourlyRate(); ok {
		rec.PricePerHour = &hourly
		monthly := hourly * hoursPerMonth * float64(count)
		rec.EstimatedMonthlyCost = &monthly
	}
}

// attachMonthlyPrice fills EstimatedMonthlyCost from a quote that
// already carries a derived monthly figure (GB-month resources).
func (e *Engine) attachMonthlyPrice(rec *models.Recommendation, fetch func() (*models.ServicePricing, error)) {
	sp, err := fetch()
	if err != nil {
		e.logger.Warn().Err(err).
			Str("resource_type", string(rec.ResourceType)).
			Msg("price attachment failed")
		return
	}
	rec.EstimatedMonthlyCost = sp.EstimatedMonthly
}
