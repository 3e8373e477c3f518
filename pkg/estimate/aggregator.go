// Package estimate computes monthly cost reports for composite
// multi-resource deployments by dispatching each resource spec to a
// kind-specific calculator and summing the per-item results.
package estimate

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/junseok-oh/cloudquote/internal/models"
)

// HoursPerMonth approximates a month for hourly-billed resources.
const HoursPerMonth = 24 * 30

// PriceSource is the slice of the pricing client the aggregator needs.
type PriceSource interface {
	ValidateRegion(region string) string
	EC2InstancePricing(ctx context.Context, instanceType, os, region string) (*models.ServicePricing, error)
	EBSVolumePricing(ctx context.Context, volumeType, region string, sizeGB int) (*models.ServicePricing, error)
	S3StoragePricing(ctx context.Context, storageClass, region string, storageGB int) (*models.ServicePricing, error)
	S3DataTransferPricing(ctx context.Context, region string) (*models.ServicePricing, error)
	RDSInstancePricing(ctx context.Context, instanceClass, engine, deploymentOption, region string) (*models.ServicePricing, error)
	RDSStoragePricing(ctx context.Context, volumeType, deploymentOption, region string, sizeGB int) (*models.ServicePricing, error)
	ElastiCachePricing(ctx context.Context, nodeType, engine, region string) (*models.ServicePricing, error)
	OpenSearchPricing(ctx context.Context, instanceType, region string) (*models.ServicePricing, error)
	OpenSearchStoragePricing(ctx context.Context, region string, sizeGB int) (*models.ServicePricing, error)
	LoadBalancerPricing(ctx context.Context, lbType, region string) (*models.ServicePricing, error)
	DataTransferPricing(ctx context.Context, fromRegion, toRegion string) (*models.TransferPricing, error)
}

type calculator func(ctx context.Context, spec models.ResourceSpec, region string) models.ResourceCostItem

// Aggregator sums per-resource monthly costs into a CostReport.
type Aggregator struct {
	pricing     PriceSource
	logger      zerolog.Logger
	calculators map[models.ResourceKind]calculator
}

// NewAggregator builds an Aggregator over the given price source.
func NewAggregator(pricing PriceSource, logger zerolog.Logger) *Aggregator {
	a := &Aggregator{pricing: pricing, logger: logger}
	a.calculators = map[models.ResourceKind]calculator{
		models.KindEC2:          a.ec2Cost,
		models.KindEBS:          a.ebsCost,
		models.KindS3:           a.s3Cost,
		models.KindRDS:          a.rdsCost,
		models.KindElastiCache:  a.elasticacheCost,
		models.KindOpenSearch:   a.opensearchCost,
		models.KindLoadBalancer: a.loadBalancerCost,
		models.KindNetwork:      a.networkCost,
	}
	return a
}

// CalculateTotalCost prices every resource in the bundle. A failed or
// unsupported item carries its own error and is excluded from the
// total; it never aborts the batch. Items whose pricing lookup yielded
// no monthly figure contribute nothing rather than zero.
func (a *Aggregator) CalculateTotalCost(ctx context.Context, resources []models.ResourceSpec, region string) models.CostReport {
	region = a.pricing.ValidateRegion(region)

	report := models.CostReport{
		Region:   region,
		Currency: "USD",
	}

	total := decimal.Zero
	for _, spec := range resources {
		var item models.ResourceCostItem
		calc, ok := a.calculators[spec.Type]
		if !ok {
			item = models.ResourceCostItem{
				ResourceType: spec.Type,
				Description:  fmt.Sprintf("%s resource", spec.Type),
				Error:        fmt.Sprintf("unsupported resource type %q", spec.Type),
			}
		} else {
			item = calc(ctx, spec, region)
		}

		if item.MonthlyCost != nil {
			total = total.Add(decimal.NewFromFloat(*item.MonthlyCost))
		}
		report.CostItems = append(report.CostItems, item)
	}

	report.TotalMonthlyCost = total.InexactFloat64()
	return report
}

func errorItem(kind models.ResourceKind, description string, err error) models.ResourceCostItem {
	return models.ResourceCostItem{
		ResourceType: kind,
		Description:  description,
		Error:        err.Error(),
	}
}

func f64ptr(v float64) *float64 {
	return &v
}
