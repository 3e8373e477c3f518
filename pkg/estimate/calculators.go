package estimate

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/junseok-oh/cloudquote/internal/models"
	"github.com/junseok-oh/cloudquote/pkg/pricing"
)

func monthlyFromHourly(hourly float64, count int) float64 {
	return decimal.NewFromFloat(hourly).
		Mul(decimal.NewFromInt(HoursPerMonth)).
		Mul(decimal.NewFromInt(int64(count))).
		InexactFloat64()
}

func (a *Aggregator) ec2Cost(ctx context.Context, spec models.ResourceSpec, region string) models.ResourceCostItem {
	count := spec.Count
	if count <= 0 {
		count = 1
	}

	desc := fmt.Sprintf("%d x %s", count, spec.InstanceType)
	sp, err := a.pricing.EC2InstancePricing(ctx, spec.InstanceType, spec.OS, region)
	if err != nil {
		return errorItem(models.KindEC2, desc, err)
	}

	item := models.ResourceCostItem{
		ResourceType: models.KindEC2,
		Description:  desc,
		Details: map[string]any{
			"instance_type": spec.InstanceType,
			"os":            sp.Attributes["operatingSystem"],
			"count":         count,
		},
	}
	if hourly, ok := sp.HourlyRate(); ok {
		item.Details["hourly_rate"] = hourly
		item.MonthlyCost = f64ptr(monthlyFromHourly(hourly, count))
	}
	return item
}

func (a *Aggregator) ebsCost(ctx context.Context, spec models.ResourceSpec, region string) models.ResourceCostItem {
	sizeGB := spec.SizeGB
	if sizeGB <= 0 {
		sizeGB = 100
	}

	desc := fmt.Sprintf("%d GB %s volume", sizeGB, spec.VolumeType)
	sp, err := a.pricing.EBSVolumePricing(ctx, spec.VolumeType, region, sizeGB)
	if err != nil {
		return errorItem(models.KindEBS, desc, err)
	}

	item := models.ResourceCostItem{
		ResourceType: models.KindEBS,
		Description:  desc,
		Details: map[string]any{
			"volume_type": spec.VolumeType,
			"size_gb":     sizeGB,
		},
	}
	item.MonthlyCost = sp.EstimatedMonthly
	return item
}

func (a *Aggregator) s3Cost(ctx context.Context, spec models.ResourceSpec, region string) models.ResourceCostItem {
	storageGB := spec.StorageGB
	if storageGB <= 0 {
		storageGB = 100
	}

	desc := fmt.Sprintf("%d GB S3 %s storage", storageGB, spec.StorageClass)
	sp, err := a.pricing.S3StoragePricing(ctx, spec.StorageClass, region, storageGB)
	if err != nil {
		return errorItem(models.KindS3, desc, err)
	}

	item := models.ResourceCostItem{
		ResourceType: models.KindS3,
		Description:  desc,
		Details: map[string]any{
			"storage_class": spec.StorageClass,
			"storage_gb":    storageGB,
		},
	}

	total := decimal.Zero
	priced := false
	if sp.EstimatedMonthly != nil {
		total = total.Add(decimal.NewFromFloat(*sp.EstimatedMonthly))
		priced = true
	}

	// Outbound transfer is priced best-effort on top of storage.
	if spec.TransferGB > 0 {
		tr, err := a.pricing.S3DataTransferPricing(ctx, region)
		if err != nil {
			a.logger.Warn().Err(err).Str("region", region).
				Msg("s3 transfer pricing unavailable, storage only")
		} else if rate, ok := tr.RateForUnit("GB"); ok {
			transfer := decimal.NewFromFloat(rate).
				Mul(decimal.NewFromInt(int64(spec.TransferGB)))
			total = total.Add(transfer)
			priced = true
			item.Details["transfer_gb"] = spec.TransferGB
			item.Details["transfer_monthly"] = transfer.InexactFloat64()
		}
	}

	if priced {
		item.MonthlyCost = f64ptr(total.InexactFloat64())
	}
	return item
}

func (a *Aggregator) rdsCost(ctx context.Context, spec models.ResourceSpec, region string) models.ResourceCostItem {
	count := spec.Count
	if count <= 0 {
		count = 1
	}

	desc := fmt.Sprintf("%d x %s %s (%s)", count, spec.InstanceType, spec.Engine, spec.DeploymentOption)
	sp, err := a.pricing.RDSInstancePricing(ctx, spec.InstanceType, spec.Engine, spec.DeploymentOption, region)
	if err != nil {
		return errorItem(models.KindRDS, desc, err)
	}

	item := models.ResourceCostItem{
		ResourceType: models.KindRDS,
		Description:  desc,
		Details: map[string]any{
			"instance_class":    spec.InstanceType,
			"engine":            sp.Attributes["databaseEngine"],
			"deployment_option": sp.Attributes["deploymentOption"],
			"count":             count,
		},
	}
	total := decimal.Zero
	priced := false
	if hourly, ok := sp.HourlyRate(); ok {
		item.Details["hourly_rate"] = hourly
		total = total.Add(decimal.NewFromFloat(monthlyFromHourly(hourly, count)))
		priced = true
	}

	// Allocated storage is priced best-effort on top of instance hours.
	if spec.SizeGB > 0 {
		volumeType := spec.VolumeType
		if volumeType == "" {
			volumeType = "gp2"
		}
		st, err := a.pricing.RDSStoragePricing(ctx, volumeType, spec.DeploymentOption, region, spec.SizeGB)
		if err != nil {
			a.logger.Warn().Err(err).Str("region", region).
				Msg("rds storage pricing unavailable, instance only")
		} else if st.EstimatedMonthly != nil {
			total = total.Add(decimal.NewFromFloat(*st.EstimatedMonthly))
			priced = true
			item.Details["storage_gb"] = spec.SizeGB
			item.Details["storage_monthly"] = *st.EstimatedMonthly
		}
	}

	if priced {
		item.MonthlyCost = f64ptr(total.InexactFloat64())
	}
	return item
}

func (a *Aggregator) elasticacheCost(ctx context.Context, spec models.ResourceSpec, region string) models.ResourceCostItem {
	count := spec.NodeCount
	if count <= 0 {
		count = 1
	}

	desc := fmt.Sprintf("%d x %s %s node(s)", count, spec.NodeType, spec.Engine)
	sp, err := a.pricing.ElastiCachePricing(ctx, spec.NodeType, spec.Engine, region)
	if err != nil {
		return errorItem(models.KindElastiCache, desc, err)
	}

	item := models.ResourceCostItem{
		ResourceType: models.KindElastiCache,
		Description:  desc,
		Details: map[string]any{
			"node_type":  spec.NodeType,
			"engine":     sp.Attributes["cacheEngine"],
			"node_count": count,
		},
	}
	if hourly, ok := sp.HourlyRate(); ok {
		item.Details["hourly_rate"] = hourly
		item.MonthlyCost = f64ptr(monthlyFromHourly(hourly, count))
	}
	return item
}

func (a *Aggregator) opensearchCost(ctx context.Context, spec models.ResourceSpec, region string) models.ResourceCostItem {
	count := spec.NodeCount
	if count <= 0 {
		count = 1
	}

	desc := fmt.Sprintf("%d x %s OpenSearch node(s)", count, spec.NodeType)
	sp, err := a.pricing.OpenSearchPricing(ctx, spec.NodeType, region)
	if err != nil {
		return errorItem(models.KindOpenSearch, desc, err)
	}

	item := models.ResourceCostItem{
		ResourceType: models.KindOpenSearch,
		Description:  desc,
		Details: map[string]any{
			"node_type":  spec.NodeType,
			"node_count": count,
		},
	}

	total := decimal.Zero
	priced := false
	if hourly, ok := sp.HourlyRate(); ok {
		item.Details["hourly_rate"] = hourly
		total = total.Add(decimal.NewFromFloat(monthlyFromHourly(hourly, count)))
		priced = true
	}

	// EBS-backed domains add per-node storage on top of instance hours.
	if spec.SizeGB > 0 {
		st, err := a.pricing.OpenSearchStoragePricing(ctx, region, spec.SizeGB)
		if err != nil {
			a.logger.Warn().Err(err).Str("region", region).
				Msg("opensearch storage pricing unavailable, nodes only")
		} else if st.EstimatedMonthly != nil {
			storage := decimal.NewFromFloat(*st.EstimatedMonthly).
				Mul(decimal.NewFromInt(int64(count)))
			total = total.Add(storage)
			priced = true
			item.Details["storage_gb_per_node"] = spec.SizeGB
			item.Details["storage_monthly"] = storage.InexactFloat64()
		}
	}

	if priced {
		item.MonthlyCost = f64ptr(total.InexactFloat64())
	}
	return item
}

func (a *Aggregator) loadBalancerCost(ctx context.Context, spec models.ResourceSpec, region string) models.ResourceCostItem {
	desc := fmt.Sprintf("%s load balancer", spec.LBType)
	sp, err := a.pricing.LoadBalancerPricing(ctx, spec.LBType, region)
	if err != nil {
		return errorItem(models.KindLoadBalancer, desc, err)
	}

	item := models.ResourceCostItem{
		ResourceType: models.KindLoadBalancer,
		Description:  desc,
		Details: map[string]any{
			"lb_type": spec.LBType,
		},
	}

	total := decimal.Zero
	priced := false
	if hourly, ok := sp.HourlyRate(); ok {
		item.Details["hourly_rate"] = hourly
		total = total.Add(decimal.NewFromFloat(monthlyFromHourly(hourly, 1)))
		priced = true
	}

	lcus := spec.ProcessedLCUs
	if lcus <= 0 {
		lcus = 1
	}
	if lcuRate, ok := sp.RateForUnit("LCU"); ok {
		lcu := decimal.NewFromFloat(lcuRate).
			Mul(decimal.NewFromInt(HoursPerMonth)).
			Mul(decimal.NewFromFloat(lcus))
		total = total.Add(lcu)
		priced = true
		item.Details["lcu_rate"] = lcuRate
		item.Details["avg_lcus"] = lcus
	}

	if priced {
		item.MonthlyCost = f64ptr(total.InexactFloat64())
	}
	return item
}

func (a *Aggregator) networkCost(ctx context.Context, spec models.ResourceSpec, region string) models.ResourceCostItem {
	gb := spec.DataOutGB
	if gb <= 0 {
		gb = 100
	}

	desc := fmt.Sprintf("%d GB transfer to %s", gb, spec.ToRegion)
	tp, err := a.pricing.DataTransferPricing(ctx, region, spec.ToRegion)
	if err != nil {
		return errorItem(models.KindNetwork, desc, err)
	}

	item := models.ResourceCostItem{
		ResourceType: models.KindNetwork,
		Description:  desc,
		Details: map[string]any{
			"from_region": region,
			"to_region":   spec.ToRegion,
			"data_out_gb": gb,
		},
	}

	rate, ok := pricing.TierPriceFor(tp, float64(gb))
	if ok && !math.IsInf(rate, 0) {
		monthly := decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(int64(gb)))
		item.Details["rate_per_gb"] = rate
		item.MonthlyCost = f64ptr(monthly.InexactFloat64())
	}
	return item
}
