package estimate

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junseok-oh/cloudquote/internal/models"
)

type fakeSource struct {
	ec2Err       error
	ec2Hourly    float64
	ebsMonthly   *float64
	s3Monthly    *float64
	s3Transfer   float64
	rdsHourly    float64
	rdsStorage   *float64
	cacheHourly  float64
	osHourly     float64
	osStorage    *float64
	lbHourly     float64
	lbLCU        float64
	lbLCUFirst   bool
	transferRate float64
}

func (f *fakeSource) ValidateRegion(region string) string {
	if region == "" {
		return "us-east-1"
	}
	return region
}

func hourlyPricing(service, unit string, price float64) *models.ServicePricing {
	return &models.ServicePricing{
		Service:    service,
		Attributes: map[string]string{},
		OnDemand: []models.PriceOption{
			{Unit: unit, Price: price, Description: service},
		},
	}
}

func (f *fakeSource) EC2InstancePricing(_ context.Context, instanceType, os, region string) (*models.ServicePricing, error) {
	if f.ec2Err != nil {
		return nil, f.ec2Err
	}
	sp := hourlyPricing("AmazonEC2", "Hrs", f.ec2Hourly)
	sp.Attributes["operatingSystem"] = "Linux"
	return sp, nil
}

func (f *fakeSource) EBSVolumePricing(_ context.Context, volumeType, region string, sizeGB int) (*models.ServicePricing, error) {
	return &models.ServicePricing{Service: "AmazonEC2", EstimatedMonthly: f.ebsMonthly}, nil
}

func (f *fakeSource) S3StoragePricing(_ context.Context, storageClass, region string, storageGB int) (*models.ServicePricing, error) {
	return &models.ServicePricing{Service: "AmazonS3", EstimatedMonthly: f.s3Monthly}, nil
}

func (f *fakeSource) S3DataTransferPricing(_ context.Context, region string) (*models.ServicePricing, error) {
	return hourlyPricing("AmazonS3", "GB", f.s3Transfer), nil
}

func (f *fakeSource) RDSInstancePricing(_ context.Context, instanceClass, engine, deploymentOption, region string) (*models.ServicePricing, error) {
	sp := hourlyPricing("AmazonRDS", "Hrs", f.rdsHourly)
	sp.Attributes["databaseEngine"] = "MySQL"
	sp.Attributes["deploymentOption"] = "Single-AZ"
	return sp, nil
}

func (f *fakeSource) RDSStoragePricing(_ context.Context, volumeType, deploymentOption, region string, sizeGB int) (*models.ServicePricing, error) {
	return &models.ServicePricing{Service: "AmazonRDS", EstimatedMonthly: f.rdsStorage}, nil
}

func (f *fakeSource) ElastiCachePricing(_ context.Context, nodeType, engine, region string) (*models.ServicePricing, error) {
	sp := hourlyPricing("AmazonElastiCache", "Hrs", f.cacheHourly)
	sp.Attributes["cacheEngine"] = "Redis"
	return sp, nil
}

func (f *fakeSource) OpenSearchPricing(_ context.Context, instanceType, region string) (*models.ServicePricing, error) {
	return hourlyPricing("AmazonES", "Hrs", f.osHourly), nil
}

func (f *fakeSource) OpenSearchStoragePricing(_ context.Context, region string, sizeGB int) (*models.ServicePricing, error) {
	return &models.ServicePricing{Service: "AmazonES", EstimatedMonthly: f.osStorage}, nil
}

func (f *fakeSource) LoadBalancerPricing(_ context.Context, lbType, region string) (*models.ServicePricing, error) {
	if f.lbLCUFirst {
		sp := hourlyPricing("AWSELB", "LCU-Hrs", f.lbLCU)
		sp.OnDemand = append(sp.OnDemand, models.PriceOption{Unit: "Hrs", Price: f.lbHourly})
		return sp, nil
	}
	sp := hourlyPricing("AWSELB", "Hrs", f.lbHourly)
	sp.OnDemand = append(sp.OnDemand, models.PriceOption{Unit: "LCU-Hrs", Price: f.lbLCU})
	return sp, nil
}

func (f *fakeSource) DataTransferPricing(_ context.Context, fromRegion, toRegion string) (*models.TransferPricing, error) {
	return &models.TransferPricing{
		FromRegion: fromRegion,
		ToRegion:   toRegion,
		Tiers: []models.TransferTier{
			{BeginGB: 0, EndGB: 10 * 1024, PricePerGB: f.transferRate},
		},
	}, nil
}

func TestCalculateTotalCostSumsHourlyResources(t *testing.T) {
	src := &fakeSource{ec2Hourly: 0.1, rdsHourly: 0.2}
	agg := NewAggregator(src, zerolog.Nop())

	report := agg.CalculateTotalCost(context.Background(), []models.ResourceSpec{
		{Type: models.KindEC2, InstanceType: "m5.large", Count: 2},
		{Type: models.KindRDS, InstanceType: "db.m5.large", Engine: "MySQL"},
	}, "us-west-2")

	require.Len(t, report.CostItems, 2)
	assert.Equal(t, "us-west-2", report.Region)
	assert.Equal(t, "USD", report.Currency)

	// 0.1/hr x 720 x 2 instances, plus 0.2/hr x 720 for the database.
	require.NotNil(t, report.CostItems[0].MonthlyCost)
	assert.InDelta(t, 144.0, *report.CostItems[0].MonthlyCost, 1e-9)
	require.NotNil(t, report.CostItems[1].MonthlyCost)
	assert.InDelta(t, 144.0, *report.CostItems[1].MonthlyCost, 1e-9)
	assert.InDelta(t, 288.0, report.TotalMonthlyCost, 1e-9)
}

func TestCalculateTotalCostFailSoft(t *testing.T) {
	src := &fakeSource{
		ec2Err:    errors.New("no pricing found"),
		rdsHourly: 0.5,
	}
	agg := NewAggregator(src, zerolog.Nop())

	report := agg.CalculateTotalCost(context.Background(), []models.ResourceSpec{
		{Type: models.KindEC2, InstanceType: "m5.large"},
		{Type: models.KindRDS, InstanceType: "db.r5.large", Engine: "PostgreSQL"},
	}, "us-east-1")

	require.Len(t, report.CostItems, 2)
	assert.Equal(t, "no pricing found", report.CostItems[0].Error)
	assert.Nil(t, report.CostItems[0].MonthlyCost)
	assert.InDelta(t, 360.0, report.TotalMonthlyCost, 1e-9)
}

func TestCalculateTotalCostUnsupportedKind(t *testing.T) {
	agg := NewAggregator(&fakeSource{}, zerolog.Nop())

	report := agg.CalculateTotalCost(context.Background(), []models.ResourceSpec{
		{Type: models.ResourceKind("dynamodb")},
	}, "us-east-1")

	require.Len(t, report.CostItems, 1)
	assert.Contains(t, report.CostItems[0].Error, "unsupported resource type")
	assert.Zero(t, report.TotalMonthlyCost)
}

func TestCalculateTotalCostSkipsUnpricedItems(t *testing.T) {
	src := &fakeSource{ebsMonthly: nil, ec2Hourly: 0.05}
	agg := NewAggregator(src, zerolog.Nop())

	report := agg.CalculateTotalCost(context.Background(), []models.ResourceSpec{
		{Type: models.KindEBS, VolumeType: "gp3", SizeGB: 500},
		{Type: models.KindEC2, InstanceType: "t3.medium"},
	}, "us-east-1")

	require.Len(t, report.CostItems, 2)
	assert.Nil(t, report.CostItems[0].MonthlyCost)
	assert.Empty(t, report.CostItems[0].Error)
	assert.InDelta(t, 36.0, report.TotalMonthlyCost, 1e-9)
}

func TestS3CostIncludesTransfer(t *testing.T) {
	monthly := 2.3
	src := &fakeSource{s3Monthly: &monthly, s3Transfer: 0.09}
	agg := NewAggregator(src, zerolog.Nop())

	report := agg.CalculateTotalCost(context.Background(), []models.ResourceSpec{
		{Type: models.KindS3, StorageClass: "standard", StorageGB: 100, TransferGB: 50},
	}, "us-east-1")

	require.Len(t, report.CostItems, 1)
	require.NotNil(t, report.CostItems[0].MonthlyCost)
	assert.InDelta(t, 2.3+0.09*50, *report.CostItems[0].MonthlyCost, 1e-9)
}

func TestOpenSearchCostAddsPerNodeStorage(t *testing.T) {
	storage := 8.0
	src := &fakeSource{osHourly: 0.1, osStorage: &storage}
	agg := NewAggregator(src, zerolog.Nop())

	report := agg.CalculateTotalCost(context.Background(), []models.ResourceSpec{
		{Type: models.KindOpenSearch, NodeType: "r6g.large.search", NodeCount: 3, SizeGB: 100},
	}, "us-east-1")

	require.Len(t, report.CostItems, 1)
	require.NotNil(t, report.CostItems[0].MonthlyCost)
	// 0.1/hr x 720 x 3 nodes + 8.0 storage x 3 nodes.
	assert.InDelta(t, 216.0+24.0, *report.CostItems[0].MonthlyCost, 1e-9)
}

func TestRDSCostAddsAllocatedStorage(t *testing.T) {
	storage := 11.5
	src := &fakeSource{rdsHourly: 0.2, rdsStorage: &storage}
	agg := NewAggregator(src, zerolog.Nop())

	report := agg.CalculateTotalCost(context.Background(), []models.ResourceSpec{
		{Type: models.KindRDS, InstanceType: "db.m5.large", Engine: "MySQL", SizeGB: 100},
	}, "us-east-1")

	require.Len(t, report.CostItems, 1)
	require.NotNil(t, report.CostItems[0].MonthlyCost)
	// 0.2/hr x 720 plus the storage estimate.
	assert.InDelta(t, 144.0+11.5, *report.CostItems[0].MonthlyCost, 1e-9)
}

func TestLoadBalancerCostSeparatesHourlyAndLCU(t *testing.T) {
	for _, lcuFirst := range []bool{false, true} {
		src := &fakeSource{lbHourly: 0.0225, lbLCU: 0.008, lbLCUFirst: lcuFirst}
		agg := NewAggregator(src, zerolog.Nop())

		report := agg.CalculateTotalCost(context.Background(), []models.ResourceSpec{
			{Type: models.KindLoadBalancer, LBType: "application"},
		}, "us-east-1")

		require.Len(t, report.CostItems, 1)
		require.NotNil(t, report.CostItems[0].MonthlyCost)
		// 0.0225/hr x 720 plus 0.008 LCU x 720, regardless of the order
		// the dimensions arrive in.
		assert.InDelta(t, 0.0225*720+0.008*720, *report.CostItems[0].MonthlyCost, 1e-9)
	}
}

func TestNetworkCostUsesMatchingTier(t *testing.T) {
	src := &fakeSource{transferRate: 0.02}
	agg := NewAggregator(src, zerolog.Nop())

	report := agg.CalculateTotalCost(context.Background(), []models.ResourceSpec{
		{Type: models.KindNetwork, ToRegion: "ap-northeast-2", DataOutGB: 500},
	}, "us-east-1")

	require.Len(t, report.CostItems, 1)
	require.NotNil(t, report.CostItems[0].MonthlyCost)
	assert.InDelta(t, 10.0, *report.CostItems[0].MonthlyCost, 1e-9)
}
