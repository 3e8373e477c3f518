package formatter

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/junseok-oh/cloudquote/internal/models"
)

func f64(v float64) *float64 { return &v }

func TestPrintPricingAPIStats(t *testing.T) {
	stats := map[string]map[string]map[string]int{
		"AmazonEC2": {
			"us-east-1": {"success": 3, "failure": 1, "cache": 2},
		},
		"AmazonRDS": {
			"us-east-1": {"success": 0, "failure": 0, "cache": 1},
		},
	}

	var buf bytes.Buffer
	PrintPricingAPIStats(&buf, stats)

	out := buf.String()
	assert.Contains(t, out, "AWS Pricing API Call Statistics")
	assert.Contains(t, out, "SUCCESS RATE")
	assert.Contains(t, out, "AmazonEC2")
	assert.Contains(t, out, "75.0%")
	// no live calls means a zero rate, not a division by zero
	assert.Contains(t, out, "0.0%")
}

func TestPrintPricingAPIStatsEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintPricingAPIStats(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestPrintRecommendationsTable(t *testing.T) {
	recs := []models.Recommendation{
		{
			ResourceType:         models.KindEC2,
			InstanceType:         "m5.large",
			VCPU:                 2,
			MemoryGiB:            8,
			Rationale:            models.RationaleCloseMatch,
			EstimatedMonthlyCost: f64(69.12),
		},
		{
			ResourceType: models.KindEBS,
			VolumeType:   "gp3",
			SizeGB:       500,
			Rationale:    models.RationaleProductionGrade,
		},
	}

	var buf bytes.Buffer
	PrintRecommendationsTable(&buf, recs)

	out := buf.String()
	assert.Contains(t, out, "m5.large")
	assert.Contains(t, out, "2 vCPU, 8.0 GiB")
	assert.Contains(t, out, "$69.12")
	assert.Contains(t, out, "gp3")
	assert.Contains(t, out, "500 GB")
	assert.Contains(t, out, "N/A")
}

func TestPrintRecommendationsTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintRecommendationsTable(&buf, nil)
	assert.Contains(t, buf.String(), "No recommendations found.")
}

func TestPrintCostReportTable(t *testing.T) {
	report := models.CostReport{
		Region:   "us-west-2",
		Currency: "USD",
		CostItems: []models.ResourceCostItem{
			{ResourceType: models.KindEC2, Description: "2 x m5.large", MonthlyCost: f64(144)},
			{ResourceType: models.KindRDS, Description: "db.r5.large", Error: "no pricing found"},
		},
		TotalMonthlyCost: 144,
	}

	var buf bytes.Buffer
	PrintCostReportTable(&buf, report)

	out := buf.String()
	assert.Contains(t, out, "Region: us-west-2")
	assert.Contains(t, out, "2 x m5.large")
	assert.Contains(t, out, "no pricing found")
	assert.Contains(t, out, "TOTAL (1 of 2 priced)")
	assert.Contains(t, out, "$144.00 USD")
}

func TestPrintServicePricing(t *testing.T) {
	sp := &models.ServicePricing{
		Service: "AmazonEC2",
		Region:  "us-east-1",
		OnDemand: []models.PriceOption{
			{Unit: "Hrs", Price: 0.0104, Description: "$0.0104 per On Demand Linux t3.micro Instance Hour"},
		},
		Reserved: []models.ReservedOption{
			{
				PriceOption:         models.PriceOption{Unit: "Hrs", Price: 0.0062},
				LeaseContractLength: "1yr",
				PurchaseOption:      "No Upfront",
			},
		},
		EstimatedMonthly: f64(7.49),
	}

	var buf bytes.Buffer
	PrintServicePricing(&buf, sp)

	out := buf.String()
	assert.Contains(t, out, "Service: AmazonEC2")
	assert.Contains(t, out, "OnDemand")
	assert.Contains(t, out, "0.010400")
	assert.Contains(t, out, "Reserved (1yr, No Upfront)")
	assert.Contains(t, out, "$7.49")
}

func TestPrintInstanceTypesTable(t *testing.T) {
	infos := []models.InstanceTypeInfo{
		{InstanceType: "m5.large", Family: "m5", VCPU: 2, MemoryGiB: 8, Storage: "EBS only", NetworkPerformance: "Up to 10 Gigabit"},
	}

	var buf bytes.Buffer
	PrintInstanceTypesTable(&buf, infos)

	out := buf.String()
	assert.Contains(t, out, "INSTANCE TYPE")
	assert.Contains(t, out, "m5.large")
	assert.Contains(t, out, "EBS only")
}

func TestPrintTransferPricing(t *testing.T) {
	tp := &models.TransferPricing{
		FromRegion: "us-east-1",
		ToRegion:   "eu-west-1",
		Tiers: []models.TransferTier{
			{BeginGB: 0, EndGB: 10240, PricePerGB: 0.02, Description: "first 10 TB"},
			{BeginGB: 153600, EndGB: math.Inf(1), PricePerGB: 0.01, Description: "over 150 TB"},
		},
	}

	var buf bytes.Buffer
	PrintTransferPricing(&buf, tp)

	out := buf.String()
	assert.Contains(t, out, "us-east-1 -> eu-west-1")
	assert.Contains(t, out, "10240")
	assert.Contains(t, out, "unlimited")
}
