package tools

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junseok-oh/cloudquote/internal/models"
)

type stubPricing struct{}

func (s *stubPricing) ValidateRegion(region string) string {
	if region == "" {
		return "us-east-1"
	}
	return region
}

func (s *stubPricing) quote(service string) (*models.ServicePricing, error) {
	monthly := 8.0
	return &models.ServicePricing{
		Service:          service,
		Attributes:       map[string]string{"operatingSystem": "Linux"},
		OnDemand:         []models.PriceOption{{Unit: "Hrs", Price: 0.1}},
		EstimatedMonthly: &monthly,
	}, nil
}

func (s *stubPricing) EC2InstancePricing(_ context.Context, _, _, _ string) (*models.ServicePricing, error) {
	return s.quote("AmazonEC2")
}

func (s *stubPricing) EBSVolumePricing(_ context.Context, _, _ string, _ int) (*models.ServicePricing, error) {
	return s.quote("AmazonEC2")
}

func (s *stubPricing) S3StoragePricing(_ context.Context, _, _ string, _ int) (*models.ServicePricing, error) {
	return s.quote("AmazonS3")
}

func (s *stubPricing) S3DataTransferPricing(_ context.Context, _ string) (*models.ServicePricing, error) {
	return s.quote("AmazonS3")
}

func (s *stubPricing) RDSInstancePricing(_ context.Context, _, _, _, _ string) (*models.ServicePricing, error) {
	return s.quote("AmazonRDS")
}

func (s *stubPricing) RDSStoragePricing(_ context.Context, _, _, _ string, _ int) (*models.ServicePricing, error) {
	return s.quote("AmazonRDS")
}

func (s *stubPricing) ElastiCachePricing(_ context.Context, _, _, _ string) (*models.ServicePricing, error) {
	return s.quote("AmazonElastiCache")
}

func (s *stubPricing) OpenSearchPricing(_ context.Context, _, _ string) (*models.ServicePricing, error) {
	return s.quote("AmazonES")
}

func (s *stubPricing) OpenSearchStoragePricing(_ context.Context, _ string, _ int) (*models.ServicePricing, error) {
	return s.quote("AmazonES")
}

func (s *stubPricing) LoadBalancerPricing(_ context.Context, _, _ string) (*models.ServicePricing, error) {
	return s.quote("AWSELB")
}

func (s *stubPricing) DataTransferPricing(_ context.Context, fromRegion, toRegion string) (*models.TransferPricing, error) {
	return &models.TransferPricing{
		FromRegion: fromRegion,
		ToRegion:   toRegion,
		Tiers:      []models.TransferTier{{BeginGB: 0, EndGB: 10240, PricePerGB: 0.02}},
	}, nil
}

func (s *stubPricing) InstanceTypeCatalog(_ context.Context, _ string) ([]models.InstanceTypeInfo, error) {
	return []models.InstanceTypeInfo{
		{InstanceType: "m5.large", VCPU: 2, MemoryGiB: 8},
		{InstanceType: "c5.xlarge", VCPU: 4, MemoryGiB: 8},
		{InstanceType: "r5.large", VCPU: 2, MemoryGiB: 16},
	}, nil
}

func newTestToolkit() *Toolkit {
	return NewToolkit(&stubPricing{}, zerolog.Nop())
}

func mustUnmarshal(t *testing.T, raw string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &out), "tool output must be valid JSON: %s", raw)
	return out
}

func TestCallUnknownTool(t *testing.T) {
	out := newTestToolkit().Call(context.Background(), "get_dynamodb_pricing", nil)
	decoded := mustUnmarshal(t, out)
	assert.Contains(t, decoded["error"], "unknown tool")
}

func TestCallMissingRequiredArgument(t *testing.T) {
	out := newTestToolkit().Call(context.Background(), "get_ec2_pricing", map[string]any{})
	decoded := mustUnmarshal(t, out)
	assert.Contains(t, decoded["error"], "instance_type")
}

func TestGetEC2PricingTool(t *testing.T) {
	out := newTestToolkit().Call(context.Background(), "get_ec2_pricing", map[string]any{
		"instance_type": "m5.large",
		"region":        "us-west-2",
	})
	decoded := mustUnmarshal(t, out)
	assert.Equal(t, "AmazonEC2", decoded["service"])
	assert.NotContains(t, decoded, "error")
}

func TestCalculateTotalCostTool(t *testing.T) {
	out := newTestToolkit().Call(context.Background(), "calculate_total_cost", map[string]any{
		"region": "us-east-1",
		"resources": []any{
			map[string]any{"type": "ec2", "instance_type": "m5.large", "count": 2},
			map[string]any{"type": "ebs", "volume_type": "gp3", "size_gb": 200},
		},
	})
	decoded := mustUnmarshal(t, out)
	require.NotContains(t, decoded, "error")
	items, ok := decoded["cost_items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 2)
	// 0.1/hr x 720 x 2 for compute, 8.0 flat for the volume.
	assert.InDelta(t, 152.0, decoded["total_monthly_cost"].(float64), 1e-6)
}

func TestCalculateTotalCostToolRejectsEmptyList(t *testing.T) {
	out := newTestToolkit().Call(context.Background(), "calculate_total_cost", map[string]any{
		"resources": []any{},
	})
	decoded := mustUnmarshal(t, out)
	assert.Contains(t, decoded["error"], "non-empty")
}

func TestExtractRequirementsTool(t *testing.T) {
	out := newTestToolkit().Call(context.Background(), "extract_requirements", map[string]any{
		"description": "我需要2个cpu核心，8gb内存的服务器，用于生产环境，位于us-west-2",
	})
	decoded := mustUnmarshal(t, out)
	assert.Equal(t, float64(2), decoded["cpu_cores"])
	assert.Equal(t, float64(8), decoded["memory_gb"])
	assert.Equal(t, "us-west-2", decoded["region"])
	assert.Equal(t, true, decoded["is_production"])
}

func TestRecommendEC2Tool(t *testing.T) {
	out := newTestToolkit().Call(context.Background(), "recommend_ec2", map[string]any{
		"description": "production server with 2 cpu cores and 8 gb memory",
	})
	var recs []models.Recommendation
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.NotEmpty(t, recs)
	assert.Equal(t, "m5.large", recs[0].InstanceType)
}

func TestGenerateSalesProposalTool(t *testing.T) {
	out := newTestToolkit().Call(context.Background(), "generate_sales_proposal", map[string]any{
		"description": "production web server with 2 cpu cores and 8 gb memory",
		"customer":    "Acme Corp",
	})
	decoded := mustUnmarshal(t, out)
	require.NotContains(t, decoded, "error")
	assert.Equal(t, "Acme Corp", decoded["customer"])
	assert.NotEmpty(t, decoded["executive_summary"])
	assert.NotEmpty(t, decoded["implementation_timeline"])
}

func TestGenerateMigrationProposalRequiresEnvironment(t *testing.T) {
	out := newTestToolkit().Call(context.Background(), "generate_migration_proposal", map[string]any{
		"description": "2 cpu cores",
	})
	decoded := mustUnmarshal(t, out)
	assert.Contains(t, decoded["error"], "current_environment")
}

func TestNamesListsEveryTool(t *testing.T) {
	names := newTestToolkit().Names()
	assert.Len(t, names, 22)
	assert.Contains(t, names, "get_ec2_pricing")
	assert.Contains(t, names, "generate_comparison_proposal")
	assert.IsNonDecreasing(t, names)
}
