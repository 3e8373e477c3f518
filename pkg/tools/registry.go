// Package tools exposes every public operation as a named callable
// taking keyword arguments and returning a JSON string. This is the
// integration surface for orchestrating callers: calls never panic and
// failures come back as {"error": ...} rather than Go errors.
package tools

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/junseok-oh/cloudquote/pkg/estimate"
	"github.com/junseok-oh/cloudquote/pkg/proposal"
	"github.com/junseok-oh/cloudquote/pkg/recommend"
)

// ToolFunc is one named operation. The returned string is always valid
// JSON.
type ToolFunc func(ctx context.Context, args map[string]any) string

// PricingAPI is the full pricing surface the toolkit drives. The
// concrete pricing client satisfies it; tests substitute stubs.
type PricingAPI interface {
	estimate.PriceSource
	recommend.PriceSource
}

// Toolkit wires the pricing client, aggregator, recommendation engine
// and proposal assembler behind the tool registry.
type Toolkit struct {
	pricing    PricingAPI
	aggregator *estimate.Aggregator
	engine     *recommend.Engine
	assembler  *proposal.Assembler
	logger     zerolog.Logger
	registry   map[string]ToolFunc
}

// NewToolkit builds the registry over a pricing source.
func NewToolkit(pricing PricingAPI, logger zerolog.Logger) *Toolkit {
	t := &Toolkit{
		pricing:    pricing,
		aggregator: estimate.NewAggregator(pricing, logger),
		engine:     recommend.NewEngine(pricing, logger),
		assembler:  proposal.NewAssembler(),
		logger:     logger,
	}
	t.registry = map[string]ToolFunc{
		"get_ec2_pricing":              t.getEC2Pricing,
		"get_ebs_pricing":              t.getEBSPricing,
		"get_s3_pricing":               t.getS3Pricing,
		"get_rds_pricing":              t.getRDSPricing,
		"get_elasticache_pricing":      t.getElastiCachePricing,
		"get_opensearch_pricing":       t.getOpenSearchPricing,
		"get_loadbalancer_pricing":     t.getLoadBalancerPricing,
		"get_data_transfer_pricing":    t.getDataTransferPricing,
		"get_instance_types":           t.getInstanceTypes,
		"calculate_total_cost":         t.calculateTotalCost,
		"extract_requirements":         t.extractRequirements,
		"recommend_ec2":                t.recommendEC2,
		"recommend_ebs":                t.recommendEBS,
		"recommend_s3":                 t.recommendS3,
		"recommend_rds":                t.recommendRDS,
		"recommend_elasticache":        t.recommendElastiCache,
		"recommend_opensearch":         t.recommendOpenSearch,
		"recommend_loadbalancer":       t.recommendLoadBalancer,
		"generate_solution":            t.generateSolution,
		"generate_sales_proposal":      t.generateSalesProposal,
		"generate_migration_proposal":  t.generateMigrationProposal,
		"generate_comparison_proposal": t.generateComparisonProposal,
	}
	return t
}

// Call invokes a tool by name. An unknown name returns an error JSON
// instead of failing.
func (t *Toolkit) Call(ctx context.Context, name string, args map[string]any) string {
	fn, ok := t.registry[name]
	if !ok {
		return errorJSON(fmt.Sprintf("unknown tool %q", name))
	}
	if args == nil {
		args = map[string]any{}
	}
	return fn(ctx, args)
}

// Names lists the registered tools in sorted order.
func (t *Toolkit) Names() []string {
	names := make([]string, 0, len(t.registry))
	for name := range t.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func respond(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return errorJSON("response marshaling failed: " + err.Error())
	}
	return string(b)
}

func errorJSON(msg string) string {
	b, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		return `{"error":"internal marshaling failure"}`
	}
	return string(b)
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func requiredString(args map[string]any, key string) (string, error) {
	v := stringArg(args, key)
	if v == "" {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	return v, nil
}

// intArg tolerates the numeric forms a JSON decoder may produce.
func intArg(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func floatArg(args map[string]any, key string, def float64) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
