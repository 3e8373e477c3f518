package pricing

import (
	"context"
	"fmt"

	"github.com/junseok-oh/cloudquote/internal/models"
	"github.com/junseok-oh/cloudquote/pkg/utils"
)

// validCacheEngines maps accepted cache engine names to the Price List
// cacheEngine attribute values.
var validCacheEngines = map[string]string{
	"redis":     "Redis",
	"memcached": "Memcached",
}

func cacheEngineOptions() []string {
	opts := make([]string, 0, len(validCacheEngines))
	for _, v := range validCacheEngines {
		opts = append(opts, v)
	}
	return opts
}

// ElastiCachePricing quotes on-demand and reserved rates for an
// ElastiCache node type running the given engine.
func (c *Client) ElastiCachePricing(ctx context.Context, nodeType, engine, region string) (*models.ServicePricing, error) {
	if engine == "" {
		engine = "Redis"
	}
	engineValue, ok := validCacheEngines[lower(engine)]
	if !ok {
		return nil, newValidationError("cache engine", engine, cacheEngineOptions())
	}
	region = c.ValidateRegion(region)

	filters := []Filter{
		TermFilter("instanceType", nodeType),
		TermFilter("cacheEngine", engineValue),
		TermFilter("location", utils.GetRegionDescriptiveName(region)),
	}

	sp, err := c.quote(ctx, "AmazonElastiCache", filters, region, map[string]string{
		"instanceType": nodeType,
		"cacheEngine":  engineValue,
	})
	if err != nil {
		return nil, err
	}
	if len(sp.OnDemand) == 0 && len(sp.Reserved) == 0 {
		return nil, fmt.Errorf("no pricing found for %s (%s) in %s", nodeType, engineValue, region)
	}
	return sp, nil
}
