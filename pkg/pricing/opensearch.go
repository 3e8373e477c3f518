package pricing

import (
	"context"
	"fmt"

	"github.com/junseok-oh/cloudquote/internal/models"
	"github.com/junseok-oh/cloudquote/pkg/utils"
)

// OpenSearchPricing quotes on-demand and reserved rates for an
// OpenSearch data node instance type. The service code is the legacy
// AmazonES identifier the Price List still uses.
func (c *Client) OpenSearchPricing(ctx context.Context, instanceType, region string) (*models.ServicePricing, error) {
	region = c.ValidateRegion(region)

	filters := []Filter{
		TermFilter("instanceType", instanceType),
		TermFilter("location", utils.GetRegionDescriptiveName(region)),
	}

	sp, err := c.quote(ctx, "AmazonES", filters, region, map[string]string{
		"instanceType": instanceType,
	})
	if err != nil {
		return nil, err
	}
	if len(sp.OnDemand) == 0 && len(sp.Reserved) == 0 {
		return nil, fmt.Errorf("no pricing found for OpenSearch %s in %s", instanceType, region)
	}
	return sp, nil
}

// OpenSearchStoragePricing quotes the per-GB-month rate for OpenSearch
// EBS-backed node storage, with an optional derived monthly estimate
// per node.
func (c *Client) OpenSearchStoragePricing(ctx context.Context, region string, sizeGB int) (*models.ServicePricing, error) {
	region = c.ValidateRegion(region)

	filters := []Filter{
		TermFilter("productFamily", "Amazon OpenSearch Service Volume"),
		TermFilter("location", utils.GetRegionDescriptiveName(region)),
	}

	sp, err := c.quote(ctx, "AmazonES", filters, region, nil)
	if err != nil {
		return nil, err
	}
	if len(sp.OnDemand) == 0 {
		return nil, fmt.Errorf("no OpenSearch storage pricing found in %s", region)
	}

	if sizeGB > 0 {
		if rate, ok := sp.RateForUnit("GB-Mo"); ok {
			monthly := rate * float64(sizeGB)
			sp.EstimatedMonthly = &monthly
		}
	}
	return sp, nil
}
