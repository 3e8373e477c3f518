package pricing

import (
	"context"
	"fmt"

	"github.com/junseok-oh/cloudquote/internal/models"
	"github.com/junseok-oh/cloudquote/pkg/utils"
)

// validLBTypes maps accepted load balancer types to their Price List
// product family.
var validLBTypes = map[string]string{
	"application": "Load Balancer-Application",
	"network":     "Load Balancer-Network",
	"gateway":     "Load Balancer-Gateway",
}

func lbTypeOptions() []string {
	opts := make([]string, 0, len(validLBTypes))
	for k := range validLBTypes {
		opts = append(opts, k)
	}
	return opts
}

// LoadBalancerPricing quotes the hourly rate and the LCU
// data-processing rate for a load balancer type.
func (c *Client) LoadBalancerPricing(ctx context.Context, lbType, region string) (*models.ServicePricing, error) {
	if lbType == "" {
		lbType = "application"
	}
	family, ok := validLBTypes[lower(lbType)]
	if !ok {
		return nil, newValidationError("load balancer type", lbType, lbTypeOptions())
	}
	region = c.ValidateRegion(region)

	filters := []Filter{
		TermFilter("productFamily", family),
		TermFilter("location", utils.GetRegionDescriptiveName(region)),
	}

	sp, err := c.quote(ctx, "AWSELB", filters, region, nil)
	if err != nil {
		return nil, err
	}
	if len(sp.OnDemand) == 0 {
		return nil, fmt.Errorf("no pricing found for %s load balancer in %s", lbType, region)
	}
	return sp, nil
}
