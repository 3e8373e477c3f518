package pricing

import (
	"context"
	"fmt"

	"github.com/junseok-oh/cloudquote/internal/models"
	"github.com/junseok-oh/cloudquote/pkg/utils"
)

// validOperatingSystems maps accepted OS names to the Price List
// operatingSystem attribute values.
var validOperatingSystems = map[string]string{
	"linux":      "Linux",
	"windows":    "Windows",
	"rhel":       "RHEL",
	"suse":       "SUSE",
	"ubuntu pro": "Ubuntu Pro",
}

func osOptions() []string {
	opts := make([]string, 0, len(validOperatingSystems))
	for _, v := range validOperatingSystems {
		opts = append(opts, v)
	}
	return opts
}

// EC2InstancePricing quotes on-demand and reserved rates for a shared
// tenancy instance running the given operating system.
func (c *Client) EC2InstancePricing(ctx context.Context, instanceType, os, region string) (*models.ServicePricing, error) {
	if os == "" {
		os = "Linux"
	}
	osValue, ok := validOperatingSystems[lower(os)]
	if !ok {
		return nil, newValidationError("operating system", os, osOptions())
	}
	region = c.ValidateRegion(region)

	filters := []Filter{
		TermFilter("instanceType", instanceType),
		TermFilter("location", utils.GetRegionDescriptiveName(region)),
		TermFilter("operatingSystem", osValue),
		TermFilter("tenancy", "Shared"),
		TermFilter("preInstalledSw", "NA"),
		TermFilter("capacitystatus", "Used"),
	}

	sp, err := c.quote(ctx, "AmazonEC2", filters, region, map[string]string{
		"instanceType":    instanceType,
		"operatingSystem": osValue,
		"tenancy":         "Shared",
	})
	if err != nil {
		return nil, err
	}
	if len(sp.OnDemand) == 0 && len(sp.Reserved) == 0 {
		return nil, fmt.Errorf("no pricing found for %s (%s) in %s", instanceType, osValue, region)
	}
	return sp, nil
}
