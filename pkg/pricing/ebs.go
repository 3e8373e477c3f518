package pricing

import (
	"context"
	"fmt"

	"github.com/junseok-oh/cloudquote/internal/models"
	"github.com/junseok-oh/cloudquote/pkg/utils"
)

// validVolumeTypes are the EBS volume API names the engine prices.
var validVolumeTypes = []string{"gp2", "gp3", "io1", "io2", "st1", "sc1", "standard"}

func isValidVolumeType(volumeType string) bool {
	for _, v := range validVolumeTypes {
		if v == volumeType {
			return true
		}
	}
	return false
}

// EBSVolumePricing quotes the per-GB-month storage rate for an EBS
// volume type. When sizeGB > 0 the result carries a derived monthly
// estimate; if no GB-Mo dimension is present the estimate is omitted
// rather than reported as zero.
func (c *Client) EBSVolumePricing(ctx context.Context, volumeType, region string, sizeGB int) (*models.ServicePricing, error) {
	volumeType = lower(volumeType)
	if !isValidVolumeType(volumeType) {
		return nil, newValidationError("volume type", volumeType, validVolumeTypes)
	}
	region = c.ValidateRegion(region)

	filters := []Filter{
		TermFilter("productFamily", "Storage"),
		TermFilter("volumeApiName", volumeType),
		TermFilter("location", utils.GetRegionDescriptiveName(region)),
	}

	sp, err := c.quote(ctx, "AmazonEC2", filters, region, map[string]string{
		"volumeApiName": volumeType,
	})
	if err != nil {
		return nil, err
	}
	if len(sp.OnDemand) == 0 {
		return nil, fmt.Errorf("no pricing found for EBS %s in %s", volumeType, region)
	}

	if sizeGB > 0 {
		if rate, ok := sp.RateForUnit("GB-Mo"); ok {
			monthly := rate * float64(sizeGB)
			sp.EstimatedMonthly = &monthly
		}
	}
	return sp, nil
}
