package pricing

import (
	"context"
	"fmt"

	"github.com/junseok-oh/cloudquote/internal/models"
	"github.com/junseok-oh/cloudquote/pkg/utils"
)

// validStorageClasses maps user-facing S3 storage class keys to the
// Price List storageClass attribute values.
var validStorageClasses = map[string]string{
	"standard":             "General Purpose",
	"standard_ia":          "Infrequent Access",
	"onezone_ia":           "Non-Critical Data",
	"intelligent_tiering":  "Intelligent-Tiering",
	"glacier":              "Archive",
	"glacier_deep_archive": "Deep Archive",
}

func storageClassOptions() []string {
	opts := make([]string, 0, len(validStorageClasses))
	for k := range validStorageClasses {
		opts = append(opts, k)
	}
	return opts
}

// S3StoragePricing quotes the per-GB-month rate for an S3 storage
// class. When storageGB > 0 the result carries a derived monthly
// storage estimate.
func (c *Client) S3StoragePricing(ctx context.Context, storageClass, region string, storageGB int) (*models.ServicePricing, error) {
	classValue, ok := validStorageClasses[lower(storageClass)]
	if !ok {
		return nil, newValidationError("storage class", storageClass, storageClassOptions())
	}
	region = c.ValidateRegion(region)

	filters := []Filter{
		TermFilter("productFamily", "Storage"),
		TermFilter("storageClass", classValue),
		TermFilter("location", utils.GetRegionDescriptiveName(region)),
	}

	sp, err := c.quote(ctx, "AmazonS3", filters, region, map[string]string{
		"storageClass": classValue,
	})
	if err != nil {
		return nil, err
	}
	if len(sp.OnDemand) == 0 {
		return nil, fmt.Errorf("no pricing found for S3 %s storage in %s", storageClass, region)
	}

	if storageGB > 0 {
		if rate, ok := sp.RateForUnit("GB-Mo"); ok {
			monthly := rate * float64(storageGB)
			sp.EstimatedMonthly = &monthly
		}
	}
	return sp, nil
}

// S3DataTransferPricing quotes the per-GB rate for data transferred out
// of S3 to the internet from the given region.
func (c *Client) S3DataTransferPricing(ctx context.Context, region string) (*models.ServicePricing, error) {
	region = c.ValidateRegion(region)

	filters := []Filter{
		TermFilter("transferType", "AWS Outbound"),
		TermFilter("fromLocation", utils.GetRegionDescriptiveName(region)),
	}

	sp, err := c.quote(ctx, "AWSDataTransfer", filters, region, nil)
	if err != nil {
		return nil, err
	}
	if len(sp.OnDemand) == 0 {
		return nil, fmt.Errorf("no outbound transfer pricing found for %s", region)
	}
	return sp, nil
}
