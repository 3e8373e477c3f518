package pricing

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/junseok-oh/cloudquote/internal/models"
	"github.com/junseok-oh/cloudquote/pkg/utils"
)

// Tier descriptions in transfer price dimensions read like
// "first 10 TB / month data transfer out" or "over 150 TB / month".
var (
	firstTierPattern = regexp.MustCompile(`(?i)first\s+(\d+(?:\.\d+)?)\s*(tb|gb)`)
	nextTierPattern  = regexp.MustCompile(`(?i)next\s+(\d+(?:\.\d+)?)\s*(tb|gb)`)
	overTierPattern  = regexp.MustCompile(`(?i)over\s+(\d+(?:\.\d+)?)\s*(tb|gb)`)
)

// parseTierRange extracts the [begin, end) GB range from a tier
// description. "next N TB" tiers are not supported: the cumulative
// start of such a tier is not stated in the description, so the tier is
// dropped (ok = false) instead of guessed. Descriptions matching no
// pattern are treated as covering the full range.
func parseTierRange(description string) (beginGB, endGB float64, ok bool) {
	if m := firstTierPattern.FindStringSubmatch(description); m != nil {
		return 0, toGB(m[1], m[2]), true
	}
	if nextTierPattern.MatchString(description) {
		return 0, 0, false
	}
	if m := overTierPattern.FindStringSubmatch(description); m != nil {
		return toGB(m[1], m[2]), math.Inf(1), true
	}
	return 0, math.Inf(1), true
}

func toGB(quantity, unit string) float64 {
	value, err := strconv.ParseFloat(quantity, 64)
	if err != nil {
		return 0
	}
	if lower(unit) == "tb" {
		return value * 1024
	}
	return value
}

// DataTransferPricing quotes tier-ranged inter-region transfer rates
// between two regions.
func (c *Client) DataTransferPricing(ctx context.Context, fromRegion, toRegion string) (*models.TransferPricing, error) {
	fromRegion = c.ValidateRegion(fromRegion)
	toRegion = c.ValidateRegion(toRegion)

	filters := []Filter{
		TermFilter("transferType", "InterRegion Outbound"),
		TermFilter("fromLocation", utils.GetRegionDescriptiveName(fromRegion)),
		TermFilter("toLocation", utils.GetRegionDescriptiveName(toRegion)),
	}

	result, err := c.getProducts(ctx, "AWSDataTransfer", filters, fromRegion)
	if err != nil {
		return nil, err
	}

	tp := &models.TransferPricing{
		FromRegion: fromRegion,
		ToRegion:   toRegion,
	}
	for _, record := range result.Products {
		for _, opt := range record.OnDemand {
			begin, end, ok := parseTierRange(opt.Description)
			if !ok {
				continue
			}
			tp.Tiers = append(tp.Tiers, models.TransferTier{
				BeginGB:     begin,
				EndGB:       end,
				PricePerGB:  opt.Price,
				Description: opt.Description,
			})
		}
	}
	if len(tp.Tiers) == 0 {
		return nil, fmt.Errorf("no transfer pricing found from %s to %s", fromRegion, toRegion)
	}
	return tp, nil
}

// TierPriceFor picks the per-GB price of the first tier whose
// [begin, end) range contains the requested volume.
func TierPriceFor(tp *models.TransferPricing, gb float64) (float64, bool) {
	for _, tier := range tp.Tiers {
		if gb >= tier.BeginGB && gb < tier.EndGB {
			return tier.PricePerGB, true
		}
	}
	return 0, false
}
