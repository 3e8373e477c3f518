package pricing

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/junseok-oh/cloudquote/internal/models"
)

// rawPriceItem mirrors the fixed parts of a Price List product record.
// Attribute keys and rate-plan IDs are opaque, so those stay maps.
type rawPriceItem struct {
	Product struct {
		SKU           string            `json:"sku"`
		ProductFamily string            `json:"productFamily"`
		Attributes    map[string]string `json:"attributes"`
	} `json:"product"`
	Terms map[string]map[string]rawTerm `json:"terms"`
}

type rawTerm struct {
	PriceDimensions map[string]rawDimension `json:"priceDimensions"`
	TermAttributes  map[string]string       `json:"termAttributes"`
}

type rawDimension struct {
	Unit         string            `json:"unit"`
	Description  string            `json:"description"`
	BeginRange   string            `json:"beginRange"`
	EndRange     string            `json:"endRange"`
	PricePerUnit map[string]string `json:"pricePerUnit"`
}

// FormatPrice converts a Price List USD string to a non-negative
// float64. Unparsable or negative input normalizes to 0.0.
func FormatPrice(s string) float64 {
	price, err := strconv.ParseFloat(s, 64)
	if err != nil || price < 0 {
		return 0.0
	}
	return price
}

// parseProduct normalizes one raw Price List JSON string into a
// ProductRecord, flattening the OnDemand and Reserved terms.
func parseProduct(raw string) (models.ProductRecord, error) {
	var item rawPriceItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return models.ProductRecord{}, fmt.Errorf("error parsing price record: %w", err)
	}

	record := models.ProductRecord{
		SKU:        item.Product.SKU,
		Family:     item.Product.ProductFamily,
		Attributes: item.Product.Attributes,
	}
	if record.Attributes == nil {
		record.Attributes = map[string]string{}
	}

	for _, term := range item.Terms["OnDemand"] {
		for _, dim := range term.PriceDimensions {
			record.OnDemand = append(record.OnDemand, toPriceOption(dim))
		}
	}

	for _, term := range item.Terms["Reserved"] {
		for _, dim := range term.PriceDimensions {
			record.Reserved = append(record.Reserved, models.ReservedOption{
				PriceOption:         toPriceOption(dim),
				LeaseContractLength: term.TermAttributes["LeaseContractLength"],
				PurchaseOption:      term.TermAttributes["PurchaseOption"],
				OfferingClass:       term.TermAttributes["OfferingClass"],
			})
		}
	}

	return record, nil
}

func toPriceOption(dim rawDimension) models.PriceOption {
	return models.PriceOption{
		Unit:        dim.Unit,
		Description: dim.Description,
		Price:       FormatPrice(dim.PricePerUnit["USD"]),
		BeginRange:  dim.BeginRange,
		EndRange:    dim.EndRange,
	}
}

// matchesAttributes reports whether every requested attribute matches
// the record exactly. The Pricing API's own filter matching is not
// always exact, so results are re-filtered defensively.
func matchesAttributes(record models.ProductRecord, want map[string]string) bool {
	for key, value := range want {
		if record.Attributes[key] != value {
			return false
		}
	}
	return true
}
