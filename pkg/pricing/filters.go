package pricing

import (
	"encoding/json"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pricing/types"
)

// MatchType selects how a filter value is compared by the Pricing API.
type MatchType string

const (
	MatchTerm     MatchType = "TERM_MATCH"
	MatchContains MatchType = "CONTAINS"
)

// Filter is one field/value predicate of a Price List query.
type Filter struct {
	Field string    `json:"field"`
	Value string    `json:"value"`
	Match MatchType `json:"match"`
}

// TermFilter builds the common exact-match filter.
func TermFilter(field, value string) Filter {
	return Filter{Field: field, Value: value, Match: MatchTerm}
}

// canonicalFilterJSON renders a filter set in a deterministic order so
// two logically equal sets produce the same cache key regardless of
// construction order.
func canonicalFilterJSON(filters []Filter) string {
	sorted := make([]Filter, len(filters))
	copy(sorted, filters)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Field != sorted[j].Field {
			return sorted[i].Field < sorted[j].Field
		}
		if sorted[i].Value != sorted[j].Value {
			return sorted[i].Value < sorted[j].Value
		}
		return sorted[i].Match < sorted[j].Match
	})
	// Marshaling a slice of flat structs cannot fail.
	b, _ := json.Marshal(sorted)
	return string(b)
}

// toSDKFilters converts filters to the Pricing API representation.
func toSDKFilters(filters []Filter) []types.Filter {
	out := make([]types.Filter, 0, len(filters))
	for _, f := range filters {
		// The SDK enum only declares TERM_MATCH; the API accepts
		// CONTAINS as a plain string value.
		ft := types.FilterTypeTermMatch
		if f.Match == MatchContains {
			ft = types.FilterType(MatchContains)
		}
		out = append(out, types.Filter{
			Type:  ft,
			Field: aws.String(f.Field),
			Value: aws.String(f.Value),
		})
	}
	return out
}
