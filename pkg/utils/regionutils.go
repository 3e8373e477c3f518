package utils

import (
	"sort"
	"strings"
)

// DefaultRegion is the fallback when a region cannot be resolved.
const DefaultRegion = "us-east-1"

// RegionDescriptiveNames maps AWS region codes to the descriptive
// location names the Pricing API uses in its "location" attribute.
var RegionDescriptiveNames = map[string]string{
	"us-east-1":      "US East (N. Virginia)",
	"us-east-2":      "US East (Ohio)",
	"us-west-1":      "US West (N. California)",
	"us-west-2":      "US West (Oregon)",
	"af-south-1":     "Africa (Cape Town)",
	"ap-east-1":      "Asia Pacific (Hong Kong)",
	"ap-south-1":     "Asia Pacific (Mumbai)",
	"ap-northeast-1": "Asia Pacific (Tokyo)",
	"ap-northeast-2": "Asia Pacific (Seoul)",
	"ap-northeast-3": "Asia Pacific (Osaka)",
	"ap-southeast-1": "Asia Pacific (Singapore)",
	"ap-southeast-2": "Asia Pacific (Sydney)",
	"ca-central-1":   "Canada (Central)",
	"eu-central-1":   "EU (Frankfurt)",
	"eu-west-1":      "EU (Ireland)",
	"eu-west-2":      "EU (London)",
	"eu-west-3":      "EU (Paris)",
	"eu-north-1":     "EU (Stockholm)",
	"eu-south-1":     "EU (Milan)",
	"me-south-1":     "Middle East (Bahrain)",
	"sa-east-1":      "South America (Sao Paulo)",
}

// GetRegionDescriptiveName returns the human-readable region name used
// by the Pricing API. Unknown regions resolve to the default region's
// name so a pricing query always has a usable location filter.
func GetRegionDescriptiveName(region string) string {
	if name, ok := RegionDescriptiveNames[strings.ToLower(region)]; ok {
		return name
	}
	return RegionDescriptiveNames[DefaultRegion]
}

// IsValidRegion checks whether region appears in the region table.
// Matching is case-insensitive.
func IsValidRegion(region string) bool {
	_, ok := RegionDescriptiveNames[strings.ToLower(region)]
	return ok
}

// NormalizeRegion lowercases and trims region and reports whether it is
// known. Callers that need the logged fallback use the pricing client's
// ValidateRegion instead.
func NormalizeRegion(region string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(region))
	_, ok := RegionDescriptiveNames[lower]
	return lower, ok
}

// GetDefaultRegion returns the default AWS region.
func GetDefaultRegion() string {
	return DefaultRegion
}

// SortedRegionCodes returns every known region code in sorted order,
// for help text and validation error messages.
func SortedRegionCodes() []string {
	codes := make([]string, 0, len(RegionDescriptiveNames))
	for code := range RegionDescriptiveNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
