package models

import "strings"

// PricingResult holds the normalized output of one Price List query.
type PricingResult struct {
	Service  string          `json:"service"`
	Region   string          `json:"region"`
	Products []ProductRecord `json:"products"`
	Count    int             `json:"count"`
}

// ProductRecord is one product from the Price List catalogue with its
// on-demand and reserved price dimensions flattened out of the nested
// terms structure.
type ProductRecord struct {
	SKU        string            `json:"sku"`
	Family     string            `json:"product_family,omitempty"`
	Attributes map[string]string `json:"attributes"`
	OnDemand   []PriceOption     `json:"on_demand"`
	Reserved   []ReservedOption  `json:"reserved,omitempty"`
}

// PriceOption is a single price dimension. Price is always USD and
// non-negative; unparsable upstream values normalize to 0.
type PriceOption struct {
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
	Price       float64 `json:"price_usd"`
	BeginRange  string  `json:"begin_range,omitempty"`
	EndRange    string  `json:"end_range,omitempty"`
}

// ReservedOption is a price dimension with a commitment attached.
type ReservedOption struct {
	PriceOption
	LeaseContractLength string `json:"lease_contract_length"`
	PurchaseOption      string `json:"purchase_option"`
	OfferingClass       string `json:"offering_class,omitempty"`
}

// ServicePricing is the per-kind quote a PricingAPIClient operation
// returns: the matching attributes plus split price buckets and, when a
// size parameter was supplied, a derived monthly estimate.
type ServicePricing struct {
	Service          string            `json:"service"`
	Region           string            `json:"region"`
	Attributes       map[string]string `json:"attributes,omitempty"`
	OnDemand         []PriceOption     `json:"on_demand"`
	Reserved         []ReservedOption  `json:"reserved,omitempty"`
	EstimatedMonthly *float64          `json:"estimated_monthly_cost,omitempty"`
}

// HourlyRate returns the first on-demand rate whose unit is exactly
// "Hrs". Units like "LCU-Hrs" are separate charges and never qualify.
func (sp *ServicePricing) HourlyRate() (float64, bool) {
	for _, opt := range sp.OnDemand {
		if strings.EqualFold(opt.Unit, "Hrs") {
			return opt.Price, true
		}
	}
	return 0, false
}

// RateForUnit returns the first on-demand rate whose unit contains
// substr, e.g. "GB-Mo" for storage or "LCU" for load balancer capacity.
func (sp *ServicePricing) RateForUnit(substr string) (float64, bool) {
	for _, opt := range sp.OnDemand {
		if containsFold(opt.Unit, substr) {
			return opt.Price, true
		}
	}
	return 0, false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// TransferTier is one usage range of tier-priced inter-region transfer.
// EndGB is +Inf for open-ended tiers.
type TransferTier struct {
	BeginGB     float64 `json:"begin_gb"`
	EndGB       float64 `json:"end_gb"`
	PricePerGB  float64 `json:"price_per_gb"`
	Description string  `json:"description"`
}

// TransferPricing holds tier-ranged inter-region data transfer rates.
type TransferPricing struct {
	FromRegion string         `json:"from_region"`
	ToRegion   string         `json:"to_region"`
	Tiers      []TransferTier `json:"tiers"`
}

// InstanceTypeInfo is one row of the EC2 instance type catalogue.
type InstanceTypeInfo struct {
	InstanceType       string   `json:"instance_type"`
	Family             string   `json:"family"`
	VCPU               int32    `json:"vcpu"`
	MemoryGiB          float64  `json:"memory_gib"`
	Architectures      []string `json:"architectures,omitempty"`
	NetworkPerformance string   `json:"network_performance,omitempty"`
	Storage            string   `json:"storage,omitempty"`
}
