package models

// Rationale vocabulary for recommendations. Kept fixed so callers can
// classify candidates without string matching on free text.
const (
	RationaleCloseMatch      = "closely matches requirements"
	RationaleAlternative     = "alternative family for variety"
	RationaleExplicitRequest = "explicitly requested"
	RationaleProductionGrade = "production-grade default"
	RationaleCostEffective   = "cost-effective for non-production use"
	RationaleSizeBased       = "sized for the requested capacity"
	RationaleUseCaseMatch    = "matches detected use case"
	RationaleGeneralPurpose  = "general-purpose default"
)

// Recommendation is one ranked candidate configuration for a resource
// kind. Only the fields relevant to ResourceType are populated.
// PricePerHour and EstimatedMonthlyCost are omitted when the live
// pricing lookup failed.
type Recommendation struct {
	ID           string       `json:"id"`
	ResourceType ResourceKind `json:"resource_type"`

	InstanceType     string  `json:"instance_type,omitempty"`
	VCPU             int32   `json:"vcpu,omitempty"`
	MemoryGiB        float64 `json:"memory_gib,omitempty"`
	VolumeType       string  `json:"volume_type,omitempty"`
	StorageClass     string  `json:"storage_class,omitempty"`
	Engine           string  `json:"engine,omitempty"`
	DeploymentOption string  `json:"deployment_option,omitempty"`
	NodeType         string  `json:"node_type,omitempty"`
	NodeCount        int     `json:"node_count,omitempty"`
	LBType           string  `json:"lb_type,omitempty"`
	SizeGB           int     `json:"size_gb,omitempty"`

	Description string `json:"description,omitempty"`
	Rationale   string `json:"rationale"`

	PricePerHour         *float64 `json:"price_per_hour,omitempty"`
	EstimatedMonthlyCost *float64 `json:"estimated_monthly_cost,omitempty"`
}
