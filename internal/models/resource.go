package models

// ResourceKind identifies the categories the engine can price.
type ResourceKind string

const (
	KindEC2          ResourceKind = "ec2"
	KindEBS          ResourceKind = "ebs"
	KindS3           ResourceKind = "s3"
	KindRDS          ResourceKind = "rds"
	KindElastiCache  ResourceKind = "elasticache"
	KindOpenSearch   ResourceKind = "opensearch"
	KindLoadBalancer ResourceKind = "loadbalancer"
	KindNetwork      ResourceKind = "network"
)

// ResourceSpec describes one resource in a deployment to be priced.
// Type selects which fields are meaningful; the aggregator validates
// the kind-specific requirements.
type ResourceSpec struct {
	Type ResourceKind `json:"type"`

	// ec2 / rds / elasticache / opensearch
	InstanceType string `json:"instance_type,omitempty"`
	OS           string `json:"os,omitempty"`
	Count        int    `json:"count,omitempty"`

	// ebs / rds storage / opensearch storage
	VolumeType string `json:"volume_type,omitempty"`
	SizeGB     int    `json:"size_gb,omitempty"`

	// s3
	StorageClass string `json:"storage_class,omitempty"`
	StorageGB    int    `json:"storage_gb,omitempty"`
	TransferGB   int    `json:"transfer_gb,omitempty"`

	// rds / elasticache
	Engine           string `json:"engine,omitempty"`
	DeploymentOption string `json:"deployment_option,omitempty"`

	// elasticache / opensearch
	NodeType  string `json:"node_type,omitempty"`
	NodeCount int    `json:"node_count,omitempty"`

	// loadbalancer
	LBType        string  `json:"lb_type,omitempty"`
	ProcessedLCUs float64 `json:"processed_lcus,omitempty"`

	// network (inter-region transfer)
	ToRegion  string `json:"to_region,omitempty"`
	DataOutGB int    `json:"data_out_gb,omitempty"`
}

// ResourceCostItem is the per-resource line of a CostReport.
// MonthlyCost is nil when pricing was unavailable; such items are
// excluded from the total rather than counted as zero.
type ResourceCostItem struct {
	ResourceType ResourceKind   `json:"resource_type"`
	Description  string         `json:"description"`
	Details      map[string]any `json:"details,omitempty"`
	MonthlyCost  *float64       `json:"monthly_cost"`
	Error        string         `json:"error,omitempty"`
}

// CostReport aggregates the monthly cost of a resource bundle.
type CostReport struct {
	Region           string             `json:"region"`
	CostItems        []ResourceCostItem `json:"cost_items"`
	TotalMonthlyCost float64            `json:"total_monthly_cost"`
	Currency         string             `json:"currency"`
}
