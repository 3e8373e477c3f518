package models

// RequirementProfile is the structured form of a free-text requirement
// description. Every field except IsProduction is optional; consumers
// fall back to their own defaults when a field is nil or empty.
type RequirementProfile struct {
	CPUCores         *int     `json:"cpu_cores,omitempty"`
	MemoryGB         *float64 `json:"memory_gb,omitempty"`
	StorageSizeGB    *int     `json:"storage_size_gb,omitempty"`
	StorageType      string   `json:"storage_type,omitempty"`
	DBEngine         string   `json:"db_engine,omitempty"`
	CacheEngine      string   `json:"cache_engine,omitempty"`
	DeploymentOption string   `json:"deployment_option,omitempty"`
	Region           string   `json:"region,omitempty"`
	UseCase          string   `json:"use_case,omitempty"`

	// AllowBurstable is set when the description explicitly mentions a
	// burstable (t-family) instance; production recommendations only
	// include t instances when this is set.
	AllowBurstable bool `json:"allow_burstable,omitempty"`

	// IsProduction defaults to true when the description gives no
	// environment signal.
	IsProduction bool `json:"is_production"`
}
