package models

// Solution bundles the recommendation output for one requirement
// description together with its cost report. It is the shared input of
// all proposal variants.
type Solution struct {
	ID           string             `json:"id"`
	Description  string             `json:"description"`
	Requirements RequirementProfile `json:"requirements"`
	Region       string             `json:"region"`
	Components   []Recommendation   `json:"components"`
	CostReport   CostReport         `json:"cost_report"`
}

// TimelinePhase is one row of a proposal's implementation plan.
type TimelinePhase struct {
	Phase       string `json:"phase"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// SalesProposal is the standard structured proposal document.
type SalesProposal struct {
	ID               string          `json:"id"`
	Customer         string          `json:"customer"`
	GeneratedAt      string          `json:"generated_at"`
	ExecutiveSummary string          `json:"executive_summary"`
	SolutionOverview string          `json:"solution_overview"`
	TechnicalSpecs   []string        `json:"technical_specs"`
	PricingDetails   CostReport      `json:"pricing_details"`
	Complexity       string          `json:"complexity"`
	Timeline         []TimelinePhase `json:"implementation_timeline"`
	Terms            []string        `json:"terms"`
	NextSteps        []string        `json:"next_steps"`
}

// GapItem is one difference between the current environment and the
// proposed solution in a migration proposal.
type GapItem struct {
	Area            string `json:"area"`
	Current         string `json:"current"`
	Proposed        string `json:"proposed"`
	MigrationEffort string `json:"migration_effort"`
}

// MigrationProposal extends the sales proposal with a gap analysis of
// the customer's current environment.
type MigrationProposal struct {
	SalesProposal
	CurrentEnvironment string    `json:"current_environment"`
	GapAnalysis        []GapItem `json:"gap_analysis"`
}

// ComparisonPoint is one row of a competitive comparison table.
type ComparisonPoint struct {
	Dimension  string `json:"dimension"`
	Proposed   string `json:"proposed"`
	Competitor string `json:"competitor"`
}

// ComparisonProposal extends the sales proposal with a comparison
// against a named competitor offering.
type ComparisonProposal struct {
	SalesProposal
	Competitor string            `json:"competitor"`
	Comparison []ComparisonPoint `json:"comparison"`
}
