// Package proposal renders solutions and cost reports into structured
// proposal documents. Assembly is pure formatting over already
// computed data; no pricing or recommendation logic lives here.
package proposal

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/junseok-oh/cloudquote/internal/models"
)

// Complexity tiers derived from the number of solution components.
const (
	ComplexityStandard = "standard"
	ComplexityModerate = "moderate"
	ComplexityComplex  = "complex"
)

// Assembler builds proposal documents. The clock is injectable so
// generated_at is stable under test.
type Assembler struct {
	now func() time.Time
}

// NewAssembler returns an Assembler using the wall clock.
func NewAssembler() *Assembler {
	return &Assembler{now: time.Now}
}

// ComplexityTier classifies a solution by component count.
func ComplexityTier(componentCount int) string {
	switch {
	case componentCount <= 2:
		return ComplexityStandard
	case componentCount <= 5:
		return ComplexityModerate
	default:
		return ComplexityComplex
	}
}

// SalesProposal assembles the standard proposal document for a
// customer from a solved solution.
func (a *Assembler) SalesProposal(customer string, solution models.Solution) models.SalesProposal {
	complexity := ComplexityTier(len(solution.Components))

	return models.SalesProposal{
		ID:               uuid.NewString(),
		Customer:         customer,
		GeneratedAt:      a.now().UTC().Format(time.RFC3339),
		ExecutiveSummary: a.executiveSummary(customer, solution),
		SolutionOverview: a.solutionOverview(solution),
		TechnicalSpecs:   a.technicalSpecs(solution),
		PricingDetails:   solution.CostReport,
		Complexity:       complexity,
		Timeline:         timelineFor(complexity),
		Terms:            standardTerms(),
		NextSteps:        standardNextSteps(),
	}
}

// MigrationProposal extends the sales proposal with a gap analysis of
// the customer's current environment against the proposed components.
func (a *Assembler) MigrationProposal(customer, currentEnvironment string, solution models.Solution) models.MigrationProposal {
	return models.MigrationProposal{
		SalesProposal:      a.SalesProposal(customer, solution),
		CurrentEnvironment: currentEnvironment,
		GapAnalysis:        gapAnalysis(currentEnvironment, solution),
	}
}

// ComparisonProposal extends the sales proposal with a comparison
// table against a named competitor offering.
func (a *Assembler) ComparisonProposal(customer, competitor string, solution models.Solution) models.ComparisonProposal {
	return models.ComparisonProposal{
		SalesProposal: a.SalesProposal(customer, solution),
		Competitor:    competitor,
		Comparison:    comparisonTable(competitor, solution),
	}
}

func (a *Assembler) executiveSummary(customer string, solution models.Solution) string {
	monthly := humanize.CommafWithDigits(solution.CostReport.TotalMonthlyCost, 2)
	env := "production"
	if !solution.Requirements.IsProduction {
		env = "non-production"
	}
	return fmt.Sprintf(
		"This proposal presents a %d-component %s architecture for %s in %s, "+
			"with an estimated monthly cost of $%s USD.",
		len(solution.Components), env, customer, solution.Region, monthly)
}

func (a *Assembler) solutionOverview(solution models.Solution) string {
	kinds := map[models.ResourceKind]int{}
	var order []models.ResourceKind
	for _, c := range solution.Components {
		if kinds[c.ResourceType] == 0 {
			order = append(order, c.ResourceType)
		}
		kinds[c.ResourceType]++
	}

	parts := make([]string, 0, len(order))
	for _, kind := range order {
		parts = append(parts, fmt.Sprintf("%d x %s", kinds[kind], kind))
	}
	if len(parts) == 0 {
		return "No components selected."
	}
	return "The solution comprises " + strings.Join(parts, ", ") + "."
}

func (a *Assembler) technicalSpecs(solution models.Solution) []string {
	specs := make([]string, 0, len(solution.Components))
	for _, c := range solution.Components {
		specs = append(specs, componentSpec(c))
	}
	return specs
}

func componentSpec(c models.Recommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: ", c.ResourceType)

	switch c.ResourceType {
	case models.KindEC2:
		fmt.Fprintf(&b, "%s (%d vCPU, %s memory)",
			c.InstanceType, c.VCPU, humanize.Ftoa(c.MemoryGiB)+" GiB")
	case models.KindEBS:
		fmt.Fprintf(&b, "%s, %d GB", c.VolumeType, c.SizeGB)
	case models.KindS3:
		fmt.Fprintf(&b, "%s class, %d GB", c.StorageClass, c.SizeGB)
	case models.KindRDS:
		fmt.Fprintf(&b, "%s %s (%s)", c.InstanceType, c.Engine, c.DeploymentOption)
	case models.KindElastiCache:
		fmt.Fprintf(&b, "%s %s", c.NodeType, c.Engine)
	case models.KindOpenSearch:
		fmt.Fprintf(&b, "%d x %s, %d GB per node", c.NodeCount, c.NodeType, c.SizeGB)
	case models.KindLoadBalancer:
		fmt.Fprintf(&b, "%s load balancer", c.LBType)
	default:
		b.WriteString(c.Description)
	}

	if c.EstimatedMonthlyCost != nil {
		fmt.Fprintf(&b, " at $%s/month",
			humanize.CommafWithDigits(*c.EstimatedMonthlyCost, 2))
	}
	return b.String()
}

func timelineFor(complexity string) []models.TimelinePhase {
	switch complexity {
	case ComplexityStandard:
		return []models.TimelinePhase{
			{Phase: "Setup", Duration: "1 week", Description: "Provision and configure resources"},
			{Phase: "Validation", Duration: "1 week", Description: "Functional and cost validation"},
			{Phase: "Go-live", Duration: "2 days", Description: "Cutover and handoff"},
		}
	case ComplexityModerate:
		return []models.TimelinePhase{
			{Phase: "Design", Duration: "1 week", Description: "Finalize architecture and sizing"},
			{Phase: "Setup", Duration: "2 weeks", Description: "Provision and configure resources"},
			{Phase: "Validation", Duration: "1 week", Description: "Functional, performance and cost validation"},
			{Phase: "Go-live", Duration: "3 days", Description: "Cutover and handoff"},
		}
	default:
		return []models.TimelinePhase{
			{Phase: "Design", Duration: "2 weeks", Description: "Finalize architecture and sizing"},
			{Phase: "Setup", Duration: "4 weeks", Description: "Provision and configure resources in stages"},
			{Phase: "Integration", Duration: "2 weeks", Description: "Wire components and migrate data"},
			{Phase: "Validation", Duration: "2 weeks", Description: "Functional, performance and cost validation"},
			{Phase: "Go-live", Duration: "1 week", Description: "Staged cutover and handoff"},
		}
	}
}

func standardTerms() []string {
	return []string{
		"Prices are estimates based on current on-demand rates and may change.",
		"Estimates assume 720 hours per month for hourly resources.",
		"Reserved and savings-plan pricing available on request.",
		"Quote valid for 30 days from the generation date.",
	}
}

func standardNextSteps() []string {
	return []string{
		"Review the proposed architecture and cost estimate.",
		"Schedule a technical deep-dive session.",
		"Confirm region, sizing and environment requirements.",
		"Approve the proposal to begin implementation.",
	}
}

func gapAnalysis(currentEnvironment string, solution models.Solution) []models.GapItem {
	current := strings.ToLower(currentEnvironment)
	var gaps []models.GapItem

	effort := func(kind models.ResourceKind) string {
		switch kind {
		case models.KindRDS, models.KindOpenSearch:
			return "high"
		case models.KindEC2, models.KindElastiCache:
			return "medium"
		default:
			return "low"
		}
	}

	for _, c := range solution.Components {
		gap := models.GapItem{
			Area:            string(c.ResourceType),
			Current:         "not present",
			Proposed:        componentSpec(c),
			MigrationEffort: effort(c.ResourceType),
		}
		if strings.Contains(current, string(c.ResourceType)) {
			gap.Current = "existing, to be migrated"
		}
		gaps = append(gaps, gap)
	}
	return gaps
}

func comparisonTable(competitor string, solution models.Solution) []models.ComparisonPoint {
	monthly := humanize.CommafWithDigits(solution.CostReport.TotalMonthlyCost, 2)
	return []models.ComparisonPoint{
		{
			Dimension:  "estimated monthly cost",
			Proposed:   "$" + monthly + " USD",
			Competitor: "provided by " + competitor + " on request",
		},
		{
			Dimension:  "component count",
			Proposed:   fmt.Sprintf("%d managed services", len(solution.Components)),
			Competitor: "varies",
		},
		{
			Dimension:  "region",
			Proposed:   solution.Region,
			Competitor: "subject to " + competitor + " availability",
		},
		{
			Dimension:  "pricing transparency",
			Proposed:   "public on-demand rates, itemized per component",
			Competitor: "custom quote required",
		},
	}
}
