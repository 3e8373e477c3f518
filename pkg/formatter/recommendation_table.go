package formatter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/junseok-oh/cloudquote/internal/models"
)

// PrintRecommendationsTable prints a formatted table of recommendations
func PrintRecommendationsTable(w io.Writer, recs []models.Recommendation) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No recommendations found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	// Print header
	fmt.Fprintln(tw, "TYPE\tCONFIGURATION\tSPECS\tCOST/MO\tRATIONALE")

	for _, rec := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			rec.ResourceType,
			recConfiguration(rec),
			recSpecs(rec),
			formatMonthly(rec.EstimatedMonthlyCost),
			rec.Rationale,
		)
	}

	tw.Flush()
}

// recConfiguration returns the kind-specific identifier column
func recConfiguration(rec models.Recommendation) string {
	switch {
	case rec.InstanceType != "":
		return rec.InstanceType
	case rec.NodeType != "":
		return rec.NodeType
	case rec.VolumeType != "":
		return rec.VolumeType
	case rec.StorageClass != "":
		return rec.StorageClass
	case rec.LBType != "":
		return rec.LBType
	}
	return "-"
}

// recSpecs summarizes the sizing fields that are set
func recSpecs(rec models.Recommendation) string {
	var parts []string
	if rec.VCPU > 0 {
		parts = append(parts, fmt.Sprintf("%d vCPU", rec.VCPU))
	}
	if rec.MemoryGiB > 0 {
		parts = append(parts, fmt.Sprintf("%.1f GiB", rec.MemoryGiB))
	}
	if rec.SizeGB > 0 {
		parts = append(parts, fmt.Sprintf("%d GB", rec.SizeGB))
	}
	if rec.Engine != "" {
		parts = append(parts, rec.Engine)
	}
	if rec.DeploymentOption != "" {
		parts = append(parts, rec.DeploymentOption)
	}
	if rec.NodeCount > 1 {
		parts = append(parts, fmt.Sprintf("%d nodes", rec.NodeCount))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func formatMonthly(cost *float64) string {
	if cost == nil {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", *cost)
}
