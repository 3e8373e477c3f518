package formatter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/junseok-oh/cloudquote/internal/models"
)

// PrintCostReportTable prints a formatted table of a cost report
func PrintCostReportTable(w io.Writer, report models.CostReport) {
	if len(report.CostItems) == 0 {
		fmt.Fprintln(w, "No resources to price.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintf(tw, "Region: %s\n", report.Region)

	// Print header
	fmt.Fprintln(tw, "TYPE\tDESCRIPTION\tCOST/MO\tSTATUS")

	priced := 0
	for _, item := range report.CostItems {
		status := "ok"
		if item.Error != "" {
			status = item.Error
		} else if item.MonthlyCost == nil {
			status = "no price available"
		} else {
			priced++
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			item.ResourceType,
			item.Description,
			formatMonthly(item.MonthlyCost),
			status,
		)
	}

	fmt.Fprintf(tw, "TOTAL (%d of %d priced)\t\t$%s %s\t\n",
		priced,
		len(report.CostItems),
		humanize.CommafWithDigits(report.TotalMonthlyCost, 2),
		report.Currency,
	)

	tw.Flush()
}
