package formatter

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/junseok-oh/cloudquote/internal/models"
)

// PrintServicePricing prints the price dimensions of a single quote
func PrintServicePricing(w io.Writer, sp *models.ServicePricing) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintf(tw, "Service: %s\tRegion: %s\n", sp.Service, sp.Region)

	fmt.Fprintln(tw, "TERM\tUNIT\tPRICE (USD)\tDESCRIPTION")

	for _, opt := range sp.OnDemand {
		fmt.Fprintf(tw, "OnDemand\t%s\t%.6f\t%s\n", opt.Unit, opt.Price, opt.Description)
	}
	for _, opt := range sp.Reserved {
		term := fmt.Sprintf("Reserved (%s, %s)", opt.LeaseContractLength, opt.PurchaseOption)
		fmt.Fprintf(tw, "%s\t%s\t%.6f\t%s\n", term, opt.Unit, opt.Price, opt.Description)
	}

	if sp.EstimatedMonthly != nil {
		fmt.Fprintf(tw, "Estimated monthly\t\t$%.2f\t\n", *sp.EstimatedMonthly)
	}

	tw.Flush()
}

// PrintInstanceTypesTable prints the EC2 instance type catalogue
func PrintInstanceTypesTable(w io.Writer, infos []models.InstanceTypeInfo) {
	if len(infos) == 0 {
		fmt.Fprintln(w, "No instance types found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "INSTANCE TYPE\tFAMILY\tVCPU\tMEMORY (GiB)\tSTORAGE\tNETWORK")

	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\t%s\t%s\n",
			info.InstanceType,
			info.Family,
			info.VCPU,
			info.MemoryGiB,
			info.Storage,
			info.NetworkPerformance,
		)
	}

	tw.Flush()
}

// PrintTransferPricing prints tiered inter-region transfer rates
func PrintTransferPricing(w io.Writer, tp *models.TransferPricing) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintf(tw, "Transfer: %s -> %s\n", tp.FromRegion, tp.ToRegion)

	fmt.Fprintln(tw, "FROM (GB)\tTO (GB)\tPRICE/GB (USD)\tDESCRIPTION")

	for _, tier := range tp.Tiers {
		end := "unlimited"
		if !math.IsInf(tier.EndGB, 1) {
			end = fmt.Sprintf("%.0f", tier.EndGB)
		}
		fmt.Fprintf(tw, "%.0f\t%s\t%.6f\t%s\n", tier.BeginGB, end, tier.PricePerGB, tier.Description)
	}

	tw.Flush()
}
