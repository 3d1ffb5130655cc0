package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dashboard statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	stats, err := svc.GetStatistics(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println("Invoices")
	fmt.Printf("  total:   %d (draft %d, sent %d, paid %d, overdue %d)\n",
		stats.Invoices.Total, stats.Invoices.Draft, stats.Invoices.Sent, stats.Invoices.Paid, stats.Invoices.Overdue)
	fmt.Printf("  amount:  %s (paid %s)\n",
		stats.Invoices.TotalAmount.StringFixed(2), stats.Invoices.PaidAmount.StringFixed(2))
	fmt.Println("Receipts")
	fmt.Printf("  total:   %d\n", stats.Receipts.Total)
	fmt.Printf("  amount:  %s\n", stats.Receipts.TotalAmount.StringFixed(2))
	fmt.Println("Clients")
	fmt.Printf("  total:   %d (active %d, inactive %d)\n",
		stats.Clients.Total, stats.Clients.Active, stats.Clients.Inactive)
	return nil
}
