package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "List invoices",
	Long: `List all invoices in the database, newest first. An optional status
filter narrows the output to one of: draft, sent, paid, overdue.`,
	Example: `  # All invoices
  invoicegen invoices

  # Only unpaid drafts
  invoicegen invoices --status draft`,
	Args: cobra.NoArgs,
	RunE: runInvoices,
}

var receiptsCmd = &cobra.Command{
	Use:   "receipts",
	Short: "List receipts",
	Args:  cobra.NoArgs,
	RunE:  runReceipts,
}

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List clients",
	Args:  cobra.NoArgs,
	RunE:  runClients,
}

func init() {
	rootCmd.AddCommand(invoicesCmd)
	rootCmd.AddCommand(receiptsCmd)
	rootCmd.AddCommand(clientsCmd)

	invoicesCmd.Flags().String("status", "", "Filter by status (draft, sent, paid, overdue)")
}

func runInvoices(cmd *cobra.Command, args []string) error {
	status, _ := cmd.Flags().GetString("status")

	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	invoices, err := svc.ListInvoices(cmd.Context(), status)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tCLIENT\tISSUED\tDUE\tSTATUS\tTOTAL")
	for _, inv := range invoices {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			inv.Number, inv.ClientName, inv.IssueDate, inv.DueDate, inv.Status, inv.Totals.DisplayTotal())
	}
	return w.Flush()
}

func runReceipts(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	receipts, err := svc.ListReceipts(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tCUSTOMER\tDATE\tMETHOD\tTOTAL")
	for _, rec := range receipts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			rec.Number, rec.CustomerName, rec.Date, rec.PaymentMethod, rec.Totals.DisplayTotal())
	}
	return w.Flush()
}

func runClients(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	clients, err := svc.ListClients(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tSTATUS\tINVOICES\tSPENT")
	for _, c := range clients {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			c.ID, c.Name, c.Company, c.Status, c.TotalInvoices, c.TotalSpent.StringFixed(2))
	}
	return w.Flush()
}
