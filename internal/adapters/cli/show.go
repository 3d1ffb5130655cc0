package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a single record as JSON",
	Long: `Print the full record for one invoice, receipt, or client. The record
kind is inferred from the ID prefix (INV-, REC-, CLI-).`,
	Example: `  invoicegen show INV-7c1a...
  invoicegen show CLI-99d0...`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id := args[0]

	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	var record any
	switch {
	case strings.HasPrefix(id, "INV-"):
		record, err = svc.GetInvoice(cmd.Context(), id)
	case strings.HasPrefix(id, "REC-"):
		record, err = svc.GetReceipt(cmd.Context(), id)
	case strings.HasPrefix(id, "CLI-"):
		record, err = svc.GetClient(cmd.Context(), id)
	default:
		return fmt.Errorf("unrecognized ID prefix: %s", id)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(record)
}
