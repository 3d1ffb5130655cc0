package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"invoicegen/internal/config"
	"invoicegen/internal/core"
	"invoicegen/internal/logger"
	"invoicegen/internal/pdf"
)

var exportCmd = &cobra.Command{
	Use:   "export-pdf [id]",
	Short: "Render an invoice or receipt to PDF",
	Long: `Render a stored invoice or receipt to PDF using headless Chromium.
The record kind is inferred from the ID prefix (INV- or REC-).

Chromium must be installed; set CHROMIUM_PATH if the binary is not on PATH.`,
	Example: `  # Write next to the current directory, named after the document number
  invoicegen export-pdf INV-7c1a...

  # Explicit output path
  invoicegen export-pdf REC-40e2... -o march-receipt.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "Output file path (default: <number>.pdf)")
	exportCmd.Flags().Int("timeout", 0, "Render timeout in seconds (default from PDF_TIMEOUT)")
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("export-pdf")

	id := args[0]
	outputPath, _ := cmd.Flags().GetString("output")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")

	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	cfg := config.Load()
	timeout := cfg.PDFTimeout
	if timeoutSecs > 0 {
		timeout = time.Duration(timeoutSecs) * time.Second
	}
	renderer := pdf.NewRenderer(pdf.Options{
		ChromiumPath: cfg.ChromiumPath,
		Timeout:      timeout,
	})

	var buf []byte
	var number string
	switch {
	case strings.HasPrefix(id, "INV-"):
		inv, err := svc.GetInvoice(cmd.Context(), id)
		if err != nil {
			return err
		}
		number = inv.Number
		buf, err = renderer.RenderInvoice(cmd.Context(), *inv)
		if err != nil {
			return fmt.Errorf("render invoice: %w", err)
		}
	case strings.HasPrefix(id, "REC-"):
		rec, err := svc.GetReceipt(cmd.Context(), id)
		if err != nil {
			return err
		}
		number = rec.Number
		buf, err = renderer.RenderReceipt(cmd.Context(), *rec)
		if err != nil {
			return fmt.Errorf("render receipt: %w", err)
		}
	default:
		return fmt.Errorf("unrecognized ID prefix: %s", id)
	}

	if outputPath == "" {
		outputPath = core.SanitizeFileName(number) + ".pdf"
	}
	if err := os.WriteFile(outputPath, buf, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	log.Info().
		Str("id", id).
		Str("output", outputPath).
		Int("bytes", len(buf)).
		Msg("PDF exported")
	fmt.Printf("Wrote %s (%d bytes)\n", outputPath, len(buf))
	return nil
}
