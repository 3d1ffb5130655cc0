// Package pdf renders invoices and receipts to PDF via headless Chromium.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"invoicegen/internal/core"
)

// Options configures the renderer. The zero value works when a Chromium binary
// is discoverable on PATH.
type Options struct {
	// ChromiumPath overrides the browser binary location.
	ChromiumPath string
	// Timeout bounds a single render. Defaults to 15s when non-positive.
	Timeout time.Duration
}

// Renderer produces PDF bytes from document records.
type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// RenderInvoice builds the invoice HTML and prints it to PDF. If Chromium is
// unavailable it returns an error so the caller can decide to retry or skip.
func (r *Renderer) RenderInvoice(ctx context.Context, inv core.Invoice) ([]byte, error) {
	html, err := renderInvoiceHTML(inv)
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return r.print(ctx, html)
}

// RenderReceipt builds the receipt HTML and prints it to PDF.
func (r *Renderer) RenderReceipt(ctx context.Context, rec core.Receipt) ([]byte, error) {
	html, err := renderReceiptHTML(rec)
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return r.print(ctx, html)
}

func (r *Renderer) print(ctx context.Context, html string) ([]byte, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if r.opts.ChromiumPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.opts.ChromiumPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	timeout := r.opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	runCtx, cancelRun := chromedp.NewContext(allocCtx)
	defer cancelRun()
	runCtx, cancelTimeout := context.WithTimeout(runCtx, timeout)
	defer cancelTimeout()

	var pdfBuf []byte
	dataURL := "data:text/html," + url.PathEscape(html)
	err := chromedp.Run(runCtx,
		chromedp.Navigate(dataURL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, perr := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if perr == nil {
				pdfBuf = buf
			}
			return perr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp run failed: %w", err)
	}
	return pdfBuf, nil
}

// documentData is the template input shared by both document kinds.
type documentData struct {
	Title          string
	Number         string
	StatusLabel    string
	CompanyName    string
	CompanyContact string
	PartyLabel     string
	PartyName      string
	PartyEmail     string
	PartyPhone     string
	DateLabel      string
	Date           string
	DueDate        string
	Items          []lineData
	Totals         core.TotalsResult
	HasDiscount    bool
	TaxRate        string
	PaymentMethod  string
	Notes          string
	TransactionRef string
	FooterNote     string
	GeneratedAt    string
}

type lineData struct {
	Name        string
	Description string
	Quantity    string
	Unit        string
	UnitPrice   string
	Amount      string
}

func convertItems(items []core.LineItem, symbol string) []lineData {
	lines := make([]lineData, 0, len(items))
	for _, item := range items {
		lines = append(lines, lineData{
			Name:        item.Name,
			Description: item.Description,
			Quantity:    item.Quantity.String(),
			Unit:        item.Unit,
			UnitPrice:   core.FormatAmount(symbol, item.UnitPrice),
			Amount:      core.FormatAmount(symbol, item.Amount()),
		})
	}
	return lines
}

func renderInvoiceHTML(inv core.Invoice) (string, error) {
	data := documentData{
		Title:          "Invoice",
		Number:         inv.Number,
		StatusLabel:    string(inv.Status),
		CompanyName:    inv.CompanyName,
		CompanyContact: inv.CompanyContact,
		PartyLabel:     "Bill To",
		PartyName:      inv.ClientName,
		PartyEmail:     inv.ClientEmail,
		PartyPhone:     inv.ClientPhone,
		DateLabel:      "Issue Date",
		Date:           inv.IssueDate,
		DueDate:        inv.DueDate,
		Items:          convertItems(inv.Items, inv.Totals.CurrencySymbol),
		Totals:         inv.Totals,
		HasDiscount:    inv.Totals.DiscountAmount.IsPositive(),
		TaxRate:        inv.TaxRate.String(),
		PaymentMethod:  inv.PaymentMethod,
		Notes:          inv.Notes,
		GeneratedAt:    time.Now().UTC().Format("2006-01-02 15:04"),
	}
	return renderHTML(data)
}

func renderReceiptHTML(rec core.Receipt) (string, error) {
	data := documentData{
		Title:          "Receipt",
		Number:         rec.Number,
		StatusLabel:    string(rec.Status),
		CompanyName:    rec.CompanyName,
		CompanyContact: rec.CompanyContact,
		PartyLabel:     "Received From",
		PartyName:      rec.CustomerName,
		PartyEmail:     rec.CustomerEmail,
		PartyPhone:     rec.CustomerPhone,
		DateLabel:      "Date",
		Date:           rec.Date,
		Items:          convertItems(rec.Items, rec.Totals.CurrencySymbol),
		Totals:         rec.Totals,
		HasDiscount:    rec.Totals.DiscountAmount.IsPositive(),
		TaxRate:        rec.TaxRate.String(),
		PaymentMethod:  rec.PaymentMethod,
		Notes:          rec.Notes,
		TransactionRef: rec.TransactionRef,
		FooterNote:     rec.FooterNote,
		GeneratedAt:    time.Now().UTC().Format("2006-01-02 15:04"),
	}
	return renderHTML(data)
}

var docTemplate = template.Must(template.New("document").Parse(htmlTemplate))

func renderHTML(data documentData) (string, error) {
	var buf bytes.Buffer
	if err := docTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var htmlTemplate = `
<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <style>
    body { font-family: 'Helvetica Neue', Arial, sans-serif; margin: 24px; color: #0f172a; }
    h1 { margin: 0 0 4px; text-transform: uppercase; letter-spacing: 2px; }
    .status { display: inline-block; padding: 2px 10px; border-radius: 10px; background: #f1f5f9; font-size: 12px; text-transform: capitalize; }
    .meta { display: flex; justify-content: space-between; margin-bottom: 16px; }
    .card { border: 1px solid #e2e8f0; border-radius: 8px; padding: 12px; margin-bottom: 12px; }
    .row { display: flex; gap: 12px; }
    .col { flex: 1; }
    .label { font-size: 12px; color: #475569; }
    .value { font-size: 14px; margin-bottom: 4px; }
    table { width: 100%; border-collapse: collapse; margin-top: 8px; }
    th, td { padding: 8px; border-bottom: 1px solid #e2e8f0; text-align: left; }
    th { background: #f8fafc; font-size: 12px; text-transform: uppercase; }
    .amount { text-align: right; }
    .totals { display: flex; justify-content: flex-end; margin-top: 12px; }
    .totals > div { min-width: 220px; }
    .totals .row { justify-content: space-between; }
    .grand { font-weight: 700; border-top: 2px solid #0f172a; padding-top: 4px; }
    .footer { margin-top: 24px; font-size: 11px; color: #64748b; text-align: center; }
  </style>
</head>
<body>
  <div class="meta">
    <div>
      <h1>{{.Title}}</h1>
      <div class="value">{{.Number}}</div>
      <div class="status">{{.StatusLabel}}</div>
    </div>
    <div style="text-align:right">
      {{if .CompanyName}}<div class="value">{{.CompanyName}}</div>{{end}}
      {{if .CompanyContact}}<div class="value">{{.CompanyContact}}</div>{{end}}
      <div class="label">{{.DateLabel}}</div>
      <div class="value">{{.Date}}</div>
      {{if .DueDate}}
      <div class="label">Due Date</div>
      <div class="value">{{.DueDate}}</div>
      {{end}}
    </div>
  </div>

  <div class="card">
    <div class="label">{{.PartyLabel}}</div>
    <div class="value">{{.PartyName}}</div>
    {{if .PartyEmail}}<div class="value">{{.PartyEmail}}</div>{{end}}
    {{if .PartyPhone}}<div class="value">{{.PartyPhone}}</div>{{end}}
  </div>

  <table>
    <thead>
      <tr>
        <th>Item</th>
        <th>Qty</th>
        <th>Unit Price</th>
        <th class="amount">Amount</th>
      </tr>
    </thead>
    <tbody>
    {{range .Items}}
      <tr>
        <td>{{.Name}}{{if .Description}}<div class="label">{{.Description}}</div>{{end}}</td>
        <td>{{.Quantity}}{{if .Unit}} {{.Unit}}{{end}}</td>
        <td>{{.UnitPrice}}</td>
        <td class="amount">{{.Amount}}</td>
      </tr>
    {{end}}
    </tbody>
  </table>

  <div class="totals">
    <div>
      <div class="row"><div>Subtotal</div><div>{{.Totals.DisplaySubtotal}}</div></div>
      <div class="row"><div>Tax ({{.TaxRate}}%)</div><div>{{.Totals.DisplayTax}}</div></div>
      {{if .HasDiscount}}
      <div class="row"><div>Discount</div><div>−{{.Totals.DisplayDiscount}}</div></div>
      {{end}}
      <div class="row grand"><div>Total</div><div>{{.Totals.DisplayTotal}}</div></div>
    </div>
  </div>

  {{if .PaymentMethod}}
  <div class="card">
    <div class="label">Payment Method</div>
    <div class="value">{{.PaymentMethod}}</div>
    {{if .TransactionRef}}
    <div class="label">Transaction Ref</div>
    <div class="value">{{.TransactionRef}}</div>
    {{end}}
  </div>
  {{end}}

  {{if .Notes}}
  <div class="card">
    <div class="label">Notes</div>
    <div class="value">{{.Notes}}</div>
  </div>
  {{end}}

  <div class="footer">
    {{if .FooterNote}}{{.FooterNote}}{{else}}Generated {{.GeneratedAt}} UTC{{end}}
  </div>
</body>
</html>
`
