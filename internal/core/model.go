package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// KnownInvoiceStatus reports whether s is one of the recognized status values.
// Transitions between statuses are deliberately unenforced: any known value may
// be set by any caller.
func KnownInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

type DiscountKind string

const (
	DiscountPercent DiscountKind = "percent"
	DiscountFlat    DiscountKind = "flat"
)

// DiscountSpec describes a document-level discount. Percent is interpreted
// against the subtotal; flat is capped at subtotal+tax so the total can never
// go negative.
type DiscountSpec struct {
	Kind  DiscountKind    `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

// LineItem is one billable row. The row amount is always derived, never stored.
type LineItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"qty"`
	UnitPrice   decimal.Decimal `json:"price"`
	Unit        string          `json:"unit,omitempty"`
}

// Amount returns quantity × unit price rounded to 2 decimal places.
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice).Round(2)
}

// TotalsResult is the financial summary snapshot stored on a document.
// Invariant: Total = Subtotal + TaxAmount − DiscountAmount.
type TotalsResult struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
	CurrencySymbol string          `json:"currency_symbol"`
}

// Client is a billing contact. Mutated only by whole-record replacement; there
// is no per-field audit trail.
type Client struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Company         string          `json:"company,omitempty"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	Address         string          `json:"address,omitempty"`
	City            string          `json:"city,omitempty"`
	Country         string          `json:"country,omitempty"`
	TaxID           string          `json:"tax_id,omitempty"`
	TotalInvoices   int             `json:"total_invoices"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
	Status          ClientStatus    `json:"status"`
	CreatedDate     string          `json:"created_date,omitempty"`
	LastInvoiceDate string          `json:"last_invoice_date,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// Invoice is a billable document. Dates are date-only ISO strings (YYYY-MM-DD),
// as produced by SanitizeDate.
type Invoice struct {
	ID             string          `json:"id"`
	Number         string          `json:"number"`
	ClientID       string          `json:"client_id,omitempty"`
	ClientName     string          `json:"client_name"`
	ClientEmail    string          `json:"client_email,omitempty"`
	ClientPhone    string          `json:"client_phone,omitempty"`
	CompanyName    string          `json:"company_name,omitempty"`
	CompanyContact string          `json:"company_contact,omitempty"`
	IssueDate      string          `json:"issue_date"`
	DueDate        string          `json:"due_date"`
	Items          []LineItem      `json:"items"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	Discount       DiscountSpec    `json:"discount"`
	Totals         TotalsResult    `json:"totals"`
	Status         InvoiceStatus   `json:"status"`
	PaymentMethod  string          `json:"payment_method,omitempty"`
	Currency       string          `json:"currency"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Receipt records a completed payment. Its status is terminal: a receipt is
// always "paid".
type Receipt struct {
	ID             string          `json:"id"`
	Number         string          `json:"number"`
	InvoiceID      string          `json:"invoice_id,omitempty"`
	CustomerID     string          `json:"customer_id,omitempty"`
	CustomerName   string          `json:"customer_name"`
	CustomerEmail  string          `json:"customer_email,omitempty"`
	CustomerPhone  string          `json:"customer_phone"`
	CompanyName    string          `json:"company_name,omitempty"`
	CompanyContact string          `json:"company_contact,omitempty"`
	Date           string          `json:"date"`
	Items          []LineItem      `json:"items"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	Discount       DiscountSpec    `json:"discount"`
	Totals         TotalsResult    `json:"totals"`
	PaymentMethod  string          `json:"payment_method"`
	Status         InvoiceStatus   `json:"status"`
	Currency       string          `json:"currency"`
	Notes          string          `json:"notes,omitempty"`
	TransactionRef string          `json:"transaction_ref,omitempty"`
	FooterNote     string          `json:"footer_note,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// User is a mock account record. Passwords are fixed demo strings and plans
// are advisory only; nothing here is real authentication.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Plan         PlanTier  `json:"plan"`
	InvoiceCount int       `json:"invoice_count"`
	CreatedAt    time.Time `json:"created_at"`
}
