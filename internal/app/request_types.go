package app

import "github.com/shopspring/decimal"

// Request types carry raw, untrusted adapter input into the service. Every
// field is sanitized before use; none of these values reach the store as-is.

// LineItemRequest is one billable row as submitted by a form or API call.
type LineItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Qty         decimal.Decimal `json:"qty"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
}

// DiscountRequest selects the discount formula branch and its value. Toggling
// the kind changes the branch only, never the stored value.
type DiscountRequest struct {
	Kind  string          `json:"kind"` // "percent" or "flat"
	Value decimal.Decimal `json:"value"`
}

type ClientRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	TaxID   string `json:"tax_id"`
	Notes   string `json:"notes"`
}

type InvoiceRequest struct {
	ClientID       string            `json:"client_id"`
	ClientName     string            `json:"client_name"`
	ClientEmail    string            `json:"client_email"`
	ClientPhone    string            `json:"client_phone"`
	CompanyName    string            `json:"company_name"`
	CompanyContact string            `json:"company_contact"`
	IssueDate      string            `json:"issue_date"`
	DueDate        string            `json:"due_date"`
	Items          []LineItemRequest `json:"items"`
	TaxRate        decimal.Decimal   `json:"tax_rate"`
	Discount       DiscountRequest   `json:"discount"`
	Status         string            `json:"status"`
	PaymentMethod  string            `json:"payment_method"`
	Currency       string            `json:"currency"`
	Notes          string            `json:"notes"`
}

type ReceiptRequest struct {
	InvoiceID      string            `json:"invoice_id"`
	CustomerID     string            `json:"customer_id"`
	CustomerName   string            `json:"customer_name"`
	CustomerEmail  string            `json:"customer_email"`
	CustomerPhone  string            `json:"customer_phone"`
	CompanyName    string            `json:"company_name"`
	CompanyContact string            `json:"company_contact"`
	Date           string            `json:"date"`
	Items          []LineItemRequest `json:"items"`
	TaxRate        decimal.Decimal   `json:"tax_rate"`
	Discount       DiscountRequest   `json:"discount"`
	PaymentMethod  string            `json:"payment_method"`
	Currency       string            `json:"currency"`
	Notes          string            `json:"notes"`
	TransactionRef string            `json:"transaction_ref"`
	FooterNote     string            `json:"footer_note"`
}

// TotalsRequest is the live-recalculation input: items plus tax and discount
// configuration, no document identity.
type TotalsRequest struct {
	Items    []LineItemRequest `json:"items"`
	TaxRate  decimal.Decimal   `json:"tax_rate"`
	Discount DiscountRequest   `json:"discount"`
	Currency string            `json:"currency"`
}
