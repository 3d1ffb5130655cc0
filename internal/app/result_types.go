package app

import (
	"github.com/shopspring/decimal"

	"invoicegen/internal/core"
)

// InvoiceStats summarizes the invoice book for the dashboard.
type InvoiceStats struct {
	Total       int             `json:"total"`
	Draft       int             `json:"draft"`
	Sent        int             `json:"sent"`
	Paid        int             `json:"paid"`
	Overdue     int             `json:"overdue"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
}

type ReceiptStats struct {
	Total       int             `json:"total"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type ClientStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// Statistics is the dashboard aggregate across all stored entities.
type Statistics struct {
	Invoices InvoiceStats `json:"invoices"`
	Receipts ReceiptStats `json:"receipts"`
	Clients  ClientStats  `json:"clients"`
}

// UserSession is the result of a successful mock login.
type UserSession struct {
	UserID    string        `json:"user_id"`
	Email     string        `json:"email"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Plan      core.PlanTier `json:"plan"`
}

// UserResult is a user profile plus plan capabilities and current usage. The
// plan limit is advisory: CanCreateInvoice is reported, never enforced.
type UserResult struct {
	User             core.User             `json:"user"`
	Capabilities     core.PlanCapabilities `json:"capabilities"`
	InvoiceCount     int                   `json:"invoice_count"`
	CanCreateInvoice bool                  `json:"can_create_invoice"`
}
