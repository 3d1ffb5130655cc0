package app

import (
	"context"

	"invoicegen/internal/core"
)

// ApplicationService is the single interface all UI adapters (CLI, Web) call.
// It decouples presentation from business logic. Implementations must contain
// no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// CreateClient sanitizes, validates, and persists a new client record.
	CreateClient(ctx context.Context, req ClientRequest) (*core.Client, error)

	// ListClients returns all client records.
	ListClients(ctx context.Context) ([]core.Client, error)

	// GetClient returns a single client by ID.
	GetClient(ctx context.Context, id string) (*core.Client, error)

	// UpdateClient replaces a client record wholesale. There is no partial
	// update and no per-field audit trail.
	UpdateClient(ctx context.Context, id string, req ClientRequest) (*core.Client, error)

	// DeleteClient removes a client by ID. Deleting an absent client is a no-op.
	DeleteClient(ctx context.Context, id string) error

	// CreateInvoice sanitizes the request, recomputes totals canonically
	// (client-supplied totals are never trusted), validates, assigns an ID and
	// a human-facing number, and persists.
	CreateInvoice(ctx context.Context, req InvoiceRequest) (*core.Invoice, error)

	// ListInvoices returns invoices newest-first, optionally filtered by status.
	ListInvoices(ctx context.Context, status string) ([]core.Invoice, error)

	// GetInvoice returns a single invoice by ID.
	GetInvoice(ctx context.Context, id string) (*core.Invoice, error)

	// UpdateInvoice replaces an invoice's content, keeping its identity
	// (ID, number, creation time) and re-running sanitize/totals/validate.
	UpdateInvoice(ctx context.Context, id string, req InvoiceRequest) (*core.Invoice, error)

	// SetInvoiceStatus sets the status directly. Transitions are not
	// enforced — any known status may follow any other.
	SetInvoiceStatus(ctx context.Context, id string, status core.InvoiceStatus) (*core.Invoice, error)

	// DeleteInvoice removes an invoice by ID.
	DeleteInvoice(ctx context.Context, id string) error

	// CreateReceipt creates a paid receipt. A receipt referencing an invoice
	// marks that invoice paid; a receipt for a known customer adds to their
	// total spent.
	CreateReceipt(ctx context.Context, req ReceiptRequest) (*core.Receipt, error)

	// ListReceipts returns receipts newest-first.
	ListReceipts(ctx context.Context) ([]core.Receipt, error)

	// GetReceipt returns a single receipt by ID.
	GetReceipt(ctx context.Context, id string) (*core.Receipt, error)

	// DeleteReceipt removes a receipt by ID.
	DeleteReceipt(ctx context.Context, id string) error

	// PreviewTotals computes totals for a not-yet-saved document, for live
	// form recalculation. Nothing is persisted.
	PreviewTotals(ctx context.Context, req TotalsRequest) (*core.TotalsResult, error)

	// GetStatistics returns dashboard counts and sums across all entities.
	GetStatistics(ctx context.Context) (*Statistics, error)

	// AuthenticateUser verifies mock demo credentials and returns a session.
	AuthenticateUser(ctx context.Context, email, password string) (*UserSession, error)

	// GetUser returns a mock user profile with plan capabilities and current
	// usage.
	GetUser(ctx context.Context, userID string) (*UserResult, error)
}
