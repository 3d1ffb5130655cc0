// Package store persists clients, invoices, and receipts as whole-record JSON
// snapshots in an embedded key/value store.
//
// Known limitation, by inheritance from the system this replaces: writes are
// last-write-wins. Two callers updating the same record concurrently do not
// merge — the second Put silently overwrites the first. The Bolt backend
// serializes writers within one process but provides no optimistic concurrency
// across Put calls.
package store

import (
	"errors"

	"invoicegen/internal/core"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Repository is the injected storage collaborator. Records go in and come out
// as whole snapshots; Put is an upsert and Delete is idempotent (deleting an
// absent record is not an error).
type Repository interface {
	ListClients() ([]core.Client, error)
	GetClient(id string) (*core.Client, error)
	PutClient(c core.Client) error
	DeleteClient(id string) error

	ListInvoices() ([]core.Invoice, error)
	GetInvoice(id string) (*core.Invoice, error)
	PutInvoice(inv core.Invoice) error
	DeleteInvoice(id string) error

	ListReceipts() ([]core.Receipt, error)
	GetReceipt(id string) (*core.Receipt, error)
	PutReceipt(rec core.Receipt) error
	DeleteReceipt(id string) error

	Close() error
}
