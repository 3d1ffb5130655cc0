package store_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"invoicegen/internal/core"
	"invoicegen/internal/store"
)

// repoUnderTest runs the same contract checks against every Repository
// implementation.
func repoUnderTest(t *testing.T, repo store.Repository) {
	t.Helper()

	// Empty store lists are empty slices, not nil.
	invoices, err := repo.ListInvoices()
	if err != nil {
		t.Fatalf("ListInvoices: %v", err)
	}
	if invoices == nil || len(invoices) != 0 {
		t.Errorf("fresh store ListInvoices = %v, want []", invoices)
	}

	if _, err := repo.GetClient("missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetClient(missing) err = %v, want ErrNotFound", err)
	}

	client := core.Client{
		ID:         "CLI-1",
		Name:       "Kofi Mensah",
		Phone:      "+233 24 000 0000",
		Status:     core.ClientStatusActive,
		TotalSpent: decimal.RequireFromString("120.50"),
	}
	if err := repo.PutClient(client); err != nil {
		t.Fatalf("PutClient: %v", err)
	}

	got, err := repo.GetClient("CLI-1")
	if err != nil {
		t.Fatalf("GetClient: %v", err)
	}
	if got.Name != client.Name || got.Phone != client.Phone {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if !got.TotalSpent.Equal(client.TotalSpent) {
		t.Errorf("TotalSpent = %s, want %s", got.TotalSpent, client.TotalSpent)
	}

	// Put is a whole-snapshot upsert: last write wins.
	client.Name = "Kofi A. Mensah"
	if err := repo.PutClient(client); err != nil {
		t.Fatalf("PutClient (update): %v", err)
	}
	got, err = repo.GetClient("CLI-1")
	if err != nil {
		t.Fatalf("GetClient after update: %v", err)
	}
	if got.Name != "Kofi A. Mensah" {
		t.Errorf("update not applied, got %q", got.Name)
	}

	clients, err := repo.ListClients()
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	if len(clients) != 1 {
		t.Errorf("ListClients length = %d, want 1", len(clients))
	}

	inv := core.Invoice{
		ID:         "INV-id-1",
		Number:     "INV-2026-001",
		ClientName: "Kofi A. Mensah",
		Items:      []core.LineItem{{Name: "Work", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(10)}},
		Currency:   "GHS",
	}
	inv.Totals = core.CalculateTotals(inv.Items, decimal.Zero, core.DiscountSpec{}, inv.Currency)
	if err := repo.PutInvoice(inv); err != nil {
		t.Fatalf("PutInvoice: %v", err)
	}
	gotInv, err := repo.GetInvoice("INV-id-1")
	if err != nil {
		t.Fatalf("GetInvoice: %v", err)
	}
	if len(gotInv.Items) != 1 || !gotInv.Totals.Total.Equal(decimal.NewFromInt(20)) {
		t.Errorf("invoice round-trip mismatch: %+v", gotInv)
	}

	// Delete is idempotent: repeating it is not an error.
	if err := repo.DeleteInvoice("INV-id-1"); err != nil {
		t.Fatalf("DeleteInvoice: %v", err)
	}
	if err := repo.DeleteInvoice("INV-id-1"); err != nil {
		t.Errorf("repeated DeleteInvoice: %v", err)
	}
	if _, err := repo.GetInvoice("INV-id-1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetInvoice after delete err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore(t *testing.T) {
	repo := store.NewMemory()
	defer repo.Close()
	repoUnderTest(t, repo)
}

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoicegen.db")
	repo, err := store.OpenBolt(path)
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	defer repo.Close()
	repoUnderTest(t, repo)
}

func TestBoltStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoicegen.db")

	repo, err := store.OpenBolt(path)
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	rec := core.Receipt{ID: "REC-1", Number: "REC-2026-001", CustomerName: "Ama", Status: core.InvoiceStatusPaid}
	if err := repo.PutReceipt(rec); err != nil {
		t.Fatalf("PutReceipt: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	repo, err = store.OpenBolt(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer repo.Close()

	got, err := repo.GetReceipt("REC-1")
	if err != nil {
		t.Fatalf("GetReceipt after reopen: %v", err)
	}
	if got.Number != "REC-2026-001" || got.Status != core.InvoiceStatusPaid {
		t.Errorf("receipt round-trip mismatch: %+v", got)
	}
}
