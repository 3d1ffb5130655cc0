package core_test

import (
	"testing"

	"invoicegen/internal/core"
)

func validInvoice() core.Invoice {
	inv := core.Invoice{
		ClientName:  "Kofi Mensah",
		ClientEmail: "kofi@example.com",
		IssueDate:   "2026-01-10",
		DueDate:     "2026-02-09",
		Items:       []core.LineItem{item("2", "10")},
		TaxRate:     d("0"),
		Currency:    "GHS",
	}
	inv.Totals = core.CalculateTotals(inv.Items, inv.TaxRate, inv.Discount, inv.Currency)
	return inv
}

func TestValidateInvoice(t *testing.T) {
	t.Run("valid invoice passes", func(t *testing.T) {
		res := core.ValidateInvoice(validInvoice())
		if !res.Valid || len(res.Errors) != 0 {
			t.Errorf("expected valid, got %+v", res)
		}
	})

	t.Run("missing name and empty items yields distinct errors", func(t *testing.T) {
		inv := validInvoice()
		inv.ClientName = ""
		inv.Items = nil
		inv.Totals = core.CalculateTotals(inv.Items, inv.TaxRate, inv.Discount, inv.Currency)

		res := core.ValidateInvoice(inv)
		if res.Valid {
			t.Fatal("expected invalid")
		}
		if len(res.Errors) < 2 {
			t.Errorf("expected at least two errors, got %v", res.Errors)
		}
		seen := map[string]bool{}
		for _, e := range res.Errors {
			if seen[e] {
				t.Errorf("duplicate error message %q", e)
			}
			seen[e] = true
		}
	})

	t.Run("no contact at all", func(t *testing.T) {
		inv := validInvoice()
		inv.ClientEmail = ""
		inv.ClientPhone = ""
		if res := core.ValidateInvoice(inv); res.Valid {
			t.Error("expected invalid without email or phone")
		}
	})

	t.Run("bad email format", func(t *testing.T) {
		inv := validInvoice()
		inv.ClientEmail = "a..b@c.com"
		if res := core.ValidateInvoice(inv); res.Valid {
			t.Error("expected invalid for malformed email")
		}
	})

	t.Run("bad due date", func(t *testing.T) {
		inv := validInvoice()
		inv.DueDate = "whenever"
		if res := core.ValidateInvoice(inv); res.Valid {
			t.Error("expected invalid for unparseable due date")
		}
	})
}

func validReceipt() core.Receipt {
	rec := core.Receipt{
		CustomerName:  "Ama Serwaa",
		CustomerPhone: "+233 24 000 0000",
		Date:          "2026-01-10",
		PaymentMethod: "Cash",
		Items:         []core.LineItem{item("1", "50")},
		TaxRate:       d("0"),
		Currency:      "GHS",
		Status:        core.InvoiceStatusPaid,
	}
	rec.Totals = core.CalculateTotals(rec.Items, rec.TaxRate, rec.Discount, rec.Currency)
	return rec
}

func TestValidateReceipt(t *testing.T) {
	t.Run("valid receipt passes", func(t *testing.T) {
		if res := core.ValidateReceipt(validReceipt()); !res.Valid {
			t.Errorf("expected valid, got %+v", res)
		}
	})

	t.Run("phone is required", func(t *testing.T) {
		rec := validReceipt()
		rec.CustomerPhone = ""
		if res := core.ValidateReceipt(rec); res.Valid {
			t.Error("expected invalid without phone")
		}
	})

	t.Run("payment method is required", func(t *testing.T) {
		rec := validReceipt()
		rec.PaymentMethod = ""
		if res := core.ValidateReceipt(rec); res.Valid {
			t.Error("expected invalid without payment method")
		}
	})
}

func TestValidateClient(t *testing.T) {
	t.Run("name plus phone passes", func(t *testing.T) {
		c := core.Client{Name: "Kofi", Phone: "+233 24 000 0000"}
		if res := core.ValidateClient(c); !res.Valid {
			t.Errorf("expected valid, got %+v", res)
		}
	})

	t.Run("no contact fails", func(t *testing.T) {
		c := core.Client{Name: "Kofi"}
		if res := core.ValidateClient(c); res.Valid {
			t.Error("expected invalid without email or phone")
		}
	})
}

func TestReportValidation(t *testing.T) {
	var gotSeverity core.Severity
	var gotMessage string
	calls := 0
	n := core.NotifierFunc(func(s core.Severity, m string) {
		calls++
		gotSeverity, gotMessage = s, m
	})

	core.ReportValidation(n, core.ValidationResult{Valid: true})
	if calls != 0 {
		t.Error("valid result must not notify")
	}

	core.ReportValidation(n, core.ValidationResult{
		Valid:  false,
		Errors: []string{"Client name is required", "At least one item is required"},
	})
	if calls != 1 {
		t.Fatalf("expected one notification, got %d", calls)
	}
	if gotSeverity != core.SeverityError {
		t.Errorf("severity = %q, want error", gotSeverity)
	}
	if gotMessage != "Client name is required\nAt least one item is required" {
		t.Errorf("message = %q", gotMessage)
	}
}
