package core

import "github.com/shopspring/decimal"

// Record-level sanitizers. Each returns a new record with every field coerced
// to a safe, bounded value so that no unchecked user input and no absent field
// ever reaches the store or the totals arithmetic.

var (
	minQuantity = decimal.RequireFromString("0.001")
	maxQuantity = decimal.NewFromInt(999999)
	maxTaxRate  = decimal.NewFromInt(100)
)

// SanitizeLineItem bounds a single billable row.
func SanitizeLineItem(item LineItem) LineItem {
	return LineItem{
		Name:        SanitizeText(item.Name, 200),
		Description: SanitizeText(item.Description, 500),
		Quantity:    ClampNumber(item.Quantity, minQuantity, maxQuantity),
		UnitPrice:   ClampPrice(item.UnitPrice, decimal.Zero, DefaultMaxPrice),
		Unit:        SanitizeText(item.Unit, 20),
	}
}

// SanitizeLineItems sanitizes a slice of rows, always returning a non-nil
// slice so an absent item list never propagates as null.
func SanitizeLineItems(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, SanitizeLineItem(item))
	}
	return out
}

func sanitizeDiscount(d DiscountSpec) DiscountSpec {
	kind := DiscountPercent
	if d.Kind == DiscountFlat {
		kind = DiscountFlat
	}
	return DiscountSpec{
		Kind:  kind,
		Value: ClampPrice(d.Value, decimal.Zero, DefaultMaxPrice),
	}
}

func sanitizeTotals(t TotalsResult) TotalsResult {
	return TotalsResult{
		Subtotal:       ClampPrice(t.Subtotal, decimal.Zero, DefaultMaxPrice),
		TaxAmount:      ClampPrice(t.TaxAmount, decimal.Zero, DefaultMaxPrice),
		DiscountAmount: ClampPrice(t.DiscountAmount, decimal.Zero, DefaultMaxPrice),
		Total:          ClampPrice(t.Total, decimal.Zero, DefaultMaxPrice),
		CurrencySymbol: SanitizeText(t.CurrencySymbol, 5),
	}
}

// SanitizeInvoice returns a fully-coerced copy of an invoice. Unknown statuses
// collapse to draft; totals are bounded here and recomputed canonically by the
// service before persisting.
func SanitizeInvoice(inv Invoice) Invoice {
	status := InvoiceStatus(SanitizeText(string(inv.Status), 20))
	if !KnownInvoiceStatus(status) {
		status = InvoiceStatusDraft
	}
	return Invoice{
		ID:             SanitizeText(inv.ID, 50),
		Number:         SanitizeDocumentNumber(inv.Number),
		ClientID:       SanitizeText(inv.ClientID, 50),
		ClientName:     SanitizePersonName(inv.ClientName),
		ClientEmail:    SanitizeEmail(inv.ClientEmail),
		ClientPhone:    SanitizePhone(inv.ClientPhone),
		CompanyName:    SanitizeCompanyName(inv.CompanyName),
		CompanyContact: SanitizePhone(inv.CompanyContact),
		IssueDate:      SanitizeDate(inv.IssueDate),
		DueDate:        SanitizeDate(inv.DueDate),
		Items:          SanitizeLineItems(inv.Items),
		TaxRate:        ClampNumber(inv.TaxRate, decimal.Zero, maxTaxRate),
		Discount:       sanitizeDiscount(inv.Discount),
		Totals:         sanitizeTotals(inv.Totals),
		Status:         status,
		PaymentMethod:  SanitizePaymentMethod(inv.PaymentMethod),
		Currency:       SanitizeCurrency(inv.Currency),
		Notes:          SanitizeText(inv.Notes, 1000),
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}

// SanitizeReceipt returns a fully-coerced copy of a receipt. Receipt status is
// terminal and is forced to paid regardless of input.
func SanitizeReceipt(rec Receipt) Receipt {
	return Receipt{
		ID:             SanitizeText(rec.ID, 50),
		Number:         SanitizeDocumentNumber(rec.Number),
		InvoiceID:      SanitizeText(rec.InvoiceID, 50),
		CustomerID:     SanitizeText(rec.CustomerID, 50),
		CustomerName:   SanitizePersonName(rec.CustomerName),
		CustomerEmail:  SanitizeEmail(rec.CustomerEmail),
		CustomerPhone:  SanitizePhone(rec.CustomerPhone),
		CompanyName:    SanitizeCompanyName(rec.CompanyName),
		CompanyContact: SanitizePhone(rec.CompanyContact),
		Date:           SanitizeDate(rec.Date),
		Items:          SanitizeLineItems(rec.Items),
		TaxRate:        ClampNumber(rec.TaxRate, decimal.Zero, maxTaxRate),
		Discount:       sanitizeDiscount(rec.Discount),
		Totals:         sanitizeTotals(rec.Totals),
		PaymentMethod:  SanitizePaymentMethod(rec.PaymentMethod),
		Status:         InvoiceStatusPaid,
		Currency:       SanitizeCurrency(rec.Currency),
		Notes:          SanitizeText(rec.Notes, 1000),
		TransactionRef: SanitizeText(rec.TransactionRef, 100),
		FooterNote:     SanitizeText(rec.FooterNote, 500),
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

// SanitizeClient returns a fully-coerced copy of a client record.
func SanitizeClient(c Client) Client {
	status := ClientStatusActive
	if c.Status == ClientStatusInactive {
		status = ClientStatusInactive
	}
	totalInvoices := c.TotalInvoices
	if totalInvoices < 0 {
		totalInvoices = 0
	}
	return Client{
		ID:              SanitizeText(c.ID, 50),
		Name:            SanitizePersonName(c.Name),
		Company:         SanitizeCompanyName(c.Company),
		Email:           SanitizeEmail(c.Email),
		Phone:           SanitizePhone(c.Phone),
		Address:         SanitizeAddress(c.Address),
		City:            SanitizeText(c.City, 100),
		Country:         SanitizeText(c.Country, 100),
		TaxID:           SanitizeText(c.TaxID, 50),
		TotalInvoices:   totalInvoices,
		TotalSpent:      ClampPrice(c.TotalSpent, decimal.Zero, DefaultMaxPrice),
		Status:          status,
		CreatedDate:     SanitizeDate(c.CreatedDate),
		LastInvoiceDate: SanitizeDate(c.LastInvoiceDate),
		Notes:           SanitizeText(c.Notes, 1000),
	}
}
