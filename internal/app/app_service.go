package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"invoicegen/internal/core"
	"invoicegen/internal/store"
)

const (
	dateLayout = "2006-01-02"

	// DefaultDueDays is added to the issue date when no due date is supplied.
	DefaultDueDays = 30
)

type appService struct {
	repo     store.Repository
	notifier core.Notifier
	now      func() time.Time
}

// NewService wires the application service. notifier may be nil, in which case
// notifications are discarded.
func NewService(repo store.Repository, notifier core.Notifier) ApplicationService {
	return NewServiceWithClock(repo, notifier, time.Now)
}

// NewServiceWithClock is NewService with an injectable clock, for tests that
// need deterministic dates and document numbers.
func NewServiceWithClock(repo store.Repository, notifier core.Notifier, now func() time.Time) ApplicationService {
	if notifier == nil {
		notifier = core.NopNotifier
	}
	if now == nil {
		now = time.Now
	}
	return &appService{
		repo:     repo,
		notifier: notifier,
		now:      now,
	}
}

func toLineItems(reqs []LineItemRequest) []core.LineItem {
	items := make([]core.LineItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, core.LineItem{
			Name:        r.Name,
			Description: r.Description,
			Quantity:    r.Qty,
			UnitPrice:   r.Price,
			Unit:        r.Unit,
		})
	}
	return items
}

func toDiscount(r DiscountRequest) core.DiscountSpec {
	kind := core.DiscountPercent
	if r.Kind == string(core.DiscountFlat) {
		kind = core.DiscountFlat
	}
	return core.DiscountSpec{Kind: kind, Value: r.Value}
}

// ── Clients ────────────────────────────────────────────────────────────────

func (s *appService) CreateClient(ctx context.Context, req ClientRequest) (*core.Client, error) {
	c := core.SanitizeClient(core.Client{
		ID:      "CLI-" + uuid.NewString(),
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
		TaxID:   req.TaxID,
		Notes:   req.Notes,
		Status:  core.ClientStatusActive,
	})
	c.CreatedDate = s.now().UTC().Format(dateLayout)
	c.TotalSpent = decimal.Zero

	if res := core.ValidateClient(c); !res.Valid {
		core.ReportValidation(s.notifier, res)
		return nil, &ValidationError{Result: res}
	}

	if err := s.repo.PutClient(c); err != nil {
		return nil, fmt.Errorf("persist client: %w", err)
	}
	s.notifier.Notify(core.SeveritySuccess, "Client "+c.Name+" created")
	return &c, nil
}

func (s *appService) ListClients(ctx context.Context) ([]core.Client, error) {
	clients, err := s.repo.ListClients()
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
	return clients, nil
}

func (s *appService) GetClient(ctx context.Context, id string) (*core.Client, error) {
	return s.repo.GetClient(id)
}

func (s *appService) UpdateClient(ctx context.Context, id string, req ClientRequest) (*core.Client, error) {
	existing, err := s.repo.GetClient(id)
	if err != nil {
		return nil, err
	}

	c := core.SanitizeClient(core.Client{
		ID:      existing.ID,
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
		TaxID:   req.TaxID,
		Notes:   req.Notes,
		Status:  existing.Status,
	})
	// Replacement keeps the accumulated statistics and lifecycle fields.
	c.TotalInvoices = existing.TotalInvoices
	c.TotalSpent = existing.TotalSpent
	c.CreatedDate = existing.CreatedDate
	c.LastInvoiceDate = existing.LastInvoiceDate

	if res := core.ValidateClient(c); !res.Valid {
		core.ReportValidation(s.notifier, res)
		return nil, &ValidationError{Result: res}
	}

	if err := s.repo.PutClient(c); err != nil {
		return nil, fmt.Errorf("persist client: %w", err)
	}
	return &c, nil
}

func (s *appService) DeleteClient(ctx context.Context, id string) error {
	return s.repo.DeleteClient(id)
}

// ── Invoices ───────────────────────────────────────────────────────────────

func (s *appService) CreateInvoice(ctx context.Context, req InvoiceRequest) (*core.Invoice, error) {
	inv := s.buildInvoice(req)
	inv.ID = "INV-" + uuid.NewString()

	if res := core.ValidateInvoice(inv); !res.Valid {
		core.ReportValidation(s.notifier, res)
		return nil, &ValidationError{Result: res}
	}

	numbers, err := s.invoiceNumbers()
	if err != nil {
		return nil, err
	}
	inv.Number = core.NextDocumentNumber(core.InvoiceNumberPrefix, s.documentYear(inv.IssueDate), numbers)

	now := s.now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if err := s.repo.PutInvoice(inv); err != nil {
		return nil, fmt.Errorf("persist invoice: %w", err)
	}

	s.bumpClientInvoiceStats(inv.ClientID, inv.IssueDate)
	s.notifier.Notify(core.SeveritySuccess, "Invoice "+inv.Number+" created")
	return &inv, nil
}

// buildInvoice sanitizes the request, applies date defaults, and recomputes
// the totals snapshot from scratch.
func (s *appService) buildInvoice(req InvoiceRequest) core.Invoice {
	inv := core.SanitizeInvoice(core.Invoice{
		ClientID:       req.ClientID,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientPhone:    req.ClientPhone,
		CompanyName:    req.CompanyName,
		CompanyContact: req.CompanyContact,
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		Items:          toLineItems(req.Items),
		TaxRate:        req.TaxRate,
		Discount:       toDiscount(req.Discount),
		Status:         core.InvoiceStatus(req.Status),
		PaymentMethod:  req.PaymentMethod,
		Currency:       req.Currency,
		Notes:          req.Notes,
	})

	if inv.IssueDate == "" {
		inv.IssueDate = s.now().UTC().Format(dateLayout)
	}
	if inv.DueDate == "" {
		if issue, err := time.Parse(dateLayout, inv.IssueDate); err == nil {
			inv.DueDate = issue.AddDate(0, 0, DefaultDueDays).Format(dateLayout)
		}
	}

	inv.Totals = core.CalculateTotals(inv.Items, inv.TaxRate, inv.Discount, inv.Currency)
	return inv
}

func (s *appService) invoiceNumbers() ([]string, error) {
	invoices, err := s.repo.ListInvoices()
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	numbers := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		numbers = append(numbers, inv.Number)
	}
	return numbers, nil
}

func (s *appService) documentYear(isoDate string) int {
	if t, err := time.Parse(dateLayout, isoDate); err == nil {
		return t.Year()
	}
	return s.now().UTC().Year()
}

// bumpClientInvoiceStats increments the client's invoice counter. A missing or
// unknown client ID is not an error: invoices may reference ad-hoc clients.
func (s *appService) bumpClientInvoiceStats(clientID, issueDate string) {
	if clientID == "" {
		return
	}
	client, err := s.repo.GetClient(clientID)
	if err != nil {
		return
	}
	client.TotalInvoices++
	client.LastInvoiceDate = issueDate
	if err := s.repo.PutClient(*client); err != nil {
		s.notifier.Notify(core.SeverityWarning, "Could not update client statistics")
	}
}

func (s *appService) ListInvoices(ctx context.Context, status string) ([]core.Invoice, error) {
	invoices, err := s.repo.ListInvoices()
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	if status != "" {
		filtered := invoices[:0]
		for _, inv := range invoices {
			if string(inv.Status) == status {
				filtered = append(filtered, inv)
			}
		}
		invoices = filtered
	}
	sort.Slice(invoices, func(i, j int) bool { return invoices[i].CreatedAt.After(invoices[j].CreatedAt) })
	return invoices, nil
}

func (s *appService) GetInvoice(ctx context.Context, id string) (*core.Invoice, error) {
	return s.repo.GetInvoice(id)
}

func (s *appService) UpdateInvoice(ctx context.Context, id string, req InvoiceRequest) (*core.Invoice, error) {
	existing, err := s.repo.GetInvoice(id)
	if err != nil {
		return nil, err
	}

	inv := s.buildInvoice(req)
	inv.ID = existing.ID
	inv.Number = existing.Number
	inv.CreatedAt = existing.CreatedAt
	inv.UpdatedAt = s.now().UTC()

	if res := core.ValidateInvoice(inv); !res.Valid {
		core.ReportValidation(s.notifier, res)
		return nil, &ValidationError{Result: res}
	}

	if err := s.repo.PutInvoice(inv); err != nil {
		return nil, fmt.Errorf("persist invoice: %w", err)
	}
	return &inv, nil
}

func (s *appService) SetInvoiceStatus(ctx context.Context, id string, status core.InvoiceStatus) (*core.Invoice, error) {
	if !core.KnownInvoiceStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	inv, err := s.repo.GetInvoice(id)
	if err != nil {
		return nil, err
	}
	inv.Status = status
	inv.UpdatedAt = s.now().UTC()
	if err := s.repo.PutInvoice(*inv); err != nil {
		return nil, fmt.Errorf("persist invoice: %w", err)
	}
	return inv, nil
}

func (s *appService) DeleteInvoice(ctx context.Context, id string) error {
	return s.repo.DeleteInvoice(id)
}

// ── Receipts ───────────────────────────────────────────────────────────────

func (s *appService) CreateReceipt(ctx context.Context, req ReceiptRequest) (*core.Receipt, error) {
	rec := core.SanitizeReceipt(core.Receipt{
		InvoiceID:      req.InvoiceID,
		CustomerID:     req.CustomerID,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		CompanyName:    req.CompanyName,
		CompanyContact: req.CompanyContact,
		Date:           req.Date,
		Items:          toLineItems(req.Items),
		TaxRate:        req.TaxRate,
		Discount:       toDiscount(req.Discount),
		PaymentMethod:  req.PaymentMethod,
		Currency:       req.Currency,
		Notes:          req.Notes,
		TransactionRef: req.TransactionRef,
		FooterNote:     req.FooterNote,
	})

	if rec.Date == "" {
		rec.Date = s.now().UTC().Format(dateLayout)
	}
	rec.Totals = core.CalculateTotals(rec.Items, rec.TaxRate, rec.Discount, rec.Currency)

	if res := core.ValidateReceipt(rec); !res.Valid {
		core.ReportValidation(s.notifier, res)
		return nil, &ValidationError{Result: res}
	}

	receipts, err := s.repo.ListReceipts()
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	numbers := make([]string, 0, len(receipts))
	for _, r := range receipts {
		numbers = append(numbers, r.Number)
	}

	rec.ID = "REC-" + uuid.NewString()
	rec.Number = core.NextDocumentNumber(core.ReceiptNumberPrefix, s.documentYear(rec.Date), numbers)

	now := s.now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := s.repo.PutReceipt(rec); err != nil {
		return nil, fmt.Errorf("persist receipt: %w", err)
	}

	s.settleLinkedInvoice(ctx, rec.InvoiceID)
	s.bumpClientSpend(rec.CustomerID, rec.Totals.Total)
	s.notifier.Notify(core.SeveritySuccess, "Receipt "+rec.Number+" created")
	return &rec, nil
}

// settleLinkedInvoice marks the referenced invoice paid. The receipt stands on
// its own if the invoice has since been deleted.
func (s *appService) settleLinkedInvoice(ctx context.Context, invoiceID string) {
	if invoiceID == "" {
		return
	}
	if _, err := s.SetInvoiceStatus(ctx, invoiceID, core.InvoiceStatusPaid); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.notifier.Notify(core.SeverityWarning, "Could not mark linked invoice as paid")
		}
	}
}

func (s *appService) bumpClientSpend(clientID string, amount decimal.Decimal) {
	if clientID == "" {
		return
	}
	client, err := s.repo.GetClient(clientID)
	if err != nil {
		return
	}
	client.TotalSpent = client.TotalSpent.Add(amount)
	if err := s.repo.PutClient(*client); err != nil {
		s.notifier.Notify(core.SeverityWarning, "Could not update client statistics")
	}
}

func (s *appService) ListReceipts(ctx context.Context) ([]core.Receipt, error) {
	receipts, err := s.repo.ListReceipts()
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	sort.Slice(receipts, func(i, j int) bool { return receipts[i].CreatedAt.After(receipts[j].CreatedAt) })
	return receipts, nil
}

func (s *appService) GetReceipt(ctx context.Context, id string) (*core.Receipt, error) {
	return s.repo.GetReceipt(id)
}

func (s *appService) DeleteReceipt(ctx context.Context, id string) error {
	return s.repo.DeleteReceipt(id)
}

// ── Totals preview, statistics, auth ───────────────────────────────────────

func (s *appService) PreviewTotals(ctx context.Context, req TotalsRequest) (*core.TotalsResult, error) {
	items := core.SanitizeLineItems(toLineItems(req.Items))
	taxRate := core.ClampNumber(req.TaxRate, decimal.Zero, decimal.NewFromInt(100))
	currency := core.SanitizeCurrency(req.Currency)

	discount := toDiscount(req.Discount)
	discount.Value = core.ClampPrice(discount.Value, decimal.Zero, core.DefaultMaxPrice)

	totals := core.CalculateTotals(items, taxRate, discount, currency)
	return &totals, nil
}

func (s *appService) GetStatistics(ctx context.Context) (*Statistics, error) {
	invoices, err := s.repo.ListInvoices()
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	receipts, err := s.repo.ListReceipts()
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	clients, err := s.repo.ListClients()
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	stats := Statistics{
		Invoices: InvoiceStats{TotalAmount: decimal.Zero, PaidAmount: decimal.Zero},
		Receipts: ReceiptStats{TotalAmount: decimal.Zero},
	}

	for _, inv := range invoices {
		stats.Invoices.Total++
		stats.Invoices.TotalAmount = stats.Invoices.TotalAmount.Add(inv.Totals.Total)
		switch inv.Status {
		case core.InvoiceStatusDraft:
			stats.Invoices.Draft++
		case core.InvoiceStatusSent:
			stats.Invoices.Sent++
		case core.InvoiceStatusPaid:
			stats.Invoices.Paid++
			stats.Invoices.PaidAmount = stats.Invoices.PaidAmount.Add(inv.Totals.Total)
		case core.InvoiceStatusOverdue:
			stats.Invoices.Overdue++
		}
	}

	for _, rec := range receipts {
		stats.Receipts.Total++
		stats.Receipts.TotalAmount = stats.Receipts.TotalAmount.Add(rec.Totals.Total)
	}

	for _, c := range clients {
		stats.Clients.Total++
		if c.Status == core.ClientStatusInactive {
			stats.Clients.Inactive++
		} else {
			stats.Clients.Active++
		}
	}

	return &stats, nil
}

func (s *appService) AuthenticateUser(ctx context.Context, email, password string) (*UserSession, error) {
	du, ok := demoUsers[core.SanitizeEmail(email)]
	if !ok || du.password != password {
		return nil, ErrInvalidCredentials
	}
	return &UserSession{
		UserID:    du.user.ID,
		Email:     du.user.Email,
		FirstName: du.user.FirstName,
		LastName:  du.user.LastName,
		Plan:      du.user.Plan,
	}, nil
}

func (s *appService) GetUser(ctx context.Context, userID string) (*UserResult, error) {
	user, ok := findDemoUserByID(userID)
	if !ok {
		return nil, ErrNotFound
	}

	invoices, err := s.repo.ListInvoices()
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	count := len(invoices)
	user.InvoiceCount = count

	return &UserResult{
		User:             *user,
		Capabilities:     user.Plan.Capabilities(),
		InvoiceCount:     count,
		CanCreateInvoice: user.Plan.CanCreateInvoice(count),
	}, nil
}
