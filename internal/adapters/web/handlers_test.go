package web_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"invoicegen/internal/adapters/web"
	"invoicegen/internal/app"
	"invoicegen/internal/core"
	"invoicegen/internal/pdf"
	"invoicegen/internal/store"
)

const testSecret = "test-secret"

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	repo := store.NewMemory()
	t.Cleanup(func() { repo.Close() })
	svc := app.NewService(repo, nil)
	renderer := pdf.NewRenderer(pdf.Options{})
	return web.NewHandler(svc, renderer, nil, testSecret)
}

// loginCookie performs a demo login and returns the auth cookie.
func loginCookie(t *testing.T, h http.Handler) *http.Cookie {
	t.Helper()
	body := `{"email":"demo@free.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", rr.Code, rr.Body.String())
	}
	for _, c := range rr.Result().Cookies() {
		if c.Name == "auth_token" {
			return c
		}
	}
	t.Fatal("no auth_token cookie set")
	return nil
}

func doJSON(t *testing.T, h http.Handler, cookie *http.Cookie, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rr.Body.String())
	}
}

func invoiceBody() map[string]any {
	return map[string]any{
		"client_name":  "Ama Mensah",
		"client_email": "ama@example.com",
		"issue_date":   "2025-03-10",
		"due_date":     "2025-04-09",
		"items": []map[string]any{
			{"name": "Consulting", "qty": "2", "price": "10"},
		},
		"tax_rate": "15",
		"discount": map[string]any{"kind": "percent", "value": "10"},
		"currency": "GHS",
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, nil, http.MethodGet, "/api/health", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp struct {
		Status string `json:"status"`
	}
	decodeBody(t, rr, &resp)
	if resp.Status != "ok" {
		t.Errorf("status = %q", resp.Status)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestAuth(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, nil, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "demo@free.com", "password": "wrong"})
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("bad password status = %d, want 401", rr.Code)
	}

	cookie := loginCookie(t, h)

	rr = doJSON(t, h, cookie, http.MethodGet, "/api/auth/me", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("me status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var me app.UserResult
	decodeBody(t, rr, &me)
	if me.User.Email != "demo@free.com" || me.User.Plan != core.PlanFree {
		t.Errorf("me = %+v", me.User)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	h := newTestHandler(t)

	for _, path := range []string{"/api/clients", "/api/invoices", "/api/receipts", "/api/stats"} {
		rr := doJSON(t, h, nil, http.MethodGet, path, nil)
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without cookie = %d, want 401", path, rr.Code)
		}
	}
}

func TestClientCRUD(t *testing.T) {
	h := newTestHandler(t)
	cookie := loginCookie(t, h)

	rr := doJSON(t, h, cookie, http.MethodPost, "/api/clients",
		map[string]string{"name": "Ama Mensah", "phone": "0244123456"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var client core.Client
	decodeBody(t, rr, &client)
	if client.ID == "" || client.Status != core.ClientStatusActive {
		t.Errorf("client = %+v", client)
	}

	rr = doJSON(t, h, cookie, http.MethodGet, "/api/clients/"+client.ID, nil)
	if rr.Code != http.StatusOK {
		t.Errorf("get status = %d", rr.Code)
	}

	rr = doJSON(t, h, cookie, http.MethodPut, "/api/clients/"+client.ID,
		map[string]string{"name": "Ama Serwaa Mensah", "phone": "0244123456"})
	if rr.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", rr.Code, rr.Body.String())
	}
	decodeBody(t, rr, &client)
	if client.Name != "Ama Serwaa Mensah" {
		t.Errorf("updated name = %q", client.Name)
	}

	rr = doJSON(t, h, cookie, http.MethodDelete, "/api/clients/"+client.ID, nil)
	if rr.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", rr.Code)
	}

	rr = doJSON(t, h, cookie, http.MethodGet, "/api/clients/"+client.ID, nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", rr.Code)
	}
}

func TestInvoiceLifecycle(t *testing.T) {
	h := newTestHandler(t)
	cookie := loginCookie(t, h)

	rr := doJSON(t, h, cookie, http.MethodPost, "/api/invoices", invoiceBody())
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var inv core.Invoice
	decodeBody(t, rr, &inv)
	if inv.Number != "INV-2025-001" {
		t.Errorf("number = %q", inv.Number)
	}
	if got := inv.Totals.Total.String(); got != "21" {
		t.Errorf("total = %s, want 21", got)
	}

	rr = doJSON(t, h, cookie, http.MethodPatch, "/api/invoices/"+inv.ID+"/status",
		map[string]string{"status": "sent"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status patch = %d, body = %s", rr.Code, rr.Body.String())
	}
	decodeBody(t, rr, &inv)
	if inv.Status != core.InvoiceStatusSent {
		t.Errorf("status = %q", inv.Status)
	}

	rr = doJSON(t, h, cookie, http.MethodPatch, "/api/invoices/"+inv.ID+"/status",
		map[string]string{"status": "cancelled"})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("unknown status patch = %d, want 400", rr.Code)
	}

	rr = doJSON(t, h, cookie, http.MethodGet, "/api/invoices?status=sent", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list = %d", rr.Code)
	}
	var invoices []core.Invoice
	decodeBody(t, rr, &invoices)
	if len(invoices) != 1 {
		t.Errorf("filtered list has %d invoices, want 1", len(invoices))
	}

	rr = doJSON(t, h, cookie, http.MethodDelete, "/api/invoices/"+inv.ID, nil)
	if rr.Code != http.StatusNoContent {
		t.Errorf("delete = %d", rr.Code)
	}
}

func TestCreateInvoice_ValidationResponse(t *testing.T) {
	h := newTestHandler(t)
	cookie := loginCookie(t, h)

	body := invoiceBody()
	body["client_name"] = ""
	body["items"] = []map[string]any{}

	rr := doJSON(t, h, cookie, http.MethodPost, "/api/invoices", body)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body = %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Code   string   `json:"code"`
		Errors []string `json:"errors"`
	}
	decodeBody(t, rr, &resp)
	if resp.Code != "VALIDATION_FAILED" || len(resp.Errors) < 2 {
		t.Errorf("response = %+v", resp)
	}
}

func TestReceiptMarksInvoicePaid(t *testing.T) {
	h := newTestHandler(t)
	cookie := loginCookie(t, h)

	rr := doJSON(t, h, cookie, http.MethodPost, "/api/invoices", invoiceBody())
	if rr.Code != http.StatusCreated {
		t.Fatalf("create invoice = %d", rr.Code)
	}
	var inv core.Invoice
	decodeBody(t, rr, &inv)

	rr = doJSON(t, h, cookie, http.MethodPost, "/api/receipts", map[string]any{
		"invoice_id":     inv.ID,
		"customer_name":  "Ama Mensah",
		"customer_phone": "0244123456",
		"date":           "2025-03-10",
		"items": []map[string]any{
			{"name": "Consulting", "qty": "1", "price": "21"},
		},
		"payment_method": "Mobile Money",
		"currency":       "GHS",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create receipt = %d, body = %s", rr.Code, rr.Body.String())
	}
	var rec core.Receipt
	decodeBody(t, rr, &rec)
	if rec.Status != core.InvoiceStatusPaid {
		t.Errorf("receipt status = %q", rec.Status)
	}

	rr = doJSON(t, h, cookie, http.MethodGet, "/api/invoices/"+inv.ID, nil)
	decodeBody(t, rr, &inv)
	if inv.Status != core.InvoiceStatusPaid {
		t.Errorf("linked invoice status = %q, want paid", inv.Status)
	}
}

func TestPreviewTotals(t *testing.T) {
	h := newTestHandler(t)
	cookie := loginCookie(t, h)

	rr := doJSON(t, h, cookie, http.MethodPost, "/api/totals/preview", map[string]any{
		"items": []map[string]any{
			{"name": "A", "qty": "2", "price": "10"},
			{"name": "B", "qty": "1", "price": "5"},
		},
		"tax_rate": "15",
		"discount": map[string]any{"kind": "percent", "value": "10"},
		"currency": "USD",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var totals core.TotalsResult
	decodeBody(t, rr, &totals)
	if got := totals.Total.String(); got != "26.25" {
		t.Errorf("total = %s, want 26.25", got)
	}
}

func TestStats(t *testing.T) {
	h := newTestHandler(t)
	cookie := loginCookie(t, h)

	if rr := doJSON(t, h, cookie, http.MethodPost, "/api/invoices", invoiceBody()); rr.Code != http.StatusCreated {
		t.Fatalf("create invoice = %d", rr.Code)
	}

	rr := doJSON(t, h, cookie, http.MethodGet, "/api/stats", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var stats app.Statistics
	decodeBody(t, rr, &stats)
	if stats.Invoices.Total != 1 || stats.Invoices.Draft != 1 {
		t.Errorf("stats = %+v", stats.Invoices)
	}
}

func TestBadJSONBody(t *testing.T) {
	h := newTestHandler(t)
	cookie := loginCookie(t, h)

	req := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewBufferString("{not json"))
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}
