package core

import "strings"

// ValidationResult is the structured outcome of a record validator: a flag and
// an itemized, user-facing error list. Validators never raise and never
// notify — reporting a failed result to the user is the caller's concern (see
// ReportValidation).
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func newValidationResult(errors []string) ValidationResult {
	return ValidationResult{Valid: len(errors) == 0, Errors: errors}
}

// ValidateInvoice checks an invoice against the fixed business rule list.
// It assumes the record has already been sanitized.
func ValidateInvoice(inv Invoice) ValidationResult {
	var errors []string

	if strings.TrimSpace(inv.ClientName) == "" {
		errors = append(errors, "Client name is required")
	}
	if inv.ClientEmail == "" && inv.ClientPhone == "" {
		errors = append(errors, "Client email or phone is required")
	}
	if inv.ClientEmail != "" && !IsValidEmail(inv.ClientEmail) {
		errors = append(errors, "Invalid email format")
	}
	if inv.ClientPhone != "" && !IsValidPhone(inv.ClientPhone) {
		errors = append(errors, "Invalid phone format")
	}
	if SanitizeDate(inv.IssueDate) == "" {
		errors = append(errors, "Valid issue date is required")
	}
	if SanitizeDate(inv.DueDate) == "" {
		errors = append(errors, "Valid due date is required")
	}
	if len(inv.Items) == 0 {
		errors = append(errors, "At least one item is required")
	}
	if !inv.Totals.Total.IsPositive() {
		errors = append(errors, "Total must be greater than 0")
	}

	return newValidationResult(errors)
}

// ValidateReceipt checks a receipt against the fixed business rule list.
// Receipts require a phone contact and a payment method.
func ValidateReceipt(rec Receipt) ValidationResult {
	var errors []string

	if strings.TrimSpace(rec.CustomerName) == "" {
		errors = append(errors, "Customer name is required")
	}
	if rec.CustomerPhone == "" {
		errors = append(errors, "Customer phone is required")
	}
	if rec.CustomerPhone != "" && !IsValidPhone(rec.CustomerPhone) {
		errors = append(errors, "Invalid phone format")
	}
	if SanitizeDate(rec.Date) == "" {
		errors = append(errors, "Valid date is required")
	}
	if strings.TrimSpace(rec.PaymentMethod) == "" {
		errors = append(errors, "Payment method is required")
	}
	if len(rec.Items) == 0 {
		errors = append(errors, "At least one item is required")
	}
	if !rec.Totals.Total.IsPositive() {
		errors = append(errors, "Total must be greater than 0")
	}

	return newValidationResult(errors)
}

// ValidateClient checks a client record: a name plus at least one valid way to
// reach them.
func ValidateClient(c Client) ValidationResult {
	var errors []string

	if strings.TrimSpace(c.Name) == "" {
		errors = append(errors, "Client name is required")
	}
	if c.Email == "" && c.Phone == "" {
		errors = append(errors, "Email or phone is required")
	}
	if c.Email != "" && !IsValidEmail(c.Email) {
		errors = append(errors, "Invalid email format")
	}
	if c.Phone != "" && !IsValidPhone(c.Phone) {
		errors = append(errors, "Invalid phone format")
	}

	return newValidationResult(errors)
}
