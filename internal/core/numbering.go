package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Human-facing document numbers look like INV-2026-001: a prefix, the issue
// year, and a zero-padded per-year sequence. The next number is derived by
// scanning the existing numbers rather than from a stored counter, so the
// sequence survives deletions without a separate counter record (gaps appear
// only if the highest-numbered document is deleted).

const (
	InvoiceNumberPrefix = "INV"
	ReceiptNumberPrefix = "REC"
)

var trailingDigitsRe = regexp.MustCompile(`(\d+)$`)

// NextDocumentNumber returns the next number for the given prefix and year,
// given every document number currently in use for that entity. Only numbers
// mentioning the year participate; the next sequence value is one past the
// highest trailing integer among them.
func NextDocumentNumber(prefix string, year int, existing []string) string {
	yearStr := strconv.Itoa(year)
	last := 0
	for _, number := range existing {
		if number == "" || !strings.Contains(number, yearStr) {
			continue
		}
		m := trailingDigitsRe.FindString(number)
		if m == "" {
			continue
		}
		if n, err := strconv.Atoi(m); err == nil && n > last {
			last = n
		}
	}
	return fmt.Sprintf("%s-%d-%03d", prefix, year, last+1)
}
