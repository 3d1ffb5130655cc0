package core

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Field-level sanitizers. Every function here is pure and total: malformed
// input degrades to an empty string, zero, or a safe default — never an error.
// Use these on every untrusted value before it reaches the store or a renderer.

const (
	// DefaultTextLimit is the length cap applied when a caller passes a
	// non-positive max to SanitizeText.
	DefaultTextLimit = 500

	maxEmailLen    = 254
	maxPhoneLen    = 20
	maxURLLen      = 2048
	maxFileNameLen = 255
)

// DefaultMaxPrice is the upper clamp bound for monetary values.
var DefaultMaxPrice = decimal.RequireFromString("999999999.99")

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	htmlTagRe     = regexp.MustCompile(`<[^>]*>`)
	jsSchemeRe    = regexp.MustCompile(`(?i)javascript:`)
	dataHTMLRe    = regexp.MustCompile(`(?i)data:text/html`)
	// Inline event handlers, quoted and unquoted forms.
	eventAttrQuotedRe = regexp.MustCompile(`(?i)on\w+\s*=\s*["'][^"']*["']`)
	eventAttrBareRe   = regexp.MustCompile(`(?i)on\w+\s*=\s*[^\s>]*`)
	whitespaceRe      = regexp.MustCompile(`\s+`)

	emailRe     = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	httpPrefix  = regexp.MustCompile(`(?i)^https?://`)
	badSchemeRe = regexp.MustCompile(`(?i)javascript:|data:`)

	personNameFilterRe  = regexp.MustCompile(`[^a-zA-Z .'-]`)
	companyNameFilterRe = regexp.MustCompile(`[^a-zA-Z0-9 .&,-]`)
	addressFilterRe     = regexp.MustCompile(`[^a-zA-Z0-9 .,#/-]`)
	docNumberFilterRe   = regexp.MustCompile(`[^A-Z0-9/-]`)
	fileNameFilterRe    = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	multiDotRe          = regexp.MustCompile(`\.{2,}`)
)

// SanitizeText strips markup and dangerous fragments from free text, collapses
// whitespace runs to a single space, trims, and truncates to maxLength runes.
// Script blocks are removed with their contents before plain tag stripping so
// their payload cannot survive as text; truncation is always last.
//
// Stripping repeats until a fixed point: removing a fragment can splice its
// neighbours into a new dangerous fragment ("javajavascript:script:" loses the
// inner scheme and becomes "javascript:"), so a single pass is not enough.
// Every pass shortens the string, so the loop terminates.
func SanitizeText(input string, maxLength int) string {
	if input == "" {
		return ""
	}
	if maxLength <= 0 {
		maxLength = DefaultTextLimit
	}

	s := input
	for {
		prev := s
		s = scriptBlockRe.ReplaceAllString(s, "")
		s = htmlTagRe.ReplaceAllString(s, "")
		s = jsSchemeRe.ReplaceAllString(s, "")
		s = eventAttrQuotedRe.ReplaceAllString(s, "")
		s = eventAttrBareRe.ReplaceAllString(s, "")
		s = dataHTMLRe.ReplaceAllString(s, "")
		if s == prev {
			break
		}
	}
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return truncateRunes(s, maxLength)
}

// SanitizeEmail lowercases and trims the input and returns it only if it is a
// plausible local@domain.tld address with no consecutive, leading, or trailing
// dots. Anything else becomes the empty string.
func SanitizeEmail(input string) string {
	email := strings.ToLower(strings.TrimSpace(input))
	if !emailRe.MatchString(email) {
		return ""
	}
	if strings.Contains(email, "..") || strings.HasPrefix(email, ".") || strings.HasSuffix(email, ".") {
		return ""
	}
	return truncateRunes(email, maxEmailLen)
}

// IsValidEmail reports whether input survives SanitizeEmail.
func IsValidEmail(input string) bool {
	return SanitizeEmail(input) != ""
}

// SanitizePhone keeps digits, spaces, +, -, and parentheses, then rejects the
// value entirely unless it contains 7–15 digits.
func SanitizePhone(input string) string {
	phone := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '+' || r == '-' || r == '(' || r == ')':
			return r
		}
		return -1
	}, input)
	phone = strings.TrimSpace(phone)

	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 7 || digits > 15 {
		return ""
	}
	return truncateRunes(phone, maxPhoneLen)
}

// IsValidPhone reports whether input survives SanitizePhone.
func IsValidPhone(input string) bool {
	return SanitizePhone(input) != ""
}

// SanitizePrice parses input as a decimal, clamps it to [min, max], and rounds
// half-away-from-zero on the cent boundary. Unparseable input yields zero.
func SanitizePrice(input string, min, max decimal.Decimal) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return decimal.Zero
	}
	return ClampPrice(v, min, max)
}

// ClampPrice is the typed-value form of SanitizePrice: clamp to [min, max] and
// round to 2 decimal places.
func ClampPrice(v, min, max decimal.Decimal) decimal.Decimal {
	if v.LessThan(min) {
		v = min
	}
	if v.GreaterThan(max) {
		v = max
	}
	return v.Round(2)
}

// ClampNumber clamps a non-monetary numeric value (tax rates, quantities) to
// [min, max] without cent rounding.
func ClampNumber(v, min, max decimal.Decimal) decimal.Decimal {
	if v.LessThan(min) {
		return min
	}
	if v.GreaterThan(max) {
		return max
	}
	return v
}

// SanitizeURL returns the canonical form of an http(s) URL, or the empty
// string when the input is missing a scheme, smuggles javascript:/data:, or
// does not parse.
func SanitizeURL(input string) string {
	raw := strings.TrimSpace(input)
	if !httpPrefix.MatchString(raw) {
		return ""
	}
	if badSchemeRe.MatchString(raw) {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return truncateRunes(parsed.String(), maxURLLen)
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// SanitizeDate returns the ISO date-only component (YYYY-MM-DD) of any
// parseable date string, else the empty string.
func SanitizeDate(input string) string {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// SanitizePersonName allows letters, spaces, dots, hyphens, and apostrophes.
func SanitizePersonName(input string) string {
	return personNameFilterRe.ReplaceAllString(SanitizeText(input, 100), "")
}

// SanitizeCompanyName allows letters, digits, spaces, and . - & , punctuation.
func SanitizeCompanyName(input string) string {
	return companyNameFilterRe.ReplaceAllString(SanitizeText(input, 150), "")
}

// SanitizeAddress allows letters, digits, spaces, and . , - # / punctuation.
func SanitizeAddress(input string) string {
	return addressFilterRe.ReplaceAllString(SanitizeText(input, 300), "")
}

// SanitizeDocumentNumber uppercases and keeps alphanumerics, hyphens, and
// slashes, capped at 50 characters.
func SanitizeDocumentNumber(input string) string {
	s := strings.ToUpper(input)
	s = docNumberFilterRe.ReplaceAllString(s, "")
	return truncateRunes(s, 50)
}

// SanitizeFileName replaces unsafe filename characters with underscores and
// collapses dot runs, capped at 255 characters.
func SanitizeFileName(input string) string {
	s := fileNameFilterRe.ReplaceAllString(input, "_")
	s = multiDotRe.ReplaceAllString(s, ".")
	return truncateRunes(s, maxFileNameLen)
}

// DefaultCurrency is the fallback ISO code when the input is not in the
// allow-list.
const DefaultCurrency = "GHS"

var validCurrencies = map[string]bool{
	"GHS": true, "USD": true, "EUR": true, "GBP": true, "NGN": true,
	"ZAR": true, "KES": true, "INR": true, "JPY": true, "AUD": true,
}

// SanitizeCurrency canonicalizes a currency code against a fixed allow-list of
// ten ISO codes, falling back to DefaultCurrency. The legacy "GHC" spelling is
// accepted as an alias for GHS.
func SanitizeCurrency(input string) string {
	code := strings.ToUpper(strings.TrimSpace(input))
	if code == "GHC" {
		code = "GHS"
	}
	if validCurrencies[code] {
		return code
	}
	return DefaultCurrency
}

// PaymentMethods is the canonical payment method list, matched
// case-insensitively by SanitizePaymentMethod.
var PaymentMethods = []string{
	"Cash", "Mobile Money", "Bank Transfer", "Card", "Cheque", "PayPal", "Stripe", "Paystack",
}

// SanitizePaymentMethod canonicalizes a known payment method; unknown values
// pass through text sanitization unchanged.
func SanitizePaymentMethod(input string) string {
	method := SanitizeText(input, 50)
	for _, m := range PaymentMethods {
		if strings.EqualFold(m, method) {
			return m
		}
	}
	return method
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
