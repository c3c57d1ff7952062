package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order. Yearless layouts come last and
// resolve to the current year.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

var yearlessLayouts = []string{
	"2 January",
	"January 2",
	"2 Jan",
	"Jan 2",
}

// parseDate resolves a raw date cell to a calendar instant. Returns
// false for absent or unparseable values; the row is then skipped.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	for _, layout := range yearlessLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.AddDate(time.Now().Year(), 0, 0), true
		}
	}
	return time.Time{}, false
}

// parseAmount strips everything that is not a digit, comma, period or
// minus sign, drops thousands separators and parses the remainder as a
// decimal. Sign is preserved.
func parseAmount(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}

	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	normalized := strings.ReplaceAll(b.String(), ",", "")
	if normalized == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// resolveType picks the canonical vocabulary (debit/credit). Explicit
// cells in the income/expense vocabulary are translated; anything
// unrecognized falls back to the sign-inferred default.
func resolveType(explicit string, amount float64) string {
	switch strings.ToLower(strings.TrimSpace(explicit)) {
	case "debit", "expense":
		return "debit"
	case "credit", "income":
		return "credit"
	}
	if amount < 0 {
		return "debit"
	}
	return "credit"
}
