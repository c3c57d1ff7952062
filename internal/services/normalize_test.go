package services

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-07-15", time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024/07/15", time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC), true},
		{"07/15/2024", time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC), true},
		{"Jul 15, 2024", time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC), true},
		{"15 July 2024", time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC), true},
		{"15 July", time.Date(time.Now().Year(), time.July, 15, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"not a date", time.Time{}, false},
		{"32/45/2024", time.Time{}, false},
	}

	for _, tc := range cases {
		got, ok := parseDate(tc.in)
		if ok != tc.ok {
			t.Fatalf("parseDate(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
		if ok && !got.Equal(tc.want) {
			t.Fatalf("parseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$1,234.56", 1234.56, true},
		{"-86.50", -86.5, true},
		{"USD 42", 42, true},
		{"(12)", 12, true}, // parentheses are stripped, not treated as negative
		{"abc", 0, false},
		{"", 0, false},
		{"N/A", 0, false},
		{"--", 0, false},
	}

	for _, tc := range cases {
		got, ok := parseAmount(tc.in)
		if ok != tc.ok {
			t.Fatalf("parseAmount(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("parseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestResolveType(t *testing.T) {
	cases := []struct {
		explicit string
		amount   float64
		want     string
	}{
		{"", -50, "debit"},
		{"", 50, "credit"},
		{"", 0, "credit"},
		{"debit", 50, "debit"},
		{"credit", -50, "credit"},
		{"expense", 50, "debit"},
		{"Income", -50, "credit"},
		{"savings", -50, "debit"}, // unrecognized, falls back to sign
	}

	for _, tc := range cases {
		if got := resolveType(tc.explicit, tc.amount); got != tc.want {
			t.Fatalf("resolveType(%q, %v) = %q, want %q", tc.explicit, tc.amount, got, tc.want)
		}
	}
}
