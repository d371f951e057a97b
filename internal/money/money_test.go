package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParsePositiveAcceptsValidAmounts(t *testing.T) {
	cases := map[string]string{
		"500":      "500",
		"0.01":     "0.01",
		" 250.50 ": "250.5",
		"12450.75": "12450.75",
		"10.125":   "10.125",
		"0.001":    "0.001",
	}
	for input, want := range cases {
		amount, err := ParsePositive(input)
		if err != nil {
			t.Fatalf("ParsePositive(%q) failed: %v", input, err)
		}
		if !amount.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("ParsePositive(%q) = %s, want %s", input, amount, want)
		}
	}
}

func TestParsePositiveRejectsInvalidAmounts(t *testing.T) {
	for _, input := range []string{"", "   ", "0", "-1", "abc", "1e", "--2"} {
		if _, err := ParsePositive(input); err != ErrInvalidAmount {
			t.Fatalf("ParsePositive(%q): expected ErrInvalidAmount, got %v", input, err)
		}
	}
}

func TestFormatUsesTwoDecimalPlaces(t *testing.T) {
	if got := Format(decimal.RequireFromString("500")); got != "500.00" {
		t.Fatalf("Format(500) = %q", got)
	}
	if got := Format(decimal.RequireFromString("11950.75")); got != "11950.75" {
		t.Fatalf("Format(11950.75) = %q", got)
	}
	if got := Format(decimal.RequireFromString("10.125")); got != "10.13" {
		t.Fatalf("Format(10.125) = %q", got)
	}
}
