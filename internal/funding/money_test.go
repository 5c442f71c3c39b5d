package funding

import "testing"

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{100, 10000},
		{19.999, 2000},
		{19.99, 1999},
		{0.005, 1},
		{25.125, 2513},
		{0, 0},
	}
	for _, tc := range cases {
		if got := MinorUnits(tc.amount); got != tc.want {
			t.Fatalf("MinorUnits(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{32000, "$32,000.00"},
		{50, "$50.00"},
		{19.99, "$19.99"},
		{1234567.5, "$1,234,567.50"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.amount); got != tc.want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
