package engine

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{8500, "8,500"},
		{85000, "85,000"},
		{120000, "120,000"},
		{1250000, "1,250,000"},
		{85000.7, "85,001"},
		{-85000, "-85,000"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoinLocation(t *testing.T) {
	tests := []struct {
		city, state, country string
		want                 string
	}{
		{"Austin", "TX", "US", "Austin, TX"},
		{"Austin", "", "US", "Austin, US"},
		{"", "", "US", "US"},
		{"", "TX", "US", "US"},
		{"Austin", "", "", "Austin"},
	}
	for _, tt := range tests {
		if got := JoinLocation(tt.city, tt.state, tt.country); got != tt.want {
			t.Errorf("JoinLocation(%q, %q, %q) = %q, want %q", tt.city, tt.state, tt.country, got, tt.want)
		}
	}
}

func TestNormCountry(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"US", "us"},
		{" Gb ", "gb"},
		{"", "us"},
		{"de", "de"},
	}
	for _, tt := range tests {
		if got := NormCountry(tt.in); got != tt.want {
			t.Errorf("NormCountry(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Run("short string untouched", func(t *testing.T) {
		if got := TruncateRunes("hello", 10, "..."); got != "hello" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("long string truncated with suffix", func(t *testing.T) {
		got := TruncateRunes("abcdefghij", 5, "...")
		if len([]rune(got)) > 5+3 {
			t.Errorf("truncated string too long: %q", got)
		}
	})
}
