package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8.
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// FormatMoney renders an amount with thousands separators: 85000 → "85,000".
func FormatMoney(amount float64) string {
	n := int64(math.Round(amount))
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		s = s + "," + strings.Join(parts, ",")
	}
	if neg {
		return "-" + s
	}
	return s
}

// JoinLocation renders "City, State" falling back through state → country,
// or just the country when no city is known.
func JoinLocation(city, state, country string) string {
	if city == "" {
		return country
	}
	region := state
	if region == "" {
		region = country
	}
	if region == "" {
		return city
	}
	return city + ", " + region
}

// NormCountry lowercases a country code, defaulting to "us".
func NormCountry(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "us"
	}
	return code
}
