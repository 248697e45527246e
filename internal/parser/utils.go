package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonDigitRe   = regexp.MustCompile(`\D`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// RowText joins all cells of a row into one whitespace-collapsed string.
// Used only for keyword-based row classification, never for data extraction.
func RowText(cells []string) string {
	joined := strings.Join(cells, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(joined, " "))
}

// ToInt strips every non-digit character and parses the remaining digit run.
// This is deliberately lossy: "Rp 16.400" becomes 16400 (digit concatenation,
// not 16.4 scaled) and a minus sign is destroyed ("-5" becomes 5). Existing
// data depends on exactly this behavior, so keep it.
func ToInt(s string) (int, bool) {
	digits := nonDigitRe.ReplaceAllString(s, "")
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		// digit run too long for int
		return 0, false
	}
	return n, true
}

// UnitFromText maps free unit text to a canonical unit. Anything that does
// not mention liter is treated as kg.
func UnitFromText(s string) string {
	if strings.Contains(strings.ToLower(s), "liter") {
		return "liter"
	}
	return "kg"
}

// DefaultUnitFor returns the unit for a commodity when no unit row exists.
func DefaultUnitFor(commodity string) string {
	if strings.Contains(strings.ToLower(commodity), "minyak") {
		return "liter"
	}
	return "kg"
}

// ContainsAny reports whether text contains at least one of the keywords.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// cell returns grid[row][col] or "" when out of range.
func cell(grid Grid, row, col int) string {
	if row < 0 || row >= len(grid) {
		return ""
	}
	r := grid[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
