package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthNames lists Indonesian month names in calendar order.
var monthNames = []string{
	"januari", "februari", "maret", "april", "mei", "juni",
	"juli", "agustus", "september", "oktober", "november", "desember",
}

var (
	yearRe    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	dmyRe     = regexp.MustCompile(`\b(\d{1,2})[/\-.](\d{1,2})[/\-.]((?:19|20)\d{2})\b`)
	isoDateRe = regexp.MustCompile(`\b((?:19|20)\d{2})-(\d{1,2})-(\d{1,2})\b`)
	numberRe  = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// Excel serial day 0 is 1899-12-30 in the 1900 date system.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// MonthFromText finds an Indonesian month name as a case-insensitive
// substring and returns its 1-based number.
func MonthFromText(text string) (int, bool) {
	lower := strings.ToLower(text)
	for i, name := range monthNames {
		if strings.Contains(lower, name) {
			return i + 1, true
		}
	}
	return 0, false
}

// YearFromText finds the first 4-digit 19xx/20xx token.
func YearFromText(text string) (int, bool) {
	m := yearRe.FindString(text)
	if m == "" {
		return 0, false
	}
	y, _ := strconv.Atoi(m)
	return y, true
}

// ParseDateCell interprets one raw cell as a full calendar date. Accepts
// Excel date serials in the plausible range 20000-60000 (raw values of
// date-typed cells), DD/MM/YYYY-like strings, and ISO dates.
func ParseDateCell(s string) (year, month, day int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, 0, false
	}

	if numberRe.MatchString(s) {
		serial, err := strconv.ParseFloat(s, 64)
		if err == nil && serial >= 20000 && serial <= 60000 {
			t := excelEpoch.AddDate(0, 0, int(serial))
			return t.Year(), int(t.Month()), t.Day(), true
		}
		return 0, 0, 0, false
	}

	if m := dmyRe.FindStringSubmatch(s); m != nil {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
		if validDate(year, month, day) {
			return year, month, day, true
		}
		return 0, 0, 0, false
	}

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
		if validDate(year, month, day) {
			return year, month, day, true
		}
	}

	return 0, 0, 0, false
}

func validDate(year, month, day int) bool {
	if year < 1900 || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	// reject days that roll over, e.g. 30 February
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day
}

// DetectMonthYear infers the reporting (month, year) for one worksheet.
// Precedence: sheet name, then header cell text, then embedded dates. Sheet
// and file metadata is curated, so it is trusted over statistical scanning of
// cell contents. Month defaults to 1 when nothing matches; year 0 means
// undetected, callers fall back to the filename year or a configured default.
func DetectMonthYear(grid Grid, sheetName string) (month, year int) {
	// 1. sheet name
	if m, ok := MonthFromText(sheetName); ok {
		month = m
		if y, ok := YearFromText(sheetName); ok {
			year = y
		}
	}

	// 2. first 25 flattened non-empty cells
	if month == 0 || year == 0 {
		cells := flattenNonEmpty(grid, 25)
		if month == 0 {
			for _, c := range cells {
				if m, ok := MonthFromText(c); ok {
					month = m
					break
				}
			}
		}
		if year == 0 {
			for _, c := range cells {
				if y, ok := YearFromText(c); ok {
					year = y
					break
				}
			}
		}
	}

	// 3. embedded dates in the first 40 rows x 12 columns. Runs only when
	// the curated text named no month: a year-only scan would misread large
	// price cells as date serials, and the filename-year fallback is more
	// trustworthy than anything this scan could add.
	if month == 0 {
		if y, m, _, ok := firstEmbeddedDate(grid, 40, 12); ok {
			month = m
			if year == 0 {
				year = y
			}
		}
	}

	if month == 0 {
		month = 1
	}
	return month, year
}

// flattenNonEmpty collects up to limit non-empty cells in row-major order.
func flattenNonEmpty(grid Grid, limit int) []string {
	var out []string
	for _, row := range grid {
		for _, c := range row {
			if strings.TrimSpace(c) == "" {
				continue
			}
			out = append(out, c)
			if len(out) >= limit {
				return out
			}
		}
	}
	return out
}

func firstEmbeddedDate(grid Grid, maxRows, maxCols int) (year, month, day int, ok bool) {
	for r := 0; r < len(grid) && r < maxRows; r++ {
		for c := 0; c < len(grid[r]) && c < maxCols; c++ {
			if y, m, d, found := ParseDateCell(grid[r][c]); found {
				return y, m, d, true
			}
		}
	}
	return 0, 0, 0, false
}
