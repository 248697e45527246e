package importer

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/parser"
)

var marketFileRe = regexp.MustCompile(`^pasar-(.+?)(?:-((?:19|20)\d{2}))?$`)

// MarketNameFromFilename derives the default market name from the
// pasar-<words>-<year>.xlsx convention: hyphens become spaces, words are
// title-cased, and the optional 4-digit year suffix is stripped.
// "pasar-bauntung-2024.xlsx" yields ("Pasar Bauntung", 2024).
func MarketNameFromFilename(name string) (market string, year int) {
	stem := strings.ToLower(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))

	m := marketFileRe.FindStringSubmatch(stem)
	if m == nil {
		return "", 0
	}
	if m[2] != "" {
		year, _ = strconv.Atoi(m[2])
	}

	words := strings.Split(m[1], "-")
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return "Pasar " + strings.Join(words, " "), year
}

// YearFromFilename extracts a 4-digit year from anywhere in the file name.
func YearFromFilename(name string) (int, bool) {
	return parser.YearFromText(filepath.Base(name))
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
