package parser

import (
	"regexp"
	"strings"
)

// DefaultAliases maps spelling variants seen in real header text onto the
// canonical commodity name. The table is data, not logic: sources spell the
// same commodity differently file to file, and the set grows over time via
// config, so every entry point accepts an extended table.
var DefaultAliases = map[string]string{
	"cabai rawit":       "cabe rawit",
	"cabai merah":       "cabe merah",
	"ikan haruan/gabus": "ikan haruan/ gabus",
	"telor ayam":        "telur ayam",
	"telor itik":        "telur itik",
}

// ignoreTokens are header cells that name a column role, not a commodity.
// Normalizing one of these to "" signals "skip this column".
var ignoreTokens = map[string]bool{
	"no":         true,
	"minggu":     true,
	"hari":       true,
	"tanggal":    true,
	"pertanggal": true,
	"komoditas":  true,
	"komoditi":   true,
	"harga":      true,
	"satuan":     true,
	"rata-rata":  true,
	"keterangan": true,
}

var (
	unitSuffixRe = regexp.MustCompile(`(?i)\(?\s*rp\.?\s*/\s*(kg|liter|ltr)\s*\)?\.?`)
	bareUnitRe   = regexp.MustCompile(`(?i)\s+(per\s+)?(kg|liter|ltr)\s*$`)
	slashSpaceRe = regexp.MustCompile(`\s*/\s*`)
)

// Normalizer canonicalizes raw commodity header text.
type Normalizer struct {
	aliases map[string]string
}

// NewNormalizer creates a normalizer over the default alias table plus extra
// entries (extra wins on key conflict). Keys are matched after cleanup, so
// config entries may be written in natural spelling.
func NewNormalizer(extra map[string]string) *Normalizer {
	aliases := make(map[string]string, len(DefaultAliases)+len(extra))
	for k, v := range DefaultAliases {
		aliases[cleanName(k)] = v
	}
	for k, v := range extra {
		aliases[cleanName(k)] = v
	}
	return &Normalizer{aliases: aliases}
}

// Normalize lowercases raw header text, strips unit suffixes, collapses
// whitespace and slash spacing, and applies the alias table. Returns "" for
// non-commodity header tokens. Idempotent: Normalize(Normalize(x)) == Normalize(x).
func (n *Normalizer) Normalize(raw string) string {
	name := cleanName(raw)
	if name == "" || ignoreTokens[name] {
		return ""
	}
	if canonical, ok := n.aliases[name]; ok {
		return canonical
	}
	return name
}

// cleanName performs the alias-independent part of normalization.
func cleanName(raw string) string {
	s := strings.ToLower(raw)
	s = unitSuffixRe.ReplaceAllString(s, " ")
	s = bareUnitRe.ReplaceAllString(s, " ")
	s = slashSpaceRe.ReplaceAllString(s, "/")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
