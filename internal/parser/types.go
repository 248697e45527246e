package parser

import (
	"fmt"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
)

// Grid is the raw cell matrix of one worksheet, as returned by excelize.
// Rows may be ragged; out-of-range access reads as "".
type Grid [][]string

// Layout modes, in fallback order within their chains.
const (
	LayoutStructured = "structured"
	LayoutSimple     = "simple"
	LayoutWide       = "wide"
	LayoutTall       = "tall"
	LayoutUnknown    = "unknown"
)

// SheetContext carries per-sheet metadata resolved before layout parsing.
type SheetContext struct {
	SheetName  string
	MarketName string
	Year       int // resolved reporting year, > 0
	Month      int // resolved reporting month, 1-12
	Normalizer *Normalizer
}

// LayoutStrategy locates the header, unit, and data rows of one worksheet
// shape and extracts its price records. A strategy that does not match the
// sheet returns zero records and a note saying why; that is a diagnostic,
// not an error.
type LayoutStrategy interface {
	Mode() string
	Parse(grid Grid, ctx SheetContext) (records []model.PriceRecord, note string)
}

// isoDate formats a detected (year, month, day) as a zero-padded ISO date.
// Zero padding matters: the canonical load sorts records by string compare.
func isoDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
