package parser

import (
	"strings"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
)

// stapleKeywords are commodity names common enough that any daily price sheet
// mentions at least one of them in its header row.
var stapleKeywords = []string{"beras", "gula", "telur", "cabe", "cabai", "minyak", "ikan"}

const simpleMonthScanRows = 10

// SimpleLayout is the fallback for files without the structured title block:
// the first row mentioning a staple commodity becomes the header row, the row
// below it the unit row, and data starts two rows below the header. The month
// is re-scanned independently over the first rows and defaults to January.
type SimpleLayout struct{}

func (SimpleLayout) Mode() string { return LayoutSimple }

func (SimpleLayout) Parse(grid Grid, ctx SheetContext) ([]model.PriceRecord, string) {
	headerRow := -1
	for r := 0; r < len(grid) && r < headerScanRows; r++ {
		if ContainsAny(strings.ToLower(RowText(grid[r])), stapleKeywords) {
			headerRow = r
			break
		}
	}
	if headerRow < 0 {
		return nil, "no header row with staple commodities"
	}

	month := 1
	for r := 0; r < len(grid) && r < simpleMonthScanRows; r++ {
		if m, ok := MonthFromText(RowText(grid[r])); ok {
			month = m
			break
		}
	}
	ctx.Month = month

	records := extractDayRows(grid, headerRow, headerRow+1, headerRow+2, firstCommodityCol, ctx)
	if len(records) == 0 {
		return nil, "no parseable data rows below header"
	}
	return records, ""
}
