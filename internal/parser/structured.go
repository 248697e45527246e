package parser

import (
	"strings"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
)

// Column conventions shared by the structured and simple layouts: the first
// three columns hold id/week/day, commodities start at the fourth.
const (
	dayColumn          = 2
	firstCommodityCol  = 3
	titleScanRows      = 10
	headerScanRows     = 20
)

// StructuredLayout parses the wide daily report shape: a title block naming
// the market ("pasar"/"harga"), a "pertanggal" header row listing commodities
// from the fourth column, a unit row directly below it, and data rows two
// below the header, one per day-of-month.
type StructuredLayout struct{}

func (StructuredLayout) Mode() string { return LayoutStructured }

func (StructuredLayout) Parse(grid Grid, ctx SheetContext) ([]model.PriceRecord, string) {
	titleRow := -1
	for r := 0; r < len(grid) && r < titleScanRows; r++ {
		text := strings.ToLower(RowText(grid[r]))
		if strings.Contains(text, "pasar") || strings.Contains(text, "harga") {
			titleRow = r
			break
		}
	}
	if titleRow < 0 {
		return nil, "title row (pasar/harga) not found"
	}

	headerRow := -1
	for r := titleRow; r < len(grid) && r <= titleRow+headerScanRows; r++ {
		if strings.Contains(strings.ToLower(RowText(grid[r])), "pertanggal") {
			headerRow = r
			break
		}
	}
	if headerRow < 0 {
		return nil, "header row (pertanggal) not found"
	}

	records := extractDayRows(grid, headerRow, headerRow+1, headerRow+2, firstCommodityCol, ctx)
	if len(records) == 0 {
		return nil, "no parseable data rows below header"
	}
	return records, ""
}

// extractDayRows walks data rows downward from startRow. The day-of-month
// lives at dayColumn; any value outside 1-31 terminates the whole block (a
// blank separator row and a trailing totals row both end extraction this
// way). A day in range that does not exist in the sheet's month (30 February)
// skips the row. Cells with no positive price, or under a header that
// normalizes to nothing, are skipped without ending the block.
func extractDayRows(grid Grid, headerRow, unitsRow, startRow, startCol int, ctx SheetContext) []model.PriceRecord {
	header := grid[headerRow]

	var records []model.PriceRecord
	for r := startRow; r < len(grid); r++ {
		day, ok := ToInt(cell(grid, r, dayColumn))
		if !ok || day < 1 || day > 31 {
			break
		}
		if !validDate(ctx.Year, ctx.Month, day) {
			continue
		}
		for c := startCol; c < len(header); c++ {
			name := ctx.Normalizer.Normalize(header[c])
			if name == "" {
				continue
			}
			price, ok := ToInt(cell(grid, r, c))
			if !ok || price <= 0 {
				continue
			}
			unit := DefaultUnitFor(name)
			if unitText := cell(grid, unitsRow, c); strings.TrimSpace(unitText) != "" {
				unit = UnitFromText(unitText)
			}
			records = append(records, model.PriceRecord{
				Date:          isoDate(ctx.Year, ctx.Month, day),
				MarketName:    ctx.MarketName,
				CommodityName: name,
				Unit:          unit,
				Price:         price,
				Source:        model.SourceImport,
			})
		}
	}
	return records
}
