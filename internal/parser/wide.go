package parser

import (
	"regexp"
	"strings"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
)

var unitCellRe = regexp.MustCompile(`(?i)^\(?\s*(rp\.?\s*/\s*)?(kg|liter|ltr)\s*\)?$`)

const wideHeaderScanRows = 15

// WideLayout parses monthly export files: one row per full date, one column
// per commodity. These files do not share the fixed three-leading-columns
// convention, so commodity columns are located by normalizing every header
// cell, and the date is read from the first column as a native date, a date
// serial, or a DD/MM/YYYY string.
type WideLayout struct{}

func (WideLayout) Mode() string { return LayoutWide }

func (WideLayout) Parse(grid Grid, ctx SheetContext) ([]model.PriceRecord, string) {
	headerRow, cols := findWideHeader(grid, ctx.Normalizer)
	if headerRow < 0 {
		return nil, "no header row with commodity columns"
	}

	// Optional unit row: the row below the header, when it mostly holds
	// bare unit strings rather than commodity names.
	unitsRow := -1
	dataStart := headerRow + 1
	if countUnitCells(grid, headerRow+1) >= 2 {
		unitsRow = headerRow + 1
		dataStart = headerRow + 2
	}

	var records []model.PriceRecord
	started := false
	for r := dataStart; r < len(grid); r++ {
		year, month, day, ok := ParseDateCell(cell(grid, r, 0))
		if !ok {
			if started {
				break
			}
			continue
		}
		started = true
		for _, col := range cols {
			price, ok := ToInt(cell(grid, r, col.index))
			if !ok || price <= 0 {
				continue
			}
			unit := DefaultUnitFor(col.name)
			if unitsRow >= 0 {
				if unitText := cell(grid, unitsRow, col.index); strings.TrimSpace(unitText) != "" {
					unit = UnitFromText(unitText)
				}
			}
			records = append(records, model.PriceRecord{
				Date:          isoDate(year, month, day),
				MarketName:    ctx.MarketName,
				CommodityName: col.name,
				Unit:          unit,
				Price:         price,
				Source:        model.SourceImport,
			})
		}
	}
	if len(records) == 0 {
		return nil, "no parseable date rows below header"
	}
	return records, ""
}

type commodityColumn struct {
	index int
	name  string
}

// findWideHeader picks the first early row with at least two cells that
// normalize to commodity names and fewer unit-looking cells than name cells.
func findWideHeader(grid Grid, norm *Normalizer) (int, []commodityColumn) {
	for r := 0; r < len(grid) && r < wideHeaderScanRows; r++ {
		var cols []commodityColumn
		unitCount := 0
		for c, raw := range grid[r] {
			if unitCellRe.MatchString(strings.TrimSpace(raw)) {
				unitCount++
				continue
			}
			if name := norm.Normalize(raw); name != "" {
				cols = append(cols, commodityColumn{index: c, name: name})
			}
		}
		if len(cols) >= 2 && len(cols) > unitCount {
			return r, cols
		}
	}
	return -1, nil
}

func countUnitCells(grid Grid, row int) int {
	if row < 0 || row >= len(grid) {
		return 0
	}
	n := 0
	for _, raw := range grid[row] {
		if unitCellRe.MatchString(strings.TrimSpace(raw)) {
			n++
		}
	}
	return n
}
