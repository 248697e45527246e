package parser

import (
	"strings"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
)

// TallLayout parses the long export shape: a header row whose columns are
// literally labeled tanggal/komoditas/harga (optionally satuan), then one row
// per (date, commodity, price) triple.
type TallLayout struct{}

func (TallLayout) Mode() string { return LayoutTall }

func (TallLayout) Parse(grid Grid, ctx SheetContext) ([]model.PriceRecord, string) {
	headerRow, dateCol, nameCol, priceCol, unitCol := findTallHeader(grid)
	if headerRow < 0 {
		return nil, "no tanggal/komoditas/harga header row"
	}

	var records []model.PriceRecord
	for r := headerRow + 1; r < len(grid); r++ {
		year, month, day, ok := ParseDateCell(cell(grid, r, dateCol))
		if !ok {
			// tall exports may end with a blank or totals row
			break
		}
		name := ctx.Normalizer.Normalize(cell(grid, r, nameCol))
		if name == "" {
			continue
		}
		price, ok := ToInt(cell(grid, r, priceCol))
		if !ok || price <= 0 {
			continue
		}
		unit := DefaultUnitFor(name)
		if unitCol >= 0 {
			if unitText := cell(grid, r, unitCol); strings.TrimSpace(unitText) != "" {
				unit = UnitFromText(unitText)
			}
		}
		records = append(records, model.PriceRecord{
			Date:          isoDate(year, month, day),
			MarketName:    ctx.MarketName,
			CommodityName: name,
			Unit:          unit,
			Price:         price,
			Source:        model.SourceImport,
		})
	}
	if len(records) == 0 {
		return nil, "no parseable rows below tall header"
	}
	return records, ""
}

func findTallHeader(grid Grid) (headerRow, dateCol, nameCol, priceCol, unitCol int) {
	for r := 0; r < len(grid) && r < headerScanRows; r++ {
		dateCol, nameCol, priceCol, unitCol = -1, -1, -1, -1
		for c, raw := range grid[r] {
			switch strings.ToLower(strings.TrimSpace(raw)) {
			case "tanggal":
				dateCol = c
			case "komoditas", "komoditi":
				nameCol = c
			case "harga":
				priceCol = c
			case "satuan":
				unitCol = c
			}
		}
		if dateCol >= 0 && nameCol >= 0 && priceCol >= 0 {
			return r, dateCol, nameCol, priceCol, unitCol
		}
	}
	return -1, -1, -1, -1, -1
}
