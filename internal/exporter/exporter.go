package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
)

const sheetName = "Harga"

var headers = []string{"No", "Tanggal", "Pasar", "Komoditas", "Satuan", "Harga", "Keterangan"}

// Export writes the working set as a tall spreadsheet: one row per record.
// The shape matches what TallLayout ingests, so an exported file can be
// re-imported as-is.
func Export(records []model.PriceRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for col, h := range headers {
		cellRef, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cellRef, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, r := range records {
		row := i + 2
		values := []interface{}{i + 1, r.Date, r.MarketName, r.CommodityName, r.Unit, r.Price, r.Notes}
		for col, v := range values {
			cellRef, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetName, cellRef, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	return f, nil
}
