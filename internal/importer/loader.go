package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/parser"
)

// Hints carries caller-supplied metadata the workbook itself may not encode.
type Hints struct {
	MarketName string // used when the workbook does not name its market
	Year       int    // used when year detection fails
}

// LoadResult is the output of whole-file ingestion: the flat record list plus
// one diagnostic entry per worksheet processed.
type LoadResult struct {
	Rows  []model.PriceRecord `json:"rows"`
	Scans []model.ScanInfo    `json:"scans"`
}

// Loader turns one workbook into canonical price records. Parsing is pure
// computation over the in-memory grid; worksheets are independent, so callers
// may run one Loader per file in parallel and concatenate results before the
// single canonical load.
type Loader struct {
	strategies  []parser.LayoutStrategy
	norm        *parser.Normalizer
	defaultYear int
}

// NewLoader creates a loader for daily market workbooks: structured layout
// first, simple layout as fallback.
func NewLoader(norm *parser.Normalizer, defaultYear int) *Loader {
	return &Loader{
		strategies:  []parser.LayoutStrategy{parser.StructuredLayout{}, parser.SimpleLayout{}},
		norm:        norm,
		defaultYear: defaultYear,
	}
}

// NewMonthlyLoader creates a loader for monthly export workbooks: wide layout
// first, tall layout as fallback.
func NewMonthlyLoader(norm *parser.Normalizer, defaultYear int) *Loader {
	return &Loader{
		strategies:  []parser.LayoutStrategy{parser.WideLayout{}, parser.TallLayout{}},
		norm:        norm,
		defaultYear: defaultYear,
	}
}

// LoadFile opens a workbook and parses every worksheet. An unreadable
// workbook is a real error, distinct from "parsed but empty": worksheets
// whose layout cannot be recognized only contribute a ScanInfo note.
func (l *Loader) LoadFile(path string, hints Hints) (*LoadResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	return l.loadWorkbook(f, filepath.Base(path), hints)
}

func (l *Loader) loadWorkbook(f *excelize.File, filename string, hints Hints) (*LoadResult, error) {
	market := hints.MarketName
	fileYear := 0
	if name, year := MarketNameFromFilename(filename); name != "" {
		if market == "" {
			market = name
		}
		fileYear = year
	}
	if fileYear == 0 {
		fileYear, _ = YearFromFilename(filename)
	}
	if market == "" {
		market = fallbackMarketName(filename)
	}

	result := &LoadResult{}
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
		if err != nil {
			result.Scans = append(result.Scans, model.ScanInfo{
				File:  filename,
				Sheet: sheetName,
				Mode:  parser.LayoutUnknown,
				Note:  fmt.Sprintf("could not read sheet: %v", err),
			})
			continue
		}

		scan := l.parseSheet(parser.Grid(rows), filename, sheetName, market, fileYear, hints.Year, result)
		result.Scans = append(result.Scans, scan)
	}
	return result, nil
}

// parseSheet resolves month/year for one worksheet and runs the layout chain,
// appending extracted records to result.
func (l *Loader) parseSheet(grid parser.Grid, filename, sheetName, market string, fileYear, hintYear int, result *LoadResult) model.ScanInfo {
	month, year := parser.DetectMonthYear(grid, sheetName)
	if year == 0 {
		year = fileYear
	}
	if year == 0 {
		year = hintYear
	}
	if year == 0 {
		year = l.defaultYear
	}

	ctx := parser.SheetContext{
		SheetName:  sheetName,
		MarketName: market,
		Year:       year,
		Month:      month,
		Normalizer: l.norm,
	}

	var notes []string
	for _, strategy := range l.strategies {
		records, note := strategy.Parse(grid, ctx)
		if len(records) > 0 {
			result.Rows = append(result.Rows, records...)
			return model.ScanInfo{
				File:  filename,
				Sheet: sheetName,
				Mode:  strategy.Mode(),
				Year:  year,
				Month: month,
				Rows:  len(records),
			}
		}
		notes = append(notes, fmt.Sprintf("%s: %s", strategy.Mode(), note))
	}

	return model.ScanInfo{
		File:  filename,
		Sheet: sheetName,
		Mode:  parser.LayoutUnknown,
		Year:  year,
		Month: month,
		Note:  strings.Join(notes, "; "),
	}
}

// fallbackMarketName title-cases the file stem when the pasar-<slug>
// convention does not apply.
func fallbackMarketName(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	words := strings.FieldsFunc(strings.ToLower(stem), func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = titleWord(w)
	}
	if len(words) == 0 {
		return "Pasar"
	}
	return strings.Join(words, " ")
}
