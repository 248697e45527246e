package importer

import (
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/canonical"
	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/store"
)

// Coordinator runs whole-file imports against the working set and the
// persistent store.
type Coordinator struct {
	loader  *Loader
	dataset *canonical.Dataset
	store   *store.Store
}

// NewCoordinator wires a loader to the canonical dataset and an optional
// store (nil skips persistence, used by tests).
func NewCoordinator(loader *Loader, dataset *canonical.Dataset, st *store.Store) *Coordinator {
	return &Coordinator{loader: loader, dataset: dataset, store: st}
}

// ImportOptions controls one import run.
type ImportOptions struct {
	FilePath   string
	MarketName string // optional hint, else derived from the file name
	Year       int    // optional hint when detection fails
	Truncate   bool   // replace each (market, month) found in the file
}

// ImportFile ingests one workbook and merges the result into the working set.
// Partial success is the normal outcome: unrecognized sheets are skipped with
// diagnostics and never fail the run. Only an unreadable workbook returns an
// error.
func (c *Coordinator) ImportFile(opts ImportOptions) (*model.ImportReport, error) {
	start := time.Now()
	filename := filepath.Base(opts.FilePath)

	var logID int64
	if c.store != nil {
		id, err := c.store.CreateImportLog(filename)
		if err != nil {
			log.Printf("import log create failed: %v", err)
		} else {
			logID = id
		}
	}

	result, err := c.loader.LoadFile(opts.FilePath, Hints{MarketName: opts.MarketName, Year: opts.Year})
	if err != nil {
		if logID > 0 {
			if logErr := c.store.FinishImportLog(logID, nil, "error", err.Error()); logErr != nil {
				log.Printf("import log finish failed: %v", logErr)
			}
		}
		return nil, err
	}

	c.merge(result.Rows, opts.Truncate)

	report := buildReport(filename, result, time.Since(start))

	if c.store != nil {
		if err := c.store.SaveSnapshot(c.dataset.Records()); err != nil {
			log.Printf("snapshot save failed: %v", err)
		}
		if logID > 0 {
			if logErr := c.store.FinishImportLog(logID, report, "done", ""); logErr != nil {
				log.Printf("import log finish failed: %v", logErr)
			}
		}
	}
	return report, nil
}

// merge folds newly parsed rows into the working set. With truncate, every
// (market, month) pair present in the new rows is dropped from the existing
// set first, so a re-uploaded file fully replaces its own months.
func (c *Coordinator) merge(rows []model.PriceRecord, truncate bool) {
	if truncate {
		for _, key := range monthKeys(rows) {
			marketID := c.dataset.MarketID(key.market)
			if marketID == 0 {
				continue
			}
			c.dataset.ReplaceMonthForMarket(marketID, key.year, key.month, nil)
		}
	}
	combined := append(c.dataset.Records(), rows...)
	c.dataset.Load(combined)
}

type monthKey struct {
	market string
	year   int
	month  int
}

// monthKeys lists the distinct (market, year, month) pairs in rows,
// first-seen order.
func monthKeys(rows []model.PriceRecord) []monthKey {
	seen := make(map[monthKey]bool)
	var keys []monthKey
	for _, r := range rows {
		year, month, ok := splitDate(r.Date)
		if !ok {
			continue
		}
		k := monthKey{market: r.MarketName, year: year, month: month}
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

func splitDate(date string) (year, month int, ok bool) {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return 0, 0, false
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return year, month, true
}

func buildReport(filename string, result *LoadResult, dur time.Duration) *model.ImportReport {
	report := &model.ImportReport{
		Filename:     filename,
		TotalSheets:  len(result.Scans),
		ImportedRows: len(result.Rows),
		Scans:        result.Scans,
		Duration:     dur,
	}
	for _, scan := range result.Scans {
		if scan.Rows > 0 {
			report.ParsedSheets++
		} else {
			report.SkippedSheets++
		}
	}
	if report.ParsedSheets == 0 && report.TotalSheets > 0 {
		log.Printf("import %s: no sheets parsed, %d skipped", filename, report.SkippedSheets)
	}
	return report
}
