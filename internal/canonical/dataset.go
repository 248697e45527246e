package canonical

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
)

// Dataset owns the full in-memory working set of price records for one
// process (or one tenant). It is an explicit context, not package state, so
// independent working sets can coexist and tests need no globals. A single
// mutex serialises all access; the data volume (low thousands of rows) does
// not justify finer locking.
type Dataset struct {
	mu          sync.Mutex
	records     []*model.PriceRecord
	markets     *Registry
	commodities *Registry
}

// NewDataset creates an empty working set.
func NewDataset() *Dataset {
	return &Dataset{
		markets:     NewRegistry(),
		commodities: NewRegistry(),
	}
}

// Load replaces the whole working set. Records are stably sorted by ISO date
// (string compare, correct because dates are zero-padded), the market and
// commodity registries are rebuilt first-seen-wins over the sorted order, and
// every record gets a fresh sequential 1-based id. Calling Load again with a
// superset or subset of records therefore changes every record's id: ids are
// positional indices, never persist them as external references.
func (d *Dataset) Load(records []model.PriceRecord) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loadLocked(records)
}

func (d *Dataset) loadLocked(records []model.PriceRecord) {
	sorted := make([]*model.PriceRecord, len(records))
	for i := range records {
		rec := records[i]
		sorted[i] = &rec
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	markets := NewRegistry()
	commodities := NewRegistry()
	for i, rec := range sorted {
		rec.ID = i + 1
		rec.MarketID = markets.Intern(rec.MarketName)
		rec.CommodityID = commodities.Intern(rec.CommodityName)
		if rec.Source == "" {
			rec.Source = model.SourceImport
		}
	}

	d.records = sorted
	d.markets = markets
	d.commodities = commodities
}

// UpsertByKey updates the record matching (date, marketID, commodityID) in
// place, or appends a new one with id max+1. At most one record per key is
// kept by scan-then-insert, not by an index. Returns a copy taken under the
// lock: concurrent callers never share the stored record.
func (d *Dataset) UpsertByKey(date string, marketID, commodityID, price int, unit, notes string) model.PriceRecord {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, rec := range d.records {
		if rec.SameKey(date, marketID, commodityID) {
			rec.Price = price
			if unit != "" {
				rec.Unit = unit
			}
			if notes != "" {
				rec.Notes = notes
			}
			rec.Source = model.SourceManual
			return *rec
		}
	}

	maxID := 0
	for _, rec := range d.records {
		if rec.ID > maxID {
			maxID = rec.ID
		}
	}
	if unit == "" {
		unit = model.UnitKg
	}
	rec := &model.PriceRecord{
		ID:            maxID + 1,
		Date:          date,
		MarketID:      marketID,
		MarketName:    d.markets.Name(marketID),
		CommodityID:   commodityID,
		CommodityName: d.commodities.Name(commodityID),
		Unit:          unit,
		Price:         price,
		Notes:         notes,
		Source:        model.SourceManual,
	}
	d.records = append(d.records, rec)
	return *rec
}

// ReplaceMonthForMarket removes every record for marketID whose date falls in
// the given month, merges newRecords into the remainder, and re-runs the full
// load. This is the truncate-one-market-one-month re-import flow.
func (d *Dataset) ReplaceMonthForMarket(marketID, year, month int, newRecords []model.PriceRecord) {
	d.mu.Lock()
	defer d.mu.Unlock()

	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	var kept []model.PriceRecord
	for _, rec := range d.records {
		if rec.MarketID == marketID && strings.HasPrefix(rec.Date, prefix) {
			continue
		}
		kept = append(kept, *rec)
	}
	kept = append(kept, newRecords...)
	d.loadLocked(kept)
}

// Records returns a snapshot copy of the working set in id order.
func (d *Dataset) Records() []model.PriceRecord {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]model.PriceRecord, len(d.records))
	for i, rec := range d.records {
		out[i] = *rec
	}
	return out
}

// Markets returns the market registry as id-ordered entries.
func (d *Dataset) Markets() []model.Market {
	d.mu.Lock()
	defer d.mu.Unlock()

	names := d.markets.Names()
	out := make([]model.Market, len(names))
	for i, name := range names {
		out[i] = model.Market{ID: i + 1, Name: name}
	}
	return out
}

// Commodities returns the commodity registry as id-ordered entries, with the
// unit taken from the first record seen for each commodity.
func (d *Dataset) Commodities() []model.Commodity {
	d.mu.Lock()
	defer d.mu.Unlock()

	names := d.commodities.Names()
	out := make([]model.Commodity, len(names))
	units := make(map[int]string)
	for _, rec := range d.records {
		if _, ok := units[rec.CommodityID]; !ok {
			units[rec.CommodityID] = rec.Unit
		}
	}
	for i, name := range names {
		unit := units[i+1]
		if unit == "" {
			unit = model.UnitKg
		}
		out[i] = model.Commodity{ID: i + 1, Name: name, Unit: unit}
	}
	return out
}

// MarketName resolves a market id to its name, "" for an unknown id.
func (d *Dataset) MarketName(id int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.markets.Name(id)
}

// CommodityName resolves a commodity id to its name, "" for an unknown id.
func (d *Dataset) CommodityName(id int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.commodities.Name(id)
}

// MarketID resolves a market name to its current positional id, 0 if unseen.
func (d *Dataset) MarketID(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.markets.Lookup(name)
}

// CommodityID resolves a commodity name to its current positional id, 0 if unseen.
func (d *Dataset) CommodityID(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.commodities.Lookup(name)
}

// Len returns the current record count.
func (d *Dataset) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.records)
}
