package canonical

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
)

func rec(date, market, commodity string, price int) model.PriceRecord {
	return model.PriceRecord{
		Date:          date,
		MarketName:    market,
		CommodityName: commodity,
		Unit:          model.UnitKg,
		Price:         price,
		Source:        model.SourceImport,
	}
}

func TestLoad_IdsAreFunctionOfSortedContent(t *testing.T) {
	t.Parallel()

	r1 := rec("2024-01-01", "Pasar A", "beras", 15000)
	r2 := rec("2024-01-02", "Pasar A", "beras", 15100)

	d := NewDataset()
	d.Load([]model.PriceRecord{r1, r2})
	first := d.Records()

	// same content, different input order: ids must not change, because
	// load sorts by date before assigning
	d.Load([]model.PriceRecord{r2, r1})
	second := d.Records()

	for i := range first {
		if first[i].Date != second[i].Date || first[i].ID != second[i].ID {
			t.Fatalf("row %d: %s/%d vs %s/%d", i, first[i].Date, first[i].ID, second[i].Date, second[i].ID)
		}
	}
	if second[0].ID != 1 || second[1].ID != 2 {
		t.Fatalf("ids = %d, %d want 1, 2", second[0].ID, second[1].ID)
	}
}

func TestLoad_ReassignsEveryIdOnReload(t *testing.T) {
	t.Parallel()

	d := NewDataset()
	d.Load([]model.PriceRecord{
		rec("2024-01-02", "Pasar A", "beras", 15000),
		rec("2024-01-03", "Pasar A", "beras", 15100),
	})

	// prepend an earlier record: every id shifts, ids are positional
	d.Load(append(d.Records(), rec("2024-01-01", "Pasar A", "beras", 14900)))
	records := d.Records()
	if records[0].Date != "2024-01-01" || records[0].ID != 1 {
		t.Fatalf("earliest record = %s id %d", records[0].Date, records[0].ID)
	}
	if records[2].Date != "2024-01-03" || records[2].ID != 3 {
		t.Fatalf("latest record = %s id %d", records[2].Date, records[2].ID)
	}
}

func TestLoad_RegistriesFirstSeenOverSortedOrder(t *testing.T) {
	t.Parallel()

	d := NewDataset()
	d.Load([]model.PriceRecord{
		rec("2024-01-02", "Pasar B", "gula pasir", 18000),
		rec("2024-01-01", "Pasar A", "beras", 15000),
	})

	// Pasar A sorts first, so it takes market id 1 regardless of input order
	if got := d.MarketID("Pasar A"); got != 1 {
		t.Fatalf("Pasar A id = %d", got)
	}
	if got := d.MarketID("Pasar B"); got != 2 {
		t.Fatalf("Pasar B id = %d", got)
	}
	if got := d.CommodityID("beras"); got != 1 {
		t.Fatalf("beras id = %d", got)
	}
}

func TestUpsertByKey_ReplacesNeverDuplicates(t *testing.T) {
	t.Parallel()

	d := NewDataset()
	d.Load([]model.PriceRecord{rec("2024-07-01", "Pasar A", "beras", 15000)})

	d.UpsertByKey("2024-07-01", 1, 1, 100, "", "")
	d.UpsertByKey("2024-07-01", 1, 1, 200, "", "")

	records := d.Records()
	count := 0
	for _, r := range records {
		if r.SameKey("2024-07-01", 1, 1) {
			count++
			if r.Price != 200 {
				t.Fatalf("price = %d want 200", r.Price)
			}
		}
	}
	if count != 1 {
		t.Fatalf("want exactly one record for the key, got %d", count)
	}
}

func TestUpsertByKey_AppendsWithMaxPlusOne(t *testing.T) {
	t.Parallel()

	d := NewDataset()
	d.Load([]model.PriceRecord{
		rec("2024-07-01", "Pasar A", "beras", 15000),
		rec("2024-07-02", "Pasar A", "beras", 15100),
	})

	got := d.UpsertByKey("2024-07-03", 1, 1, 15200, model.UnitKg, "manual entry")
	if got.ID != 3 {
		t.Fatalf("new id = %d want 3", got.ID)
	}
	if got.MarketName != "Pasar A" || got.CommodityName != "beras" {
		t.Fatalf("names not resolved from registries: %s/%s", got.MarketName, got.CommodityName)
	}
	if d.Len() != 3 {
		t.Fatalf("len = %d", d.Len())
	}
}

func TestUpsertByKey_ReturnsDetachedCopy(t *testing.T) {
	t.Parallel()

	d := NewDataset()
	d.Load([]model.PriceRecord{rec("2024-07-01", "Pasar A", "beras", 15000)})

	// the returned record is a snapshot: later writes to the same key, from
	// this or any other goroutine, must not show through it
	first := d.UpsertByKey("2024-07-01", 1, 1, 100, "", "")
	d.UpsertByKey("2024-07-01", 1, 1, 200, "", "")
	if first.Price != 100 {
		t.Fatalf("returned record aliases stored state: price = %d", first.Price)
	}
	if got := d.Records()[0].Price; got != 200 {
		t.Fatalf("stored price = %d want 200", got)
	}
}

func TestReplaceMonthForMarket_TruncateAndReplace(t *testing.T) {
	t.Parallel()

	var records []model.PriceRecord
	// market id 1 comes from an early record for another market
	records = append(records, rec("2024-07-01", "Pasar A", "beras", 15000))
	// 10 August and 5 September records for what will be market id 2
	for day := 1; day <= 10; day++ {
		records = append(records, rec(fmt.Sprintf("2024-08-%02d", day), "Pasar B", "beras", 15000+day))
	}
	for day := 1; day <= 5; day++ {
		records = append(records, rec(fmt.Sprintf("2024-09-%02d", day), "Pasar B", "beras", 16000+day))
	}

	d := NewDataset()
	d.Load(records)
	marketB := d.MarketID("Pasar B")
	if marketB != 2 {
		t.Fatalf("Pasar B id = %d want 2", marketB)
	}

	replacement := []model.PriceRecord{
		rec("2024-08-01", "Pasar B", "beras", 20001),
		rec("2024-08-02", "Pasar B", "beras", 20002),
		rec("2024-08-03", "Pasar B", "beras", 20003),
	}
	d.ReplaceMonthForMarket(marketB, 2024, 8, replacement)

	marketB = d.MarketID("Pasar B") // ids may shift after reload
	august, september, total := 0, 0, 0
	for _, r := range d.Records() {
		if r.MarketID != marketB {
			continue
		}
		total++
		if strings.HasPrefix(r.Date, "2024-08-") {
			august++
		}
		if strings.HasPrefix(r.Date, "2024-09-") {
			september++
			if r.Price < 16000 {
				t.Fatalf("september record touched: %+v", r)
			}
		}
	}
	if total != 8 || august != 3 || september != 5 {
		t.Fatalf("total/august/september = %d/%d/%d want 8/3/5", total, august, september)
	}
}
