package store

import (
	"path/filepath"
	"testing"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	records := []model.PriceRecord{
		{ID: 1, Date: "2024-07-01", MarketID: 1, MarketName: "Pasar Bauntung",
			CommodityID: 1, CommodityName: "beras", Unit: "kg", Price: 16400, Source: "import"},
		{ID: 2, Date: "2024-07-01", MarketID: 1, MarketName: "Pasar Bauntung",
			CommodityID: 2, CommodityName: "cabe rawit", Unit: "kg", Price: 60000, Source: "import"},
	}

	if err := s.SaveSnapshot(records); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadRecords()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 records, got %d", len(got))
	}
	if got[1].CommodityName != "cabe rawit" || got[1].Price != 60000 {
		t.Fatalf("record 2 = %+v", got[1])
	}

	// a second save replaces, never appends
	if err := s.SaveSnapshot(records[:1]); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err = s.LoadRecords()
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("snapshot must replace, got %d records", len(got))
	}
}

func TestImportLogLifecycle(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	id, err := s.CreateImportLog("pasar-bauntung-2024.xlsx")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == 0 {
		t.Fatalf("want non-zero log id")
	}

	report := &model.ImportReport{TotalSheets: 2, ParsedSheets: 1, SkippedSheets: 1, ImportedRows: 6}
	if err := s.FinishImportLog(id, report, "done", ""); err != nil {
		t.Fatalf("finish: %v", err)
	}
}
