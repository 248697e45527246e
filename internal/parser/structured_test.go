package parser

import "testing"

func bauntungGrid() Grid {
	return Grid{
		{"Harga Pasar Bauntung"},
		{}, {}, {}, {},
		{"No", "Minggu", "Pertanggal Juli", "Beras", "Cabe Rawit"},
		{"", "", "", "(Rp/Kg)", "(Rp/Kg)"},
		{"", "", "1", "16400", "60000"},
		{"", "", "2", "16400", "65000"},
		{"", "", "3", "16400", "62000"},
		{"", "", "Rata-rata", "16400", "62333"},
	}
}

func TestStructuredLayout_BauntungScenario(t *testing.T) {
	t.Parallel()

	ctx := SheetContext{
		SheetName:  "Sheet1",
		MarketName: "Pasar Bauntung",
		Year:       2024,
		Month:      7,
		Normalizer: NewNormalizer(nil),
	}
	records, note := StructuredLayout{}.Parse(bauntungGrid(), ctx)
	if note != "" {
		t.Fatalf("unexpected note: %s", note)
	}
	if len(records) != 6 {
		t.Fatalf("want 6 records, got %d", len(records))
	}

	wantDates := []string{"2024-07-01", "2024-07-01", "2024-07-02", "2024-07-02", "2024-07-03", "2024-07-03"}
	for i, r := range records {
		if r.Date != wantDates[i] {
			t.Fatalf("record %d date = %s want %s", i, r.Date, wantDates[i])
		}
		if r.MarketName != "Pasar Bauntung" {
			t.Fatalf("record %d market = %s", i, r.MarketName)
		}
		if r.Unit != "kg" {
			t.Fatalf("record %d unit = %s want kg", i, r.Unit)
		}
	}
	if records[0].CommodityName != "beras" || records[1].CommodityName != "cabe rawit" {
		t.Fatalf("commodities = %s, %s", records[0].CommodityName, records[1].CommodityName)
	}
	if records[1].Price != 60000 || records[3].Price != 65000 || records[5].Price != 62000 {
		t.Fatalf("cabe rawit prices = %d, %d, %d", records[1].Price, records[3].Price, records[5].Price)
	}
}

func TestStructuredLayout_DayBreakTerminates(t *testing.T) {
	t.Parallel()

	grid := bauntungGrid()
	// poison row 8's day cell: extraction must stop after day 1 even though
	// later rows still hold valid-looking days and prices
	grid[8][2] = "total"

	records, _ := StructuredLayout{}.Parse(grid, SheetContext{
		Year: 2024, Month: 7, MarketName: "Pasar Bauntung", Normalizer: NewNormalizer(nil),
	})
	if len(records) != 2 {
		t.Fatalf("want 2 records (day 1 only), got %d", len(records))
	}
	for _, r := range records {
		if r.Date != "2024-07-01" {
			t.Fatalf("unexpected date %s after break", r.Date)
		}
	}
}

func TestStructuredLayout_SkipsZeroAndUnparseablePrices(t *testing.T) {
	t.Parallel()

	grid := bauntungGrid()
	grid[7][3] = "0"  // zero price: skipped, row continues
	grid[8][4] = "na" // unparseable: skipped

	records, _ := StructuredLayout{}.Parse(grid, SheetContext{
		Year: 2024, Month: 7, MarketName: "Pasar Bauntung", Normalizer: NewNormalizer(nil),
	})
	if len(records) != 4 {
		t.Fatalf("want 4 records after skips, got %d", len(records))
	}
}

func TestStructuredLayout_SkipsNonexistentCalendarDay(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{"Harga Pasar Bauntung"},
		{"No", "Minggu", "Pertanggal Februari", "Beras"},
		{"", "", "", "(Rp/Kg)"},
		{"", "", "28", "16400"},
		{"", "", "30", "16400"}, // no 30 February: row skipped, not a break
		{"", "", "31", "16400"},
	}
	records, note := StructuredLayout{}.Parse(grid, SheetContext{
		Year: 2024, Month: 2, MarketName: "Pasar Bauntung", Normalizer: NewNormalizer(nil),
	})
	if note != "" {
		t.Fatalf("unexpected note: %s", note)
	}
	if len(records) != 1 {
		t.Fatalf("want 1 record (day 28 only), got %d", len(records))
	}
	if records[0].Date != "2024-02-28" {
		t.Fatalf("date = %s", records[0].Date)
	}
}

func TestStructuredLayout_NoHeaderRow(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{"Harga Pasar Bauntung"},
		{"no structure here"},
	}
	records, note := StructuredLayout{}.Parse(grid, SheetContext{Year: 2024, Month: 1, Normalizer: NewNormalizer(nil)})
	if len(records) != 0 || note == "" {
		t.Fatalf("want zero records with a diagnostic note, got %d records note=%q", len(records), note)
	}
}
