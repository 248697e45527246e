package parser

import "testing"

func TestWideLayout_DateRowsAndUnitRow(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{"Rekap Harga Pasar Sudimampir"},
		{"Tanggal", "Beras", "Gula Pasir", "Minyak Goreng"},
		{"", "Kg", "Kg", "Liter"},
		{"01/07/2024", "16400", "17000", "18000"},
		{"45475", "16400", "17100", "18100"}, // serial for 2024-07-02
		{"", "", "", ""},
	}
	records, note := WideLayout{}.Parse(grid, SheetContext{
		MarketName: "Pasar Sudimampir", Year: 2024, Month: 7, Normalizer: NewNormalizer(nil),
	})
	if note != "" {
		t.Fatalf("unexpected note: %s", note)
	}
	if len(records) != 6 {
		t.Fatalf("want 6 records, got %d", len(records))
	}
	if records[0].Date != "2024-07-01" || records[3].Date != "2024-07-02" {
		t.Fatalf("dates = %s, %s", records[0].Date, records[3].Date)
	}
	if records[2].CommodityName != "minyak goreng" || records[2].Unit != "liter" {
		t.Fatalf("minyak goreng = %s/%s", records[2].CommodityName, records[2].Unit)
	}
	if records[0].Unit != "kg" {
		t.Fatalf("beras unit = %s", records[0].Unit)
	}
}

func TestWideLayout_NoUnitRowUsesCommodityTable(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{"Tanggal", "Beras", "Minyak Goreng"},
		{"01/07/2024", "16400", "18000"},
	}
	records, _ := WideLayout{}.Parse(grid, SheetContext{
		MarketName: "Pasar Lama", Year: 2024, Month: 7, Normalizer: NewNormalizer(nil),
	})
	if len(records) != 2 {
		t.Fatalf("want 2 records, got %d", len(records))
	}
	if records[0].Unit != "kg" || records[1].Unit != "liter" {
		t.Fatalf("units = %s, %s", records[0].Unit, records[1].Unit)
	}
}

func TestTallLayout_TripleRows(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{"Tanggal", "Komoditas", "Satuan", "Harga"},
		{"01/07/2024", "Beras", "Kg", "16400"},
		{"01/07/2024", "Cabai Rawit", "Kg", "60000"},
		{"02/07/2024", "Minyak Goreng", "Liter", "18000"},
		{"", "", "", ""},
	}
	records, note := TallLayout{}.Parse(grid, SheetContext{
		MarketName: "Pasar Baru", Year: 2024, Month: 7, Normalizer: NewNormalizer(nil),
	})
	if note != "" {
		t.Fatalf("unexpected note: %s", note)
	}
	if len(records) != 3 {
		t.Fatalf("want 3 records, got %d", len(records))
	}
	if records[1].CommodityName != "cabe rawit" {
		t.Fatalf("alias not applied: %s", records[1].CommodityName)
	}
	if records[2].Unit != "liter" || records[2].Date != "2024-07-02" {
		t.Fatalf("record 2 = %s/%s", records[2].Date, records[2].Unit)
	}
}

func TestTallLayout_NoHeader(t *testing.T) {
	t.Parallel()

	records, note := TallLayout{}.Parse(Grid{{"just", "text"}}, SheetContext{Normalizer: NewNormalizer(nil)})
	if len(records) != 0 || note == "" {
		t.Fatalf("want diagnostic note, got %d records note=%q", len(records), note)
	}
}
