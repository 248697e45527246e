package model

// Unit of measure for a reported price.
const (
	UnitKg    = "kg"
	UnitLiter = "liter"
)

// Source markers distinguishing machine-ingested rows from manual entry.
const (
	SourceImport = "import"
	SourceManual = "manual"
)

// PriceRecord is the canonical unit of output: one price observation for one
// commodity at one market on one calendar day.
type PriceRecord struct {
	ID            int    `json:"id"`
	Date          string `json:"date"` // ISO YYYY-MM-DD, zero-padded
	MarketID      int    `json:"marketId"`
	MarketName    string `json:"marketName"`
	CommodityID   int    `json:"commodityId"`
	CommodityName string `json:"commodityName"`
	Unit          string `json:"unit"` // kg | liter
	Price         int    `json:"price"`
	Notes         string `json:"notes,omitempty"`
	Source        string `json:"source"` // import | manual
}

// Key identity for upsert: one record per (date, market, commodity).
func (r *PriceRecord) SameKey(date string, marketID, commodityID int) bool {
	return r.Date == date && r.MarketID == marketID && r.CommodityID == commodityID
}

// Market is a registry entry; ids are positional, reassigned on every full load.
type Market struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Commodity is a registry entry; ids are positional, reassigned on every full load.
type Commodity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}
