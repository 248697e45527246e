package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
)

// ListRecords returns the working set, optionally filtered by market id and
// YYYY-MM month prefix.
// GET /api/records?marketId=2&month=2024-07
func (h *Handler) ListRecords(c *gin.Context) {
	marketID, _ := strconv.Atoi(c.Query("marketId"))
	month := c.Query("month")

	records := h.dataset.Records()
	filtered := make([]model.PriceRecord, 0, len(records))
	for _, r := range records {
		if marketID > 0 && r.MarketID != marketID {
			continue
		}
		if month != "" && !strings.HasPrefix(r.Date, month+"-") {
			continue
		}
		filtered = append(filtered, r)
	}
	c.JSON(http.StatusOK, gin.H{"records": filtered, "total": len(filtered)})
}

// ListMarkets returns the market registry.
// GET /api/markets
func (h *Handler) ListMarkets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"markets": h.dataset.Markets()})
}

// ListCommodities returns the commodity registry.
// GET /api/commodities
func (h *Handler) ListCommodities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"commodities": h.dataset.Commodities()})
}

// UpsertRequest is a manual price edit keyed by (date, market, commodity).
type UpsertRequest struct {
	Date        string `json:"date" binding:"required"`
	MarketID    int    `json:"marketId" binding:"required"`
	CommodityID int    `json:"commodityId" binding:"required"`
	Price       int    `json:"price" binding:"required"`
	Unit        string `json:"unit"`
	Notes       string `json:"notes"`
}

// UpsertRecord updates or inserts one record by key. Validation lives here,
// not in the core: the core never raises for data-quality issues.
// POST /api/records/upsert
func (h *Handler) UpsertRecord(c *gin.Context) {
	var req UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
		return
	}
	if req.Unit != "" && req.Unit != model.UnitKg && req.Unit != model.UnitLiter {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit must be kg or liter"})
		return
	}
	// ids must resolve before reaching the core: an unknown id would append
	// a record with an empty name, which the next full load would intern as
	// a real market or commodity
	if h.dataset.MarketName(req.MarketID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown market id"})
		return
	}
	if h.dataset.CommodityName(req.CommodityID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown commodity id"})
		return
	}

	rec := h.dataset.UpsertByKey(req.Date, req.MarketID, req.CommodityID, req.Price, req.Unit, req.Notes)

	if h.store != nil {
		if err := h.store.SaveSnapshot(h.dataset.Records()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist snapshot"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"record": rec})
}
