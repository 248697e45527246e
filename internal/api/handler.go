package api

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/canonical"
	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/config"
	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/importer"
	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/parser"
	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/store"
)

// Handler exposes the ingestion core over HTTP. It is a thin collaborator:
// validation and persistence live here, parsing semantics live in the core.
type Handler struct {
	cfg     *config.AppConfig
	dataset *canonical.Dataset
	store   *store.Store
	norm    *parser.Normalizer
	dataDir string

	mu         sync.Mutex
	lastReport *model.ImportReport
}

// NewHandler creates the API handler over an initialized dataset and store.
func NewHandler(cfg *config.AppConfig, dataset *canonical.Dataset, st *store.Store, dataDir string) *Handler {
	return &Handler{
		cfg:     cfg,
		dataset: dataset,
		store:   st,
		norm:    parser.NewNormalizer(cfg.Import.Aliases),
		dataDir: dataDir,
	}
}

// RegisterRoutes mounts all API routes on the group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)

	rg.GET("/records", h.ListRecords)
	rg.POST("/records/upsert", h.UpsertRecord)
	rg.GET("/markets", h.ListMarkets)
	rg.GET("/commodities", h.ListCommodities)

	rg.POST("/import", h.Import)
	rg.GET("/scans", h.Scans)
	rg.GET("/export", h.Export)
}

// Health responds with a liveness marker.
// GET /api/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok", "records": h.dataset.Len()})
}

func (h *Handler) setLastReport(report *model.ImportReport) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastReport = report
}

func (h *Handler) getLastReport() *model.ImportReport {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastReport
}

// coordinator builds an import coordinator for the requested workbook shape.
func (h *Handler) coordinator(monthly bool) *importer.Coordinator {
	var loader *importer.Loader
	if monthly {
		loader = importer.NewMonthlyLoader(h.norm, h.cfg.Import.DefaultYear)
	} else {
		loader = importer.NewLoader(h.norm, h.cfg.Import.DefaultYear)
	}
	return importer.NewCoordinator(loader, h.dataset, h.store)
}
