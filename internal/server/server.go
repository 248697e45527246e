package server

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/api"
	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/canonical"
	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/config"
	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/store"
)

// Server wires the HTTP surface over the canonical dataset and the SQLite
// snapshot store.
type Server struct {
	router  *gin.Engine
	store   *store.Store
	dataset *canonical.Dataset
}

// NewServer builds the server: opens the store, reloads the persisted
// snapshot into a fresh canonical load (ids are recomputed here, on purpose),
// and mounts the API.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "hargapangan.db")

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	dataset := canonical.NewDataset()
	records, err := st.LoadRecords()
	if err != nil {
		log.Printf("snapshot reload failed, starting empty: %v", err)
	} else if len(records) > 0 {
		dataset.Load(records)
		log.Printf("reloaded %d records from snapshot", len(records))
	}

	handler := api.NewHandler(cfg, dataset, st, dataDir)

	s := &Server{
		router:  gin.Default(),
		store:   st,
		dataset: dataset,
	}
	s.setupRoutes(handler)
	return s
}

func (s *Server) setupRoutes(handler *api.Handler) {
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	handler.RegisterRoutes(apiGroup)
}

// Run starts the HTTP server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// SaveNow flushes the working set to the snapshot store.
func (s *Server) SaveNow() error {
	return s.store.SaveSnapshot(s.dataset.Records())
}

// Close releases the store.
func (s *Server) Close() error {
	return s.store.Close()
}
