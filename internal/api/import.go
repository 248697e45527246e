package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/exporter"
	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/importer"
	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
)

// Import ingests an uploaded workbook. Form fields: file (required),
// truncate (replace each market-month found in the file), market and year
// hints, monthly (use the wide/tall layout chain).
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	upload, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing upload file"})
		return
	}

	uploadDir := filepath.Join(h.dataDir, "uploads")
	tempPath := filepath.Join(uploadDir, fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(upload.Filename)))
	if err := c.SaveUploadedFile(upload, tempPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save upload"})
		return
	}
	defer os.Remove(tempPath)

	truncate := c.DefaultPostForm("truncate", "true") == "true"
	monthly := c.PostForm("monthly") == "true"
	year, _ := strconv.Atoi(c.PostForm("year"))

	report, err := h.coordinator(monthly).ImportFile(importer.ImportOptions{
		FilePath:   tempPath,
		MarketName: c.PostForm("market"),
		Year:       year,
		Truncate:   truncate,
	})
	if err != nil {
		// the one hard failure: the workbook itself could not be opened
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	// report the upload under its original name, not the temp name
	report.Filename = filepath.Base(upload.Filename)
	for i := range report.Scans {
		report.Scans[i].File = report.Filename
	}
	h.setLastReport(report)

	c.JSON(http.StatusOK, gin.H{
		"imported": report.ImportedRows,
		"skipped":  report.SkippedSheets,
		"report":   report,
	})
}

// Scans returns the diagnostics of the most recent import run.
// GET /api/scans
func (h *Handler) Scans(c *gin.Context) {
	report := h.getLastReport()
	if report == nil {
		c.JSON(http.StatusOK, gin.H{"scans": []model.ScanInfo{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scans": report.Scans, "filename": report.Filename})
}

// Export streams the working set as an xlsx download.
// GET /api/export
func (h *Handler) Export(c *gin.Context) {
	f, err := exporter.Export(h.dataset.Records())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("harga-pangan-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
