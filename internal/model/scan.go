package model

import "time"

// ScanInfo records what happened to a single worksheet during ingestion.
// Purely diagnostic: rebuilt on every run, consumed only by debug endpoints.
type ScanInfo struct {
	File  string `json:"file"`
	Sheet string `json:"sheet"`
	Mode  string `json:"mode"` // structured/simple/wide/tall/unknown
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Rows  int    `json:"rows"`
	Note  string `json:"note,omitempty"` // why a sheet yielded zero rows
}

// ImportReport summarises one whole-file ingestion run.
type ImportReport struct {
	Filename      string        `json:"filename"`
	TotalSheets   int           `json:"totalSheets"`
	ParsedSheets  int           `json:"parsedSheets"`
	SkippedSheets int           `json:"skippedSheets"`
	ImportedRows  int           `json:"importedRows"`
	Scans         []ScanInfo    `json:"scans"`
	Duration      time.Duration `json:"duration"`
}
