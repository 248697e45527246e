package store

import (
	"fmt"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
)

// CreateImportLog records the start of an import run, returning its id.
func (s *Store) CreateImportLog(filename string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (filename, status) VALUES (?, 'processing')
	`, filename)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// FinishImportLog completes an import log with the run's counts. A nil
// report (open failure) records only status and message.
func (s *Store) FinishImportLog(id int64, report *model.ImportReport, status, errorMessage string) error {
	total, parsed, skipped, imported := 0, 0, 0, 0
	if report != nil {
		total = report.TotalSheets
		parsed = report.ParsedSheets
		skipped = report.SkippedSheets
		imported = report.ImportedRows
	}
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			total_sheets = ?,
			parsed_sheets = ?,
			skipped_sheets = ?,
			imported_rows = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, total, parsed, skipped, imported, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}
