package store

import (
	"fmt"

	"github.com/nikmatRMT/proyek-hargapangan-sub001/internal/model"
)

// SaveSnapshot replaces the persisted record set with the current working
// set, atomically. Truncate-and-rewrite keeps the file in lockstep with the
// positional-id semantics of the in-memory load.
func (s *Store) SaveSnapshot(records []model.PriceRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM price_reports`); err != nil {
		return fmt.Errorf("failed to clear price_reports: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO price_reports
			(id, date, market_id, market_name, commodity_id, commodity_name, unit, price, notes, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(r.ID, r.Date, r.MarketID, r.MarketName,
			r.CommodityID, r.CommodityName, r.Unit, r.Price, r.Notes, r.Source)
		if err != nil {
			return fmt.Errorf("failed to insert record %d: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// LoadRecords reads the persisted snapshot back, in id order. Callers feed
// the result into a fresh canonical load, which reassigns ids.
func (s *Store) LoadRecords() ([]model.PriceRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, date, market_id, market_name, commodity_id, commodity_name,
		       unit, price, notes, source
		FROM price_reports ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query price_reports: %w", err)
	}
	defer rows.Close()

	var records []model.PriceRecord
	for rows.Next() {
		var r model.PriceRecord
		if err := rows.Scan(&r.ID, &r.Date, &r.MarketID, &r.MarketName,
			&r.CommodityID, &r.CommodityName, &r.Unit, &r.Price, &r.Notes, &r.Source); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
