// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists the device catalog and the append-only choice
// history in a local SQLite database.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/mobile-advisor/pkg/types"
)

const defaultDBPath = "advisor.db"

// Store manages the catalog SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the catalog database at cfg.DBPath and creates
// the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	path := cfg.DBPath
	if path == "" {
		path = defaultDBPath
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS devices (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			brand TEXT NOT NULL,
			model TEXT NOT NULL,
			price_range TEXT NOT NULL,
			ram INTEGER NOT NULL,
			storage INTEGER NOT NULL,
			camera_mp INTEGER NOT NULL,
			battery_mah INTEGER NOT NULL,
			screen_size REAL NOT NULL,
			operating_system TEXT NOT NULL,
			processor_type TEXT NOT NULL,
			network_type TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS choices (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			price_range TEXT NOT NULL,
			ram INTEGER NOT NULL,
			storage INTEGER NOT NULL,
			camera_mp INTEGER NOT NULL,
			battery_mah INTEGER NOT NULL,
			screen_size REAL NOT NULL,
			operating_system TEXT NOT NULL,
			processor_type TEXT NOT NULL,
			network_type TEXT NOT NULL,
			chosen_brand TEXT NOT NULL,
			chosen_model TEXT NOT NULL,
			recommendation_source TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_choices_price_os
			ON choices(price_range, operating_system)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Devices returns the full catalog in insertion order. Catalog order is
// significant downstream: it is the tie-break order for ranking and
// matching.
func (s *Store) Devices(ctx context.Context) ([]types.Device, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, brand, model, price_range, ram, storage, camera_mp,
			battery_mah, screen_size, operating_system, processor_type, network_type
		 FROM devices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying devices: %w", err)
	}
	defer rows.Close()

	var devices []types.Device
	for rows.Next() {
		var d types.Device
		if err := rows.Scan(&d.ID, &d.Brand, &d.Model,
			&d.PriceTier, &d.RAM, &d.Storage, &d.CameraMP,
			&d.BatteryMAh, &d.ScreenSize, &d.OS, &d.Processor, &d.Network); err != nil {
			return nil, fmt.Errorf("scanning device: %w", err)
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

// Choices returns the full choice history in insertion order.
func (s *Store) Choices(ctx context.Context) ([]types.Choice, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, price_range, ram, storage, camera_mp, battery_mah,
			screen_size, operating_system, processor_type, network_type,
			chosen_brand, chosen_model, recommendation_source, created_at
		 FROM choices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying choices: %w", err)
	}
	defer rows.Close()

	var choices []types.Choice
	for rows.Next() {
		var c types.Choice
		// The driver converts TIMESTAMP columns to time.Time itself.
		if err := rows.Scan(&c.ID,
			&c.Preferences.PriceTier, &c.Preferences.RAM, &c.Preferences.Storage,
			&c.Preferences.CameraMP, &c.Preferences.BatteryMAh, &c.Preferences.ScreenSize,
			&c.Preferences.OS, &c.Preferences.Processor, &c.Preferences.Network,
			&c.ChosenBrand, &c.ChosenModel, &c.Source, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning choice: %w", err)
		}
		choices = append(choices, c)
	}
	return choices, rows.Err()
}

// AppendChoice records one accepted recommendation. The history is
// append-only; nothing in the engine updates or deletes past choices.
// Unlike the scoring paths, a failed write here is surfaced to the caller:
// silently losing history would skew every future popularity bonus.
func (s *Store) AppendChoice(ctx context.Context, c types.Choice) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO choices (price_range, ram, storage, camera_mp, battery_mah,
			screen_size, operating_system, processor_type, network_type,
			chosen_brand, chosen_model, recommendation_source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Preferences.PriceTier, c.Preferences.RAM, c.Preferences.Storage,
		c.Preferences.CameraMP, c.Preferences.BatteryMAh, c.Preferences.ScreenSize,
		c.Preferences.OS, c.Preferences.Processor, c.Preferences.Network,
		c.ChosenBrand, c.ChosenModel, c.Source)
	if err != nil {
		return fmt.Errorf("appending choice: %w", err)
	}
	return nil
}

// AddDevices inserts devices into the catalog in the given order, inside a
// single transaction.
func (s *Store) AddDevices(ctx context.Context, devices []types.Device) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO devices (brand, model, price_range, ram, storage, camera_mp,
			battery_mah, screen_size, operating_system, processor_type, network_type)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range devices {
		_, err := stmt.ExecContext(ctx,
			d.Brand, d.Model, d.PriceTier, d.RAM, d.Storage, d.CameraMP,
			d.BatteryMAh, d.ScreenSize, d.OS, d.Processor, d.Network)
		if err != nil {
			return fmt.Errorf("inserting device %s %s: %w", d.Brand, d.Model, err)
		}
	}

	return tx.Commit()
}

// DeviceCount returns the number of devices in the catalog.
func (s *Store) DeviceCount(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM devices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting devices: %w", err)
	}
	return n, nil
}
