// Package refdata - SQLite-backed vehicle store
package refdata

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"vehicle-cost/core/types"
	"vehicle-cost/internal/errors"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Store is a SQLite-backed vehicle source. It serves the same
// interface as the static catalog and lets deployments maintain their
// own vehicle data.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the vehicle database at path. With
// migrate set, pending embedded migrations are applied first.
func OpenStore(path string, migrate bool) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Data("open vehicle database", err)
	}

	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		db.Close()
		return nil, errors.Data("set sqlite pragmas", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Data("ping vehicle database", err)
	}

	if migrate {
		goose.SetBaseFS(migrationFS)
		if err := goose.SetDialect("sqlite3"); err != nil {
			db.Close()
			return nil, errors.Data("set migration dialect", err)
		}
		if err := goose.Up(db, "migrations"); err != nil {
			db.Close()
			return nil, errors.Data("apply vehicle database migrations", err)
		}
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Characteristics returns fuel economy and reliability data for a
// vehicle, preferring an exact model-year row and falling back to the
// newest row for the make/model.
func (s *Store) Characteristics(vehicleMake, model string, year int) (types.VehicleCharacteristics, error) {
	row := s.db.QueryRow(`
		SELECT mpg, mpge, is_electric, reliability, segment
		FROM vehicles
		WHERE make = ? COLLATE NOCASE AND model = ? COLLATE NOCASE
		ORDER BY CASE WHEN model_year = ? THEN 0 ELSE 1 END, model_year DESC
		LIMIT 1
	`, vehicleMake, model, year)

	var c types.VehicleCharacteristics
	var seg string
	err := row.Scan(&c.MPG, &c.MPGe, &c.IsElectric, &c.ReliabilityScore, &seg)
	if err == sql.ErrNoRows {
		return types.VehicleCharacteristics{}, errors.NotFound("vehicle", vehicleMake+" "+model)
	}
	if err != nil {
		return types.VehicleCharacteristics{}, errors.Data("query vehicle characteristics", err)
	}
	c.MarketSegment = types.Segment(seg)
	return c, nil
}

// TrimPrice returns the MSRP for a trim. An empty trim matches the
// base trim row.
func (s *Store) TrimPrice(vehicleMake, model string, year int, trim string) (decimal.Decimal, error) {
	row := s.db.QueryRow(`
		SELECT t.msrp
		FROM vehicle_trims t
		JOIN vehicles v ON v.id = t.vehicle_id
		WHERE v.make = ? COLLATE NOCASE AND v.model = ? COLLATE NOCASE
		  AND t.name = ? COLLATE NOCASE
		ORDER BY CASE WHEN v.model_year = ? THEN 0 ELSE 1 END, v.model_year DESC
		LIMIT 1
	`, vehicleMake, model, trim, year)

	var msrp float64
	err := row.Scan(&msrp)
	if err == sql.ErrNoRows {
		return decimal.Zero, errors.NotFound("trim", vehicleMake+" "+model+" "+trim)
	}
	if err != nil {
		return decimal.Zero, errors.Data("query trim price", err)
	}
	return decimal.NewFromFloat(msrp), nil
}

// Seed copies the built-in catalog into an empty store. Existing rows
// are left alone.
func (s *Store) Seed(modelYear int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Data("begin seed transaction", err)
	}
	defer tx.Rollback()

	insertVehicle, err := tx.Prepare(`
		INSERT OR IGNORE INTO vehicles (make, model, model_year, mpg, mpge, is_electric, reliability, segment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return errors.Data("prepare vehicle insert", err)
	}
	defer insertVehicle.Close()

	insertTrim, err := tx.Prepare(`
		INSERT OR IGNORE INTO vehicle_trims (vehicle_id, name, msrp)
		SELECT id, ?, ? FROM vehicles
		WHERE make = ? AND model = ? AND model_year = ?
	`)
	if err != nil {
		return errors.Data("prepare trim insert", err)
	}
	defer insertTrim.Close()

	for vehicleMake, models := range vehicleCatalog {
		for model, rec := range models {
			if _, err := insertVehicle.Exec(
				vehicleMake, model, modelYear,
				rec.mpg, rec.mpge, rec.electric, rec.reliability, string(rec.segment),
			); err != nil {
				return errors.Data("seed vehicle", err)
			}
			// The base trim is stored under the empty name
			for trim, msrp := range rec.trims {
				if _, err := insertTrim.Exec(trim, msrp, vehicleMake, model, modelYear); err != nil {
					return errors.Data("seed trim", err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Data("commit seed transaction", err)
	}
	return nil
}
