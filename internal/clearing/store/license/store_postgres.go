package license

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clearview/internal/clearing/models"
	id "clearview/pkg/domain"
)

// Schema creates the license reference table.
const Schema = `
CREATE TABLE IF NOT EXISTS license_ref (
	rf_pk        BIGINT PRIMARY KEY,
	rf_shortname TEXT   NOT NULL
);
`

// PostgresStore reads the license catalog from PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the table when missing.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("migrate license_ref: %w", err)
	}
	return nil
}

// Save upserts a catalog entry.
func (s *PostgresStore) Save(ctx context.Context, ref models.LicenseRef) error {
	query := `
		INSERT INTO license_ref (rf_pk, rf_shortname)
		VALUES ($1, $2)
		ON CONFLICT (rf_pk) DO UPDATE SET rf_shortname = EXCLUDED.rf_shortname
	`
	if _, err := s.db.ExecContext(ctx, query, int64(ref.ID), ref.ShortName); err != nil {
		return fmt.Errorf("save license: %w", err)
	}
	return nil
}

func (s *PostgresStore) LookupLicense(ctx context.Context, license id.LicenseID) (models.LicenseRef, error) {
	ref := models.LicenseRef{ID: license}
	err := s.db.QueryRowContext(ctx,
		`SELECT rf_shortname FROM license_ref WHERE rf_pk = $1`, int64(license)).Scan(&ref.ShortName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LicenseRef{}, unknownLicense(license)
		}
		return models.LicenseRef{}, fmt.Errorf("lookup license: %w", err)
	}
	return ref, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.LicenseRef, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT rf_pk, rf_shortname FROM license_ref ORDER BY rf_shortname, rf_pk`)
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	defer rows.Close()

	var out []models.LicenseRef
	for rows.Next() {
		var (
			pk  int64
			ref models.LicenseRef
		)
		if err := rows.Scan(&pk, &ref.ShortName); err != nil {
			return nil, fmt.Errorf("scan license: %w", err)
		}
		ref.ID = id.LicenseID(pk)
		out = append(out, ref)
	}
	return out, rows.Err()
}
