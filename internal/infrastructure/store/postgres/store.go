// Package postgres is the alternative RecordStore backend for deployments
// that outgrow a shared workbook. Row order is preserved through an explicit
// position column so replays reconcile the same way every time.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/talentops/resume-intake/internal/core/domain"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS candidate_records (
    position         INT PRIMARY KEY,
    source_date      TEXT NOT NULL,
    month            TEXT NOT NULL,
    year             TEXT NOT NULL,
    skill            TEXT NOT NULL,
    candidate_name   TEXT NOT NULL,
    total_experience TEXT NOT NULL,
    email_id         TEXT NOT NULL,
    phone_number     TEXT NOT NULL,
    file_name        TEXT NOT NULL,
    status           TEXT NOT NULL
)
`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context) (domain.Dataset, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT source_date, month, year, skill, candidate_name, total_experience, email_id, phone_number, file_name, status
FROM candidate_records
ORDER BY position
`)
	if err != nil {
		return nil, domain.WrapError(domain.ErrStoreLoad, "select records", err)
	}
	defer rows.Close()

	var ds domain.Dataset
	for rows.Next() {
		var rec domain.CandidateRecord
		var skill, status string
		if err := rows.Scan(
			&rec.SourceDate,
			&rec.Month,
			&rec.Year,
			&skill,
			&rec.CandidateName,
			&rec.TotalExperience,
			&rec.EmailID,
			&rec.PhoneNumber,
			&rec.FileName,
			&status,
		); err != nil {
			return nil, domain.WrapError(domain.ErrStoreLoad, "scan record", err)
		}
		rec.Skills = domain.ParseSkillList(skill)
		rec.Status = domain.RecordStatus(status)
		ds = append(ds, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapError(domain.ErrStoreLoad, "iterate records", err)
	}
	return ds, nil
}

// Save replaces the whole table inside one transaction, mirroring the
// workbook backend's rewrite-everything contract.
func (s *Store) Save(ctx context.Context, ds domain.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.WrapError(domain.ErrStoreSave, "begin tx", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM candidate_records`); err != nil {
		return domain.WrapError(domain.ErrStoreSave, "clear records", err)
	}
	for i, rec := range ds {
		_, err := tx.ExecContext(ctx, `
INSERT INTO candidate_records (position, source_date, month, year, skill, candidate_name, total_experience, email_id, phone_number, file_name, status)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
`, i,
			rec.SourceDate,
			rec.Month,
			rec.Year,
			rec.SkillList(),
			rec.CandidateName,
			rec.TotalExperience,
			rec.EmailID,
			rec.PhoneNumber,
			rec.FileName,
			string(rec.Status),
		)
		if err != nil {
			return domain.WrapError(domain.ErrStoreSave, "insert record", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return domain.WrapError(domain.ErrStoreSave, "commit", err)
	}
	return nil
}
