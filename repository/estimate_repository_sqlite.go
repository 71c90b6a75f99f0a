package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"roi-calculator/domain"
)

const estimateSchema = `
CREATE TABLE IF NOT EXISTS estimates (
	id           TEXT PRIMARY KEY,
	created_at   TEXT NOT NULL,
	industry     TEXT NOT NULL,
	company_size TEXT NOT NULL,
	input        TEXT NOT NULL,
	result       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS estimates_created_at ON estimates (created_at);
`

type estimateRow struct {
	ID          string `db:"id"`
	CreatedAt   string `db:"created_at"`
	Industry    string `db:"industry"`
	CompanySize string `db:"company_size"`
	Input       string `db:"input"`
	Result      string `db:"result"`
}

// EstimateRepositorySQLite persists estimates to a SQLite file.
type EstimateRepositorySQLite struct {
	db *sqlx.DB
}

func NewEstimateRepositorySQLite(dbPath string) (*EstimateRepositorySQLite, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(estimateSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &EstimateRepositorySQLite{db: db}, nil
}

func (r *EstimateRepositorySQLite) Close() error {
	return r.db.Close()
}

func (r *EstimateRepositorySQLite) Save(ctx context.Context, record domain.EstimateRecord) error {
	input, err := json.Marshal(record.Input)
	if err != nil {
		return fmt.Errorf("marshal input: %w", err)
	}
	result, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	row := estimateRow{
		ID:          record.ID,
		CreatedAt:   record.CreatedAt.UTC().Format(time.RFC3339Nano),
		Industry:    string(record.Input.Industry),
		CompanySize: string(record.Input.CompanySize),
		Input:       string(input),
		Result:      string(result),
	}

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO estimates (id, created_at, industry, company_size, input, result)
		VALUES (:id, :created_at, :industry, :company_size, :input, :result)`, row)
	if err != nil {
		return fmt.Errorf("insert estimate %s: %w", record.ID, err)
	}
	return nil
}

func (r *EstimateRepositorySQLite) Get(ctx context.Context, id string) (domain.EstimateRecord, error) {
	var row estimateRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM estimates WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.EstimateRecord{}, fmt.Errorf("estimate %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.EstimateRecord{}, fmt.Errorf("select estimate %s: %w", id, err)
	}
	return row.toRecord()
}

func (r *EstimateRepositorySQLite) List(ctx context.Context, limit int) ([]domain.EstimateRecord, error) {
	var rows []estimateRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM estimates ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list estimates: %w", err)
	}

	out := make([]domain.EstimateRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (row estimateRow) toRecord() (domain.EstimateRecord, error) {
	rec := domain.EstimateRecord{ID: row.ID}

	createdAt, err := time.Parse(time.RFC3339Nano, row.CreatedAt)
	if err != nil {
		return rec, fmt.Errorf("parse created_at for %s: %w", row.ID, err)
	}
	rec.CreatedAt = createdAt

	if err := json.Unmarshal([]byte(row.Input), &rec.Input); err != nil {
		return rec, fmt.Errorf("unmarshal input for %s: %w", row.ID, err)
	}
	if err := json.Unmarshal([]byte(row.Result), &rec.Result); err != nil {
		return rec, fmt.Errorf("unmarshal result for %s: %w", row.ID, err)
	}
	return rec, nil
}
