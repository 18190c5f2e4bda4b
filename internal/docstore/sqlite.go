// Package docstore persists case records and generated drafts in SQLite so
// a user can return to earlier filings.
package docstore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/lawmaster-kr/lawmaster/internal/casefile"
	"github.com/lawmaster-kr/lawmaster/internal/draft"
)

// ErrNotFound is returned when a case or draft id does not exist.
var ErrNotFound = errors.New("docstore: not found")

const schema = `
CREATE TABLE IF NOT EXISTS cases (
	case_id    TEXT PRIMARY KEY,
	plaintiff  TEXT NOT NULL DEFAULT '',
	defendant  TEXT NOT NULL DEFAULT '',
	amount     TEXT NOT NULL DEFAULT '',
	facts      TEXT NOT NULL DEFAULT '',
	evidence   TEXT NOT NULL DEFAULT '',
	court      TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS drafts (
	draft_id    TEXT PRIMARY KEY,
	case_id     TEXT NOT NULL DEFAULT '',
	doc_type    TEXT NOT NULL DEFAULT '',
	court       TEXT NOT NULL DEFAULT '',
	scenario    TEXT NOT NULL DEFAULT '',
	principal   INTEGER NOT NULL DEFAULT 0,
	stamp_duty  INTEGER NOT NULL DEFAULT 0,
	service_fee INTEGER NOT NULL DEFAULT 0,
	body        TEXT NOT NULL DEFAULT '',
	model       TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL
);
`

// StoredCase is a case record plus its storage identity.
type StoredCase struct {
	CaseID    string          `db:"case_id" json:"case_id"`
	Record    casefile.Record `db:"-" json:"record"`
	CreatedAt time.Time       `db:"-" json:"created_at"`
	UpdatedAt time.Time       `db:"-" json:"updated_at"`
}

// StoredDraft is a generated document plus the figures it was drafted with.
type StoredDraft struct {
	DraftID    string    `db:"draft_id" json:"draft_id"`
	CaseID     string    `db:"case_id" json:"case_id"`
	DocType    string    `db:"doc_type" json:"doc_type"`
	Court      string    `db:"court" json:"court"`
	Scenario   string    `db:"scenario" json:"scenario"`
	Principal  int64     `db:"principal" json:"principal"`
	StampDuty  int64     `db:"stamp_duty" json:"stamp_duty"`
	ServiceFee int64     `db:"service_fee" json:"service_fee"`
	Body       string    `db:"body" json:"body"`
	Model      string    `db:"model" json:"model"`
	CreatedAt  time.Time `db:"-" json:"created_at"`
}

// Store is a SQLite-backed document store.
type Store struct {
	db *sqlx.DB
}

// Open creates or opens the store at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, raw)
	return t
}

// SaveCase inserts or updates a case record. An empty caseID inserts a new
// row under a fresh UUID; the id actually used is returned.
func (s *Store) SaveCase(caseID string, rec casefile.Record) (string, error) {
	now := time.Now()
	if caseID == "" {
		caseID = uuid.New().String()
	}
	_, err := s.db.Exec(`INSERT INTO cases (case_id, plaintiff, defendant, amount, facts, evidence, court, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(case_id) DO UPDATE SET
			plaintiff = excluded.plaintiff,
			defendant = excluded.defendant,
			amount = excluded.amount,
			facts = excluded.facts,
			evidence = excluded.evidence,
			court = excluded.court,
			updated_at = excluded.updated_at`,
		caseID, rec.Plaintiff, rec.Defendant, rec.Amount, rec.Facts, rec.Evidence, rec.Court,
		timeToString(now), timeToString(now),
	)
	if err != nil {
		return "", fmt.Errorf("save case: %w", err)
	}
	return caseID, nil
}

// GetCase fetches one case by id.
func (s *Store) GetCase(caseID string) (StoredCase, error) {
	row := s.db.QueryRow(`SELECT case_id, plaintiff, defendant, amount, facts, evidence, court, created_at, updated_at
		FROM cases WHERE case_id = ?`, caseID)
	return scanCase(row)
}

// ListCases returns every case, most recently updated first.
func (s *Store) ListCases() ([]StoredCase, error) {
	rows, err := s.db.Query(`SELECT case_id, plaintiff, defendant, amount, facts, evidence, court, created_at, updated_at
		FROM cases ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()
	var out []StoredCase
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner) (StoredCase, error) {
	var c StoredCase
	var createdAt, updatedAt string
	err := row.Scan(&c.CaseID, &c.Record.Plaintiff, &c.Record.Defendant, &c.Record.Amount,
		&c.Record.Facts, &c.Record.Evidence, &c.Record.Court, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredCase{}, ErrNotFound
	}
	if err != nil {
		return StoredCase{}, fmt.Errorf("scan case: %w", err)
	}
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return c, nil
}

// SaveDraft stores a generated document under a fresh UUID and returns it.
func (s *Store) SaveDraft(caseID string, res draft.Result) (string, error) {
	draftID := uuid.New().String()
	_, err := s.db.Exec(`INSERT INTO drafts (draft_id, case_id, doc_type, court, scenario, principal, stamp_duty, service_fee, body, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		draftID, caseID, res.DocType, res.Court, res.ScenarioLabel,
		res.Costs.Principal, res.Costs.StampDuty, res.Costs.ServiceFee,
		res.Text, res.Model, timeToString(time.Now()),
	)
	if err != nil {
		return "", fmt.Errorf("save draft: %w", err)
	}
	return draftID, nil
}

// GetDraft fetches one draft by id.
func (s *Store) GetDraft(draftID string) (StoredDraft, error) {
	row := s.db.QueryRow(`SELECT draft_id, case_id, doc_type, court, scenario, principal, stamp_duty, service_fee, body, model, created_at
		FROM drafts WHERE draft_id = ?`, draftID)
	return scanDraft(row)
}

// ListDrafts returns the drafts for a case, newest first. An empty caseID
// lists all drafts.
func (s *Store) ListDrafts(caseID string) ([]StoredDraft, error) {
	query := `SELECT draft_id, case_id, doc_type, court, scenario, principal, stamp_duty, service_fee, body, model, created_at
		FROM drafts`
	args := []any{}
	if caseID != "" {
		query += ` WHERE case_id = ?`
		args = append(args, caseID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()
	var out []StoredDraft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanDraft(row rowScanner) (StoredDraft, error) {
	var d StoredDraft
	var createdAt string
	err := row.Scan(&d.DraftID, &d.CaseID, &d.DocType, &d.Court, &d.Scenario,
		&d.Principal, &d.StampDuty, &d.ServiceFee, &d.Body, &d.Model, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredDraft{}, ErrNotFound
	}
	if err != nil {
		return StoredDraft{}, fmt.Errorf("scan draft: %w", err)
	}
	d.CreatedAt = parseTime(createdAt)
	return d, nil
}
