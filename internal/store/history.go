// Package store persists fund state: the fund JSON file and a SQLite
// history of monthly cycles.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/theirongolddev/rockpile/internal/money"
	"github.com/theirongolddev/rockpile/internal/settle"

	_ "modernc.org/sqlite" // register sqlite driver
)

var (
	// ErrCycleNotFound is returned when no recorded cycle matches an id.
	ErrCycleNotFound = errors.New("cycle not found")
	// ErrAmbiguousCycle is returned when an id prefix matches several cycles.
	ErrAmbiguousCycle = errors.New("cycle id prefix is ambiguous")
)

// History records monthly cycle reports in SQLite.
type History struct {
	db *sql.DB
}

// CycleSummary is one recorded cycle without its lines.
type CycleSummary struct {
	ID           string
	RanAt        time.Time
	Opening      money.Cents
	TotalIncome  money.Cents
	TotalPaid    money.Cents
	SkippedCount int
	Share        money.Cents
	MemberCount  int
	Closing      money.Cents
}

// CycleLine is one recorded line of a cycle report.
type CycleLine struct {
	Seq     int
	Kind    string
	Subject string
	Amount  money.Cents
	Text    string
}

// OpenHistory opens or creates the history database at dbPath.
func OpenHistory(dbPath string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// Record stores a cycle report and its lines, returning the new cycle id.
func (h *History) Record(r settle.Report, at time.Time) (string, error) {
	tx, err := h.db.Begin()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	id := uuid.NewString()
	_, err = tx.Exec(`INSERT INTO cycles
		(id, ran_at, opening_balance, total_income, total_paid, skipped_count,
		 share, member_count, closing_balance)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, at.UTC().Format(ranAtLayout), int64(r.Opening), int64(r.TotalIncome()),
		int64(r.TotalPaid()), len(r.Unpaid()), int64(r.Distribution.Share),
		len(r.Distribution.Members), int64(r.Closing),
	)
	if err != nil {
		return "", fmt.Errorf("inserting cycle: %w", err)
	}

	for i, l := range r.Lines() {
		_, err = tx.Exec(`INSERT INTO cycle_lines
			(cycle_id, seq, kind, subject, amount_cents, text)
			VALUES (?, ?, ?, ?, ?, ?)`,
			id, i, l.Kind, l.Subject, int64(l.Amount), l.Text,
		)
		if err != nil {
			return "", fmt.Errorf("inserting cycle line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// ranAtLayout is fixed width, so ran_at sorts chronologically as text.
const ranAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

const summaryColumns = `id, ran_at, opening_balance, total_income, total_paid,
	skipped_count, share, member_count, closing_balance`

// Recent returns up to limit cycles, newest first.
func (h *History) Recent(limit int) ([]CycleSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := h.db.Query(`SELECT `+summaryColumns+` FROM cycles
		ORDER BY ran_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []CycleSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Get returns the cycle whose id equals or starts with idPrefix.
func (h *History) Get(idPrefix string) (CycleSummary, error) {
	rows, err := h.db.Query(`SELECT `+summaryColumns+` FROM cycles
		WHERE substr(id, 1, length(?)) = ? LIMIT 2`, idPrefix, idPrefix)
	if err != nil {
		return CycleSummary{}, err
	}
	defer func() { _ = rows.Close() }()

	var found []CycleSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return CycleSummary{}, err
		}
		found = append(found, s)
	}
	if err := rows.Err(); err != nil {
		return CycleSummary{}, err
	}

	switch len(found) {
	case 0:
		return CycleSummary{}, ErrCycleNotFound
	case 1:
		return found[0], nil
	default:
		return CycleSummary{}, ErrAmbiguousCycle
	}
}

// Latest returns the most recently recorded cycle.
func (h *History) Latest() (CycleSummary, error) {
	recent, err := h.Recent(1)
	if err != nil {
		return CycleSummary{}, err
	}
	if len(recent) == 0 {
		return CycleSummary{}, ErrCycleNotFound
	}
	return recent[0], nil
}

// Lines returns the recorded lines of a cycle in their original order.
func (h *History) Lines(cycleID string) ([]CycleLine, error) {
	rows, err := h.db.Query(`SELECT seq, kind, subject, amount_cents, text
		FROM cycle_lines WHERE cycle_id = ? ORDER BY seq`, cycleID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []CycleLine
	for rows.Next() {
		var l CycleLine
		var amount int64
		if err := rows.Scan(&l.Seq, &l.Kind, &l.Subject, &amount, &l.Text); err != nil {
			return nil, err
		}
		l.Amount = money.Cents(amount)
		out = append(out, l)
	}
	return out, rows.Err()
}

// Count returns the number of recorded cycles.
func (h *History) Count() (int, error) {
	var count int
	err := h.db.QueryRow("SELECT COUNT(*) FROM cycles").Scan(&count)
	return count, err
}

// Delete removes a cycle and, through the foreign key, its lines.
func (h *History) Delete(cycleID string) error {
	res, err := h.db.Exec("DELETE FROM cycles WHERE id = ?", cycleID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCycleNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (CycleSummary, error) {
	var s CycleSummary
	var ranAt string
	var opening, income, paid, share, closing int64
	err := row.Scan(&s.ID, &ranAt, &opening, &income, &paid,
		&s.SkippedCount, &share, &s.MemberCount, &closing)
	if err != nil {
		return CycleSummary{}, err
	}
	s.RanAt, _ = time.Parse(ranAtLayout, ranAt)
	s.Opening = money.Cents(opening)
	s.TotalIncome = money.Cents(income)
	s.TotalPaid = money.Cents(paid)
	s.Share = money.Cents(share)
	s.Closing = money.Cents(closing)
	return s, nil
}
