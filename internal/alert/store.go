package alert

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"StockRadar/internal/model"
)

// Store persists alert definitions. Evaluation state is never stored;
// only the user-defined conditions are.
type Store interface {
	Add(a model.Alert) (model.Alert, error)
	List() ([]model.Alert, error)
	Delete(id string) error
	Close() error
}

// SQLiteStore keeps alerts in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info().Str("path", dbPath).Msg("sqlite alert store opened")
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS alerts (
			id         TEXT PRIMARY KEY,
			type       TEXT NOT NULL,
			ticker     TEXT NOT NULL,
			condition  TEXT,
			threshold  REAL,
			signal     TEXT,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_ticker ON alerts(ticker)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// Add stores a new alert, assigning an ID and creation time if missing.
func (s *SQLiteStore) Add(a model.Alert) (model.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(`INSERT INTO alerts (id, type, ticker, condition, threshold, signal, created_at)
		VALUES (?,?,?,?,?,?,?)`,
		a.ID, string(a.Type), a.Ticker, string(a.Condition), a.Threshold, string(a.Signal), a.CreatedAt.Unix(),
	)
	if err != nil {
		return model.Alert{}, fmt.Errorf("insert alert: %w", err)
	}
	return a, nil
}

// List returns all alerts ordered by creation time.
func (s *SQLiteStore) List() ([]model.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, type, ticker, condition, threshold, signal, created_at
		FROM alerts ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer rows.Close()

	var out []model.Alert
	for rows.Next() {
		var a model.Alert
		var typ, cond, sig string
		var created int64
		if err := rows.Scan(&a.ID, &typ, &a.Ticker, &cond, &a.Threshold, &sig, &created); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		a.Type = model.AlertType(typ)
		a.Condition = model.Condition(cond)
		a.Signal = model.MACDSignalKind(sig)
		a.CreatedAt = time.Unix(created, 0)
		out = append(out, a)
	}
	return out, rows.Err()
}

// Delete removes an alert by ID.
func (s *SQLiteStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM alerts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete alert: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("alert %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
