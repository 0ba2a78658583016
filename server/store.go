package server

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradejournal/journal"
)

// ErrNotFound is returned when an entry id does not exist.
var ErrNotFound = errors.New("entry not found")

const entryColumns = `id, date, ltf, htf, bias, kill_zone, "array", results, pnl,
	emotions, before_trade_emotions, in_trade_emotions, after_trade_emotions,
	mistake, reason, created_at, updated_at`

// Store is the SQLite persistence layer behind the reference server.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed initializes) a journal database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// List returns entries for the filter, newest first. The filter is
// expected to be resolved already: either ShowAll or a concrete
// month/year.
func (s *Store) List(f journal.Filter) ([]journal.WireEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries`
	var args []any
	if !f.ShowAll {
		query += ` WHERE date LIKE ?`
		args = append(args, fmt.Sprintf("%04d-%02d-%%", f.Year, f.Month))
	}
	query += ` ORDER BY date DESC, id DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []journal.WireEntry
	for rows.Next() {
		w, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns a single entry by id.
func (s *Store) Get(id int64) (journal.WireEntry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	w, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return journal.WireEntry{}, fmt.Errorf("entry %d: %w", id, ErrNotFound)
		}
		return journal.WireEntry{}, err
	}
	return w, nil
}

// Create inserts a new entry from the posted wire fields, assigning id
// and timestamps, and returns the stored record.
func (s *Store) Create(w journal.WireEntry) (journal.WireEntry, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	res, err := s.db.Exec(`
		INSERT INTO entries
		(date, ltf, htf, bias, kill_zone, "array", results, pnl,
		 emotions, before_trade_emotions, in_trade_emotions, after_trade_emotions,
		 mistake, reason, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nullableDate(w.Date), w.LTF, w.HTF, w.Bias, w.KillZone, w.Array, w.Results,
		defaultPNL(w.PNL), w.Emotions, w.BeforeTradeEmotions, w.InTradeEmotions,
		w.AfterTradeEmotions, w.Mistake, w.Reason, now, now,
	)
	if err != nil {
		return journal.WireEntry{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return journal.WireEntry{}, err
	}
	return s.Get(id)
}

// patchColumns whitelists the columns a PATCH may touch, keyed by the
// wire field name.
var patchColumns = map[string]string{
	"date":                  "date",
	"ltf":                   "ltf",
	"htf":                   "htf",
	"bias":                  "bias",
	"kill_zone":             "kill_zone",
	"array":                 `"array"`,
	"results":               "results",
	"pnl":                   "pnl",
	"emotions":              "emotions",
	"before_trade_emotions": "before_trade_emotions",
	"in_trade_emotions":     "in_trade_emotions",
	"after_trade_emotions":  "after_trade_emotions",
	"mistake":               "mistake",
	"reason":                "reason",
}

// Update applies a partial field map (wire encoding, date may be nil for
// null) and returns the full updated record. Unknown fields are
// rejected.
func (s *Store) Update(id int64, fields map[string]any) (journal.WireEntry, error) {
	if len(fields) == 0 {
		return s.Get(id)
	}

	var (
		sets []string
		args []any
	)
	for name, value := range fields {
		col, ok := patchColumns[name]
		if !ok {
			return journal.WireEntry{}, fmt.Errorf("unknown field %q", name)
		}
		sets = append(sets, col+" = ?")
		switch v := value.(type) {
		case nil:
			args = append(args, nil)
		case string:
			args = append(args, v)
		default:
			args = append(args, fmt.Sprintf("%v", v))
		}
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC().Format(time.RFC3339), id)

	res, err := s.db.Exec(`UPDATE entries SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return journal.WireEntry{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return journal.WireEntry{}, err
	}
	if n == 0 {
		return journal.WireEntry{}, fmt.Errorf("entry %d: %w", id, ErrNotFound)
	}
	return s.Get(id)
}

// Delete removes an entry by id.
func (s *Store) Delete(id int64) error {
	res, err := s.db.Exec(`DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("entry %d: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (journal.WireEntry, error) {
	var (
		w    journal.WireEntry
		date sql.NullString
	)
	err := row.Scan(
		&w.ID,
		&date,
		&w.LTF,
		&w.HTF,
		&w.Bias,
		&w.KillZone,
		&w.Array,
		&w.Results,
		&w.PNL,
		&w.Emotions,
		&w.BeforeTradeEmotions,
		&w.InTradeEmotions,
		&w.AfterTradeEmotions,
		&w.Mistake,
		&w.Reason,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return journal.WireEntry{}, err
	}
	if date.Valid && date.String != "" {
		w.Date = &date.String
	}
	return w, nil
}

func nullableDate(date *string) any {
	if date == nil || *date == "" {
		return nil
	}
	return *date
}

func defaultPNL(pnl string) string {
	if strings.TrimSpace(pnl) == "" {
		return "0"
	}
	return pnl
}
