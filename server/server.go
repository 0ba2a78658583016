package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rustyeddy/tradejournal/journal"
)

// Server is a reference implementation of the journal backend's REST
// surface, backed by SQLite. The editor normally talks to a hosted
// backend; this one makes local use and blackbox testing possible with
// the exact same wire contract.
type Server struct {
	store *Store
	mux   *http.ServeMux
}

func New(store *Store) *Server {
	s := &Server{store: store, mux: http.NewServeMux()}

	s.mux.HandleFunc("GET /api/journal/entries/{$}", s.listEntries)
	s.mux.HandleFunc("POST /api/journal/entries/{$}", s.createEntry)
	s.mux.HandleFunc("GET /api/journal/entries/{id}/{$}", s.getEntry)
	s.mux.HandleFunc("PATCH /api/journal/entries/{id}/{$}", s.updateEntry)
	s.mux.HandleFunc("DELETE /api/journal/entries/{id}/{$}", s.deleteEntry)
	s.mux.HandleFunc("GET /api/journal/stats/{$}", s.stats)
	s.mux.HandleFunc("GET /api/journal/summary/{$}", s.summary)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// parseFilter reads month/year/all query parameters. A request with no
// usable filter resolves to the current month: the implicit period the
// editor reloads after clearing its filter.
func parseFilter(r *http.Request) journal.Filter {
	q := r.URL.Query()
	if q.Get("all") == "true" {
		return journal.Filter{ShowAll: true}
	}

	month, _ := strconv.Atoi(q.Get("month"))
	year, _ := strconv.Atoi(q.Get("year"))
	if month >= 1 && month <= 12 && year > 0 {
		return journal.Filter{Month: month, Year: year}
	}

	now := time.Now()
	return journal.Filter{Month: int(now.Month()), Year: now.Year()}
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.List(parseFilter(r))
	if err != nil {
		s.fail(w, err)
		return
	}
	if entries == nil {
		entries = []journal.WireEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) createEntry(w http.ResponseWriter, r *http.Request) {
	var body journal.WireEntry
	if r.Body != nil {
		// A malformed or empty body still creates a default entry.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	entry, err := s.store.Create(body)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) getEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}
	entry, err := s.store.Get(id)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) updateEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	entry, err := s.store.Update(id, fields)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) deleteEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}
	if err := s.store.Delete(id); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats(parseFilter(r))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.store.Summary()
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func entryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
