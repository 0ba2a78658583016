package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/pkg/id"
)

// DefaultBaseURL is the journal backend used when none is configured.
const DefaultBaseURL = "http://localhost:8000/api"

// Client talks to the journal backend's REST surface. All methods take a
// context; the client itself applies a request timeout and attaches a
// ULID X-Request-ID header so individual saves can be traced server-side.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a journal API client. An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// filterParams encodes a filter the way the backend expects: all=true
// overrides month/year, and the default period sends no parameters.
func filterParams(f journal.Filter) url.Values {
	params := url.Values{}
	if f.ShowAll {
		params.Set("all", "true")
	} else if f.Month > 0 && f.Year > 0 {
		params.Set("month", fmt.Sprintf("%d", f.Month))
		params.Set("year", fmt.Sprintf("%d", f.Year))
	}
	return params
}

// ListEntries fetches the entries matching the filter, decoded to
// display form in the order the backend returned them.
func (c *Client) ListEntries(ctx context.Context, f journal.Filter) ([]journal.Entry, error) {
	var wire []journal.WireEntry
	if err := c.do(ctx, http.MethodGet, "/journal/entries/", filterParams(f), nil, &wire); err != nil {
		return nil, err
	}
	entries := make([]journal.Entry, 0, len(wire))
	for _, w := range wire {
		entries = append(entries, w.Decode())
	}
	return entries, nil
}

// GetEntry fetches a single entry by id. A 404 maps to ErrNotFound.
func (c *Client) GetEntry(ctx context.Context, entryID string) (journal.Entry, error) {
	var wire journal.WireEntry
	err := c.do(ctx, http.MethodGet, "/journal/entries/"+entryID+"/", nil, nil, &wire)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return journal.Entry{}, fmt.Errorf("entry %s: %w", entryID, ErrNotFound)
		}
		return journal.Entry{}, err
	}
	return wire.Decode(), nil
}

// CreateEntry creates a new entry with every field at its default value
// and returns the canonical record the server assigned.
func (c *Client) CreateEntry(ctx context.Context) (journal.Entry, error) {
	body := map[string]any{
		"date":                  nil,
		"ltf":                   "",
		"htf":                   "",
		"bias":                  "",
		"kill_zone":             "",
		"array":                 "",
		"results":               "",
		"pnl":                   "0",
		"emotions":              "",
		"before_trade_emotions": "",
		"in_trade_emotions":     "",
		"after_trade_emotions":  "",
		"mistake":               "",
		"reason":                "",
	}
	var wire journal.WireEntry
	if err := c.do(ctx, http.MethodPost, "/journal/entries/", nil, body, &wire); err != nil {
		return journal.Entry{}, err
	}
	return wire.Decode(), nil
}

// UpdateEntry persists a single field via PATCH. The value is a display
// value; it is wire-encoded with the codec rules for the field. The
// server returns the full canonical record, which replaces the local one.
func (c *Client) UpdateEntry(ctx context.Context, entryID string, field journal.Field, value any) (journal.Entry, error) {
	body := map[string]any{
		string(field): journal.ToWire(field, value),
	}
	var wire journal.WireEntry
	if err := c.do(ctx, http.MethodPatch, "/journal/entries/"+entryID+"/", nil, body, &wire); err != nil {
		return journal.Entry{}, err
	}
	return wire.Decode(), nil
}

// DeleteEntry deletes an entry. Any non-2xx response is a failure.
func (c *Client) DeleteEntry(ctx context.Context, entryID string) error {
	return c.do(ctx, http.MethodDelete, "/journal/entries/"+entryID+"/", nil, nil, nil)
}

// Stats fetches the aggregate snapshot for the filter.
func (c *Client) Stats(ctx context.Context, f journal.Filter) (journal.TradingStats, error) {
	var stats journal.TradingStats
	if err := c.do(ctx, http.MethodGet, "/journal/stats/", filterParams(f), nil, &stats); err != nil {
		return journal.TradingStats{}, err
	}
	return stats, nil
}

// Summary fetches the all-time rollup with the monthly breakdown.
func (c *Client) Summary(ctx context.Context) (journal.TradingSummary, error) {
	var sum journal.TradingSummary
	if err := c.do(ctx, http.MethodGet, "/journal/summary/", nil, nil, &sum); err != nil {
		return journal.TradingSummary{}, err
	}
	return sum, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	apiURL := c.baseURL + path
	if len(params) > 0 {
		apiURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", id.New())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
