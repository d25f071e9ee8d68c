// Package fetcher reads conversation logs from a remote conversation logger.
//
// Fetch reports every failure to the caller. FetchAllConversations keeps the
// behaviour chatbot actions rely on: any failure is logged and turned into an
// empty list, so callers cannot tell "no conversations" from "fetch failed".
package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"conversationLogger/internal/errs"
	"conversationLogger/internal/logger"
	"conversationLogger/internal/models"
)

// Entry is one conversation log entry exactly as the server sent it.
type Entry = json.RawMessage

// StatusError is returned when the server answers outside the 2xx range.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

type Fetcher struct {
	endpoint Endpoint
	client   *http.Client
	log      *slog.Logger
}

type Option func(*Fetcher)

func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) { f.client = client }
}

func WithLogger(log *slog.Logger) Option {
	return func(f *Fetcher) { f.log = log }
}

func New(endpoint Endpoint, opts ...Option) *Fetcher {
	f := &Fetcher{
		endpoint: endpoint,
		client:   &http.Client{},
		log:      logger.L,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch issues a single GET against the endpoint and returns the array
// elements untouched. It never retries.
func (f *Fetcher) Fetch(ctx context.Context) ([]Entry, error) {
	url := f.endpoint.URL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var payload json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || payload[0] != '[' {
		return nil, errs.ErrUnexpectedPayload
	}

	entries := []Entry{}
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return entries, nil
}

// FetchAllConversations never fails: errors are logged and an empty, non-nil
// slice is returned. A body that is valid JSON but not an array counts as a
// failure too, so the result is always a list.
func (f *Fetcher) FetchAllConversations(ctx context.Context) []Entry {
	entries, err := f.Fetch(ctx)
	if err != nil {
		f.log.Error(fmt.Sprintf("Failed to fetch conversations: %v", err), "error", err, "url", f.endpoint.URL())
		return []Entry{}
	}
	return entries
}

// FetchLogs decodes every entry into a ConversationLog. Unlike
// FetchAllConversations, shape mismatches are returned as errors.
func (f *Fetcher) FetchLogs(ctx context.Context) ([]models.ConversationLog, error) {
	entries, err := f.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	logs := make([]models.ConversationLog, 0, len(entries))
	for i, entry := range entries {
		var log models.ConversationLog
		if err := json.Unmarshal(entry, &log); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		logs = append(logs, log)
	}
	return logs, nil
}
