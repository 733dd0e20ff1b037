// Package supabase persists domain entities through the managed
// platform's PostgREST API. Each table gets its own store implementing
// the corresponding port; row DTOs stay unexported so the PostgREST
// column shapes never leak into the domain.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/journiq/journiq-server/internal/adapters/clients"
	"github.com/journiq/journiq-server/internal/adapters/clients/acl"
)

// serviceName identifies the database upstream in errors and logs.
const serviceName = "supabase"

// restPrefix is the PostgREST path prefix on a project base URL.
const restPrefix = "/rest/v1/"

// PostgREST Prefer header values.
const (
	preferRepresentation = "return=representation"
	preferUpsert         = "resolution=merge-duplicates,return=minimal"
)

// StoreConfig contains configuration shared by all table stores.
type StoreConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should be the project URL and its AuthFunc
	// should inject the service key headers.
	Client *clients.Client
}

// table is shared PostgREST plumbing for one database table.
type table struct {
	client *clients.Client
	name   string
}

func newTable(cfg StoreConfig, name string) table {
	if cfg.Client == nil {
		panic("supabase: Client is required")
	}

	return table{client: cfg.Client, name: name}
}

// path builds the PostgREST path for this table with an optional
// filter query (already URL-encoded by the caller).
func (t *table) path(query string) string {
	p := restPrefix + t.name
	if query != "" {
		p += "?" + query
	}

	return p
}

// get performs a filtered read and returns the response body.
func (t *table) get(ctx context.Context, query, operation string) (io.ReadCloser, error) {
	resp, err := t.client.Get(ctx, t.path(query))

	return t.handleResponse(resp, err, operation)
}

// write performs a POST or PATCH with a JSON payload and the given
// Prefer directive, returning the response body.
func (t *table) write(ctx context.Context, method, query string, payload any, prefer, operation string) (io.ReadCloser, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", t.name, err)
	}

	req, err := t.client.NewRequest(ctx, method, t.path(query), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := t.client.Do(ctx, req)

	return t.handleResponse(resp, err, operation)
}

func (t *table) handleResponse(resp *http.Response, err error, operation string) (io.ReadCloser, error) {
	if err != nil {
		return nil, acl.MapHTTPError(nil, err, serviceName, operation)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		return nil, acl.MapHTTPError(resp, nil, serviceName, operation)
	}

	return resp.Body, nil
}

// decodeRows decodes a PostgREST row array, closing the body.
func decodeRows[T any](body io.ReadCloser) ([]T, error) {
	defer func() { _ = body.Close() }()

	var rows []T
	if err := json.NewDecoder(body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding rows: %w", err)
	}

	return rows, nil
}

// discard drains and closes a response body whose content is not needed.
func discard(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
