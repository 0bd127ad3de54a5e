// Package api holds the HTTP clients for the remote management API — one
// client per resource family over a shared base transport. Every operation
// returns either the decoded payload or a classified failure: a *RemoteError
// when the server answered with a non-2xx status, a plain transport error when
// it did not answer at all. No call is retried.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"comanda/internal/apierror"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RemoteError is a server-rejected request: the backend was reachable and
// answered with a non-2xx status.
type RemoteError struct {
	Status int
	Detail string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("Código de error: %d, mensaje: %s", e.Status, e.Detail)
}

// Message renders any client failure as the single user-facing string shown in
// a notification. Transport failures collapse into a generic message because
// the raw dial/timeout errors mean nothing to an operator.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Error()
	}
	return "Error desconocido: no se pudo contactar al servidor"
}

// Client is the shared base transport. Resource clients wrap it; they never
// touch net/http directly.
type Client struct {
	baseURL string
	httpc   *http.Client
	breaker *Breaker
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		breaker: NewBreaker(DefaultBreakerConfig()),
	}
}

// Breaker exposes the transport breaker for health reporting.
func (c *Client) Breaker() *Breaker { return c.breaker }

// do issues one JSON request against the remote API. tok is attached as a
// bearer token when non-empty. out, when non-nil, receives the decoded 2xx
// body. The breaker only counts transport failures: a 4xx/5xx answer proves
// the backend is alive, and a request abandoned by its own caller proves
// nothing at all.
func (c *Client) do(ctx context.Context, tok, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshal body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	var resp *http.Response
	err = c.breaker.Execute(func() error {
		var doErr error
		resp, doErr = c.httpc.Do(req)
		if doErr != nil && ctx.Err() != nil {
			// The caller abandoned its own request; the backend's health
			// is unknown, so the breaker must not count it.
			return Neutral(doErr)
		}
		return doErr
	})
	if err != nil {
		log.Error().Str("method", method).Str("path", path).Err(err).
			Msg("api: transport failure")
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		remote := &RemoteError{Status: resp.StatusCode, Detail: remoteDetail(resp.Body)}
		log.Error().Str("method", method).Str("path", path).
			Int("status", resp.StatusCode).Str("detail", remote.Detail).
			Msg("api: server-rejected request")
		return remote
	}

	if out == nil {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s %s response: %w", method, path, err)
	}
	return nil
}

// remoteDetail extracts the backend's error message when the body carries the
// usual {"detail": …} or {"message": …} envelope; otherwise the raw text.
func remoteDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "sin detalle"
	}
	var envelope apierror.APIError
	if json.Unmarshal(raw, &envelope) == nil && envelope.Detail != "" {
		return envelope.Detail
	}
	var alt struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &alt) == nil && alt.Message != "" {
		return alt.Message
	}
	return string(raw)
}
