// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package advise

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/mobile-advisor/internal/httputil"
	"github.com/pdiddy/mobile-advisor/pkg/types"
)

// Backend abstracts the remote recommender service so tests can supply a
// mock. The single production implementation is HTTPBackend.
type Backend interface {
	Recommend(ctx context.Context, req Request) (Response, error)
}

// Request is the payload sent to the remote recommender: the user's
// preferences, the serialized catalog listing, and how many device
// mentions to return.
type Request struct {
	Preferences types.AttributeSet `json:"user_preferences"`
	Catalog     string             `json:"mobile_database"`
	Count       int                `json:"num_recommendations"`
}

// Response is the remote recommender's reply. On success it carries an
// ordered list of free-text device mentions and one shared reasoning
// string; on failure, Success is false and Error describes why.
type Response struct {
	Success         bool     `json:"success"`
	Recommendations []string `json:"recommendations"`
	Reasoning       string   `json:"reasoning"`
	Error           string   `json:"error"`
}

const defaultTimeout = 60 * time.Second

// HTTPBackend calls the remote recommender service over HTTP. The service
// is typically a notebook-hosted model behind a tunnel, so it may be slow,
// rate-limited, or gone entirely; callers must treat every failure as
// survivable.
type HTTPBackend struct {
	baseURL    string
	authToken  string
	userAgent  string
	maxRetries int
	client     *http.Client
}

// NewHTTPBackend builds an HTTPBackend from config. The request timeout
// defaults to 60s; remote generation routinely takes tens of seconds.
func NewHTTPBackend(cfg types.AdvisorConfig) *HTTPBackend {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPBackend{
		baseURL:    strings.TrimRight(cfg.ServiceURL, "/"),
		authToken:  cfg.AuthToken,
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		client:     &http.Client{Timeout: timeout},
	}
}

// Recommend posts the request to {base}/recommend and decodes the reply.
// Transport errors, non-200 statuses, and undecodable bodies are returned
// as errors; a decoded reply with Success=false is returned as-is for the
// reconciler to act on.
func (b *HTTPBackend) Recommend(ctx context.Context, reqBody Request) (Response, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return Response{}, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.baseURL+"/recommend", bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("creating request: %w", err)
	}
	b.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httputil.DoWithRetry(ctx, b.client, req, b.maxRetries)
	if err != nil {
		return Response{}, fmt.Errorf("calling recommender service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Response{}, fmt.Errorf("recommender service returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("decoding recommender response: %w", err)
	}
	return out, nil
}

// Ping probes {base}/health and reports whether the service answers.
func (b *HTTPBackend) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	b.setHeaders(req)

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("recommender service unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("recommender service health check returned %d", resp.StatusCode)
	}
	return nil
}

func (b *HTTPBackend) setHeaders(req *http.Request) {
	if b.userAgent != "" {
		req.Header.Set("User-Agent", b.userAgent)
	}
	if b.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+b.authToken)
	}
}
