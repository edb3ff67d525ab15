package client

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

	"github.com/benhsieh-dev/Youtube/internal/logging"
	"github.com/google/uuid"
)

// RequestIDHeaderName is the header carrying a per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"

// maxErrorBody caps how much of a failed response body is read for its message.
const maxErrorBody = 4 << 10

// origin is one backend base URL plus the HTTP plumbing shared by every
// operation routed to it. It holds no session state.
type origin struct {
	name    string
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

func newOrigin(name, baseURL string, httpClient *http.Client, logger logging.Logger) (*origin, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%s origin: parse base url: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%s origin: unsupported scheme %q", name, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%s origin: missing host in %q", name, baseURL)
	}

	return &origin{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger.With("origin", name),
	}, nil
}

type request struct {
	op          string
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	token       string
	// client overrides the origin's client for this request.
	client *http.Client
}

// jsonBody encodes v for use as a request body.
func jsonBody(v any) (io.Reader, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

// do sends r and decodes a 2xx JSON response into out (when out is non-nil).
// Every failure comes back as a *BackendError.
func (o *origin) do(ctx context.Context, r request, out any) error {
	target := o.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	requestID := uuid.NewString()
	ctx = logging.ContextWith(ctx, "op", r.op, "request_id", requestID)

	req, err := http.NewRequestWithContext(ctx, r.method, target, r.body)
	if err != nil {
		return &BackendError{Op: r.op, Origin: o.name, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeaderName, requestID)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	start := time.Now()
	httpClient := o.http
	if r.client != nil {
		httpClient = r.client
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		o.logger.Warn(ctx, "backend request failed", "error", err)
		return &BackendError{Op: r.op, Origin: o.name, Err: err}
	}
	defer resp.Body.Close()

	o.logger.Debug(ctx, "backend request",
		"method", r.method,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		be := &BackendError{
			Op:      r.op,
			Origin:  o.name,
			Status:  resp.StatusCode,
			Kind:    classifyStatus(resp.StatusCode),
			Message: readErrorMessage(resp.Body),
		}
		o.logger.Warn(ctx, "backend rejected request",
			"status", be.Status, "kind", be.Kind.String(), "message", be.Message)
		return be
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &BackendError{
			Op:     r.op,
			Origin: o.name,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("decode response: %w", err),
		}
	}
	return nil
}

// readErrorMessage extracts the backend's error text from a failure body.
// Backends answer with {"error": "..."}; some also send "message".
func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
