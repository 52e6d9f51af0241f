package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/taazafoods/chatbot-backend/pkg/config"
	pkgerrors "github.com/taazafoods/chatbot-backend/pkg/errors"
)

const responseBodyLimit int64 = 1 << 20

// Client forwards finalized orders to the upstream billing API.
type Client struct {
	httpClient *http.Client
	url        string
	authToken  string
}

// Result carries the upstream verdict back to the caller. The caller decides
// what a given status means; the client never retries.
type Result struct {
	Status int
	Body   []byte
}

// Accepted reports whether the upstream took the order.
func (r Result) Accepted() bool {
	return r.Status == http.StatusOK || r.Status == http.StatusCreated
}

// BodyJSON returns the response body as JSON when it parses, else as text.
func (r Result) BodyJSON() any {
	if json.Valid(r.Body) {
		return json.RawMessage(r.Body)
	}
	return strings.TrimSpace(string(r.Body))
}

// NewClient builds a billing client from configuration. The bearer token is
// optional.
func NewClient(cfg config.BillingConfig) (*Client, error) {
	target := strings.TrimSpace(cfg.URL)
	if target == "" {
		return nil, fmt.Errorf("billing url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        target,
		authToken:  strings.TrimSpace(cfg.AuthToken),
	}, nil
}

// Submit posts the order payload. A transport failure is an error; any HTTP
// status, success or not, comes back as a Result.
func (c *Client) Submit(ctx context.Context, payload any) (Result, error) {
	if c == nil {
		return Result{}, pkgerrors.New(pkgerrors.CodeUpstream, "billing client not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal order payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "build billing request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "forward order to billing api")
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyLimit))
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "read billing response")
	}

	return Result{Status: resp.StatusCode, Body: respBody}, nil
}
