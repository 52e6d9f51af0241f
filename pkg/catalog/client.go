package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/taazafoods/chatbot-backend/pkg/config"
	pkgerrors "github.com/taazafoods/chatbot-backend/pkg/errors"
)

const responseBodyLimit int64 = 1 << 20

// Client proxies the upstream category/item catalog API. Responses are
// forwarded verbatim; this service adds nothing to catalog data.
type Client struct {
	categoriesClient *http.Client
	itemsClient      *http.Client
	categoryURL      string
	itemsBaseURL     string
}

// NewClient builds a catalog client from the configured upstream endpoints.
func NewClient(cfg config.CatalogConfig) (*Client, error) {
	categoryURL := strings.TrimSpace(cfg.CategoryURL)
	itemsBaseURL := strings.TrimRight(strings.TrimSpace(cfg.ItemsBaseURL), "/")
	if categoryURL == "" || itemsBaseURL == "" {
		return nil, fmt.Errorf("catalog urls are required")
	}

	categoriesTimeout := cfg.Timeout
	if categoriesTimeout <= 0 {
		categoriesTimeout = 10 * time.Second
	}
	itemsTimeout := cfg.ItemsTimeout
	if itemsTimeout <= 0 {
		itemsTimeout = 15 * time.Second
	}

	return &Client{
		categoriesClient: &http.Client{Timeout: categoriesTimeout},
		itemsClient:      &http.Client{Timeout: itemsTimeout},
		categoryURL:      categoryURL,
		itemsBaseURL:     itemsBaseURL,
	}, nil
}

// Categories fetches the upstream category list.
func (c *Client) Categories(ctx context.Context) (json.RawMessage, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUpstream, "catalog client not configured")
	}
	return c.fetch(ctx, c.categoriesClient, c.categoryURL, "fetch categories")
}

// Items fetches the item list for one category. A non-200 upstream status is
// forwarded to the caller.
func (c *Client) Items(ctx context.Context, category string) (json.RawMessage, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUpstream, "catalog client not configured")
	}
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}
	target := fmt.Sprintf("%s/%s", c.itemsBaseURL, url.PathEscape(trimmed))
	return c.fetch(ctx, c.itemsClient, target, "fetch items")
}

func (c *Client) fetch(ctx context.Context, httpClient *http.Client, target, action string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "build "+action+" request")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, action+" failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyLimit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "read "+action+" response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.New(pkgerrors.CodeUpstream, action+" returned an error status").
			WithHTTPStatus(resp.StatusCode).
			WithDetails(map[string]any{
				"upstream_status": resp.StatusCode,
				"upstream_body":   upstreamBody(body),
			})
	}

	if !json.Valid(body) {
		return nil, pkgerrors.New(pkgerrors.CodeUpstream, action+" returned invalid JSON")
	}
	return json.RawMessage(body), nil
}

func upstreamBody(body []byte) any {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return strings.TrimSpace(string(body))
}
