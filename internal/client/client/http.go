package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hisao5232/my-price-tracker/internal/client/config"
	"github.com/hisao5232/my-price-tracker/internal/client/models"
	"github.com/hisao5232/my-price-tracker/internal/logging"
	"github.com/sethvargo/go-retry"
)

const (
	apiKeyHeader    = "x-api-key"
	requestIDHeader = "X-Request-ID"

	maxBodyBytes = 8 << 20
)

// HTTPClient talks to the price tracker REST API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	http       *http.Client
	log        logging.Logger
	retries    uint64
	retryDelay time.Duration
}

type Option func(*HTTPClient)

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient builds a gateway from cfg. The API key is captured once and
// never re-read.
func NewHTTPClient(cfg *config.Config, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api url %q", cfg.APIBaseURL)
	}

	retries := cfg.ReadRetries
	if retries < 0 {
		retries = 0
	}
	delay := cfg.RetryBaseDelay
	if delay <= 0 {
		delay = time.Millisecond
	}

	c := &HTTPClient{
		baseURL:    strings.TrimRight(u.String(), "/"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		http:       &http.Client{Timeout: cfg.RequestTimeout},
		log:        logging.Discard(),
		retries:    uint64(retries),
		retryDelay: delay,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// request describes one API call.
type request struct {
	method     string
	path       string
	query      url.Values
	body       any
	privileged bool
	// idempotent reads may be retried
	read bool
}

func (c *HTTPClient) do(ctx context.Context, r request) ([]byte, error) {
	if r.privileged && c.apiKey == "" {
		return nil, fmt.Errorf("%s %s: %w: no api key configured", r.method, r.path, ErrUnauthorized)
	}

	if !r.read || c.retries == 0 {
		return c.once(ctx, r)
	}

	var data []byte
	b := retry.WithMaxRetries(c.retries, retry.NewExponential(c.retryDelay))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		var err error
		data, err = c.once(ctx, r)
		if Retryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
	return data, err
}

func (c *HTTPClient) once(ctx context.Context, r request) ([]byte, error) {
	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		buf, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.privileged {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	log := c.log.With("request_id", reqID, "method", r.method, "path", r.path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s %s: %w", r.method, r.path, ctxErr)
		}
		log.Warn(ctx, "request failed", "error", err, "latency", time.Since(start))
		return nil, fmt.Errorf("%s %s: %w: %w", r.method, r.path, ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Warn(ctx, "read body failed", "status", resp.StatusCode, "error", err)
		return nil, fmt.Errorf("%s %s: %w: %w", r.method, r.path, ErrTransport, err)
	}

	log.Debug(ctx, "api request", "status", resp.StatusCode, "latency", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Code: resp.StatusCode, Detail: parseDetail(data), Kind: kindForStatus(resp.StatusCode)}
		log.Warn(ctx, "api error", "status", resp.StatusCode, "detail", se.Detail)
		return nil, fmt.Errorf("%s %s: %w", r.method, r.path, se)
	}
	return data, nil
}

// parseDetail extracts FastAPI's {"detail": ...}. A structured detail (the
// 422 list form) is returned as compact JSON.
func parseDetail(data []byte) string {
	var env struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &env); err != nil || len(env.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(env.Detail, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, env.Detail); err != nil {
		return ""
	}
	return buf.String()
}

type validator interface {
	Validate() error
}

func decodeList[T validator](data []byte) ([]T, error) {
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if list == nil {
		list = []T{}
	}
	for n := range list {
		if err := list[n].Validate(); err != nil {
			return nil, fmt.Errorf("%w: [%d]: %w", ErrDecode, n, err)
		}
	}
	return list, nil
}

func decodeObject[T validator](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := v.Validate(); err != nil {
		return v, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return v, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// Ping hits GET /. It is not retried; the caller polls.
func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.once(ctx, request{method: http.MethodGet, path: "/"})
	return err
}

func (c *HTTPClient) ListItems(ctx context.Context) ([]models.Item, error) {
	data, err := c.do(ctx, request{method: http.MethodGet, path: "/items", read: true})
	if err != nil {
		return nil, err
	}
	return decodeList[models.Item](data)
}

func (c *HTTPClient) ItemHistory(ctx context.Context, itemID int64) ([]models.PricePoint, error) {
	path := "/items/" + strconv.FormatInt(itemID, 10) + "/history"
	data, err := c.do(ctx, request{method: http.MethodGet, path: path, read: true})
	if err != nil {
		return nil, err
	}
	h, err := decodeObject[models.History](data)
	if err != nil {
		return nil, err
	}
	if h.History == nil {
		return []models.PricePoint{}, nil
	}
	return h.History, nil
}

// TrackItem asks the server to scrape itemURL and start tracking it. The
// server scrapes synchronously, so this can take a while.
func (c *HTTPClient) TrackItem(ctx context.Context, itemURL string) error {
	_, err := c.do(ctx, request{
		method:     http.MethodGet,
		path:       "/scrape",
		query:      url.Values{"url": {itemURL}},
		privileged: true,
	})
	return err
}

func (c *HTTPClient) DeleteItem(ctx context.Context, itemID int64) error {
	_, err := c.do(ctx, request{
		method:     http.MethodDelete,
		path:       "/items/" + strconv.FormatInt(itemID, 10),
		privileged: true,
	})
	return err
}

func (c *HTTPClient) ListKeywords(ctx context.Context) ([]models.Keyword, error) {
	data, err := c.do(ctx, request{method: http.MethodGet, path: "/keywords", read: true})
	if err != nil {
		return nil, err
	}
	return decodeList[models.Keyword](data)
}

// RegisterKeyword creates a monitored keyword. The server runs the first
// scan before answering.
func (c *HTTPClient) RegisterKeyword(ctx context.Context, keyword string) error {
	data, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/keywords",
		body:   map[string]string{"keyword": keyword},
	})
	if err != nil {
		return err
	}
	if _, err := decodeObject[models.Keyword](data); err != nil {
		return fmt.Errorf("register keyword: %w", err)
	}
	return nil
}

func (c *HTTPClient) DeleteKeyword(ctx context.Context, keywordID int64) error {
	_, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/keywords/" + strconv.FormatInt(keywordID, 10),
	})
	return err
}

func (c *HTTPClient) ItemsByKeyword(ctx context.Context, keyword string) ([]models.Item, error) {
	data, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/items/keyword/" + url.PathEscape(keyword),
		read:   true,
	})
	if err != nil {
		return nil, err
	}
	return decodeList[models.Item](data)
}

type searchResponse struct {
	Items []models.Listing `json:"items"`
}

func (s searchResponse) Validate() error {
	for n, l := range s.Items {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", n, err)
		}
	}
	return nil
}

// Search runs an ad-hoc marketplace search. It is privileged because the
// server scrapes on demand.
func (c *HTTPClient) Search(ctx context.Context, query string) ([]models.Listing, error) {
	data, err := c.do(ctx, request{
		method:     http.MethodGet,
		path:       "/search",
		query:      url.Values{"q": {query}},
		privileged: true,
		read:       true,
	})
	if err != nil {
		return nil, err
	}
	res, err := decodeObject[searchResponse](data)
	if err != nil {
		return nil, err
	}
	if res.Items == nil {
		return []models.Listing{}, nil
	}
	return res.Items, nil
}

var _ Client = (*HTTPClient)(nil)
