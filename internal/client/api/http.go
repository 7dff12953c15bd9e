package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

const (
	maxBodySize     = 4 << 20
	maxPlainMessage = 200
)

var newRequestID = uuid.NewString

// HTTPClient implements Client against the REST backend rooted at baseURL
// (for example "http://localhost:8080/api").
type HTTPClient struct {
	baseURL    string
	headers    HeaderSource
	httpClient *http.Client
	log        logging.Logger
	metrics    *Metrics
}

var _ Client = (*HTTPClient)(nil)

type Option func(*HTTPClient)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

func WithMetrics(m *Metrics) Option {
	return func(c *HTTPClient) { c.metrics = m }
}

func NewHTTPClient(baseURL string, headers HeaderSource, log logging.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		headers:    headers,
		httpClient: http.DefaultClient,
		log:        log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "/auth/login",
		models.LoginRequest{Email: username, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Signup(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/signup", "/auth/signup",
		models.SignupRequest{Username: username, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Products(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.getList(ctx, "/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Product(ctx context.Context, id int64) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodGet, "/products/{id}", fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AddCartItem(ctx context.Context, productID int64, quantity int) error {
	return c.do(ctx, http.MethodPost, "/cart/items", "/cart/items",
		models.AddCartItemRequest{ProductID: productID, Quantity: quantity}, nil)
}

func (c *HTTPClient) Cart(ctx context.Context) (*models.Cart, error) {
	var out models.Cart
	if err := c.do(ctx, http.MethodGet, "/cart", "/cart", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	return c.do(ctx, http.MethodPut, "/cart/items/{id}", fmt.Sprintf("/cart/items/%d", itemID),
		models.UpdateCartItemRequest{Quantity: quantity}, nil)
}

func (c *HTTPClient) RemoveCartItem(ctx context.Context, itemID int64) error {
	return c.do(ctx, http.MethodDelete, "/cart/items/{id}", fmt.Sprintf("/cart/items/%d", itemID), nil, nil)
}

func (c *HTTPClient) PlaceOrder(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/orders", "/orders", nil, nil)
}

func (c *HTTPClient) Orders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.getList(ctx, "/orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Order(ctx context.Context, id int64) (*models.Order, error) {
	var out models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/{id}", fmt.Sprintf("/orders/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getList decodes a JSON array into out and leaves out untouched when the
// body is valid JSON of another shape.
func (c *HTTPClient) getList(ctx context.Context, path string, out any) error {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, path, nil, &raw); err != nil {
		return err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrUnavailable, path, err)
	}
	return nil
}

// do sends one request. route is the path template used as a metrics
// label; in is JSON-encoded when non-nil; out receives the decoded 2xx body
// when non-nil.
func (c *HTTPClient) do(ctx context.Context, method, route, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.headers != nil {
		for k, vs := range c.headers.AuthHeader(ctx) {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}

	reqID := newRequestID()
	req.Header.Set(common.RequestIDHeader, reqID)
	log := c.log.With("request_id", reqID, "method", method, "path", path)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(method, route, 0, time.Since(start))
		log.Warn(ctx, "api request failed", "err", err)
		return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	elapsed := time.Since(start)
	c.metrics.observe(method, route, resp.StatusCode, elapsed)
	if err != nil {
		log.Warn(ctx, "api response read failed", "status", resp.StatusCode, "err", err)
		return fmt.Errorf("%w: read %s %s: %w", ErrUnavailable, method, path, err)
	}

	log.Debug(ctx, "api request", "status", resp.StatusCode, "elapsed", elapsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Code: resp.StatusCode, Message: extractMessage(data)}
		log.Warn(ctx, "api error response", "status", se.Code, "message", se.Message)
		return se
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %w", ErrUnavailable, method, path, err)
	}
	return nil
}

// extractMessage pulls a user-facing message out of an error body: the
// "message" field of a JSON object, a bare JSON string, or a short
// plain-text body. HTML pages and long bodies yield "".
func extractMessage(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ""
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(trimmed, &obj); err == nil {
		return obj.Message
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}

	if json.Valid(trimmed) || trimmed[0] == '<' || len(trimmed) > maxPlainMessage {
		return ""
	}
	return string(trimmed)
}
