package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/catalog-editor/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client is the remote catalog service: reference data plus product writes.
type Client interface {
	FetchCategories(ctx context.Context) ([]models.Category, error)
	FetchStates(ctx context.Context) ([]models.State, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, values models.FormValues, lastKnownID int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, values models.FormValues) error
	DeleteProduct(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

// StatusError is returned when the catalog answers with a non 2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog %s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

var ErrEmptyBaseURL = errors.New("catalog base url is empty")

type httpClient struct {
	baseURL string
	http    *http.Client
}

type Option func(*httpClient)

// WithHTTPClient replaces the instrumented default client, mostly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(h *httpClient) {
		h.http = c
	}
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) (Client, error) {
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	c := &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// productPayload is the wire shape of a product write: the submitted values plus the id.
type productPayload struct {
	ID          int64   `json:"id"`
	CategoryID  int64   `json:"categoryId"`
	StateID     int64   `json:"stateId"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Picture     string  `json:"picture"`
	Description string  `json:"description"`
}

func payloadOf(id int64, values models.FormValues) productPayload {
	p := values.Product(id)

	return productPayload{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		StateID:     p.StateID,
		Title:       p.Title,
		Price:       p.Price,
		Picture:     p.Picture,
		Description: p.Description,
	}
}

func (c *httpClient) FetchCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (c *httpClient) FetchStates(ctx context.Context) ([]models.State, error) {
	var states []models.State
	if err := c.do(ctx, http.MethodGet, "/states", nil, &states); err != nil {
		return nil, err
	}

	return states, nil
}

func (c *httpClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// CreateProduct posts the values with the id following lastKnownID.
// The product the service returns is authoritative.
func (c *httpClient) CreateProduct(ctx context.Context, values models.FormValues, lastKnownID int64) (*models.Product, error) {
	hint := lastKnownID + 1

	var created models.Product
	if err := c.do(ctx, http.MethodPost, "/products", payloadOf(hint, values), &created); err != nil {
		return nil, err
	}

	// json-server style backends may answer with an empty body
	if created.ID == 0 {
		created = *values.Product(hint)
	}

	return &created, nil
}

// UpdateProduct replaces the product; the response body is not read.
func (c *httpClient) UpdateProduct(ctx context.Context, id int64, values models.FormValues) error {
	return c.do(ctx, http.MethodPut, productPath(id), payloadOf(id, values), nil)
}

func (c *httpClient) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, productPath(id), nil, nil)
}

func (c *httpClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/categories", nil, nil)
}

func productPath(id int64) string {
	return "/products/" + strconv.FormatInt(id, 10)
}

func (c *httpClient) do(ctx context.Context, method, path string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}

	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read catalog response: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode catalog response for %s %s: %w", method, path, err)
	}

	return nil
}
