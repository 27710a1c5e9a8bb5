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

	"github.com/umalmyha/clientes/internal/model"
)

// DefaultTimeout limits single request to cliente API
const DefaultTimeout = 10 * time.Second

// ErrUnreachable wraps transport failures of cliente API requests
var ErrUnreachable = errors.New("cliente API is unreachable")

// APIError is non-2xx response of cliente API
type APIError struct {
	Status     int
	StatusText string
	Body       []byte
}

func (e *APIError) Error() string {
	return Message(e)
}

// Option configures Client
type Option func(*Client)

// WithHTTPClient replaces default http client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken makes client send bearer token with every request
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// Client talks to cliente HTTP API
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New builds Client for API mounted at baseURL, e.g. http://localhost:3000/api/cliente
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) List(ctx context.Context) ([]*model.Cliente, error) {
	clientes := make([]*model.Cliente, 0)
	if err := c.do(ctx, http.MethodGet, "", nil, &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

func (c *Client) Get(ctx context.Context, ruc string) (*model.Cliente, error) {
	var cliente model.Cliente
	if err := c.do(ctx, http.MethodGet, "/"+url.PathEscape(ruc), nil, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

// Search treats not found response as empty result
func (c *Client) Search(ctx context.Context, name string) ([]*model.Cliente, error) {
	clientes := make([]*model.Cliente, 0)

	err := c.do(ctx, http.MethodGet, "/search?name="+url.QueryEscape(name), nil, &clientes)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return make([]*model.Cliente, 0), nil
		}
		return nil, err
	}
	return clientes, nil
}

func (c *Client) Create(ctx context.Context, cliente *model.Cliente) (*model.Cliente, error) {
	var created model.Cliente
	if err := c.do(ctx, http.MethodPost, "", cliente, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces cliente stored under ruc, cliente.RUC may differ to rename it
func (c *Client) Update(ctx context.Context, ruc string, cliente *model.Cliente) error {
	return c.do(ctx, http.MethodPut, "/"+url.PathEscape(ruc), cliente, nil)
}

func (c *Client) Patch(ctx context.Context, ruc string, changes map[string]any) (*model.Cliente, error) {
	var patched model.Cliente
	if err := c.do(ctx, http.MethodPatch, "/"+url.PathEscape(ruc), changes, &patched); err != nil {
		return nil, err
	}
	return &patched, nil
}

func (c *Client) Delete(ctx context.Context, ruc string) error {
	return c.do(ctx, http.MethodDelete, "/"+url.PathEscape(ruc), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body - %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request - %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w - %s %s: %v", ErrUnreachable, method, path, err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body - %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &APIError{
			Status:     res.StatusCode,
			StatusText: http.StatusText(res.StatusCode),
			Body:       resBody,
		}
	}

	if out == nil || len(resBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(resBody, out); err != nil {
		return fmt.Errorf("failed to decode response body - %w", err)
	}
	return nil
}
