package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client HTTP клиент удаленного backend
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает клиент backend.
// timeout <= 0 отключает таймаут запросов.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout < 0 {
		timeout = 0
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Сохраняем Authorization при редиректе (/products -> /products/)
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Login выполняет POST /auth/login
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register выполняет POST /auth/register
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	var resp UserResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Me выполняет GET /auth/me
func (c *Client) Me(ctx context.Context, token string) (*UserResponse, error) {
	var resp UserResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp, nil
}

// UpdateMe выполняет PUT /auth/me
func (c *Client) UpdateMe(ctx context.Context, token string, req UpdateMeRequest) (*UserResponse, error) {
	var resp UserResponse
	if err := c.do(ctx, http.MethodPut, "/auth/me", token, req, &resp); err != nil {
		return nil, fmt.Errorf("update me request failed: %w", err)
	}
	return &resp, nil
}

// ListProducts выполняет GET /products/ и возвращает тело ответа как есть
func (c *Client) ListProducts(ctx context.Context, token string) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/products/", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list products request failed: %w", err)
	}
	return resp, nil
}

// CreateProduct выполняет POST /products/ с телом как есть
func (c *Client) CreateProduct(ctx context.Context, token string, product json.RawMessage) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/products/", token, product, &resp); err != nil {
		return nil, fmt.Errorf("create product request failed: %w", err)
	}
	return resp, nil
}

// UpdateProduct выполняет PUT /products/{id} с телом как есть
func (c *Client) UpdateProduct(ctx context.Context, token, id string, product json.RawMessage) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), token, product, &resp); err != nil {
		return nil, fmt.Errorf("update product request failed: %w", err)
	}
	return resp, nil
}

// DeleteProduct выполняет DELETE /products/{id}.
// Тело успешного ответа не читается.
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), token, nil, nil); err != nil {
		return fmt.Errorf("delete product request failed: %w", err)
	}
	return nil
}

// Webhook выполняет POST /webhook/
func (c *Client) Webhook(ctx context.Context, token string, req WebhookRequest) (*WebhookResponse, error) {
	var resp WebhookResponse
	if err := c.do(ctx, http.MethodPost, "/webhook/", token, req, &resp); err != nil {
		return nil, fmt.Errorf("webhook request failed: %w", err)
	}
	return &resp, nil
}

// do выполняет HTTP запрос к backend.
// token пустой для публичных маршрутов, иначе передается как Bearer.
func (c *Client) do(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseStatusError(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}

	return nil
}
