// Package api HTTP клиент BFF прокси для консольного приложения.
package api

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

	"github.com/iudanet/paclead/pkg/api"
)

// Error ответ прокси с кодом вне диапазона 2xx
type Error struct {
	// Message поле error из тела ответа
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsStatus сообщает, что err это *Error с указанным кодом
func IsStatus(err error, statusCode int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Verify проверяет токен и возвращает текущего пользователя
func (c *Client) Verify(ctx context.Context, token string) (*api.VerifyResponse, error) {
	var resp api.VerifyResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/auth/verify", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("verify request failed: %w", err)
	}
	return &resp, nil
}

// GetSettings получает тон ИИ
func (c *Client) GetSettings(ctx context.Context, token string) (*api.Settings, error) {
	var resp api.Settings
	if err := c.doRequest(ctx, http.MethodGet, "/api/configuracoes", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get settings request failed: %w", err)
	}
	return &resp, nil
}

// UpdateSettings сохраняет тон ИИ
func (c *Client) UpdateSettings(ctx context.Context, token string, settings api.Settings) (*api.Settings, error) {
	var resp api.Settings
	if err := c.doRequest(ctx, http.MethodPut, "/api/configuracoes", token, settings, &resp); err != nil {
		return nil, fmt.Errorf("update settings request failed: %w", err)
	}
	return &resp, nil
}

// ListProducts получает список товаров
func (c *Client) ListProducts(ctx context.Context, token string) ([]api.Product, error) {
	var resp []api.Product
	if err := c.doRequest(ctx, http.MethodGet, "/api/produtos", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list products request failed: %w", err)
	}
	return resp, nil
}

// CreateProduct создает товар
func (c *Client) CreateProduct(ctx context.Context, token string, product api.ProductInput) (*api.Product, error) {
	var resp api.Product
	if err := c.doRequest(ctx, http.MethodPost, "/api/produtos", token, product, &resp); err != nil {
		return nil, fmt.Errorf("create product request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProduct изменяет товар
func (c *Client) UpdateProduct(ctx context.Context, token, id string, product api.ProductInput) (*api.Product, error) {
	var resp api.Product
	if err := c.doRequest(ctx, http.MethodPut, "/api/produtos/"+url.PathEscape(id), token, product, &resp); err != nil {
		return nil, fmt.Errorf("update product request failed: %w", err)
	}
	return &resp, nil
}

// DeleteProduct удаляет товар
func (c *Client) DeleteProduct(ctx context.Context, token, id string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodDelete, "/api/produtos/"+url.PathEscape(id), token, nil, &resp); err != nil {
		return nil, fmt.Errorf("delete product request failed: %w", err)
	}
	return &resp, nil
}

// SendMessage отправляет сообщение тестового чата
func (c *Client) SendMessage(ctx context.Context, token string, req api.WebhookRequest) (*api.WebhookResponse, error) {
	var resp api.WebhookResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/webhook", token, req, &resp); err != nil {
		return nil, fmt.Errorf("webhook request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос.
// Непустой token передается в заголовке Authorization.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
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

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Message = errResp.Error
		}
		return apiErr
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
