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
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"

	clientsync "github.com/iudanet/jubeesync/internal/client/sync"
	"github.com/iudanet/jubeesync/internal/models"
	"github.com/iudanet/jubeesync/pkg/api"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultRetryBase  = 100 * time.Millisecond
)

// StatusError описывает ответ сервера с кодом вне 2xx
type StatusError struct {
	Message    string
	body       []byte
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Temporary reports whether repeating the request may succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// Проверка реализации интерфейса на этапе компиляции
var _ clientsync.RemoteStore = (*Client)(nil)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries uint64
	retryBase  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient заменяет HTTP клиент (используется в тестах)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout ограничивает один HTTP запрос вместе с чтением ответа
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetry sets how many times an idempotent request is repeated and the initial backoff.
func WithRetry(maxRetries uint64, base time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.retryBase = base
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		maxRetries: defaultMaxRetries,
		retryBase:  defaultRetryBase,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
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

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// UpsertRecord записывает запись на сервер и возвращает присвоенную ревизию.
// PUT идемпотентен по id, поэтому временные ошибки повторяются с экспоненциальной задержкой.
func (c *Client) UpsertRecord(ctx context.Context, accessToken string, record *models.Record) (int64, error) {
	body := api.UpsertRecordRequest{Record: ToDTO(record)}

	var resp api.UpsertRecordResponse
	err := c.withRetry(ctx, func(ctx context.Context) error {
		return c.doRequest(ctx, http.MethodPut, recordPath(record), accessToken, body, &resp)
	})
	if err != nil {
		return 0, fmt.Errorf("upsert %s failed: %w", record.Key(), err)
	}

	return resp.Revision, nil
}

// PushRecord записывает локальную правку, если серверная копия не менялась после baseRevision.
// Ответ 409 превращается в *clientsync.RemoteChangedError с серверной копией.
// Повтор после потерянного ответа получит 409 со своей же записью: такую пару детектор
// конфликтов признает совпадающей.
func (c *Client) PushRecord(ctx context.Context, accessToken string, record *models.Record, baseRevision int64) (int64, error) {
	body := api.UpsertRecordRequest{Record: ToDTO(record), BaseRevision: &baseRevision}

	var resp api.UpsertRecordResponse
	err := c.withRetry(ctx, func(ctx context.Context) error {
		return c.doRequest(ctx, http.MethodPut, recordPath(record), accessToken, body, &resp)
	})

	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusConflict {
		var conflict api.RecordConflictResponse
		if jsonErr := json.Unmarshal(statusErr.body, &conflict); jsonErr == nil && conflict.Record.ID != "" {
			return 0, &clientsync.RemoteChangedError{Remote: FromDTO(conflict.Record)}
		}
	}
	if err != nil {
		return 0, fmt.Errorf("push %s failed: %w", record.Key(), err)
	}

	return resp.Revision, nil
}

func recordPath(record *models.Record) string {
	return fmt.Sprintf("/api/v1/collections/%s/records/%s",
		url.PathEscape(string(record.Collection)), url.PathEscape(record.ID))
}

// ListRecords возвращает записи коллекции, измененные после ревизии since, и текущую ревизию
func (c *Client) ListRecords(ctx context.Context, accessToken string, collection models.Collection, since int64) ([]*models.Record, int64, error) {
	path := fmt.Sprintf("/api/v1/collections/%s/records?since=%s",
		url.PathEscape(string(collection)), strconv.FormatInt(since, 10))

	var resp api.ListRecordsResponse
	err := c.withRetry(ctx, func(ctx context.Context) error {
		return c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list %s failed: %w", collection, err)
	}

	records := make([]*models.Record, 0, len(resp.Records))
	for _, dto := range resp.Records {
		records = append(records, FromDTO(dto))
	}

	return records, resp.Revision, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// withRetry повторяет fn при сетевых ошибках и ответах 5xx/429
func (c *Client) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.retryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.Temporary() {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
		return retry.RetryableError(err)
	})
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result any) error {
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
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

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

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Message: string(respBody), body: respBody}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			statusErr.Message = errResp.Message
			if statusErr.Message == "" {
				statusErr.Message = errResp.Error
			}
		}
		return statusErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
