package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/logger"
)

// ClientOption configures an HTTPClient
type ClientOption func(*HTTPClient)

// RequestOption modifies a single outgoing request
type RequestOption func(*http.Request)

// HTTPError is returned for any response with status >= 400
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Method     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d %s: %s", e.Method, e.URL, e.StatusCode, e.Status, e.Body)
}

// RetryConfig configures the retry behavior
type RetryConfig struct {
	MaxRetries           int
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	Multiplier           float64
	MaxElapsedTime       time.Duration
	RetryableStatusCodes []int
}

// DefaultRetryConfig retries transient gateway failures a few times.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:           3,
		InitialInterval:      100 * time.Millisecond,
		MaxInterval:          5 * time.Second,
		Multiplier:           2.0,
		MaxElapsedTime:       20 * time.Second,
		RetryableStatusCodes: []int{408, 429, 500, 502, 503, 504},
	}
}

// HTTPClient issues read-only requests against a single base URL.
type HTTPClient struct {
	httpClient     *http.Client
	baseURL        string
	defaultHeaders map[string]string
	retryConfig    *RetryConfig
	maxBodyBytes   int64
}

// NewHTTPClient creates a new HTTPClient with the given options
func NewHTTPClient(options ...ClientOption) *HTTPClient {
	client := &HTTPClient{
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		defaultHeaders: map[string]string{"Accept": "application/json"},
		retryConfig:    DefaultRetryConfig(),
		maxBodyBytes:   1 << 20,
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// WithBaseURL sets the base URL for all requests
func WithBaseURL(baseURL string) ClientOption {
	return func(c *HTTPClient) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout sets the timeout for all requests
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig sets the retry configuration. nil disables retries.
func WithRetryConfig(config *RetryConfig) ClientOption {
	return func(c *HTTPClient) {
		c.retryConfig = config
	}
}

// WithMaxBodyBytes caps how much of a response body is read.
func WithMaxBodyBytes(n int64) ClientOption {
	return func(c *HTTPClient) {
		c.maxBodyBytes = n
	}
}

// WithHeader adds a header to the request
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// BaseURL returns the configured base URL
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// Get performs a GET and returns the (size limited) response body.
func (c *HTTPClient) Get(ctx context.Context, path string, options ...RequestOption) ([]byte, error) {
	fullURL, err := c.resolve(path)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var body []byte
	attempt := 0

	operation := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		for key, value := range c.defaultHeaders {
			req.Header.Set(key, value)
		}
		for _, option := range options {
			option(req)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
		if err != nil {
			return err
		}
		if int64(len(data)) > c.maxBodyBytes {
			return backoff.Permanent(fmt.Errorf("response from %s exceeds %d bytes", fullURL, c.maxBodyBytes))
		}

		if resp.StatusCode >= 400 {
			httpErr := &HTTPError{
				StatusCode: resp.StatusCode,
				Status:     resp.Status,
				URL:        fullURL,
				Method:     http.MethodGet,
				Body:       string(data),
			}
			if c.retryable(resp.StatusCode) {
				return httpErr
			}
			return backoff.Permanent(httpErr)
		}

		body = data
		return nil
	}

	if c.retryConfig != nil && c.retryConfig.MaxRetries > 0 {
		expBackoff := backoff.NewExponentialBackOff()
		expBackoff.InitialInterval = c.retryConfig.InitialInterval
		expBackoff.MaxInterval = c.retryConfig.MaxInterval
		expBackoff.Multiplier = c.retryConfig.Multiplier
		expBackoff.MaxElapsedTime = c.retryConfig.MaxElapsedTime
		policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(c.retryConfig.MaxRetries)), ctx)
		err = backoff.Retry(operation, policy)
	} else {
		err = operation()
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			err = permanent.Err
		}
	}

	duration := time.Since(start)
	if err != nil {
		logger.Warn("HTTP request failed",
			zap.String("url", fullURL),
			zap.Int("attempts", attempt),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, err
	}

	logger.Debug("HTTP request successful",
		zap.String("url", fullURL),
		zap.Int("attempts", attempt),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", duration))
	return body, nil
}

func (c *HTTPClient) resolve(path string) (string, error) {
	if c.baseURL == "" {
		if _, err := url.ParseRequestURI(path); err != nil {
			return "", fmt.Errorf("invalid path used without base URL: %s, error: %w", path, err)
		}
		return path, nil
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path, nil
}

func (c *HTTPClient) retryable(status int) bool {
	if c.retryConfig == nil {
		return false
	}
	for _, code := range c.retryConfig.RetryableStatusCodes {
		if status == code {
			return true
		}
	}
	return false
}
