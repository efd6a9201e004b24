package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/storage"
)

// CredentialStore is the slice of the persisted store the client needs.
type CredentialStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

type response struct {
	status int
	body   []byte
}

// Client talks to the BigBoy backend REST API. It injects the stored bearer
// token, tags every request with an id, rate-limits outgoing calls and trips
// a circuit breaker on repeated transport failures.
type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialStore
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[*response]
	logger  *log.Logger
}

func New(baseURL, version string, timeout time.Duration, creds CredentialStore) *Client {
	settings := gobreaker.Settings{
		Name:    "bigboy-backend",
		Timeout: 15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + version,
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		limiter: rate.NewLimiter(rate.Limit(20), 40),
		breaker: gobreaker.NewCircuitBreaker[*response](settings),
		logger:  log.New(log.Writer(), "[api] ", log.LstdFlags),
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do performs one request against the backend. A nil out discards the
// response body; otherwise the body (unwrapped from its data envelope when
// present) is decoded into out.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		encoded, err := marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	hadToken := false
	if token, err := c.creds.Get(storage.KeyAccessToken); err == nil && strings.TrimSpace(token) != "" {
		req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(token))
		hadToken = true
	}

	resp, err := c.breaker.Execute(func() (*response, error) {
		httpResp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer httpResp.Body.Close()

		raw, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return nil, err
		}
		return &response{status: httpResp.StatusCode, body: raw}, nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.status >= 400 {
		message := messageField(resp.body)
		if resp.status == http.StatusUnauthorized {
			c.handleUnauthorized(hadToken, message)
		}
		return &APIError{Status: resp.status, Message: message}
	}

	if out == nil {
		return nil
	}
	return DecodeData(resp.body, out)
}

// handleUnauthorized applies the token-invalidation policy: stored
// credentials are cleared only when a token was actually sent and the server
// says the token itself is the problem. A 401 for a business reason (for
// example "Invalid customer token" from the membership endpoints) keeps the
// session intact. Matching is case-sensitive on purpose.
func (c *Client) handleUnauthorized(hadToken bool, message string) {
	if !hadToken {
		return
	}

	shouldClear := strings.Contains(message, "expired") ||
		(strings.Contains(message, "invalid") && strings.Contains(message, "token")) ||
		strings.Contains(message, "Unauthorized") ||
		message == "Invalid token"
	if !shouldClear {
		return
	}

	if err := c.creds.Remove(storage.KeyAccessToken); err != nil {
		c.logger.Printf("failed to clear access token: %v", err)
	}
	if err := c.creds.Remove(storage.KeyUserData); err != nil {
		c.logger.Printf("failed to clear user data: %v", err)
	}
}
