package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
)

func NewHttpClient(timeout time.Duration, opts ...RequestOption) *HttpClient {
	return &HttpClient{
		hc:       &http.Client{Timeout: timeout},
		authOpts: opts,
		retry:    1,
		logger:   slog.Default().With(slog.String("client", "rpc")),
	}
}

type HttpClient struct {
	hc       *http.Client
	authOpts []RequestOption
	// total attempts per request
	retry  uint
	logger *slog.Logger
}

// WithRetry sets the total number of attempts per request. Attempts are made back to back.
func (c *HttpClient) WithRetry(attempts uint) *HttpClient {
	if attempts == 0 {
		// retry-go treats 0 as unlimited
		attempts = 1
	}
	c.retry = attempts
	return c
}

// StatusError is returned when the remote answered with anything but 200.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// PostJSON posts data as json to endpoint until it answers 200 or the attempts run out.
// It returns the number of attempts made.
func (c *HttpClient) PostJSON(ctx context.Context, endpoint string, data any) (uint, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request body: %w", err)
	}

	var attempts uint
	err = retry.Do(
		func() error {
			attempts++
			return c.post(ctx, endpoint, body)
		},
		retry.Attempts(c.retry),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("post failed, retrying",
				slog.String("url", endpoint),
				slog.Uint64("attempt", uint64(n+1)),
				slog.Uint64("max_attempts", uint64(c.retry)),
				slog.Any("error", err),
			)
		}),
	)
	return attempts, err
}

func (c *HttpClient) post(ctx context.Context, endpoint string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	for _, opt := range c.authOpts {
		opt.Set(req)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		// only status codes are retried, a dead relay is given up at once
		return retry.Unrecoverable(fmt.Errorf("failed to do http request, url:%s, err:%w", endpoint, err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}
