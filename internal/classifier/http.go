package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHTTPTimeout    = 30 * time.Second
	defaultRetryMaxDelay  = 10 * time.Second
	defaultRetryBaseDelay = 1 * time.Second
	defaultRetryAttempts  = 4
)

// Config captures the runtime settings required to talk to the inference API.
type Config struct {
	APIKey         string
	BaseURL        string
	EmotionModel   string
	ThemeModel     string
	TimeoutSeconds int
}

// Client calls the hosted inference API for both classification tasks.
type Client struct {
	cfg        Config
	httpClient *http.Client

	retryMaxAttempts int
	retryBaseDelay   time.Duration
	retryMaxDelay    time.Duration
	sleeper          func(time.Duration)
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRetryMaxAttempts overrides the default retry count.
func WithRetryMaxAttempts(attempts int) Option {
	return func(c *Client) {
		c.retryMaxAttempts = attempts
	}
}

// WithRetryBackoff overrides the retry backoff delays.
func WithRetryBackoff(baseDelay, maxDelay time.Duration) Option {
	return func(c *Client) {
		c.retryBaseDelay = baseDelay
		c.retryMaxDelay = maxDelay
	}
}

// WithSleeper overrides how retry sleeps are performed (useful for tests).
func WithSleeper(sleeper func(time.Duration)) Option {
	return func(c *Client) {
		c.sleeper = sleeper
	}
}

// NewClient constructs an inference client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg: Config{
			APIKey:         strings.TrimSpace(cfg.APIKey),
			BaseURL:        strings.TrimSpace(cfg.BaseURL),
			EmotionModel:   strings.TrimSpace(cfg.EmotionModel),
			ThemeModel:     strings.TrimSpace(cfg.ThemeModel),
			TimeoutSeconds: cfg.TimeoutSeconds,
		},
		httpClient:       &http.Client{Timeout: timeout},
		retryMaxAttempts: defaultRetryAttempts,
		retryBaseDelay:   defaultRetryBaseDelay,
		retryMaxDelay:    defaultRetryMaxDelay,
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.cfg.BaseURL == "" {
		client.cfg.BaseURL = "https://api-inference.huggingface.co/models"
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

type httpStatusError struct {
	StatusCode int
	Body       string
	RetryAfter time.Duration
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("inference request: http %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// ClassifyEmotion runs text classification for the batch and returns one
// descending ranking per input.
func (c *Client) ClassifyEmotion(ctx context.Context, texts []string) ([]Ranked, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if c.cfg.EmotionModel == "" {
		return nil, errors.New("classify emotion: model required")
	}
	payload := map[string]any{"inputs": texts}
	body, err := c.postWithRetry(ctx, c.cfg.EmotionModel, payload, "classify emotion")
	if err != nil {
		return nil, err
	}

	var raw [][]struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("classify emotion: decode response: %w", err)
	}
	if len(raw) != len(texts) {
		return nil, fmt.Errorf("classify emotion: got %d results for %d inputs", len(raw), len(texts))
	}

	out := make([]Ranked, len(raw))
	for i, scores := range raw {
		ranked := make(Ranked, len(scores))
		for j, s := range scores {
			ranked[j] = LabelScore{Label: s.Label, Score: s.Score}
		}
		// The API does not promise ordering for this task; sort stably so ties
		// keep the upstream listing order.
		sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].Score > ranked[b].Score })
		out[i] = ranked
	}
	return out, nil
}

// ClassifyThemes runs zero-shot classification against the candidate labels
// and returns one descending ranking per input.
func (c *Client) ClassifyThemes(ctx context.Context, texts []string, candidates []string) ([]Ranked, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if c.cfg.ThemeModel == "" {
		return nil, errors.New("classify themes: model required")
	}
	if len(candidates) == 0 {
		return nil, errors.New("classify themes: candidate labels required")
	}
	payload := map[string]any{
		"inputs": texts,
		"parameters": map[string]any{
			"candidate_labels": candidates,
			"multi_label":      true,
		},
	}
	body, err := c.postWithRetry(ctx, c.cfg.ThemeModel, payload, "classify themes")
	if err != nil {
		return nil, err
	}

	var raw []struct {
		Labels []string  `json:"labels"`
		Scores []float64 `json:"scores"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		// A single-input call may come back unwrapped.
		var single struct {
			Labels []string  `json:"labels"`
			Scores []float64 `json:"scores"`
		}
		if singleErr := json.Unmarshal(body, &single); singleErr != nil || len(single.Labels) == 0 {
			return nil, fmt.Errorf("classify themes: decode response: %w", err)
		}
		raw = append(raw, single)
	}
	if len(raw) != len(texts) {
		return nil, fmt.Errorf("classify themes: got %d results for %d inputs", len(raw), len(texts))
	}

	out := make([]Ranked, len(raw))
	for i, r := range raw {
		if len(r.Labels) != len(r.Scores) {
			return nil, fmt.Errorf("classify themes: %d labels with %d scores", len(r.Labels), len(r.Scores))
		}
		ranked := make(Ranked, len(r.Labels))
		for j := range r.Labels {
			ranked[j] = LabelScore{Label: r.Labels[j], Score: r.Scores[j]}
		}
		out[i] = ranked
	}
	return out, nil
}

func (c *Client) postWithRetry(ctx context.Context, model string, payload any, op string) ([]byte, error) {
	attempts := c.retryAttempts()
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		body, err := c.postOnce(ctx, model, payload)
		if err == nil {
			return body, nil
		}

		delay, retry := c.retryDelay(ctx, err, attempt, attempts)
		if !retry {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if sleepErr := c.sleep(ctx, delay); sleepErr != nil {
			return nil, fmt.Errorf("%s: %w", op, sleepErr)
		}
		lastErr = err
	}

	if lastErr == nil {
		lastErr = errors.New("unknown retry failure")
	}
	return nil, fmt.Errorf("%s: failed after %d attempts: %w", op, attempts, lastErr)
}

func (c *Client) postOnce(ctx context.Context, model string, payload any) ([]byte, error) {
	endpoint, err := url.JoinPath(c.cfg.BaseURL, model)
	if err != nil {
		return nil, fmt.Errorf("inference request: build url: %w", err)
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("inference request: encode body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("inference request: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request: http error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("inference request: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		retryAfter, _ := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, &httpStatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
			RetryAfter: retryAfter,
		}
	}
	return body, nil
}

func (c *Client) retryAttempts() int {
	if c == nil || c.retryMaxAttempts <= 0 {
		return 1
	}
	return c.retryMaxAttempts
}

func (c *Client) retryDelay(ctx context.Context, err error, attempt, maxAttempts int) (time.Duration, bool) {
	if attempt >= maxAttempts || err == nil || ctx == nil || ctx.Err() != nil {
		return 0, false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 0, false
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusRequestTimeout,
			statusErr.StatusCode == http.StatusTooManyRequests,
			statusErr.StatusCode == http.StatusServiceUnavailable,
			statusErr.StatusCode >= http.StatusInternalServerError:
			if statusErr.RetryAfter > 0 {
				return c.capDelay(statusErr.RetryAfter), true
			}
			return c.backoffDelay(attempt), true
		default:
			return 0, false
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return c.backoffDelay(attempt), true
	}
	return 0, false
}

func (c *Client) backoffDelay(attempt int) time.Duration {
	base := c.retryBaseDelay
	if base <= 0 {
		return 0
	}
	delay := base
	for i := 1; i < attempt; i++ {
		if delay > c.retryMaxDelay/2 {
			delay = c.retryMaxDelay
			break
		}
		delay *= 2
	}
	return c.capDelay(delay)
}

func (c *Client) capDelay(delay time.Duration) time.Duration {
	if delay < 0 {
		return 0
	}
	if c.retryMaxDelay > 0 && delay > c.retryMaxDelay {
		return c.retryMaxDelay
	}
	return delay
}

func (c *Client) sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if c.sleeper != nil {
		c.sleeper(delay)
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func parseRetryAfter(value string) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0, false
		}
		return time.Duration(seconds) * time.Second, true
	}
	if when, err := http.ParseTime(value); err == nil {
		delay := time.Until(when)
		if delay < 0 {
			return 0, false
		}
		return delay, true
	}
	return 0, false
}
