package pixabay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

var (
	// ErrRateLimited indicates the API rate limit was exceeded (HTTP 429)
	ErrRateLimited = errors.New("pixabay api rate limit exceeded")

	// ErrServer indicates a 5xx response from the API
	ErrServer = errors.New("pixabay api server error")

	// ErrHTTP indicates any other non-2xx response
	ErrHTTP = errors.New("pixabay api http error")

	// ErrTimeout indicates the request was aborted by its deadline
	ErrTimeout = errors.New("pixabay api request timed out")
)

// Request clamping bounds enforced before every call
const (
	maxQueryLen = 100
	maxPage     = 50
	maxPerPage  = 200
)

// Config holds configuration for the Pixabay client
type Config struct {
	APIKey            string
	BaseURL           string        // Default: https://pixabay.com/api/
	Timeout           time.Duration // Default: 8s, hard per-call bound
	UserAgent         string
	RequestsPerMinute int // Default: 100
	Burst             int // Default: 5
}

// Client handles communication with the Pixabay image and video APIs
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	apiKey      string
	baseURL     string
	userAgent   string
	timeout     time.Duration
}

// NewClient creates a new Pixabay API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://pixabay.com/api/"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 8 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "Mozilla/5.0 (compatible; SearchBot/1.0)"
	}
	if cfg.RequestsPerMinute == 0 {
		cfg.RequestsPerMinute = 100
	}
	if cfg.Burst == 0 {
		cfg.Burst = 5
	}

	return &Client{
		httpClient: &http.Client{},
		rateLimiter: rate.NewLimiter(
			rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)),
			cfg.Burst,
		),
		apiKey:    cfg.APIKey,
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout,
	}
}

// SearchPhotos searches the image collection and normalizes the response
func (c *Client) SearchPhotos(ctx context.Context, query string, page, perPage int) (*Result, error) {
	params := c.baseParams(query, page, perPage)
	params.Set("image_type", "photo")
	params.Set("orientation", "all")

	endpoint := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	var body imageResponse
	rateLimit, err := c.doRequest(ctx, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("search photos: %w", err)
	}

	return &Result{
		TotalHits: body.TotalHits,
		Hits:      transformImageHits(body.Hits),
		RateLimit: rateLimit,
	}, nil
}

// SearchVideos searches the video collection and normalizes the response
func (c *Client) SearchVideos(ctx context.Context, query string, page, perPage int) (*Result, error) {
	params := c.baseParams(query, page, perPage)
	params.Set("video_type", "all")

	endpoint := fmt.Sprintf("%svideos/?%s", c.baseURL, params.Encode())

	var body videoResponse
	rateLimit, err := c.doRequest(ctx, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("search videos: %w", err)
	}

	return &Result{
		TotalHits: body.TotalHits,
		Hits:      transformVideoHits(body.Hits),
		RateLimit: rateLimit,
	}, nil
}

// baseParams builds the query parameters shared by both endpoints, with
// input clamping applied
func (c *Client) baseParams(query string, page, perPage int) url.Values {
	if runes := []rune(query); len(runes) > maxQueryLen {
		query = string(runes[:maxQueryLen])
	}
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	params.Set("order", "popular")
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("safesearch", "true")
	return params
}

// doRequest performs a single timeout-bounded request. There is no retry:
// upstream failure is handled by the caller's fallback chain, not here.
func (c *Client) doRequest(ctx context.Context, endpoint string, result interface{}) (*RateLimit, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	if err := c.rateLimiter.Wait(callCtx); err != nil {
		return nil, classifyContextErr(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := callCtx.Err(); ctxErr != nil {
			return nil, classifyContextErr(ctxErr)
		}
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", ErrHTTP, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return extractRateLimit(resp), nil
}

// classifyContextErr maps a context error onto the client's error taxonomy
func classifyContextErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}

// extractRateLimit captures Pixabay's rate-limit headers verbatim when
// present; nil when the API omitted them
func extractRateLimit(resp *http.Response) *RateLimit {
	remaining := resp.Header.Get("X-RateLimit-Remaining")
	reset := resp.Header.Get("X-RateLimit-Reset")
	if remaining == "" && reset == "" {
		return nil
	}
	return &RateLimit{Remaining: remaining, Reset: reset}
}
