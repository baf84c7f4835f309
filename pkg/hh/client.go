package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://api.hh.ru/vacancies"
	defaultUserAgent = "hh-vacancy-parser (learning project)"
	defaultTimeout   = 25 * time.Second
)

// NewClient instantiates an hh.ru API client. Every field of cfg is
// optional; zero values fall back to production defaults.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	sleep := cfg.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
		retry:      cfg.Retry.withDefaults(),
		sleep:      sleep,
	}
}

// SearchVacancies fetches one page of search results.
func (c *Client) SearchVacancies(ctx context.Context, params SearchParams) (SearchPage, error) {
	if params.Text == "" {
		return SearchPage{}, fmt.Errorf("hh: search text is required")
	}

	values := url.Values{}
	values.Set("text", params.Text)
	values.Set("page", strconv.Itoa(params.Page))
	values.Set("per_page", strconv.Itoa(params.PerPage))
	if params.Area != "" {
		values.Set("area", params.Area)
	}

	var page SearchPage
	if err := c.getJSON(ctx, c.baseURL, values, &page); err != nil {
		return SearchPage{}, err
	}
	return page, nil
}

// VacancyDetails fetches the per-item detail resource. The search
// response carries the full URL, so it is used verbatim.
func (c *Client) VacancyDetails(ctx context.Context, rawURL string) (VacancyDetails, error) {
	if rawURL == "" {
		return VacancyDetails{}, fmt.Errorf("hh: detail url is required")
	}

	var details VacancyDetails
	if err := c.getJSON(ctx, rawURL, nil, &details); err != nil {
		return VacancyDetails{}, err
	}
	return details, nil
}

// getJSON performs a GET with the client's identifying header and
// decodes a 2xx body into out. A 429 waits out the rate-limit delay;
// any other failure waits out the shorter failure delay. Either way
// the attempt budget is consumed.
func (c *Client) getJSON(ctx context.Context, rawURL string, query url.Values, out any) error {
	target := rawURL
	if len(query) > 0 {
		target = rawURL + "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt < c.retry.MaxAttempts; attempt++ {
		if attempt > 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("hh: request canceled: %w", err)
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return fmt.Errorf("hh: build request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			c.sleep(c.retry.FailureDelay(attempt))
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("hh: rate limited (429)")
			c.sleep(c.retry.RateLimitDelay(attempt))
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("hh: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
			c.sleep(c.retry.FailureDelay(attempt))
			continue
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("hh: decode response: %w", err)
			c.sleep(c.retry.FailureDelay(attempt))
			continue
		}
		return nil
	}

	return &RequestError{URL: rawURL, Attempts: c.retry.MaxAttempts, Err: lastErr}
}
