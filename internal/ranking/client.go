// Package ranking queries the external tool-ranking API.
package ranking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"github.com/pauljaws/StackBot/internal/config"
	"github.com/pauljaws/StackBot/internal/models"
)

// Sentinel errors for the two failure classes callers distinguish.
var (
	// ErrNoResults signals a well-formed response with zero candidates.
	ErrNoResults = errors.New("ranking api returned no results")
	// ErrUnavailable signals a transport failure or non-success status.
	ErrUnavailable = errors.New("ranking api unavailable")
)

// Client queries the ranking API by tool-type identifier.
// Safe for concurrent use; holds no per-request state.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	limiter    *rate.Limiter
}

// New creates a ranking API client.
func New(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.UpstreamTimeout,
		},
		baseURL: cfg.RankingAPIURL,
		token:   cfg.RankingAPIToken,
		limiter: rate.NewLimiter(rate.Limit(cfg.RankingRateLimit), cfg.RankingRateBurst),
	}
}

// LookupByIdentifier fetches the candidate tools for an identifier and
// returns the most popular one. Only the first response page is considered;
// the ranking is not guaranteed to be global across pages.
func (c *Client) LookupByIdentifier(ctx context.Context, identifier string) (models.RankedResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return models.RankedResult{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	q := url.Values{}
	q.Set("function_id", identifier)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tools/lookup?"+q.Encode(), nil)
	if err != nil {
		return models.RankedResult{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.RankedResult{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.RankedResult{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var candidates []models.RankedResult
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return models.RankedResult{}, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}

	if len(candidates) == 0 {
		return models.RankedResult{}, ErrNoResults
	}

	return selectTop(candidates), nil
}

// selectTop picks the candidate with the highest popularity. The API's
// response order does not reflect popularity, so candidates are sorted
// descending; exact ties keep their original relative order.
func selectTop(candidates []models.RankedResult) models.RankedResult {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Popularity > candidates[j].Popularity
	})
	return candidates[0]
}

// Ping issues a lightweight request to the ranking API base URL so the
// upstream checker can report reachability.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
