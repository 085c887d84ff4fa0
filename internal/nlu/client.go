// Package nlu queries the natural-language-understanding service.
//
// The NLU engine itself is a black box: the client sends raw user text and
// gets back a classified action, extracted parameters and the engine's own
// proposed reply.
package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pauljaws/StackBot/internal/config"
	"github.com/pauljaws/StackBot/internal/models"
)

const apiVersion = "20150910"

// toolTypeParam is the parameter key the NLU uses for the extracted phrase.
const toolTypeParam = "tool-type"

// Client calls the NLU query endpoint.
type Client struct {
	httpClient *http.Client
	queryURL   string
	token      string
	lang       string
}

// New creates an NLU client.
func New(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.UpstreamTimeout,
		},
		queryURL: cfg.NLUQueryURL,
		token:    cfg.NLUClientToken,
		lang:     cfg.NLULang,
	}
}

type queryResponse struct {
	Result struct {
		Action      string            `json:"action"`
		Parameters  map[string]string `json:"parameters"`
		Fulfillment struct {
			Speech string `json:"speech"`
		} `json:"fulfillment"`
	} `json:"result"`
}

// Query classifies a text utterance. The sessionID ties multi-turn requests
// from the same sender together on the NLU side.
func (c *Client) Query(ctx context.Context, text, sessionID string) (*models.NLUResult, error) {
	q := url.Values{}
	q.Set("v", apiVersion)
	q.Set("query", text)
	q.Set("lang", c.lang)
	q.Set("sessionId", sessionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("nlu query: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nlu query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("nlu query: status %d", resp.StatusCode)
	}

	var body queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("nlu query: decoding response: %w", err)
	}

	return &models.NLUResult{
		Action:   body.Result.Action,
		ToolType: body.Result.Parameters[toolTypeParam],
		Speech:   body.Result.Fulfillment.Speech,
	}, nil
}
