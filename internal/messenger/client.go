// Package messenger delivers text replies through the chat platform's
// send API.
package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/pauljaws/StackBot/internal/config"
	"github.com/pauljaws/StackBot/internal/models"
)

// Client posts messages to the platform's outbound send endpoint.
type Client struct {
	httpClient  *http.Client
	sendURL     string
	accessToken string
	enabled     bool
}

// New creates a messenger send client.
func New(cfg *config.Config) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: cfg.UpstreamTimeout,
		},
		sendURL:     cfg.MessengerSendURL,
		accessToken: cfg.MessengerAccessToken,
		enabled:     cfg.MessengerAccessToken != "",
	}

	if c.enabled {
		log.Printf("Messenger delivery enabled (send URL: %s)", cfg.MessengerSendURL)
	} else {
		log.Println("Messenger delivery disabled (MESSENGER_ACCESS_TOKEN not configured)")
	}

	return c
}

// IsEnabled returns true if an access token is configured.
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// SendText posts a text message to a recipient.
func (c *Client) SendText(ctx context.Context, recipientID, text string) error {
	if !c.enabled {
		return nil
	}

	body, err := json.Marshal(models.SendRequest{
		Recipient: models.Party{ID: recipientID},
		Message:   models.SendMessage{Text: text},
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	q := url.Values{}
	q.Set("access_token", c.accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sendURL+"?"+q.Encode(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("send message: status %d: %s", resp.StatusCode, detail)
	}

	return nil
}

// SendAsync delivers a message in the background. Failures are logged and
// never retried; delivery problems must not feed back into the pipeline.
func (c *Client) SendAsync(recipientID, text string) {
	if !c.enabled {
		return
	}

	go func() {
		if err := c.SendText(context.Background(), recipientID, text); err != nil {
			slog.Error("failed to deliver message", "recipient", recipientID, "error", err)
		}
	}()
}
