package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/careerlink-team/career-portal/pkg/config"
)

// Client talks to the mail relay service. The relay exposes a single
// endpoint that accepts a recipient list plus rendered HTML and fans the
// message out over SMTP.
type Client struct {
	baseURL string
	client  *http.Client
	retries uint64
}

// NewClient creates a mail relay client using the provided config.
func NewClient(cfg *config.MailerConfig) *Client {
	baseURL := ""
	retries := uint64(3)
	if cfg != nil {
		baseURL = cfg.BaseURL
		if cfg.MaxRetries > 0 {
			retries = uint64(cfg.MaxRetries)
		}
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		retries: retries,
	}
}

// SendRequest is the payload for /sendEmail
type SendRequest struct {
	Emails  []string `json:"emails"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendResponse is the relay's acknowledgement
type SendResponse struct {
	Data string `json:"data"`
}

// Send delivers one message to every address in emails. Empty addresses are
// filtered out; a request with no remaining recipients is a no-op. Transient
// relay failures are retried with exponential backoff until the context is
// cancelled or the retry budget runs out.
func (c *Client) Send(ctx context.Context, emails []string, subject, html string) error {
	recipients := make([]string, 0, len(emails))
	for _, e := range emails {
		if e != "" {
			recipients = append(recipients, e)
		}
	}
	if len(recipients) == 0 {
		return nil
	}

	payload := SendRequest{
		Emails:  recipients,
		Subject: subject,
		HTML:    html,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/sendEmail", bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("mail relay returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("mail relay rejected request with status %d", resp.StatusCode))
		}

		var ack SendResponse
		if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.retries),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return fmt.Errorf("failed to deliver mail: %w", err)
	}
	return nil
}
