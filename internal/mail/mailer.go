// Package mail sends transactional e-mail through a provider HTTP API.
// Delivery is best effort; callers log failures and move on.
package mail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Mailer dispatches account-related mail.
type Mailer interface {
	SendWelcome(toEmail, username string) error
}

// Client talks to a sendgrid-compatible mail API.
type Client struct {
	apiURL     string
	apiKey     string
	from       string
	httpClient *http.Client
}

// NewClient creates a mail Client for the given API endpoint and key.
func NewClient(apiURL, apiKey, from string) *Client {
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type address struct {
	Email string `json:"email"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type message struct {
	Personalizations []struct {
		To []address `json:"to"`
	} `json:"personalizations"`
	From    address   `json:"from"`
	Subject string    `json:"subject"`
	Content []content `json:"content"`
}

// SendWelcome mails a templated greeting to a freshly registered user.
func (c *Client) SendWelcome(toEmail, username string) error {
	msg := message{
		From:    address{Email: c.from},
		Subject: "Welcome to the Disney catalog",
		Content: []content{{
			Type:  "text/plain",
			Value: fmt.Sprintf("Hi %s, your account was created successfully. Enjoy the catalog!", username),
		}},
	}
	msg.Personalizations = append(msg.Personalizations, struct {
		To []address `json:"to"`
	}{To: []address{{Email: toEmail}}})

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail API responded with status %d", resp.StatusCode)
	}
	return nil
}

// Noop is the Mailer used when no API key is configured.
type Noop struct{}

func (Noop) SendWelcome(string, string) error { return nil }
