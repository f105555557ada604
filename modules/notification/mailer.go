package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"community-api/core/config"
)

// Email is one outbound message. Attachments are base64-free raw bytes;
// the mailer encodes them as the API requires.
type Email struct {
	To          []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

type Attachment struct {
	Filename string
	Content  []byte
}

// Mailer sends a single email. The worker retries failed tasks, so Send
// does not retry internally.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// HTTPMailer posts messages to a Resend-compatible email API.
type HTTPMailer struct {
	cfg    config.MailConfig
	client *http.Client
}

func NewHTTPMailer(cfg config.MailConfig) *HTTPMailer {
	return &HTTPMailer{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type apiAttachment struct {
	Filename string `json:"filename"`
	Content  []byte `json:"content"` // encoded as base64 by encoding/json
}

type apiRequest struct {
	From        string          `json:"from"`
	To          []string        `json:"to"`
	Subject     string          `json:"subject"`
	HTML        string          `json:"html"`
	Attachments []apiAttachment `json:"attachments,omitempty"`
}

func (m *HTTPMailer) Send(ctx context.Context, email Email) error {
	payload := apiRequest{
		From:    m.cfg.From,
		To:      email.To,
		Subject: email.Subject,
		HTML:    email.HTML,
	}
	for _, a := range email.Attachments {
		payload.Attachments = append(payload.Attachments, apiAttachment{
			Filename: a.Filename,
			Content:  a.Content,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail API returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}
