package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// MailerService dispatches transactional email through an external email
// provider. Any non-2xx response is a request-scoped failure; delivery
// mechanics are the provider's problem.
type MailerService interface {
	SendEmail(ctx context.Context, recipient, subject, body string) error
}

type mailerService struct {
	endpoint string
	apiKey   string
	sender   string
	http     *http.Client
}

func NewMailerService(endpoint, apiKey, sender string) MailerService {
	return &mailerService{
		endpoint: endpoint,
		apiKey:   apiKey,
		sender:   sender,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

type emailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (s *mailerService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	payload, err := json.Marshal(emailRequest{
		From:    s.sender,
		To:      recipient,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create email request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("email service unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email service returned status %d", resp.StatusCode)
	}
	return nil
}
