package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Soulverse-Ecosystem/status-check/internal/domain"
)

// Slack posts a human-readable transition message to a Slack incoming
// webhook. Optional second sink next to the generic webhook.
type Slack struct {
	Webhook string
	Client  *http.Client
}

func NewSlack(webhook string) *Slack {
	if webhook == "" {
		return nil
	}
	return &Slack{
		Webhook: webhook,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type slackPayload struct {
	Text string `json:"text"`
}

func (s *Slack) Send(ctx context.Context, ev domain.NotificationEvent) error {
	if s == nil || s.Webhook == "" {
		return errors.New("slack disabled")
	}

	title := fmt.Sprintf("🔴 %s is DOWN", ev.Service)
	if ev.New == domain.Operational {
		title = fmt.Sprintf("🟢 %s RECOVERED", ev.Service)
	}
	httpTxt := "n/a"
	if ev.HTTPStatus != 0 {
		httpTxt = fmt.Sprintf("%d", ev.HTTPStatus)
	}
	text := fmt.Sprintf(
		"%s → %s\nHTTP: %s\nAt: %s",
		strings.ToUpper(string(ev.Previous)), strings.ToUpper(string(ev.New)),
		httpTxt, ev.Timestamp.Format(time.RFC3339),
	)

	body, _ := json.Marshal(slackPayload{Text: "*" + title + "*\n" + text})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Webhook, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return errors.New("slack non-2xx")
	}
	return nil
}
