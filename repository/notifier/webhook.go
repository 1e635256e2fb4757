package notifierrepo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Bennnhere/LendIt-app/util/httpx"
)

type webhookRepo struct {
	url    string
	client *http.Client
}

func NewWebhook(url string) Repo { return &webhookRepo{url: url, client: httpx.Client()} }

func NewWebhookWithClient(url string, c *http.Client) Repo { return &webhookRepo{url: url, client: c} }

func (r *webhookRepo) Name() string { return "webhook" }

func (r *webhookRepo) Send(ctx context.Context, a Alert) error {
	body := map[string]any{
		"event":      "emergency_broadcast",
		"session_id": a.SessionID,
		"message":    a.Message,
		"sent_at":    a.SentAt,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook delivery failed: %s", resp.Status)
	}
	return nil
}
