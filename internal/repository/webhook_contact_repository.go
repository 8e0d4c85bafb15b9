package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/studioform/backend/internal/model"
)

// WebhookContactRepository forwards submissions to a workflow-automation
// webhook instead of writing them to a database. The webhook owns durability;
// a 2xx response counts as acceptance.
type WebhookContactRepository struct {
	url    string
	client *http.Client
}

// NewWebhookContactRepository creates a forwarder posting to the given URL.
func NewWebhookContactRepository(url string) *WebhookContactRepository {
	return &WebhookContactRepository{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

var _ ContactRepository = (*WebhookContactRepository)(nil)

// forwardPayload is the wire shape the workflow expects.
type forwardPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submittedAt"`
}

// Save posts the record to the webhook. Non-2xx statuses are failures.
func (r *WebhookContactRepository) Save(ctx context.Context, rec *model.ContactRecord) error {
	body, err := json.Marshal(forwardPayload{
		Name:        rec.Name,
		Email:       rec.Email,
		Phone:       rec.Phone,
		Message:     rec.Message,
		SubmittedAt: rec.SubmittedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal forward payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build forward request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("forward contact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: webhook returned status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}
