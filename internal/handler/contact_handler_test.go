package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/studioform/backend/internal/model"
	"github.com/studioform/backend/internal/service"
	"github.com/studioform/backend/internal/validate"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, clientKey string, form validate.ContactForm) (*model.SubmissionResult, error)
	lastKey    string
}

func (m *mockContactService) Submit(ctx context.Context, clientKey string, form validate.ContactForm) (*model.SubmissionResult, error) {
	m.lastKey = clientKey
	if m.submitFunc != nil {
		return m.submitFunc(ctx, clientKey, form)
	}
	return &model.SubmissionResult{Success: true, Message: "ok"}, nil
}

func postSubmit(h *ContactHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

// ---------------------------------------------------------------------------
// POST /api/contact/submit tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured validate.ContactForm
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, clientKey string, form validate.ContactForm) (*model.SubmissionResult, error) {
			captured = form
			return &model.SubmissionResult{
				Success: true,
				Message: "Your message has been sent successfully! We will get back to you soon.",
			}, nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"John Doe","email":"JOHN@EXAMPLE.COM","message":"This is a test message with enough characters"}`
	rec := postSubmit(h, body)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}

	var resp model.SubmissionResult
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if captured.Email != "JOHN@EXAMPLE.COM" {
		t.Errorf("service received email %q, want the raw value", captured.Email)
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	rec := postSubmit(h, `{"name": "John"`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	var resp model.SubmissionResult
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Success {
		t.Error("expected success=false")
	}
}

func TestContactHandler_Submit_ValidationFailure(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, clientKey string, form validate.ContactForm) (*model.SubmissionResult, error) {
			return nil, &service.ValidationError{Fields: []model.FieldError{
				{Field: "name", Message: "Name must be at least 2 characters"},
				{Field: "message", Message: "Message must be at least 10 characters"},
			}}
		},
	}
	h := NewContactHandler(mock)

	rec := postSubmit(h, `{"name":"J","email":"john@example.com","message":"short"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	var resp model.SubmissionResult
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Validation failed" {
		t.Errorf("message = %q, want %q", resp.Message, "Validation failed")
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("errors = %d, want 2", len(resp.Errors))
	}
	if resp.Errors[0].Field != "name" || resp.Errors[1].Field != "message" {
		t.Errorf("error fields = %q/%q, want name/message", resp.Errors[0].Field, resp.Errors[1].Field)
	}
}

func TestContactHandler_Submit_RateLimited(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, clientKey string, form validate.ContactForm) (*model.SubmissionResult, error) {
			return nil, &service.RateLimitError{RetryAfter: 42 * time.Second}
		},
	}
	h := NewContactHandler(mock)

	rec := postSubmit(h, `{"name":"John Doe","email":"john@example.com","message":"This is a test message with enough characters"}`)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "43" {
		t.Errorf("Retry-After = %q, want %q", got, "43")
	}
	var resp model.SubmissionResult
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !strings.Contains(resp.Message, "1 minute") {
		t.Errorf("message = %q, want a retry hint of 1 minute", resp.Message)
	}
}

func TestContactHandler_Submit_DependencyFailure(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, clientKey string, form validate.ContactForm) (*model.SubmissionResult, error) {
			return nil, errors.New("pq: connection refused to 10.3.2.1:5432")
		},
	}
	h := NewContactHandler(mock)

	rec := postSubmit(h, `{"name":"John Doe","email":"john@example.com","message":"This is a test message with enough characters"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	// No internal detail may leak into the response body.
	if strings.Contains(rec.Body.String(), "10.3.2.1") || strings.Contains(rec.Body.String(), "pq:") {
		t.Errorf("response leaked internals: %s", rec.Body.String())
	}
}

func TestContactHandler_Submit_UsesClientKey(t *testing.T) {
	mock := &mockContactService{}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact/submit",
		strings.NewReader(`{"name":"John Doe","email":"john@example.com","message":"This is a test message with enough characters"}`))
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if mock.lastKey != "203.0.113.9" {
		t.Errorf("client key = %q, want %q", mock.lastKey, "203.0.113.9")
	}
}
