package service

import (
	"context"
	"fmt"
	"time"

	"github.com/studioform/backend/internal/model"
	"github.com/studioform/backend/internal/validate"
)

// ContactService runs the submission pipeline:
// validate → rate limit → sanitize → persist → notify.
type ContactService interface {
	// Submit processes one contact-form submission for the given client key.
	// A non-nil result means the pipeline reached a terminal decision; err is
	// one of the typed pipeline errors or an internal fault.
	Submit(ctx context.Context, clientKey string, form validate.ContactForm) (*model.SubmissionResult, error)
}

// ValidationError carries the per-field failures of a rejected submission.
type ValidationError struct {
	Fields []model.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field error(s)", len(e.Fields))
}

// RateLimitError signals the client key exceeded its submission cap.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}
