package service

import (
	"context"
	"fmt"
	"time"

	"github.com/studioform/backend/internal/model"
	"github.com/studioform/backend/internal/notify"
	"github.com/studioform/backend/internal/ratelimit"
	"github.com/studioform/backend/internal/repository"
	"github.com/studioform/backend/internal/sanitize"
	"github.com/studioform/backend/internal/validate"
)

// RateLimiter is the slice of ratelimit.Limiter the pipeline needs.
type RateLimiter interface {
	Allow(key string) (ok bool, retryAfter time.Duration)
}

var _ RateLimiter = (*ratelimit.Limiter)(nil)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo       repository.ContactRepository
	limiter    RateLimiter
	dispatcher *notify.Dispatcher
	blocking   bool
	now        func() time.Time
}

// NewContactService creates a ContactService over the given collaborators.
// With blocking set, the notification is delivered before the result is
// returned; otherwise it is dispatched in the background. Either way its
// outcome never changes the result.
func NewContactService(repo repository.ContactRepository, limiter RateLimiter, dispatcher *notify.Dispatcher, blocking bool) ContactService {
	return &contactServiceImpl{
		repo:       repo,
		limiter:    limiter,
		dispatcher: dispatcher,
		blocking:   blocking,
		now:        time.Now,
	}
}

// Submit runs the pipeline. Rate limiting applies only after validation, so
// malformed spam does not consume a legitimate client's quota.
func (s *contactServiceImpl) Submit(ctx context.Context, clientKey string, form validate.ContactForm) (*model.SubmissionResult, error) {
	if fieldErrs := validate.ContactSubmission(form); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	if ok, retryAfter := s.limiter.Allow(clientKey); !ok {
		return nil, &RateLimitError{RetryAfter: retryAfter}
	}

	sub := model.ContactSubmission{
		Name:    sanitize.Name(form.Name),
		Email:   sanitize.Email(form.Email),
		Phone:   sanitize.Phone(form.Phone),
		Message: sanitize.Message(form.Message),
	}

	submittedAt := s.now().UTC()
	rec := &model.ContactRecord{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       sub.Phone,
		Message:     sub.Message,
		Status:      model.StatusNew,
		SubmittedAt: submittedAt,
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("store contact submission: %w", err)
	}

	// The submission is durably accepted; notification is best-effort from
	// here and must not influence the result.
	payload := notify.Payload{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       sub.Phone,
		Message:     sub.Message,
		SubmittedAt: submittedAt,
	}
	if s.blocking {
		s.dispatcher.Deliver(ctx, payload)
	} else {
		s.dispatcher.Dispatch(payload)
	}

	return &model.SubmissionResult{
		Success: true,
		Message: "Your message has been sent successfully! We will get back to you soon.",
	}, nil
}
