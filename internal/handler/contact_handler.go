package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/studioform/backend/internal/model"
	"github.com/studioform/backend/internal/ratelimit"
	"github.com/studioform/backend/internal/service"
	"github.com/studioform/backend/internal/validate"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact/submit.
// Outcomes: 200 accepted, 400 validation failure, 429 rate limited,
// 500 generic failure. Internal detail never reaches the caller.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form validate.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, model.SubmissionResult{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	result, err := h.contactService.Submit(r.Context(), ratelimit.ClientKey(r), form)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusBadRequest, model.SubmissionResult{
				Success: false,
				Message: "Validation failed",
				Errors:  vErr.Fields,
			})
			return
		}

		var rlErr *service.RateLimitError
		if errors.As(err, &rlErr) {
			w.Header().Set("Retry-After", retryAfterSeconds(rlErr.RetryAfter))
			writeJSON(w, http.StatusTooManyRequests, model.SubmissionResult{
				Success: false,
				Message: "Too many form submissions. Please try again in 1 minute.",
			})
			return
		}

		slog.Error("contact submission failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, model.SubmissionResult{
			Success: false,
			Message: "Unable to submit your message right now. Please try again later.",
		})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// retryAfterSeconds formats a duration as whole seconds, rounded up, minimum 1.
func retryAfterSeconds(d time.Duration) string {
	secs := int(d.Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
