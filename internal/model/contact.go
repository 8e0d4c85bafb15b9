package model

import "time"

// ContactSubmission is one contact-form payload after sanitization.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// ContactRecord is the persisted form of a submission. The pipeline writes it
// once and never reads it back; ID and the storage timestamps are assigned by
// the persistence collaborator.
type ContactRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Message     string    `json:"message"`
	Status      string    `json:"status"` // "new" | "contacted" | "closed"
	Notes       string    `json:"notes,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StatusNew is the only status the pipeline ever writes.
const StatusNew = "new"

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SubmissionResult is the per-request outcome returned to the caller.
type SubmissionResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}
