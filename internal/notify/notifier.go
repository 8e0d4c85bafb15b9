// Package notify delivers best-effort notifications for accepted contact
// submissions. Every implementation attempts exactly one delivery with a
// bounded timeout; there are no retries, and a failed delivery never changes
// an already-determined submission result.
package notify

import (
	"context"
	"time"
)

// Payload carries the fields of an accepted submission to a notification
// channel.
type Payload struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Notifier attempts one delivery to an external channel.
type Notifier interface {
	Notify(ctx context.Context, p Payload) error
}
