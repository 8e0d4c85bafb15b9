package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// PostmarkNotifier sends the notification through Postmark's transactional API.
type PostmarkNotifier struct {
	client *postmark.Client
	from   string
	to     string
}

// NewPostmarkNotifier creates a Postmark-backed notifier.
func NewPostmarkNotifier(serverToken, accountToken, from, to string) *PostmarkNotifier {
	return &PostmarkNotifier{
		client: postmark.NewClient(serverToken, accountToken),
		from:   from,
		to:     to,
	}
}

var _ Notifier = (*PostmarkNotifier)(nil)

// ErrSendFailed wraps provider-level delivery failures.
var ErrSendFailed = errors.New("notification send failed")

// Notify submits one email via Postmark. Reply-To is set to the submitter so
// a direct reply reaches them.
func (n *PostmarkNotifier) Notify(ctx context.Context, p Payload) error {
	resp, err := n.client.SendEmail(ctx, postmark.Email{
		From:     n.from,
		To:       n.to,
		ReplyTo:  p.Email,
		Subject:  Subject(p),
		TextBody: Body(p),
		Tag:      "contact-form",
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrSendFailed, fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}
	return nil
}
