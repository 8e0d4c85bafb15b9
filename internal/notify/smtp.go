package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// smtpTimeout bounds the whole SMTP conversation (dial, auth, send).
const smtpTimeout = 30 * time.Second

// SMTPNotifier sends a plain-text notification email over implicit-TLS SMTP
// (the ZeptoMail-style transactional setup).
type SMTPNotifier struct {
	host     string
	port     int
	user     string
	password string
	from     string
	to       string
}

// NewSMTPNotifier creates an SMTP-backed notifier.
func NewSMTPNotifier(host string, port int, user, password, from, to string) *SMTPNotifier {
	return &SMTPNotifier{host: host, port: port, user: user, password: password, from: from, to: to}
}

var _ Notifier = (*SMTPNotifier)(nil)

// Notify connects, authenticates and submits one message. The connection
// carries a deadline derived from the context, capped at smtpTimeout.
func (n *SMTPNotifier) Notify(ctx context.Context, p Payload) error {
	deadline := time.Now().Add(smtpTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	addr := net.JoinHostPort(n.host, fmt.Sprintf("%d", n.port))
	dialer := &net.Dialer{Deadline: deadline}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: n.host})
	if err != nil {
		return fmt.Errorf("smtp: TLS dial failed: %w", err)
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return fmt.Errorf("smtp: set deadline failed: %w", err)
	}

	client := smtp.NewClient(conn)
	defer client.Close()

	auth := sasl.NewPlainClient("", n.user, n.password)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp: auth failed: %w", err)
	}
	if err := client.Mail(n.from, nil); err != nil {
		return fmt.Errorf("smtp: MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(n.to, nil); err != nil {
		return fmt.Errorf("smtp: RCPT TO %q failed: %w", n.to, err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp: DATA failed: %w", err)
	}
	if _, err := writer.Write([]byte(n.buildMessage(p))); err != nil {
		return fmt.Errorf("smtp: writing message failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("smtp: finalizing message failed: %w", err)
	}
	if err := client.Quit(); err != nil {
		return fmt.Errorf("smtp: QUIT failed: %w", err)
	}
	return nil
}

// buildMessage renders the raw RFC 5322 message with the notification body.
func (n *SMTPNotifier) buildMessage(p Payload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.from)
	fmt.Fprintf(&b, "To: %s\r\n", n.to)
	if p.Email != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", p.Email)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", Subject(p))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(Body(p), "\n", "\r\n"))
	return b.String()
}

// Subject is the notification email subject line.
func Subject(p Payload) string {
	return "New contact form submission from " + p.Name
}

// Body renders the plain-text notification body.
func Body(p Payload) string {
	phone := p.Phone
	if phone == "" {
		phone = "N/A"
	}
	return strings.Join([]string{
		"Name: " + p.Name,
		"Email: " + p.Email,
		"Phone: " + phone,
		"Submitted At: " + p.SubmittedAt.UTC().Format(time.RFC3339),
		"",
		"Message:",
		p.Message,
	}, "\n")
}
