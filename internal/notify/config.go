package notify

import "log/slog"

// Config selects and parameterizes the notification channel. All fields are
// optional; with no provider configured, notifications degrade to a logged
// skip rather than a startup failure.
type Config struct {
	SMTPHost     string `env:"SMTP_HOST" envDefault:"smtp.zeptomail.com"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"465"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPTo       string `env:"SMTP_TO"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	PostmarkFrom         string `env:"POSTMARK_FROM"`
	PostmarkTo           string `env:"POSTMARK_TO"`

	WebhookURL string `env:"NOTIFY_WEBHOOK_URL"`
}

// FromConfig picks the first fully configured channel: SMTP, then Postmark,
// then webhook. With none configured it returns a sender that only logs,
// so missing credentials never become a hard failure.
func FromConfig(cfg Config) Notifier {
	if cfg.SMTPUser != "" && cfg.SMTPPassword != "" && cfg.SMTPTo != "" {
		from := cfg.SMTPFrom
		if from == "" {
			from = cfg.SMTPUser
		}
		return NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, from, cfg.SMTPTo)
	}
	if cfg.PostmarkServerToken != "" && cfg.PostmarkFrom != "" && cfg.PostmarkTo != "" {
		return NewPostmarkNotifier(cfg.PostmarkServerToken, cfg.PostmarkAccountToken, cfg.PostmarkFrom, cfg.PostmarkTo)
	}
	if cfg.WebhookURL != "" {
		return NewWebhookNotifier(cfg.WebhookURL)
	}
	slog.Warn("no notification provider configured; submissions will be stored without notification")
	return NewLogNotifier()
}
