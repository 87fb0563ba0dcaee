package email

import (
	"time"

	"github.com/floxenta/floxenta_backend/config"
)

// Config holds the SMTP relay settings.
type Config struct {
	Enabled bool
	From    string

	// Recipient is the inbox inquiry notifications are delivered to.
	Recipient string

	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPUseTLS         bool
	SMTPTimeoutSeconds int
}

// DefaultConfig returns sensible defaults for email configuration
func DefaultConfig() Config {
	return Config{
		Enabled:            false,
		Recipient:          "hello@floxenta.com",
		SMTPPort:           587,
		SMTPTimeoutSeconds: 30,
	}
}

// SMTPTimeout returns the SMTP timeout as a duration
func (c Config) SMTPTimeout() time.Duration {
	if c.SMTPTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.SMTPTimeoutSeconds) * time.Second
}

// ImplicitTLS reports whether the relay expects TLS from the first byte
// (SMTPS) rather than a STARTTLS upgrade. Port 465 always implies it.
func (c Config) ImplicitTLS() bool {
	return c.SMTPUseTLS || c.SMTPPort == 465
}

// FromCentralConfig converts central config.EmailConfig to package Config
func FromCentralConfig(c config.EmailConfig) Config {
	cfg := Config{
		Enabled:            c.Enabled,
		From:               c.From,
		Recipient:          c.Recipient,
		SMTPHost:           c.SMTP.Host,
		SMTPPort:           c.SMTP.Port,
		SMTPUsername:       c.SMTP.Username,
		SMTPPassword:       c.SMTP.Password,
		SMTPUseTLS:         c.SMTP.UseTLS,
		SMTPTimeoutSeconds: c.SMTP.TimeoutSeconds,
	}
	if cfg.Recipient == "" {
		cfg.Recipient = DefaultConfig().Recipient
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = DefaultConfig().SMTPPort
	}
	return cfg
}
