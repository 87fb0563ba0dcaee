package system

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/floxenta/floxenta_backend/config"
)

func NewCheckConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-config",
		Short: "Load and validate the configuration, then print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "configuration OK")
			for _, line := range summary(cfg) {
				fmt.Fprintln(out, "  "+line)
			}
			return nil
		},
	}
}

// summary lists the effective settings that decide how inquiries flow.
// Secrets are never printed.
func summary(cfg *config.Config) []string {
	mail := "disabled (inquiries are logged only)"
	if cfg.Email.Enabled {
		mail = fmt.Sprintf("%s:%d -> %s", cfg.Email.SMTP.Host, cfg.Email.SMTP.Port, cfg.Email.Recipient)
	}
	limiter := "memory"
	if cfg.Redis.Addr != "" {
		limiter = "redis " + cfg.Redis.Addr
	}
	nats := "disabled"
	if cfg.Nats.URL != "" {
		nats = redactURL(cfg.Nats.URL)
	}
	origins := "disabled"
	if cfg.Server.CORS.Enabled {
		origins = strings.Join(cfg.Server.CORS.AllowOrigins, ", ")
	}

	return []string{
		fmt.Sprintf("environment:  %s", cfg.Server.Environment),
		fmt.Sprintf("listen:       :%d", cfg.Server.Port),
		fmt.Sprintf("cors:         %s", origins),
		fmt.Sprintf("email:        %s", mail),
		fmt.Sprintf("rate limit:   %d per %ds (%s)", cfg.Contact.RateLimit.Max, cfg.Contact.RateLimit.ExpirationSeconds, limiter),
		fmt.Sprintf("events:       %s", nats),
		fmt.Sprintf("phone region: %s", cfg.Contact.PhoneRegion),
		fmt.Sprintf("log level:    %s", cfg.Logging.Level),
	}
}

// redactURL hides URL credentials. A user without a password is a token
// and is hidden too.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "configured (unparseable url)"
	}
	if u.User != nil {
		if _, hasPassword := u.User.Password(); !hasPassword {
			u.User = url.User("xxxxx")
		}
	}
	return u.Redacted()
}
