package contact

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/floxenta/floxenta_backend/config"
	"github.com/floxenta/floxenta_backend/internal/catalog"
	"github.com/floxenta/floxenta_backend/internal/inquiry"
	"github.com/floxenta/floxenta_backend/internal/submission"
	"github.com/floxenta/floxenta_backend/pkg/logs"
)

func NewContactCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send inquiries to a contact endpoint",
	}

	cmd.PersistentFlags().String("endpoint", "", "contact endpoint URL (defaults to contact.client.endpoint)")

	cmd.AddCommand(newSendCommand())
	cmd.AddCommand(newSubmitCommand())

	return cmd
}

func newSendCommand() *cobra.Command {
	var service string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Fill in the contact form interactively and send it",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			session := env.session(submission.WithObserver(statusPrinter(out)))
			if service != "" {
				if err := session.Edit(inquiry.Form{Service: service}); err != nil {
					return err
				}
			}

			err = runInteractive(cmd.Context(), session, surveyPrompter{}, env.gate.Services(), out)
			if errors.Is(err, ErrAborted) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&service, "service", "", "preselect a service")

	return cmd
}

func newSubmitCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send one inquiry read from a YAML file",
		Example: `  floxenta contact submit --file inquiry.yaml

  # inquiry.yaml
  fullName: Jane Doe
  email: jane@co.com
  service: Web Development
  budgetRange: $5k - $10k
  message: We need a new company website built.
  consent: true`,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := readForm(file)
			if err != nil {
				return err
			}

			env, err := setup(cmd)
			if err != nil {
				return err
			}
			return submitOnce(cmd.Context(), env.session(), form, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file holding the inquiry")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

type environment struct {
	gate      *inquiry.Gate
	transport submission.Transport
	timeout   time.Duration
	logger    *slog.Logger
}

func (e *environment) session(opts ...submission.Option) *submission.Session {
	opts = append([]submission.Option{
		submission.WithTimeout(e.timeout),
		submission.WithLogger(e.logger),
	}, opts...)
	return submission.NewSession(e.gate, e.transport, opts...)
}

func setup(cmd *cobra.Command) (*environment, error) {
	cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
	if err != nil {
		return nil, err
	}

	endpoint, err := cmd.Flags().GetString("endpoint")
	if err != nil {
		return nil, err
	}
	if endpoint == "" {
		endpoint = cfg.Contact.Client.Endpoint
	}

	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.Contact.Client.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = submission.DefaultTimeout
	}

	// stdout belongs to the prompts; only warnings go to stderr
	logCfg := *cfg
	logCfg.Logging.Level = "warn"
	logCfg.Logging.Format = "text"
	logCfg.Logging.Output = config.OutputConfig{Stdout: true}
	logger := logs.New(&logCfg, logs.WithConsole(os.Stderr))

	return &environment{
		gate:      inquiry.NewGate(cat.ServiceTitles(), inquiry.WithPhoneRegion(cfg.Contact.PhoneRegion)),
		transport: submission.NewHTTPTransport(endpoint, timeout),
		timeout:   timeout,
		logger:    logger,
	}, nil
}

func readForm(path string) (inquiry.Form, error) {
	var f inquiry.Form
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read inquiry file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return f, fmt.Errorf("parse inquiry file %s: %w", path, err)
	}
	return f, nil
}
