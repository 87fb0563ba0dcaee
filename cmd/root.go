package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	contactcmd "github.com/floxenta/floxenta_backend/cmd/contact"
	httpcmd "github.com/floxenta/floxenta_backend/cmd/http"
	systemcmd "github.com/floxenta/floxenta_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "floxenta",
	Short: "Floxenta studio backend: contact inquiries and site content.",
	Long: `floxenta serves the Floxenta studio website backend.

It receives contact-form inquiries and relays them to the studio inbox,
serves the static site catalog (services, projects, team, posts), and
ships a terminal contact form for sending inquiries to any endpoint.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
	rootCmd.AddCommand(contactcmd.NewContactCommand())
}
