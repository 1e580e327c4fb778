package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/amaljosh/wellness/internal/config"
	"github.com/amaljosh/wellness/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "wellness",
	Short: "Amal Josh Wellness Centre website",
	Long: `wellness serves the Amal Josh Wellness Centre marketing site and its
consultation form, which forwards leads to the backend API at BACKEND_URL.

Available commands:
  serve      Run the web server
  probe      Check that the backend API is reachable
  version    Print the version

Use "wellness [command] --help" for more information about a command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration and installs the default logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	logging.New(cfg.LogFormat, cfg.LogLevel)
	return cfg, nil
}
