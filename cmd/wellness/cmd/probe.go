package cmd

import (
	"github.com/spf13/cobra"

	"github.com/amaljosh/wellness/internal/app"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check that the backend API is reachable",
	Long: `probe issues one GET /api/health against BACKEND_URL and logs the result.
It exits 0 whether or not the backend answered; the outcome is only logged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p, err := app.Probe(app.NewInjector(cfg))
		if err != nil {
			return err
		}
		p.Run(cmd.Context())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
