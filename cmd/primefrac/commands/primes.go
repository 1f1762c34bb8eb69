package commands

import (
	"github.com/spf13/cobra"

	"primefrac/internal/report"
)

func primesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "primes",
		Short: "Show the size of the prime table and its largest entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			report.New(cmd.OutOrStdout()).Primes(appCtx.Primes)
			return nil
		},
	}
}
