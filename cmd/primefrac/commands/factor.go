package commands

import (
	"github.com/spf13/cobra"
)

func factorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factor <number>",
		Short: "Factorize an integer into prime numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := appCtx.Calc.FactorizeNumber(args[0])
			return err
		},
	}
}
