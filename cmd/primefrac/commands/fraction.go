package commands

import (
	"github.com/spf13/cobra"
)

func fractionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fraction <decimal>",
		Short: "Reduce a decimal value to a fraction in lowest terms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := appCtx.Calc.DecimalToFraction(args[0])
			return err
		},
	}
}
