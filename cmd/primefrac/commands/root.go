package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"primefrac/internal/app"
)

var (
	configPath string
	bound      int64
	trace      bool

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "primefrac [number | decimal]",
		Short: "Prime factorization and lowest-terms fractions",
		Long: `primefrac factorizes an integer into prime numbers, or reduces a
decimal value to a fraction in lowest terms.

  primefrac 1234   gives 2 * 617 (prime factors)
  primefrac 12.25  gives 12 1/4 (fraction)`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("bound") {
				cfg.Bound = bound
			}
			if trace {
				cfg.Trace = true
			}
			appCtx, err = app.NewWire(cfg, cmd.OutOrStdout())
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			} else {
				var err error
				if input, err = promptForNumber(cmd); err != nil {
					return err
				}
			}
			return dispatch(input)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().Int64Var(&bound, "bound", app.DefaultBound, "upper limit of the prime table")
	root.PersistentFlags().BoolVarP(&trace, "trace", "t", false, "emit diagnostic tracing")

	root.AddCommand(factorCmd(), fractionCmd(), primesCmd())
	return root.Execute()
}

// dispatch picks the calculation from the input's shape: a decimal point
// selects fraction reduction, anything else integer factorization.
func dispatch(input string) error {
	if strings.ContainsRune(input, '.') {
		_, err := appCtx.Calc.DecimalToFraction(input)
		return err
	}
	_, err := appCtx.Calc.FactorizeNumber(input)
	return err
}

// promptForNumber reads one line from stdin when no argument was given.
// The prompt itself is only printed on an interactive terminal so piped
// input stays clean.
func promptForNumber(cmd *cobra.Command) (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(cmd.OutOrStdout(), "Enter an integer number to factorize into prime numbers: ")
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("could not read number: %w", err)
	}
	return strings.TrimSpace(line), nil
}
