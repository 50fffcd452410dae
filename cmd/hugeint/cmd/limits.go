package cmd

import (
	"fmt"

	hugeint "github.com/shabbyrobe/go-hugeint"
	"github.com/shabbyrobe/go-hugeint/internal/demo"
	"github.com/spf13/cobra"
)

var limitsExact bool

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Prints the representable range",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if !limitsExact {
			demo.Preamble(out)
			return
		}
		fmt.Fprintf(out, "limbs:  %d x %d bits\n", hugeint.NumLimbs, 32)
		fmt.Fprintf(out, "digits: %d\n", hugeint.MaxInt.DecimalDigits())
		fmt.Fprintf(out, "min:    %s\n", hugeint.MinInt.Text())
		fmt.Fprintf(out, "max:    %s\n", hugeint.MaxInt.Text())
	},
}

func init() {
	limitsCmd.Flags().BoolVar(&limitsExact, "exact", false, "print the exact limits")
	rootCmd.AddCommand(limitsCmd)
}
