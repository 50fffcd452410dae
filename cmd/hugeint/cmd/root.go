package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	hugeint "github.com/shabbyrobe/go-hugeint"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "hugeint",
	Short: "Fixed-width arbitrary precision integer toolkit",
	Long: `hugeint works with signed integers of up to 2,890 decimal digits.

Commands:
  demo     - interactive factorial and Fibonacci session
  calc     - evaluate a single binary operation
  seq      - print a factorial or Fibonacci number
  limits   - print the representable range`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
		logger.SetOutput(io.Discard)
		if verbose {
			logger.SetOutput(cmd.ErrOrStderr())
		}
	},
}

var logger = log.New(io.Discard, "hugeint: ", 0)

// Execute runs the root command, printing any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, TOML or YAML")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func printError(w io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprint(w, "Error ")
	fmt.Fprintln(w, err)
}

func parseArg(name, s string) (hugeint.Int, error) {
	v, err := hugeint.FromString(s)
	if err != nil {
		return v, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}
