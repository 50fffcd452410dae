package cmd

import (
	"errors"
	"fmt"

	"github.com/shabbyrobe/go-hugeint/internal/config"
	"github.com/shabbyrobe/go-hugeint/internal/demo"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Runs the interactive factorial and Fibonacci session",
	Long: `Prompts for n and m, then prints n! and the mth Fibonacci number along
with their comparison, sum, difference, quotient and remainder.

The prompt bounds, retry count and algorithm come from --config when given.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	logger.Printf("loaded %s: factorial<=%d fibonacci<=%d retries=%d recursive=%v",
		cfgFile, cfg.FactorialLimit, cfg.FibonacciLimit, cfg.MaxRetries, cfg.Recursive)
	return cfg, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	err = demo.Session(cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
	if errors.Is(err, demo.ErrTooManyRetries) {
		fmt.Fprintln(cmd.OutOrStdout(), "\nGiving up...")
	}
	return err
}
