package cmd

import (
	"fmt"

	hugeint "github.com/shabbyrobe/go-hugeint"
	"github.com/shabbyrobe/go-hugeint/seq"
	"github.com/spf13/cobra"
)

var seqRecursive bool

var seqCmd = &cobra.Command{
	Use:   "seq {fact|fib} <n>",
	Short: "Prints a factorial or Fibonacci number",
	Long: fmt.Sprintf(`Prints n! or the nth Fibonacci number.

n must lie in [0, %d] for fact and [0, %d] for fib, or [0, %d] for fib
with --recursive.`, seq.FactorialLimit, seq.FibonacciLimit, seq.FibonacciRecursiveLimit),
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"fact", "fib"},
	RunE:      runSeq,
}

func init() {
	seqCmd.Flags().BoolVar(&seqRecursive, "recursive", false, "use the recursive algorithm")
	rootCmd.AddCommand(seqCmd)
}

func runSeq(cmd *cobra.Command, args []string) error {
	n, err := parseArg("n", args[1])
	if err != nil {
		return err
	}

	var (
		limit int64
		fn    func(hugeint.Int) hugeint.Int
	)
	switch args[0] {
	case "fact":
		limit, fn = seq.FactorialLimit, seq.FactorialIterative
		if seqRecursive {
			fn = seq.FactorialRecursive
		}
	case "fib":
		limit, fn = seq.FibonacciLimit, seq.FibonacciIterative
		if seqRecursive {
			limit, fn = seq.FibonacciRecursiveLimit, seq.FibonacciRecursive
		}
	default:
		return fmt.Errorf("unknown sequence %q, want fact or fib", args[0])
	}

	if n.Sign() < 0 || n.GreaterThan(hugeint.FromInt64(limit)) {
		return fmt.Errorf("n must lie in [0, %d], found %s", limit, n)
	}

	result := fn(n)
	logger.Printf("%s(%s) has %d digits", args[0], n, result.DecimalDigits())
	fmt.Fprintln(cmd.OutOrStdout(), result.Text())
	return nil
}
