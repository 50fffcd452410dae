package cmd

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	hugeint "github.com/shabbyrobe/go-hugeint"
	"github.com/spf13/cobra"
)

var (
	calcRaw  bool
	calcDump bool
)

var calcCmd = &cobra.Command{
	Use:   "calc <a> <op> <b>",
	Short: "Evaluates a single binary operation",
	Long: `Evaluates a op b, where op is one of:

  +  -  *  /  %  cmp

Division truncates towards zero and the remainder takes the sign of a.
Results wrap silently on overflow.`,
	Example: `  hugeint calc 12345678901234567890 '*' 98765432109876543210
  hugeint calc -- -7 / 2`,
	Args: cobra.ExactArgs(3),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().BoolVar(&calcRaw, "raw", false, "print the result as zero-padded limbs")
	calcCmd.Flags().BoolVar(&calcDump, "dump", false, "dump the operands to stderr")
	rootCmd.AddCommand(calcCmd)
}

func calc(a hugeint.Int, op string, b hugeint.Int) (hugeint.Int, error) {
	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*", "x":
		return a.Mul(b), nil
	case "/", "%":
		if b.IsZero() {
			return a, errors.New("division by zero")
		}
		if op == "/" {
			return a.Quo(b), nil
		}
		return a.Rem(b), nil
	case "cmp":
		return hugeint.FromInt(a.Cmp(b)), nil
	default:
		return a, fmt.Errorf("unknown operator %q", op)
	}
}

func runCalc(cmd *cobra.Command, args []string) error {
	a, err := parseArg("a", args[0])
	if err != nil {
		return err
	}
	b, err := parseArg("b", args[2])
	if err != nil {
		return err
	}

	if calcDump {
		la, lb := a.Limbs(), b.Limbs()
		spew.Fdump(cmd.ErrOrStderr(), la[:4], lb[:4])
	}
	logger.Printf("a has %d digits, b has %d digits", a.DecimalDigits(), b.DecimalDigits())

	result, err := calc(a, args[1], b)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if calcRaw {
		fmt.Fprintln(out, result.RawString())
	} else {
		fmt.Fprintln(out, result.Text())
	}
	return nil
}
