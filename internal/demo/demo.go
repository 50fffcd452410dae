// Package demo drives the interactive factorial and Fibonacci session.
package demo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	hugeint "github.com/shabbyrobe/go-hugeint"
	"github.com/shabbyrobe/go-hugeint/internal/config"
	"github.com/shabbyrobe/go-hugeint/seq"
)

// ErrTooManyRetries is returned by ReadBounded when every attempt was
// rejected.
var ErrTooManyRetries = errors.New("demo: too many retries")

var (
	rule = strings.Repeat("*", 75)

	ruleColor = color.New(color.FgCyan)
	headColor = color.New(color.Bold)
	warnColor = color.New(color.FgYellow)
)

// ReadBounded prompts on out and reads whitespace-delimited integers from in
// until one lies in [min, max]. Unparseable input prints a hint; both it and
// out of range values count against retries. When retries attempts have
// failed it returns ErrTooManyRetries. Read errors, io.EOF included, are
// returned immediately.
//
// If in is not an io.RuneScanner it is buffered, and anything read past the
// accepted token is lost. Pass a *bufio.Reader to read from in again
// afterwards.
func ReadBounded(in io.Reader, out io.Writer, min, max hugeint.Int, retries int) (value hugeint.Int, err error) {
	if _, ok := in.(io.RuneScanner); !ok {
		in = bufio.NewReader(in)
	}

	for attempt := 0; attempt < retries; attempt++ {
		fmt.Fprintf(out, "Enter an integer (%s - %s): ", min, max)

		var v hugeint.Int
		if _, err := fmt.Fscan(in, &v); err != nil {
			if !errors.Is(err, hugeint.ErrInvalidFormat) {
				return value, err
			}
			warnColor.Fprint(out, "You entered an invalid HugeInt value.")
			fmt.Fprintln(out, " Please use, e.g., [+/-]1234567876376763.")
			continue
		}

		if v.GreaterOrEqualTo(min) && v.LessOrEqualTo(max) {
			return v, nil
		}
	}
	return value, ErrTooManyRetries
}

// Session runs the full demo: a preamble describing the range of Int, then
// a factorial and a Fibonacci number from two bounded prompts, compared and
// combined every which way, and finally a sum of three cubes.
func Session(in io.Reader, out io.Writer, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	factorial, fibonacci := seq.FactorialIterative, seq.FibonacciIterative
	if cfg.Recursive {
		factorial, fibonacci = seq.FactorialRecursive, seq.FibonacciRecursive
	}

	rd := bufio.NewReader(in)
	zero := hugeint.FromInt64(0)

	Preamble(out)

	nfac, err := ReadBounded(rd, out, zero, hugeint.FromInt64(cfg.FactorialLimit), cfg.MaxRetries)
	if err != nil {
		return err
	}
	fac := factorial(nfac)

	fmt.Fprintf(out, "\nThe value of %s! is:\n%s\n", nfac, fac)
	fmt.Fprintf(out, "\nThis value has %d decimal digits.\n", fac.DecimalDigits())
	fmt.Fprintf(out, "\nIts decimal approximation is: %s\n\n", approx(fac))

	nfib, err := ReadBounded(rd, out, zero, hugeint.FromInt64(cfg.FibonacciLimit), cfg.MaxRetries)
	if err != nil {
		return err
	}
	fib := fibonacci(nfib)

	fmt.Fprintf(out, "\nThe %sth Fibonacci number is:\n%s\n", nfib, fib)
	fmt.Fprintf(out, "\nThis value has %d decimal digits.\n", fib.DecimalDigits())
	fmt.Fprintf(out, "\nIts decimal approximation is: %s\n", approx(fib))

	headColor.Fprint(out, "\nCOMPARING")
	fmt.Fprint(out, " these two values we observe that ")
	switch {
	case fac.Equal(fib):
		fmt.Fprintf(out, "%s! == Fibonacci_{%s}\n", nfac, nfib)
	case fac.LessThan(fib):
		fmt.Fprintf(out, "%s! < Fibonacci_{%s}\n", nfac, nfib)
	default:
		fmt.Fprintf(out, "%s! > Fibonacci_{%s}\n", nfac, nfib)
	}

	sum, diff := fac.Add(fib), fac.Sub(fib)
	printResult(out, "SUM", "(factorial + fibonacci)", sum)
	printResult(out, "DIFFERENCE", "(factorial - fibonacci)", diff)

	if fib.IsZero() {
		headColor.Fprint(out, "\nTheir QUOTIENT")
		fmt.Fprintln(out, " (factorial / fibonacci) is undefined: Fibonacci_{0} is 0.")
	} else {
		quo, rem := fac.QuoRem(fib)
		printResult(out, "QUOTIENT", "(factorial / fibonacci)", quo)
		fmt.Fprintf(out, "\n\twith REMAINDER:\n%s\n", rem)
		fmt.Fprintf(out, "\n\twhich is approximately %s\n", approx(rem))
	}

	SumOfCubes(out)
	return nil
}

// Preamble prints the approximate range of Int and its maximum number of
// decimal digits.
func Preamble(out io.Writer) {
	ruleColor.Fprintf(out, "%s\n\n", rule)
	fmt.Fprintf(out, "The range of integers, x, that can be represented in the default HugeInt\n")
	fmt.Fprintf(out, "configuration is, approximately\n")
	fmt.Fprintf(out, "      %s <= x <= %s\n", approxLimit(hugeint.MinInt), approxLimit(hugeint.MaxInt))
	fmt.Fprintf(out, "\nThe precise values of the upper and lower limits can be found using\n")
	fmt.Fprintf(out, "hugeint.MinInt/hugeint.MaxInt.\n")
	fmt.Fprintf(out, "\nThe maximum number of decimal digits of an integer representable with\n")
	fmt.Fprintf(out, "a HugeInt is: %d\n\n", hugeint.MaxInt.DecimalDigits())
	ruleColor.Fprintf(out, "%s\n\n", rule)
}

// SumOfCubes prints one of the known solutions of x^3 + y^3 + z^3 = 42.
func SumOfCubes(out io.Writer) {
	x := hugeint.MustFromString("-80538738812075974")
	y := hugeint.MustFromString("80435758145817515")
	z := hugeint.MustFromString("12602123297335631")
	k := x.Mul(x).Mul(x).Add(y.Mul(y).Mul(y)).Add(z.Mul(z).Mul(z))

	fmt.Fprintf(out, "\nDid you know that, with:\n")
	fmt.Fprintf(out, "\tx = %s\n\ty = %s\n\tz = %s\n", x, y, z)
	fmt.Fprintf(out, "\nx^3 + y^3 + z^3 = %s\n", k)
}

func printResult(out io.Writer, name, what string, v hugeint.Int) {
	headColor.Fprintf(out, "\nTheir %s", name)
	fmt.Fprintf(out, " %s is:\n%s\n", what, v)
	fmt.Fprintf(out, "\n\twhich is approximately %s\n", approx(v))
}

func approx(v hugeint.Int) string {
	return fmt.Sprintf("%.15g", v.AsFloat64())
}

// approxLimit describes a value too large for float64 in scientific notation,
// using the leading digits and the digit count.
func approxLimit(v hugeint.Int) string {
	txt := v.Text()
	sign := ""
	if strings.HasPrefix(txt, "-") {
		sign, txt = "-", txt[1:]
	}
	return fmt.Sprintf("%s%s.%se+%d", sign, txt[:1], txt[1:16], len(txt)-1)
}
