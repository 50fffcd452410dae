/*
Package hugeint provides Int, a fixed-size signed integer of 300 base 2^32
limbs (9600 bits, roughly ±10^2889), implementing a useful subset of the
big.Int API.

Int is a value type; all operations return new values. It never allocates on
the arithmetic paths and overflow wraps silently, the same as Go's built in
integer types.

Simple example:

	x := hugeint.MustFromString("12345678901234567890")
	fmt.Println(x.Inc())
	// Output: 12,345,678,901,234,567,891

Int can be created from a variety of sources:

	FromInt64(v int64) Int
	FromInt(v int) Int
	From32(v int32) Int
	FromUint64(v uint64) Int
	FromString(s string) (out Int, err error)
	FromBigInt(v *big.Int) (out Int, accurate bool)
	FromFloat64(f float64) (out Int, inRange bool)
	FromLimbs(limbs []uint32) Int

Negative values are stored as their radix complement, so addition,
subtraction and multiplication need no sign handling. Division is Knuth's
Algorithm D on magnitudes, with the signs applied afterwards.

Comparisons are derived from subtraction and inherit its wraparound:
operands close to MinInt and MaxInt with opposite signs can compare wrongly.
Negating MinInt yields MinInt.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- fmt.Scanner
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

String groups digits with commas ("-1,234,567"); Text and the marshallers use
the plain form ("-1234567"), which is what FromString accepts.
*/
package hugeint
