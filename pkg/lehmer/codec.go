package lehmer

import "math/big"

// Codec encodes and decodes permutations using its own factorial tables.
// A Codec is safe for concurrent use.
type Codec struct {
	table *Table
	big   *BigTable
}

// NewCodec returns a codec with empty factorial tables.
func NewCodec() *Codec {
	return &Codec{table: NewTable(), big: NewBigTable()}
}

var defaultCodec = NewCodec()

// Default returns the process-wide codec used by the package-level functions.
func Default() *Codec {
	return defaultCodec
}

// Factorial returns n! from the codec's int64 table.
func (c *Codec) Factorial(n int) (int64, error) {
	return c.table.Factorial(n)
}

// FactorialBig returns n! with arbitrary precision.
func (c *Codec) FactorialBig(n int) (*big.Int, error) {
	return c.big.Factorial(n)
}

// Count returns the number of permutations of length elements, which is
// also the exclusive upper bound on their codes.
func (c *Codec) Count(length int) (int64, error) {
	return c.table.Factorial(length)
}

// Encode returns the Lehmer code of p. The slice is not modified.
func (c *Codec) Encode(p []int) (int64, error) {
	return c.encode(p)
}

// Decode returns the permutation of 0..length-1 whose Lehmer code is code.
func (c *Codec) Decode(length int, code int64) ([]int, error) {
	return c.decode(length, code)
}

// EncodeBig is Encode without the MaxLength limit.
func (c *Codec) EncodeBig(p []int) (*big.Int, error) {
	return c.big.encode(p)
}

// DecodeBig is Decode without the MaxLength limit. code is not modified.
func (c *Codec) DecodeBig(length int, code *big.Int) ([]int, error) {
	return c.big.decode(length, code)
}

// Factorial returns n! using the default codec.
func Factorial(n int) (int64, error) { return defaultCodec.Factorial(n) }

// Count returns length! using the default codec.
func Count(length int) (int64, error) { return defaultCodec.Count(length) }

// Encode returns the Lehmer code of p using the default codec.
func Encode(p []int) (int64, error) { return defaultCodec.Encode(p) }

// Decode returns the permutation for code using the default codec.
func Decode(length int, code int64) ([]int, error) { return defaultCodec.Decode(length, code) }

// EncodeBig returns the arbitrary-precision Lehmer code of p.
func EncodeBig(p []int) (*big.Int, error) { return defaultCodec.EncodeBig(p) }

// DecodeBig returns the permutation for an arbitrary-precision code.
func DecodeBig(length int, code *big.Int) ([]int, error) {
	return defaultCodec.DecodeBig(length, code)
}
