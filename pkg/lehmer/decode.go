package lehmer

import (
	lerrors "github.com/matzehuels/lehmer/pkg/errors"
)

func (c *Codec) decode(length int, code int64) ([]int, error) {
	if length < 0 {
		return nil, lerrors.New(lerrors.ErrCodeInvalidArgument, "negative length %d", length)
	}
	if code < 0 {
		return nil, lerrors.New(lerrors.ErrCodeInvalidArgument, "negative code %d", code)
	}
	if length > MaxLength {
		return nil, lerrors.New(lerrors.ErrCodeOverflow,
			"length %d exceeds the int64 range (max %d); use DecodeBig", length, MaxLength)
	}

	if total := c.table.mustFactorial(length); code >= total {
		return nil, lerrors.New(lerrors.ErrCodeOutOfRange,
			"code %d out of range for length %d (max %d)", code, length, total-1)
	}

	// digits[i] is the rank of position i's value among the values not yet placed.
	digits := make([]int, length)
	for i := range digits {
		hi := c.table.mustFactorial(length - i)
		lo := c.table.mustFactorial(length - 1 - i)
		digits[i] = int((code % hi) / lo)
	}
	return resolve(digits), nil
}

// resolve maps factorial-base digits to values: digit d picks the d-th
// smallest value in 0..len(digits)-1 that is still unused.
func resolve(digits []int) []int {
	used := make([]bool, len(digits))
	out := make([]int, len(digits))
	for i, d := range digits {
		seen := 0
		for v := range used {
			if used[v] {
				continue
			}
			if seen == d {
				out[i] = v
				used[v] = true
				break
			}
			seen++
		}
	}
	return out
}
