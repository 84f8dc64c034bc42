package lehmer

import (
	"slices"

	lerrors "github.com/matzehuels/lehmer/pkg/errors"
)

// Validate reports whether p is a permutation of a contiguous integer range:
// it must be non-empty and every value in [min(p), max(p)] must occur exactly
// once. Failures carry ErrCodeInvalidPermutation.
func Validate(p []int) error {
	if len(p) == 0 {
		return lerrors.New(lerrors.ErrCodeInvalidPermutation, "permutation is empty")
	}

	lo, hi := slices.Min(p), slices.Max(p)
	// Unsigned subtraction keeps the span exact even when hi-lo overflows int.
	if span := uint64(hi) - uint64(lo); span != uint64(len(p)-1) {
		return lerrors.New(lerrors.ErrCodeInvalidPermutation,
			"values %d..%d do not form a contiguous range of %d elements", lo, hi, len(p))
	}

	counts := make([]int, len(p))
	for _, v := range p {
		counts[v-lo]++
		if counts[v-lo] > 1 {
			return lerrors.New(lerrors.ErrCodeInvalidPermutation, "value %d appears more than once", v)
		}
	}
	return nil
}

// countLesser returns how many elements after position i are smaller than p[i].
func countLesser(p []int, i int) int {
	n := 0
	for _, v := range p[i+1:] {
		if v < p[i] {
			n++
		}
	}
	return n
}

func (c *Codec) encode(p []int) (int64, error) {
	if err := Validate(p); err != nil {
		return 0, err
	}
	if len(p) > MaxLength {
		return 0, lerrors.New(lerrors.ErrCodeOverflow,
			"permutation of %d elements exceeds the int64 range (max %d); use EncodeBig", len(p), MaxLength)
	}

	var code int64
	for i := range p {
		code += int64(countLesser(p, i)) * c.table.mustFactorial(len(p)-1-i)
	}
	return code, nil
}
