package lehmer

import (
	"sync"

	lerrors "github.com/matzehuels/lehmer/pkg/errors"
)

// MaxLength is the longest permutation whose code fits in an int64.
// 20! = 2432902008176640000 is the largest factorial below 2^63.
const MaxLength = 20

// Table memoizes factorials as int64 values.
//
// The zero value is ready to use. Lookups of already computed entries take
// a read lock only; growth takes the write lock and re-checks the length.
type Table struct {
	mu  sync.RWMutex
	lut []int64
}

// NewTable returns a table seeded with 0! = 1.
func NewTable() *Table {
	return &Table{lut: []int64{1}}
}

// Factorial returns n!.
//
// Negative n fails with ErrCodeInvalidArgument. n > MaxLength fails with
// ErrCodeOverflow and leaves the table unchanged.
func (t *Table) Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, lerrors.New(lerrors.ErrCodeInvalidArgument, "factorial of negative number %d", n)
	}
	if n > MaxLength {
		return 0, lerrors.New(lerrors.ErrCodeOverflow, "%d! exceeds the int64 range (max %d!)", n, MaxLength)
	}

	t.mu.RLock()
	if n < len(t.lut) {
		v := t.lut[n]
		t.mu.RUnlock()
		return v, nil
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.lut) == 0 {
		t.lut = append(t.lut, 1)
	}
	for len(t.lut) <= n {
		k := len(t.lut)
		t.lut = append(t.lut, t.lut[k-1]*int64(k))
	}
	return t.lut[n], nil
}

// Len returns the number of memoized entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.lut)
}

// mustFactorial is for arguments already checked against [0, MaxLength].
func (t *Table) mustFactorial(n int) int64 {
	v, err := t.Factorial(n)
	if err != nil {
		panic(err)
	}
	return v
}
