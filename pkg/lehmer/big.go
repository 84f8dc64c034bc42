package lehmer

import (
	"math/big"
	"sync"

	lerrors "github.com/matzehuels/lehmer/pkg/errors"
)

// BigTable memoizes factorials as arbitrary-precision integers.
// The zero value is ready to use.
type BigTable struct {
	mu  sync.RWMutex
	lut []*big.Int
}

// NewBigTable returns a table seeded with 0! = 1.
func NewBigTable() *BigTable {
	return &BigTable{lut: []*big.Int{big.NewInt(1)}}
}

// Factorial returns a copy of n!. The caller may modify the result.
func (t *BigTable) Factorial(n int) (*big.Int, error) {
	v, err := t.get(n)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(v), nil
}

// get returns the shared table entry; callers must not modify it.
func (t *BigTable) get(n int) (*big.Int, error) {
	if n < 0 {
		return nil, lerrors.New(lerrors.ErrCodeInvalidArgument, "factorial of negative number %d", n)
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
		t.lut = append(t.lut, big.NewInt(1))
	}
	for len(t.lut) <= n {
		k := len(t.lut)
		next := new(big.Int).Mul(t.lut[k-1], big.NewInt(int64(k)))
		t.lut = append(t.lut, next)
	}
	return t.lut[n], nil
}

// Len returns the number of memoized entries.
func (t *BigTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.lut)
}

func (t *BigTable) encode(p []int) (*big.Int, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	code := new(big.Int)
	term := new(big.Int)
	for i := range p {
		f, err := t.get(len(p) - 1 - i)
		if err != nil {
			return nil, err
		}
		term.SetInt64(int64(countLesser(p, i)))
		code.Add(code, term.Mul(term, f))
	}
	return code, nil
}

func (t *BigTable) decode(length int, code *big.Int) ([]int, error) {
	if length < 0 {
		return nil, lerrors.New(lerrors.ErrCodeInvalidArgument, "negative length %d", length)
	}
	if code == nil {
		return nil, lerrors.New(lerrors.ErrCodeInvalidArgument, "missing code")
	}
	if code.Sign() < 0 {
		return nil, lerrors.New(lerrors.ErrCodeInvalidArgument, "negative code %s", code)
	}

	total, err := t.get(length)
	if err != nil {
		return nil, err
	}
	if code.Cmp(total) >= 0 {
		return nil, lerrors.New(lerrors.ErrCodeOutOfRange, "code %s out of range for length %d (max %d!-1)", code, length, length)
	}

	digits := make([]int, length)
	rem := new(big.Int)
	for i := range digits {
		hi, err := t.get(length - i)
		if err != nil {
			return nil, err
		}
		lo, err := t.get(length - 1 - i)
		if err != nil {
			return nil, err
		}
		rem.Mod(code, hi)
		digits[i] = int(rem.Quo(rem, lo).Int64())
	}
	return resolve(digits), nil
}
