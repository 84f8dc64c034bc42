package lehmer

import (
	"math/big"
	"sync"
	"testing"

	lerrors "github.com/matzehuels/lehmer/pkg/errors"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want int64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 6},
		{4, 24},
		{10, 3628800},
		{20, 2432902008176640000},
	}

	tab := NewTable()
	for _, tt := range tests {
		got, err := tab.Factorial(tt.n)
		if err != nil {
			t.Fatalf("Factorial(%d) error: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestFactorialErrors(t *testing.T) {
	tab := NewTable()

	if _, err := tab.Factorial(-1); !lerrors.Is(err, lerrors.ErrCodeInvalidArgument) {
		t.Errorf("Factorial(-1) error = %v, want %s", err, lerrors.ErrCodeInvalidArgument)
	}
	if _, err := tab.Factorial(MaxLength + 1); !lerrors.Is(err, lerrors.ErrCodeOverflow) {
		t.Errorf("Factorial(%d) error = %v, want %s", MaxLength+1, err, lerrors.ErrCodeOverflow)
	}
	if tab.Len() != 1 {
		t.Errorf("failed lookups should not grow the table, Len() = %d", tab.Len())
	}
}

func TestTableGrowsMonotonically(t *testing.T) {
	tab := NewTable()

	if _, err := tab.Factorial(5); err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 6 {
		t.Errorf("Len() = %d after Factorial(5), want 6", tab.Len())
	}

	if _, err := tab.Factorial(2); err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 6 {
		t.Errorf("Len() = %d after smaller lookup, want 6", tab.Len())
	}
}

func TestTableZeroValue(t *testing.T) {
	var tab Table
	got, err := tab.Factorial(4)
	if err != nil {
		t.Fatal(err)
	}
	if got != 24 {
		t.Errorf("Factorial(4) = %d, want 24", got)
	}
}

func TestTableConcurrent(t *testing.T) {
	tab := NewTable()

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for n := MaxLength; n >= 0; n-- {
				if _, err := tab.Factorial((n + g) % (MaxLength + 1)); err != nil {
					t.Error(err)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	want := int64(1)
	for n := 0; n <= MaxLength; n++ {
		if n > 0 {
			want *= int64(n)
		}
		if got, _ := tab.Factorial(n); got != want {
			t.Errorf("Factorial(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestBigTableMatchesTable(t *testing.T) {
	tab := NewTable()
	btab := NewBigTable()

	for n := 0; n <= MaxLength; n++ {
		small, err := tab.Factorial(n)
		if err != nil {
			t.Fatal(err)
		}
		large, err := btab.Factorial(n)
		if err != nil {
			t.Fatal(err)
		}
		if !large.IsInt64() || large.Int64() != small {
			t.Errorf("BigTable.Factorial(%d) = %s, want %d", n, large, small)
		}
	}
}

func TestBigTableBeyondInt64(t *testing.T) {
	btab := NewBigTable()

	got, err := btab.Factorial(25)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := new(big.Int).SetString("15511210043330985984000000", 10)
	if got.Cmp(want) != 0 {
		t.Errorf("Factorial(25) = %s, want %s", got, want)
	}

	// Returned values are copies.
	got.SetInt64(0)
	again, _ := btab.Factorial(25)
	if again.Cmp(want) != 0 {
		t.Error("modifying a returned factorial changed the table")
	}

	if _, err := btab.Factorial(-3); !lerrors.Is(err, lerrors.ErrCodeInvalidArgument) {
		t.Errorf("Factorial(-3) error = %v, want %s", err, lerrors.ErrCodeInvalidArgument)
	}
}

func TestBigTableZeroValue(t *testing.T) {
	var btab BigTable
	got, err := btab.Factorial(3)
	if err != nil {
		t.Fatal(err)
	}
	if got.Int64() != 6 {
		t.Errorf("Factorial(3) = %s, want 6", got)
	}
}
