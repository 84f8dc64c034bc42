package lehmer_test

import (
	"fmt"
	"math/big"

	lerrors "github.com/matzehuels/lehmer/pkg/errors"
	"github.com/matzehuels/lehmer/pkg/lehmer"
)

func ExampleEncode() {
	code, err := lehmer.Encode([]int{3, 1, 0, 2})
	if err != nil {
		panic(err)
	}
	fmt.Println(code)
	// Output:
	// 20
}

func ExampleDecode() {
	p, err := lehmer.Decode(4, 20)
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	// Output:
	// [3 1 0 2]
}

func ExampleEncode_invalid() {
	_, err := lehmer.Encode([]int{0, 2})
	fmt.Println(lerrors.GetCode(err))
	// Output:
	// INVALID_PERMUTATION
}

func ExampleFactorial() {
	for n := 0; n <= 4; n++ {
		f, _ := lehmer.Factorial(n)
		fmt.Printf("%d! = %d\n", n, f)
	}
	// Output:
	// 0! = 1
	// 1! = 1
	// 2! = 2
	// 3! = 6
	// 4! = 24
}

func ExampleDecodeBig() {
	code, _ := new(big.Int).SetString("51090942171709440000", 10) // 21!
	code.Sub(code, big.NewInt(1))
	p, _ := lehmer.DecodeBig(21, code)
	fmt.Println(p)
	// Output:
	// [20 19 18 17 16 15 14 13 12 11 10 9 8 7 6 5 4 3 2 1 0]
}
