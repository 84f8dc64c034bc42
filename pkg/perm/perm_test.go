package perm

import (
	"slices"
	"testing"

	lerrors "github.com/matzehuels/lehmer/pkg/errors"
)

func TestSeq(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{-1, []int{}},
		{0, []int{}},
		{1, []int{0}},
		{4, []int{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		if got := Seq(tt.n); !slices.Equal(got, tt.want) {
			t.Errorf("Seq(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestNext(t *testing.T) {
	p := []int{0, 1, 2}
	want := [][]int{{0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	for i, w := range want {
		if !Next(p) {
			t.Fatalf("Next() returned false at step %d", i)
		}
		if !slices.Equal(p, w) {
			t.Fatalf("step %d: got %v, want %v", i, p, w)
		}
	}

	if Next(p) {
		t.Error("Next() on the last permutation should return false")
	}
	if !slices.Equal(p, []int{2, 1, 0}) {
		t.Errorf("Next() should leave the last permutation unchanged, got %v", p)
	}
}

func TestLexicographic(t *testing.T) {
	for n := 0; n <= 6; n++ {
		perms := Lexicographic(n, 0)

		want := 1
		for i := 2; i <= n; i++ {
			want *= i
		}
		if len(perms) != want {
			t.Fatalf("Lexicographic(%d) returned %d permutations, want %d", n, len(perms), want)
		}

		for i := 1; i < len(perms); i++ {
			if slices.Compare(perms[i-1], perms[i]) >= 0 {
				t.Fatalf("Lexicographic(%d) not strictly increasing at %d: %v, %v", n, i, perms[i-1], perms[i])
			}
		}
	}
}

func TestLexicographicLimit(t *testing.T) {
	perms := Lexicographic(10, 3)
	want := [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{0, 1, 2, 3, 4, 5, 6, 7, 9, 8},
		{0, 1, 2, 3, 4, 5, 6, 8, 7, 9},
	}
	if len(perms) != len(want) {
		t.Fatalf("got %d permutations, want %d", len(perms), len(want))
	}
	for i := range want {
		if !slices.Equal(perms[i], want[i]) {
			t.Errorf("perms[%d] = %v, want %v", i, perms[i], want[i])
		}
	}
}

func TestGenerateUnique(t *testing.T) {
	for n := 0; n <= 6; n++ {
		perms := Generate(n, -1)
		seen := make(map[string]bool, len(perms))
		for _, p := range perms {
			key := Format(p)
			if seen[key] {
				t.Fatalf("Generate(%d) produced %v twice", n, p)
			}
			seen[key] = true
		}
		if len(perms) != len(Lexicographic(n, 0)) {
			t.Errorf("Generate(%d) returned %d permutations, want %d", n, len(perms), len(Lexicographic(n, 0)))
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want []int
	}{
		{[]int{5, 7, 6}, []int{0, 2, 1}},
		{[]int{-1, 1, 0}, []int{0, 2, 1}},
		{[]int{0, 1}, []int{0, 1}},
		{nil, []int{}},
	}

	for _, tt := range tests {
		in := slices.Clone(tt.in)
		got := Normalize(in)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if !slices.Equal(in, tt.in) {
			t.Errorf("Normalize modified its input: %v", in)
		}
	}
}

func TestInverse(t *testing.T) {
	p := []int{3, 1, 0, 2}
	q := Inverse(p)

	if !slices.Equal(q, []int{2, 1, 3, 0}) {
		t.Errorf("Inverse(%v) = %v", p, q)
	}
	for i := range p {
		if q[p[i]] != i {
			t.Fatalf("q[p[%d]] = %d, want %d", i, q[p[i]], i)
		}
	}
}

func TestCycles(t *testing.T) {
	tests := []struct {
		p    []int
		want [][]int
	}{
		{[]int{0, 1, 2}, [][]int{{0}, {1}, {2}}},
		{[]int{1, 2, 0}, [][]int{{0, 1, 2}}},
		{[]int{3, 1, 0, 2}, [][]int{{0, 3, 2}, {1}}},
		{[]int{1, 0, 3, 2}, [][]int{{0, 1}, {2, 3}}},
	}

	for _, tt := range tests {
		got := Cycles(tt.p)
		if len(got) != len(tt.want) {
			t.Errorf("Cycles(%v) = %v, want %v", tt.p, got, tt.want)
			continue
		}
		for i := range got {
			if !slices.Equal(got[i], tt.want[i]) {
				t.Errorf("Cycles(%v) = %v, want %v", tt.p, got, tt.want)
				break
			}
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{name: "commas", input: "3,1,0,2", want: []int{3, 1, 0, 2}},
		{name: "spaces", input: "3, 1, 0, 2", want: []int{3, 1, 0, 2}},
		{name: "brackets", input: "[3 1 0 2]", want: []int{3, 1, 0, 2}},
		{name: "negative", input: "-1,0,1", want: []int{-1, 0, 1}},
		{name: "single", input: "0", want: []int{0}},
		{name: "empty", input: "", wantErr: true},
		{name: "brackets only", input: "[]", wantErr: true},
		{name: "letters", input: "0,a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !lerrors.Is(err, lerrors.ErrCodeInvalidFormat) {
					t.Errorf("Parse(%q) code = %v, want %v", tt.input, lerrors.GetCode(err), lerrors.ErrCodeInvalidFormat)
				}
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatParse(t *testing.T) {
	p := []int{4, 0, 3, 1, 2}
	got, err := Parse(Format(p))
	if err != nil {
		t.Fatalf("Parse(Format(%v)): %v", p, err)
	}
	if !slices.Equal(got, p) {
		t.Errorf("Parse(Format(%v)) = %v", p, got)
	}
}

func TestApply(t *testing.T) {
	got := Apply([]int{2, 0, 1}, []string{"a", "b", "c"})
	if !slices.Equal(got, []string{"c", "a", "b"}) {
		t.Errorf("Apply() = %v", got)
	}
}

func TestIsLess(t *testing.T) {
	tests := []struct {
		a, b []int
		want bool
	}{
		{[]int{0, 1, 2}, []int{0, 2, 1}, true},
		{[]int{0, 2, 1}, []int{0, 1, 2}, false},
		{[]int{1, 0}, []int{1, 0}, false},
		{[]int{2, 1, 0}, []int{2, 1, 0}, false},
	}
	for _, tt := range tests {
		if got := IsLess(tt.a, tt.b); got != tt.want {
			t.Errorf("IsLess(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	all := Lexicographic(4, 0)
	for i := 1; i < len(all); i++ {
		if !IsLess(all[i-1], all[i]) {
			t.Fatalf("Lexicographic(4)[%d] = %v not less than %v", i-1, all[i-1], all[i])
		}
	}
}
