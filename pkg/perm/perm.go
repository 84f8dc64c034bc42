package perm

import (
	"slices"
	"strconv"
	"strings"

	lerrors "github.com/matzehuels/lehmer/pkg/errors"
)

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is the identity permutation and the one with Lehmer code 0.
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Normalize returns a copy of p shifted so that its minimum becomes 0.
// A permutation of [5, 6, 7] normalizes to a permutation of [0, 1, 2].
func Normalize(p []int) []int {
	out := slices.Clone(p)
	if len(out) == 0 {
		return out
	}
	lo := slices.Min(out)
	for i := range out {
		out[i] -= lo
	}
	return out
}

// Inverse returns q with q[p[i]] = i. p must be a permutation of 0..n-1.
func Inverse(p []int) []int {
	q := make([]int, len(p))
	for i, v := range p {
		q[v] = i
	}
	return q
}

// Cycles returns the cycle decomposition of p, a permutation of 0..n-1.
// Each cycle starts at its smallest element and cycles are ordered by that
// element; fixed points appear as single-element cycles.
func Cycles(p []int) [][]int {
	seen := make([]bool, len(p))
	var cycles [][]int
	for start := range p {
		if seen[start] {
			continue
		}
		var c []int
		for i := start; !seen[i]; i = p[i] {
			seen[i] = true
			c = append(c, i)
		}
		cycles = append(cycles, c)
	}
	return cycles
}

// Next rearranges p into the lexicographically next permutation and reports
// whether one existed. When p is already the last (descending) permutation,
// Next leaves it unchanged and returns false.
func Next(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])
	return true
}

// IsLess reports whether a precedes b in lexicographic order.
// For permutations of the same range this matches a smaller Lehmer code.
func IsLess(a, b []int) bool {
	return slices.Compare(a, b) < 0
}

// Lexicographic returns permutations of [0, 1, ..., n-1] in lexicographic
// order, so the k-th result has Lehmer code k.
//
// If limit > 0, at most limit permutations are returned; otherwise all n!.
// Each returned slice is a separate allocation.
func Lexicographic(n, limit int) [][]int {
	p := Seq(n)
	result := make([][]int, 0, capacity(n, limit))
	for {
		result = append(result, slices.Clone(p))
		if limit > 0 && len(result) >= limit {
			return result
		}
		if !Next(p) {
			return result
		}
	}
}

// Generate returns permutations of [0, 1, ..., n-1] using Heap's algorithm.
//
// If limit > 0, Generate returns at most limit permutations.
// If limit <= 0, Generate returns all n! permutations.
//
// Each returned slice is a separate allocation, safe to modify without affecting others.
//
// Generate handles edge cases gracefully:
//   - n = 0: returns [[]] (one empty permutation)
//   - n = 1: returns [[0]] (one single-element permutation)
//
// Heap's algorithm generates permutations in a non-lexicographic order, but
// efficiently produces each permutation exactly once. Use [Lexicographic]
// when the order must match Lehmer codes.
func Generate(n, limit int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	if n == 1 {
		return [][]int{{0}}
	}

	p := Seq(n)
	state := make([]int, n)

	result := make([][]int, 0, capacity(n, limit))
	result = append(result, slices.Clone(p))

	for i := 0; i < n && (limit <= 0 || len(result) < limit); {
		if state[i] < i {
			if i&1 == 0 {
				p[0], p[i] = p[i], p[0]
			} else {
				p[state[i]], p[i] = p[i], p[state[i]]
			}
			result = append(result, slices.Clone(p))
			state[i]++
			i = 0
		} else {
			state[i] = 0
			i++
		}
	}
	return result
}

// capacity sizes result slices without allocating more than 12! entries.
func capacity(n, limit int) int {
	full := 1
	for i := 2; i <= min(n, 12); i++ {
		full *= i
	}
	if limit > 0 && limit < full {
		return limit
	}
	return full
}

// Parse reads a comma-separated permutation such as "3,1,0,2".
// Whitespace around values is ignored; brackets are accepted so that the
// output of fmt.Println can be pasted back ("[3 1 0 2]").
func Parse(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) == 0 {
		return nil, lerrors.New(lerrors.ErrCodeInvalidFormat, "empty permutation")
	}

	p := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, lerrors.New(lerrors.ErrCodeInvalidFormat, "invalid value %q at position %d", f, i)
		}
		p[i] = v
	}
	return p, nil
}

// Format renders p in the comma-separated form accepted by Parse.
func Format(p []int) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Apply arranges labels in the order given by p: result[i] = labels[p[i]].
func Apply(p []int, labels []string) []string {
	out := make([]string, len(p))
	for i, v := range p {
		out[i] = labels[v]
	}
	return out
}
