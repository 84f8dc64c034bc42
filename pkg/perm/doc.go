// Package perm provides permutation utilities used around the Lehmer codec.
//
// # Overview
//
// Permutations are plain []int values. The helpers in this package build,
// order, inspect and draw them:
//
//   - [Seq]: the identity permutation [0, 1, ..., n-1]
//   - [Next], [Lexicographic]: lexicographic enumeration, the order in which
//     Lehmer codes increase
//   - [Generate]: Heap's algorithm, the fastest way to visit every
//     permutation when order does not matter
//   - [Normalize], [Inverse], [Cycles]: transformations
//   - [Parse], [Format]: the comma-separated text form used by the CLI
//   - [ToDOT], [RenderSVG]: cycle diagrams via Graphviz
//
// # Ordering
//
// Lexicographic order compares permutations element by element, so for
// three elements the sequence is
//
//	[0 1 2] [0 2 1] [1 0 2] [1 2 0] [2 0 1] [2 1 0]
//
// and the k-th permutation in that list has Lehmer code k.
//
// # Cycle Diagrams
//
// A permutation p maps position i to value p[i]. Drawing an arrow i -> p[i]
// for every i splits the elements into disjoint cycles; fixed points become
// self-loops. [ToDOT] emits that graph and [RenderSVG] renders it:
//
//	svg, err := perm.RenderSVG(ctx, []int{1, 2, 0, 3}, nil)
package perm
