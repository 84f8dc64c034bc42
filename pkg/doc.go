// Package pkg provides the libraries behind the lehmer command.
//
// # Overview
//
// Lehmer converts between permutations and their Lehmer codes: the
// 0-indexed rank of a permutation among all permutations of the same length
// in lexicographic order. The pkg directory is organized into three areas:
//
//  1. [lehmer] and [perm] - Domain logic (ranking, unranking, permutation utilities)
//  2. [cache], [store], [config], [observability] - Infrastructure
//  3. [service] - Orchestration shared by the CLI and the HTTP API
//
// # Architecture
//
// The typical data flow for a decode request:
//
//	CLI argument / HTTP path
//	         ↓
//	    [service] Runner (parse decimal code, consult cache)
//	         ↓
//	    [lehmer] Codec (int64 up to 20 elements, big.Int beyond)
//	         ↓
//	    permutation of 0..n-1
//
// # Quick Start
//
//	code, _ := lehmer.Encode([]int{3, 1, 0, 2}) // 20
//	p, _ := lehmer.Decode(4, 20)                // [3 1 0 2]
//
// Lengths above [lehmer.MaxLength] overflow int64; use the big variants:
//
//	code, _ := lehmer.EncodeBig(deck)      // *big.Int
//	p, _ := lehmer.DecodeBig(52, code)
//
// # Main Packages
//
// [lehmer] - Encoder, decoder and the memoized factorial tables.
//
// [perm] - Permutation helpers: identity, lexicographic successor,
// Heap's algorithm, inverse, cycle decomposition and Graphviz rendering.
//
// [errors] - Coded errors shared by every layer.
//
// [cache] - Result caching with file, Redis and null backends.
//
// [store] - Named orderings persisted as (length, code) in files, MongoDB or
// memory.
//
// [config] - TOML/YAML configuration with environment overrides.
//
// [observability] - Hook registry for codec, cache and HTTP events.
//
// [service] - The Runner used by both entry points.
//
// [lehmer]: https://pkg.go.dev/github.com/matzehuels/lehmer/pkg/lehmer
// [perm]: https://pkg.go.dev/github.com/matzehuels/lehmer/pkg/perm
// [errors]: https://pkg.go.dev/github.com/matzehuels/lehmer/pkg/errors
// [cache]: https://pkg.go.dev/github.com/matzehuels/lehmer/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/lehmer/pkg/store
// [config]: https://pkg.go.dev/github.com/matzehuels/lehmer/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/lehmer/pkg/observability
// [service]: https://pkg.go.dev/github.com/matzehuels/lehmer/pkg/service
// [lehmer.MaxLength]: https://pkg.go.dev/github.com/matzehuels/lehmer/pkg/lehmer#MaxLength
package pkg
