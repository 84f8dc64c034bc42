// Package lehmer converts between permutations and their Lehmer codes.
//
// The Lehmer code of a permutation is its 0-indexed rank among all
// permutations of the same length in lexicographic order, so the n!
// permutations of n elements map one-to-one onto the integers [0, n!-1]:
//
//	[0 1 2 3] -> 0
//	[3 1 0 2] -> 20
//	[3 2 1 0] -> 23
//
// # Encoding
//
// [Encode] accepts any permutation of a contiguous integer range, not only
// 0..n-1. The values are ranked relative to their minimum, so [5 6 7] and
// [0 1 2] share code 0. Inputs that are empty, repeat a value, or leave a
// gap in the range fail with errors.ErrCodeInvalidPermutation.
//
// # Decoding
//
// [Decode] reads the code as a number in the factorial number system and
// rebuilds the permutation over 0..length-1. Codes outside [0, length!-1]
// fail with errors.ErrCodeOutOfRange; negative arguments fail with
// errors.ErrCodeInvalidArgument.
//
// # Precision
//
// The int64 API covers permutations of up to [MaxLength] elements, since
// 21! no longer fits in an int64. Longer inputs fail with
// errors.ErrCodeOverflow instead of wrapping. [EncodeBig] and [DecodeBig]
// compute the same ranks with math/big and have no length limit.
//
// # Concurrency
//
// Factorials are memoized in a [Table] that grows on demand and never
// shrinks. Tables are guarded by a read/write mutex, so a [Codec] and the
// package-level functions are safe for concurrent use.
package lehmer
