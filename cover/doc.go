// Package cover implements the partial-cover enumeration algorithm built on
// top of package dlx: a recursive search that, given a Matrix, enumerates
// every set of rows whose column supports are pairwise disjoint — every
// "partial cover" — including the empty set.
//
// # CoveringRows
//
// A set of rows S is a partial covering iff, for every pair r1 != r2 in S,
// the columns r1 covers and the columns r2 covers are disjoint. Unlike
// classical Algorithm X, this search never removes columns, so it does not
// require every column to end up covered: it enumerates every disjoint
// combination of rows, not just the maximal/exact ones.
//
// Steps (CoveringRowsFrom(start)):
//  1. Seed the result with the empty covering; it is always a member.
//  2. For each row R reachable downward from start, in the matrix's
//     current attached order:
//     2.1 Find every other attached row that shares a column with R
//     (walk R's own entries, then each shared column's own entries);
//     detach each conflicting row as soon as it is found.
//     2.2 Detach R itself, after its conflicts, so R.Down() now points at
//     the next row that survives — exactly what the recursive call
//     below needs to continue from.
//     2.3 Recurse from R; for every covering the recursion returns, add
//     that covering plus R's payload to the result.
//     2.4 Reattach every detached row in reverse (LIFO) order, restoring
//     the matrix to bit-identical state before moving to the next R.
//
// Complexity: worst case exponential in the number of rows; there is no
// memoisation. Restoration (guarantee: the matrix is bit-identical on
// return) and exhaustiveness (every disjoint combination appears exactly
// once) are the two correctness properties this package exists to provide.
package cover
