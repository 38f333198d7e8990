// Package qptrie implements a QP-trie: a popcount-indexed radix trie that
// branches on 4-bit nybbles instead of whole bytes or bits.
//
// A trie is either empty or a single Node. A Node is one of:
//
//   - a Leaf, holding exactly one key/value pair;
//   - a Branch, holding a choice point (a nybble position) and a sparse
//     array of up to 17 children, addressed by "slot":
//
//     slot 0        -> the head: a leaf whose key ends at or before the
//                       choice point, with no nybble to branch on
//     slot 1..16    -> nybble value 0..15 at the choice point
//
// Descent always increases the choice point, so every root-to-leaf path
// visits strictly increasing positions. Insertion grafts a new Branch at
// the first nybble where the inserted key disagrees with the leaf reached
// by following the key's own slot at each branch, or any child where that
// slot is empty (the "exemplar") — disagreement can only occur at or below the point where
// the real mismatch lives, so the graft always lands in the right place.
// Removal collapses a Branch back into its sole remaining child whenever
// a deletion leaves it with fewer than two children.
//
// The sparse array backing each Branch is a bitmap plus a dense slice:
// presence of slot i is bit i of the bitmap, and its physical offset in
// the slice is popcount(bitmap & ((1<<i)-1)). This keeps a 17-way branch
// to one uint32 and a slice no larger than its actual occupancy.
package qptrie
