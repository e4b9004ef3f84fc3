// Package frontier provides the priority frontier used by both MST engines:
// a binary min-heap of candidate arcs keyed by cost.
//
// Ordering (see Less) is total and deterministic:
//
//  1. lower Weight first;
//  2. then the lexically smaller endpoint pair (min(u,v), max(u,v));
//  3. then the smaller From, so the two arcs of one edge pop in a fixed order.
//
// Lazy invalidation: the frontier never removes entries by value. Entries
// that went stale (their endpoints were settled after the push) stay in the
// heap until PopMin surfaces them; the engine re-validates each popped arc
// and discards stale ones. Consequently the heap may grow to O(E) entries,
// and Peak reports the high-water mark.
//
// Complexity:
//
//	Push    O(log k)
//	PopMin  O(log k)
//	FromEdges O(E) (bottom-up heapify)
package frontier
