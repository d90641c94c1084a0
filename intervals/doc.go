// Package intervals partitions closed intervals into the fewest groups such
// that no two intervals in the same group intersect (problem 2406).
//
// Closed means [1,5] and [5,8] share the point 5 and must be split.
//
// How:
//
//	Sort by left end. A min-heap holds the right end of the latest interval
//	in every open group. An interval whose left end is strictly greater than
//	the smallest right end can join that group (pop); either way its own
//	right end is pushed. The heap size at the end is the group count, which
//	equals the maximum number of intervals covering any single point.
//
// Complexity: O(n log n) time, O(n) memory.
package intervals
