package intervals

import (
	"container/heap"
	"sort"
)

// MinGroups returns the minimum number of groups the closed intervals can be
// divided into so that intervals sharing a group do not intersect.
//
// Every element of intervals must be a pair [left, right]; this is a caller
// guarantee. The outer slice is not reordered.
func MinGroups(intervals [][]int) int {
	sorted := make([][]int, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i][0] != sorted[j][0] {
			return sorted[i][0] < sorted[j][0]
		}
		return sorted[i][1] < sorted[j][1]
	})

	ends := make(endHeap, 0, len(sorted))
	for _, iv := range sorted {
		if ends.Len() > 0 && iv[0] > ends[0] {
			heap.Pop(&ends) // no overlap, reuse that group
		}
		heap.Push(&ends, iv[1])
	}

	return ends.Len()
}

// endHeap is a min-heap of group right ends.
type endHeap []int

func (h endHeap) Len() int           { return len(h) }
func (h endHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h endHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an int.
func (h *endHeap) Push(x any) { *h = append(*h, x.(int)) }

// Pop is called by heap.Pop.
func (h *endHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
