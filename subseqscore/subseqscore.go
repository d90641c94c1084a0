// Package subseqscore maximises sum(nums1[i] for i in S) · min(nums2[i] for i in S)
// over index sets S of a fixed size k (problem 2542).
//
// Pairs are scanned in descending nums2 order, so the nums2 value of the
// pair being scanned is the minimum of everything chosen so far. A min-heap
// keeps the k largest nums1 values seen; at size k the running sum times the
// current nums2 is a candidate score.
//
// Complexity: O(n log n) time, O(n) memory.
package subseqscore

import (
	"container/heap"
	"sort"
)

// pair couples nums2[i] (the multiplier) with nums1[i] (the summand).
type pair struct {
	mul int
	add int
}

// MaxScore returns the maximum subsequence score for subsequences of length k.
//
// nums1 and nums2 must have equal length and 1 ≤ k ≤ len(nums1); these are
// caller guarantees. With k ≤ 0 the result is 0. Neither slice is modified.
// The score is computed in int64.
func MaxScore(nums1, nums2 []int, k int) int64 {
	pairs := make([]pair, len(nums1))
	for i := range nums1 {
		pairs[i] = pair{mul: nums2[i], add: nums1[i]}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].mul != pairs[j].mul {
			return pairs[i].mul > pairs[j].mul
		}
		return pairs[i].add > pairs[j].add
	})

	var ans, sum int64
	chosen := make(minHeap, 0, len(pairs))
	for _, p := range pairs {
		heap.Push(&chosen, p.add)
		sum += int64(p.add)
		if chosen.Len() > k {
			sum -= int64(heap.Pop(&chosen).(int))
		}
		if chosen.Len() == k {
			if score := sum * int64(p.mul); score > ans {
				ans = score
			}
		}
	}

	return ans
}

// minHeap is a min-heap of chosen nums1 values.
type minHeap []int

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any) { *h = append(*h, x.(int)) }

func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
