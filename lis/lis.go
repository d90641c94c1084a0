package lis

import "sort"

// LengthOfLIS returns the length of the longest strictly increasing
// subsequence of nums. An empty or nil slice yields 0.
//
// Algorithm Outline:
//  1. tail starts empty.
//  2. For each v in nums:
//     - if tail is empty or v > last(tail), append v;
//     - otherwise overwrite tail[firstGreaterEqual(tail, v)] with v.
//  3. Return len(tail).
//
// Equal values never extend tail, which keeps the subsequence strict.
func LengthOfLIS(nums []int) int {
	tail := make([]int, 0, len(nums))

	for _, v := range nums {
		if len(tail) == 0 || v > tail[len(tail)-1] {
			tail = append(tail, v)
			continue
		}
		tail[firstGreaterEqual(tail, v)] = v
	}

	return len(tail)
}

// firstGreaterEqual returns the first index i with a[i] >= target,
// or len(a) when there is none. a must be sorted ascending.
func firstGreaterEqual(a []int, target int) int {
	return sort.SearchInts(a, target)
}
