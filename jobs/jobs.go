// Package jobs computes the minimum number of days needed to finish every
// job when each job is assigned to exactly one worker (problem 2323).
//
// Worker i finishes workers[i] units of work per day, so job j on worker i
// takes ⌈jobs[j] / workers[i]⌉ days. Pairing the sorted jobs with the sorted
// workers index by index minimises the slowest pair (exchange argument: any
// crossed pair can be uncrossed without making the maximum worse).
//
// Complexity: O(n log n) time, O(n) memory for the sorted copies.
package jobs

import "sort"

// MinimumTime returns the minimum number of days after which all jobs are done.
//
// jobs and workers must have equal length and workers must be positive; both
// are caller guarantees and are not checked. Neither slice is modified.
// Empty input yields 0.
func MinimumTime(jobs, workers []int) int {
	js := sortedCopy(jobs)
	ws := sortedCopy(workers)

	ans := 0
	for i := range js {
		if d := ceilDiv(js[i], ws[i]); d > ans {
			ans = d
		}
	}

	return ans
}

// ceilDiv is ⌈a / b⌉ for a ≥ 1, b ≥ 1.
func ceilDiv(a, b int) int {
	return (a-1)/b + 1
}

func sortedCopy(a []int) []int {
	out := make([]int, len(a))
	copy(out, a)
	sort.Ints(out)

	return out
}
