// Package lis computes the length of the longest strictly increasing
// subsequence of an integer sequence (problem 0300).
//
// What:
//
//	A subsequence keeps the relative order of the elements it picks but may
//	skip any of them. LengthOfLIS reports how long the longest strictly
//	increasing one is, e.g. [10 9 2 5 3 7 101 18] → 4 (2 3 7 18).
//
// How:
//
//	Patience sorting. A slice tail is kept where tail[i] is the smallest
//	value that can end an increasing subsequence of length i+1. tail is
//	sorted by construction, so every input value is placed with a binary
//	search (lower bound): it either extends tail or replaces the first
//	element that is ≥ it.
//
// Complexity:
//
//   - Time:   O(n log n)
//   - Memory: O(n) for tail
//
// The input slice is never modified.
package lis
