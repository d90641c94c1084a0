// Package solutions is a set of independent LeetCode solutions, one Go
// package per problem, plus a small catalogue and a CLI to run them.
//
// Every solution is a pure function: it reads caller-owned input, allocates
// only call-local scratch space, never mutates its arguments and never
// touches shared state, so it is safe to call from any goroutine.
//
//	lis/          — 0300 Longest Increasing Subsequence (patience sorting)
//	boldwords/    — 0758 Bold Words in String (interval merge)
//	factortree/   — 0823 Binary Trees With Factors (DP mod 1e9+7)
//	lca/          — 1676 Lowest Common Ancestor of a Binary Tree IV
//	jobs/         — 2323 Find Minimum Time to Finish All Jobs II (sorted pairing)
//	intervals/    — 2406 Divide Intervals Into Minimum Number of Groups (min-heap)
//	subseqscore/  — 2542 Maximum Subsequence Score (sort + min-heap)
//	vowels/       — 2586 Count the Number of Vowel Strings in Range
//
// Around them:
//
//	catalog/       — problem metadata, tallies and README tables
//	runner/        — JSON input decoding, precondition checks, dispatch
//	cmd/leetcode/  — CLI: list, show, solve, version
//
// Solutions do not validate their input; preconditions from the problem
// statements are the caller's job, and runner is the caller that checks them.
//
//	go run ./cmd/leetcode solve 300 --input '{"nums":[10,9,2,5,3,7,101,18]}'
package solutions
