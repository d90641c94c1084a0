// Package factortree counts binary trees whose internal nodes equal the
// product of their two children, drawing every node value from a set of
// distinct positive integers (problem 0823).
//
// Values may be reused any number of times; left and right children are
// ordered, so 2·5 and 5·2 under 10 are different trees. Counts are reported
// modulo Modulus.
//
// Complexity: O(n²) time, O(n) memory.
package factortree

import "sort"

// Modulus bounds every count returned by NumFactoredBinaryTrees.
const Modulus = 1_000_000_007

// NumFactoredBinaryTrees returns the number of factored binary trees that can
// be built from arr, modulo Modulus.
//
// dp[i] is the number of trees rooted at the i-th smallest value. Each value
// starts as a single-node tree (dp = 1); a smaller value l that divides it
// exactly, with r = root/l also present, contributes dp[l]·dp[r]. Values are
// visited in ascending order so both children are settled before their parent.
//
// arr is not modified. Duplicates are not expected; when present the later
// index wins the value lookup.
func NumFactoredBinaryTrees(arr []int) int {
	n := len(arr)
	vals := make([]int, n)
	copy(vals, arr)
	sort.Ints(vals)

	index := make(map[int]int, n)
	for i, v := range vals {
		index[v] = i
	}

	dp := make([]int64, n)
	for i := range dp {
		dp[i] = 1
	}

	for i := 0; i < n; i++ { // vals[i] is the root
		for j := 0; j < i; j++ { // vals[j] is the left child
			if vals[j] == 0 || vals[i]%vals[j] != 0 {
				continue
			}
			k, ok := index[vals[i]/vals[j]]
			if !ok {
				continue
			}
			dp[i] = (dp[i] + dp[j]*dp[k]) % Modulus
		}
	}

	var total int64
	for _, c := range dp {
		total = (total + c) % Modulus
	}

	return int(total)
}
