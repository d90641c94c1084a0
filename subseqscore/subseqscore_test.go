package subseqscore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harsh-govind/LeetCode-Solutions/subseqscore"
)

func TestMaxScore_Table(t *testing.T) {
	cases := []struct {
		name  string
		nums1 []int
		nums2 []int
		k     int
		want  int64
	}{
		{"sample one", []int{1, 3, 3, 2}, []int{2, 1, 3, 4}, 3, 12},
		{"sample two", []int{4, 2, 3, 1, 1}, []int{7, 5, 10, 9, 6}, 1, 30},
		{"take all", []int{1, 2, 3}, []int{4, 5, 6}, 3, 24},
		{"single", []int{5}, []int{9}, 1, 45},
		{"zeros", []int{0, 0}, []int{3, 4}, 1, 0},
		{"zero k", []int{1, 2}, []int{3, 4}, 0, 0},
		{"negative k", []int{1, 2}, []int{3, 4}, -2, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, subseqscore.MaxScore(tc.nums1, tc.nums2, tc.k))
		})
	}
}

// TestMaxScore_Wide checks that products beyond 32 bits are kept exact.
func TestMaxScore_Wide(t *testing.T) {
	const big = 100_000
	nums1 := make([]int, 1000)
	nums2 := make([]int, 1000)
	for i := range nums1 {
		nums1[i] = big
		nums2[i] = big
	}
	assert.Equal(t, int64(1000)*big*big, subseqscore.MaxScore(nums1, nums2, 1000))
}

// TestMaxScore_MatchesBruteForce cross-checks against exhaustive enumeration.
func TestMaxScore_MatchesBruteForce(t *testing.T) {
	nums1 := []int{7, 1, 4, 9, 2, 6}
	nums2 := []int{3, 8, 5, 2, 7, 4}
	for k := 1; k <= len(nums1); k++ {
		assert.Equal(t, bruteForce(nums1, nums2, k), subseqscore.MaxScore(nums1, nums2, k), "k=%d", k)
	}
}

func bruteForce(nums1, nums2 []int, k int) int64 {
	n := len(nums1)
	var best int64
	for mask := 0; mask < 1<<n; mask++ {
		cnt, sum, mn := 0, int64(0), int64(1<<62)
		for i := 0; i < n; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			cnt++
			sum += int64(nums1[i])
			if int64(nums2[i]) < mn {
				mn = int64(nums2[i])
			}
		}
		if cnt == k && sum*mn > best {
			best = sum * mn
		}
	}

	return best
}

// TestMaxScore_InputUntouched verifies the caller's slices keep their order.
func TestMaxScore_InputUntouched(t *testing.T) {
	nums1 := []int{1, 3, 3, 2}
	nums2 := []int{2, 1, 3, 4}
	_ = subseqscore.MaxScore(nums1, nums2, 3)
	assert.Equal(t, []int{1, 3, 3, 2}, nums1)
	assert.Equal(t, []int{2, 1, 3, 4}, nums2)
}
