package lis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harsh-govind/LeetCode-Solutions/lis"
)

// TestLengthOfLIS_Table covers the canonical samples and degenerate shapes.
func TestLengthOfLIS_Table(t *testing.T) {
	cases := []struct {
		name string
		nums []int
		want int
	}{
		{"sample", []int{10, 9, 2, 5, 3, 7, 101, 18}, 4},
		{"zigzag", []int{0, 1, 0, 3, 2, 3}, 4},
		{"all equal", []int{7, 7, 7, 7, 7, 7, 7}, 1},
		{"single", []int{42}, 1},
		{"empty", []int{}, 0},
		{"nil", nil, 0},
		{"negatives", []int{-5, -10, -3, -4, 0, -1, 2}, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lis.LengthOfLIS(tc.nums))
		})
	}
}

// TestLengthOfLIS_StrictlyIncreasing checks that an increasing run of length n yields n.
func TestLengthOfLIS_StrictlyIncreasing(t *testing.T) {
	for n := 1; n <= 64; n++ {
		nums := make([]int, n)
		for i := range nums {
			nums[i] = i * 3
		}
		assert.Equal(t, n, lis.LengthOfLIS(nums), "n=%d", n)
	}
}

// TestLengthOfLIS_StrictlyDecreasing checks that a decreasing run always yields 1.
func TestLengthOfLIS_StrictlyDecreasing(t *testing.T) {
	nums := make([]int, 50)
	for i := range nums {
		nums[i] = 100 - i
	}
	assert.Equal(t, 1, lis.LengthOfLIS(nums))
}

// TestLengthOfLIS_InputUntouched verifies repeated calls agree and the input is not reordered.
func TestLengthOfLIS_InputUntouched(t *testing.T) {
	nums := []int{3, 1, 2, 5, 4}
	orig := append([]int(nil), nums...)

	first := lis.LengthOfLIS(nums)
	second := lis.LengthOfLIS(nums)

	assert.Equal(t, 3, first)
	assert.Equal(t, first, second)
	assert.Equal(t, orig, nums)
}
