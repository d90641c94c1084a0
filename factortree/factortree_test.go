package factortree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harsh-govind/LeetCode-Solutions/factortree"
)

func TestNumFactoredBinaryTrees_Samples(t *testing.T) {
	// [2] [4] [4→2,2]
	assert.Equal(t, 3, factortree.NumFactoredBinaryTrees([]int{2, 4}))
	// [2] [4] [5] [10] [4→2,2] [10→2,5] [10→5,2]
	assert.Equal(t, 7, factortree.NumFactoredBinaryTrees([]int{2, 4, 5, 10}))
}

func TestNumFactoredBinaryTrees_Unsorted(t *testing.T) {
	arr := []int{10, 5, 4, 2}
	assert.Equal(t, 7, factortree.NumFactoredBinaryTrees(arr))
	assert.Equal(t, []int{10, 5, 4, 2}, arr, "input must keep its order")
}

func TestNumFactoredBinaryTrees_Degenerate(t *testing.T) {
	assert.Equal(t, 0, factortree.NumFactoredBinaryTrees(nil))
	assert.Equal(t, 1, factortree.NumFactoredBinaryTrees([]int{7}))
	// primes never factor each other
	assert.Equal(t, 4, factortree.NumFactoredBinaryTrees([]int{2, 3, 5, 7}))
}

// TestNumFactoredBinaryTrees_Chain checks a power-of-two chain where counts grow fast.
func TestNumFactoredBinaryTrees_Chain(t *testing.T) {
	// dp(2)=1, dp(4)=1+1=2, dp(8)=1+2+2=5, dp(16)=1+5+4+5=15 → 23
	assert.Equal(t, 23, factortree.NumFactoredBinaryTrees([]int{2, 4, 8, 16}))
}

// TestNumFactoredBinaryTrees_Modulus checks that large inputs stay in range.
func TestNumFactoredBinaryTrees_Modulus(t *testing.T) {
	arr := make([]int, 0, 30)
	for v := 2; len(arr) < 30; v *= 2 {
		arr = append(arr, v)
	}
	got := factortree.NumFactoredBinaryTrees(arr)
	require.GreaterOrEqual(t, got, 0)
	require.Less(t, got, factortree.Modulus)
	assert.Equal(t, got, factortree.NumFactoredBinaryTrees(arr), "must be deterministic")
}
