package runner

import (
	"fmt"

	"github.com/harsh-govind/LeetCode-Solutions/boldwords"
	"github.com/harsh-govind/LeetCode-Solutions/factortree"
	"github.com/harsh-govind/LeetCode-Solutions/intervals"
	"github.com/harsh-govind/LeetCode-Solutions/jobs"
	"github.com/harsh-govind/LeetCode-Solutions/lca"
	"github.com/harsh-govind/LeetCode-Solutions/lis"
	"github.com/harsh-govind/LeetCode-Solutions/subseqscore"
	"github.com/harsh-govind/LeetCode-Solutions/vowels"
)

func solveLIS(input []byte) (any, error) {
	var in struct {
		Nums []int `json:"nums"`
	}
	if err := decode(input, &in); err != nil {
		return nil, err
	}

	return lis.LengthOfLIS(in.Nums), nil
}

func solveBoldWords(input []byte) (any, error) {
	var in struct {
		Words []string `json:"words"`
		S     string   `json:"s"`
	}
	if err := decode(input, &in); err != nil {
		return nil, err
	}

	return boldwords.BoldWords(in.Words, in.S), nil
}

func solveFactorTrees(input []byte) (any, error) {
	var in struct {
		Arr []int `json:"arr"`
	}
	if err := decode(input, &in); err != nil {
		return nil, err
	}
	if err := allPositive("arr", in.Arr); err != nil {
		return nil, err
	}
	if err := allDistinct("arr", in.Arr); err != nil {
		return nil, err
	}

	return factortree.NumFactoredBinaryTrees(in.Arr), nil
}

// solveLCA answers with the ancestor's value, or nil when nodes is empty.
// Nodes are addressed by value, so tree values and node values must be unique.
func solveLCA(input []byte) (any, error) {
	var in struct {
		Root  []*int `json:"root"`
		Nodes []int  `json:"nodes"`
	}
	if err := decode(input, &in); err != nil {
		return nil, err
	}

	if err := allDistinct("nodes", in.Nodes); err != nil {
		return nil, err
	}
	root := lca.FromLevelOrder(in.Root)
	if err := allDistinct("root", treeValues(root, nil)); err != nil {
		return nil, err
	}
	nodes := make([]*lca.TreeNode, 0, len(in.Nodes))
	for _, v := range in.Nodes {
		n := lca.Find(root, v)
		if n == nil {
			return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, v)
		}
		nodes = append(nodes, n)
	}

	anc := lca.LowestCommonAncestor(root, nodes)
	if anc == nil {
		return nil, nil
	}

	return anc.Val, nil
}

func solveMinimumTime(input []byte) (any, error) {
	var in struct {
		Jobs    []int `json:"jobs"`
		Workers []int `json:"workers"`
	}
	if err := decode(input, &in); err != nil {
		return nil, err
	}
	if len(in.Jobs) != len(in.Workers) {
		return nil, fmt.Errorf("%w: jobs=%d workers=%d", ErrLengthMismatch, len(in.Jobs), len(in.Workers))
	}
	if err := allPositive("jobs", in.Jobs); err != nil {
		return nil, err
	}
	if err := allPositive("workers", in.Workers); err != nil {
		return nil, err
	}

	return jobs.MinimumTime(in.Jobs, in.Workers), nil
}

func solveMinGroups(input []byte) (any, error) {
	var in struct {
		Intervals [][]int `json:"intervals"`
	}
	if err := decode(input, &in); err != nil {
		return nil, err
	}
	for i, iv := range in.Intervals {
		if len(iv) != 2 || iv[0] > iv[1] {
			return nil, fmt.Errorf("%w: intervals[%d]=%v", ErrInvalidInterval, i, iv)
		}
	}

	return intervals.MinGroups(in.Intervals), nil
}

func solveMaxScore(input []byte) (any, error) {
	var in struct {
		Nums1 []int `json:"nums1"`
		Nums2 []int `json:"nums2"`
		K     int   `json:"k"`
	}
	if err := decode(input, &in); err != nil {
		return nil, err
	}
	if len(in.Nums1) != len(in.Nums2) {
		return nil, fmt.Errorf("%w: nums1=%d nums2=%d", ErrLengthMismatch, len(in.Nums1), len(in.Nums2))
	}
	if in.K < 1 || in.K > len(in.Nums1) {
		return nil, fmt.Errorf("%w: k=%d n=%d", ErrInvalidK, in.K, len(in.Nums1))
	}

	return subseqscore.MaxScore(in.Nums1, in.Nums2, in.K), nil
}

func solveVowelStrings(input []byte) (any, error) {
	var in struct {
		Words []string `json:"words"`
		Left  int      `json:"left"`
		Right int      `json:"right"`
	}
	if err := decode(input, &in); err != nil {
		return nil, err
	}
	if in.Left < 0 || in.Left > in.Right || in.Right >= len(in.Words) {
		return nil, fmt.Errorf("%w: [%d, %d] over %d words", ErrIndexOutOfRange, in.Left, in.Right, len(in.Words))
	}

	return vowels.VowelStrings(in.Words, in.Left, in.Right), nil
}

func allPositive(field string, vals []int) error {
	for i, v := range vals {
		if v <= 0 {
			return fmt.Errorf("%w: %s[%d]=%d", ErrNonPositive, field, i, v)
		}
	}

	return nil
}

func allDistinct(field string, vals []int) error {
	seen := make(map[int]int, len(vals))
	for i, v := range vals {
		if j, ok := seen[v]; ok {
			return fmt.Errorf("%w: %s[%d]=%s[%d]=%d", ErrDuplicate, field, j, field, i, v)
		}
		seen[v] = i
	}

	return nil
}

// treeValues appends the values of the tree in pre-order.
func treeValues(n *lca.TreeNode, acc []int) []int {
	if n == nil {
		return acc
	}
	acc = append(acc, n.Val)
	acc = treeValues(n.Left, acc)

	return treeValues(n.Right, acc)
}
