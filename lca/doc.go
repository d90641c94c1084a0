// Package lca finds the lowest common ancestor of a set of nodes in a
// binary tree (problem 1676).
//
// What:
//
//	Given a root and any number of designated nodes, LowestCommonAncestor
//	returns the deepest node that has every designated node in its subtree.
//	A node counts as its own ancestor.
//
// How:
//
//	One post-order pass. A nil subtree reports nil; a designated node reports
//	itself without descending further; any other node reports itself when
//	both children report a hit, otherwise whichever side did.
//
// Nodes are compared by pointer identity, not by Val.
//
// Missing nodes:
//
//	Designated nodes that are not in the tree are ignored. When none of them
//	is reachable from root, or nodes is empty, the result is nil. Callers
//	that need a hard failure must check membership first (see Find).
//
// Helpers:
//
//   - FromLevelOrder builds a tree from the usual level-order encoding
//     ([3,5,1,null,...]) where nil marks a missing child.
//   - Find returns the first node (pre-order) holding a given value.
//
// Complexity: O(n + k) time, O(h + k) memory (h = tree height, k = |nodes|).
package lca
