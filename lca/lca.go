package lca

// LowestCommonAncestor returns the lowest node of the tree rooted at root that
// is an ancestor (inclusive) of every node in nodes.
//
// Designated nodes absent from the tree are ignored; nil is returned when
// none of them is found or nodes is empty.
func LowestCommonAncestor(root *TreeNode, nodes []*TreeNode) *TreeNode {
	set := make(map[*TreeNode]struct{}, len(nodes))
	for _, n := range nodes {
		if n != nil {
			set[n] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}

	return search(root, set)
}

// search is the post-order step: a designated node short-circuits, and a
// node whose both subtrees report a hit is the answer for that subtree.
func search(node *TreeNode, set map[*TreeNode]struct{}) *TreeNode {
	if node == nil {
		return nil
	}
	if _, ok := set[node]; ok {
		return node
	}

	l := search(node.Left, set)
	r := search(node.Right, set)
	if l != nil && r != nil {
		return node
	}
	if l != nil {
		return l
	}

	return r
}
