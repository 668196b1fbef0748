package bintree

import "cmp"

// Node is a binary tree node. A nil *Node is the absent (empty) tree.
//
// Children are exclusively owned: a node must be reachable from exactly one
// parent. Sharing a subtree between two parents, or building a cycle, is a
// programmer error that Analyze does not detect.
type Node[T cmp.Ordered] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// Result is the structural summary of a tree returned by Analyze.
//
// Height counts nodes on the longest root-to-leaf path, so the absent tree
// has Height 0 and a lone leaf has Height 1.
type Result struct {
	Height     int
	NodeCount  int
	IsBalanced bool
	IsBST      bool
}

// EmptyResult is the canonical result for the absent tree: vacuously
// balanced and a valid BST.
var EmptyResult = Result{Height: 0, NodeCount: 0, IsBalanced: true, IsBST: true}

// summary is the per-subtree state carried up the post-order pass.
// min and max are meaningful only when count > 0.
type summary[T cmp.Ordered] struct {
	height   int
	count    int
	balanced bool
	bst      bool
	min, max T
}

// frame is one slot of the explicit traversal stack.
type frame[T cmp.Ordered] struct {
	node     *Node[T]
	expanded bool // children already scheduled
}
