// Package bintree verifies the structure of a binary tree in a single
// bottom-up pass.
//
// What does Analyze report?
//
//	Height     — number of nodes on the longest root-to-leaf path
//	             (absent tree → 0, single node → 1).
//	NodeCount  — total number of nodes.
//	IsBalanced — for every node |height(left) − height(right)| ≤ 1.
//	IsBST      — for every node all left values < value < all right values.
//
// Key features:
//   - one post-order pass; subtree min/max ride along with height and count,
//     so BST validation never re-walks a subtree: O(n) time overall.
//   - iterative traversal with an explicit, index-addressed stack: auxiliary
//     memory is O(h) and a fully skewed tree of a million nodes is fine.
//   - generic over cmp.Ordered keys (ints, floats, strings...).
//
// BST policy:
//
//	Comparison is strict. A tree containing a duplicate key is NOT a binary
//	search tree, wherever the duplicate sits. This is a deliberate choice:
//	with strict ordering an in-order walk of a valid BST is strictly
//	increasing, and IsBST is true exactly when that holds.
//
// Usage:
//
//	root := &bintree.Node[int]{Value: 10,
//		Left:  &bintree.Node[int]{Value: 5},
//		Right: &bintree.Node[int]{Value: 15},
//	}
//	res := bintree.Analyze(root)
//	// res == Result{Height: 2, NodeCount: 3, IsBalanced: true, IsBST: true}
//
// Analyze never fails and never mutates its input; it is safe to call
// concurrently on shared trees.
package bintree
