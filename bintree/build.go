package bintree

import "cmp"

// InOrder returns the values of the tree in in-order (left, node, right).
// Iterative, O(n) time, O(h) auxiliary stack.
func InOrder[T cmp.Ordered](root *Node[T]) []T {
	var (
		out   []T
		stack []*Node[T]
		cur   = root
	)
	for cur != nil || len(stack) > 0 {
		for cur != nil { // descend leftmost spine
			stack = append(stack, cur)
			cur = cur.Left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur.Value)
		cur = cur.Right
	}

	return out
}

// Insert adds v to the tree rooted at root using plain BST descent and
// returns the (possibly new) root. Values equal to a node go to its right
// subtree, so a tree built from input with duplicates reports IsBST=false.
// No rebalancing is done.
func Insert[T cmp.Ordered](root *Node[T], v T) *Node[T] {
	leaf := &Node[T]{Value: v}
	if root == nil {
		return leaf
	}

	cur := root
	for {
		if cmp.Less(v, cur.Value) {
			if cur.Left == nil {
				cur.Left = leaf
				return root
			}
			cur = cur.Left
			continue
		}
		if cur.Right == nil {
			cur.Right = leaf
			return root
		}
		cur = cur.Right
	}
}

// FromLevelOrder builds a tree from a level-order listing where a nil entry
// marks an absent child (the layout used by most tree fixtures: [1, 2, 3,
// nil, 4] is root 1, children 2 and 3, and 4 as the right child of 2).
// Children of absent nodes are not listed. An empty slice or a nil first
// entry yields the absent tree; trailing entries with no parent slot are
// ignored.
func FromLevelOrder[T cmp.Ordered](values []*T) *Node[T] {
	if len(values) == 0 || values[0] == nil {
		return nil
	}

	root := &Node[T]{Value: *values[0]}
	queue := []*Node[T]{root}
	next := 1

	for head := 0; head < len(queue) && next < len(values); head++ {
		parent := queue[head]

		if v := values[next]; v != nil {
			parent.Left = &Node[T]{Value: *v}
			queue = append(queue, parent.Left)
		}
		next++
		if next >= len(values) {
			break
		}

		if v := values[next]; v != nil {
			parent.Right = &Node[T]{Value: *v}
			queue = append(queue, parent.Right)
		}
		next++
	}

	return root
}
