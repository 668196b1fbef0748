package bintree

import "cmp"

// Analyze computes height, node count, balance and BST validity of the tree
// rooted at root in one post-order pass.
//
// Algorithm:
//  1. Push root. Pop a frame; if its children are not yet scheduled, push it
//     back as expanded, then push right and left (left is finished first).
//  2. When an expanded frame is popped, both child summaries sit on top of
//     the summary stack (right above left). Pop them and combine:
//     height   = max(lh, rh) + 1
//     count    = lc + rc + 1
//     balanced = |lh − rh| ≤ 1 && lb && rb
//     bst      = lbst && rbst && left.max < v && v < right.min
//     min/max of the subtree come from the children, so no extra walk.
//  3. The single summary left when the frame stack drains is the answer.
//
// Complexity: O(n) time. Both stacks hold at most O(h) entries: one
// expanded frame plus one pending sibling per level, and at most one
// finished left-sibling summary per level.
//
// Analyze never fails; a nil root yields EmptyResult.
func Analyze[T cmp.Ordered](root *Node[T]) Result {
	if root == nil {
		return EmptyResult
	}

	var (
		frames = make([]frame[T], 0, 32)
		done   = make([]summary[T], 0, 32)
		top    frame[T]
	)
	frames = append(frames, frame[T]{node: root})

	for len(frames) > 0 {
		top = frames[len(frames)-1]
		frames = frames[:len(frames)-1]

		if !top.expanded {
			frames = append(frames, frame[T]{node: top.node, expanded: true})
			if top.node.Right != nil {
				frames = append(frames, frame[T]{node: top.node.Right})
			}
			if top.node.Left != nil {
				frames = append(frames, frame[T]{node: top.node.Left})
			}
			continue
		}

		// Children are finished: right summary is on top, left below it.
		hasLeft, hasRight := top.node.Left != nil, top.node.Right != nil
		left, right := emptySummary[T](), emptySummary[T]()
		if hasRight {
			right = done[len(done)-1]
			done = done[:len(done)-1]
		}
		if hasLeft {
			left = done[len(done)-1]
			done = done[:len(done)-1]
		}

		done = append(done, combine(top.node.Value, left, hasLeft, right, hasRight))
	}

	s := done[0]

	return Result{Height: s.height, NodeCount: s.count, IsBalanced: s.balanced, IsBST: s.bst}
}

// emptySummary is the summary of an absent subtree.
func emptySummary[T cmp.Ordered]() summary[T] {
	return summary[T]{balanced: true, bst: true}
}

// combine folds two child summaries into their parent's summary.
func combine[T cmp.Ordered](v T, l summary[T], hasLeft bool, r summary[T], hasRight bool) summary[T] {
	s := summary[T]{
		height: max(l.height, r.height) + 1,
		count:  l.count + r.count + 1,
		min:    v,
		max:    v,
	}

	diff := l.height - r.height
	s.balanced = diff >= -1 && diff <= 1 && l.balanced && r.balanced

	s.bst = l.bst && r.bst
	if hasLeft {
		s.bst = s.bst && cmp.Less(l.max, v)
		s.min = min(l.min, v)
		s.max = max(l.max, v)
	}
	if hasRight {
		s.bst = s.bst && cmp.Less(v, r.min)
		s.min = min(s.min, r.min)
		s.max = max(s.max, r.max)
	}

	return s
}
