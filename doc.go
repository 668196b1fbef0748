// Package verikit is a small verification toolkit: three classic
// algorithms with pure, deterministic APIs and a CLI that drives them.
//
// What is in the box?
//
//	• Trees: height, size, AVL balance and strict BST validity in one
//	  iterative post-order pass (no recursion, any depth)
//	• Strings: Knuth–Morris–Pratt search reporting every, possibly
//	  overlapping, occurrence in linear time
//	• Graphs: Floyd–Warshall all-pairs shortest paths with negative-cycle
//	  detection and optional route reconstruction
//
// Everything is organized under three subpackages plus the command:
//
//	bintree/     — Node[T], Analyze, FromLevelOrder, Insert, InOrder
//	kmp/         — FindAll, Matcher (compile once, scan many texts), PrefixTable
//	apsp/        — Weight (finite or +∞), Graph, Solve, DistanceMatrix.Path
//	cmd/verikit/ — tree, match, paths and run (concurrent YAML/JSON batches)
//
// Quick example:
//
//	      10
//	     /  \
//	    5    15
//	     \
//	      7
//
//	verikit tree --values '[10, 5, 15, null, 7]'
//	→ height=3 nodes=4 balanced=true bst=true
//
// The algorithm packages depend on the standard library only and never
// share state, so they are safe to call from any number of goroutines.
//
//	go get github.com/katalvlaran/verikit
package verikit
