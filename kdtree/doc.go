// Package kdtree implements a k-dimensional search index as an implicit,
// always-balanced binary tree stored in a contiguous flat array.
//
// There are no node structs and no pointers: a node's parent and children
// are derived arithmetically from its position in the backing slice (see
// geometry.go). Insertion keeps the tree perfectly balanced by rotating
// values through per-axis minimum/maximum extraction rather than rebuilding
// the tree (see insert.go). Capacity grows by interleaving invalid slots
// between existing ones, so a shallow tree can deepen in place without
// changing the relative order of its live values (see Tree.grow).
package kdtree
