package kdtree

// Tree geometry: pure functions mapping a node's position in the backing
// slice to its children, and a subtree's extent to its root, given the
// width of the subtree. There are no pointers anywhere in this package. Every
// relationship below is arithmetic on a slice index, which is what keeps
// the tree pointer-free and cache-friendly.

// rootOffset returns the offset from the root of a span-wide subtree to
// either of its immediate children. It halves at every level of recursion.
func rootOffset(span int) int {
	return (span + 1) / 4
}

// leftOf returns the index of the left child of a node at position p whose
// subtree offset (distance to either child) is o.
func leftOf(p, o int) int {
	return p - o
}

// rightOf returns the index of the right child of a node at position p
// whose subtree offset is o.
func rightOf(p, o int) int {
	return p + o
}

// rootOf returns the index of the root of a subtree occupying
// [start, start+span) in the backing slice.
func rootOf(start, span int) int {
	return start + span/2
}

// nextDim cycles a split dimension forward, wrapping at k.
func nextDim(d, k int) int {
	return (d + 1) % k
}
