package kdtree

// minimum returns the slot index, within the subtree rooted at node, of a
// live value whose axis-fixedDim key is less than or equal to every other
// live value's key on that axis. Ties are broken in favor of whichever
// candidate is found first. node is assumed live; callers must guarantee
// that.
//
// Pruning: when nodeDim == fixedDim, every value in the right subtree is
// >= node's own key on that axis (the k-d ordering invariant), so the
// right subtree cannot hold a smaller value and is skipped entirely.
func minimum[V any](t *Tree[V], fixedDim, nodeDim, offset, node int) int {
	best := node

	if offset == 0 {
		return best
	}

	left := leftOf(node, offset)
	right := rightOf(node, offset)
	childDim := nextDim(nodeDim, t.idx.Dims())
	childOffset := offset / 2

	if t.states[left].live() {
		cand := minimum(t, fixedDim, childDim, childOffset, left)
		if t.idx.Less(fixedDim, t.values[cand], t.values[best]) {
			best = cand
		}
	}
	if nodeDim != fixedDim && t.states[right].live() {
		cand := minimum(t, fixedDim, childDim, childOffset, right)
		if t.idx.Less(fixedDim, t.values[cand], t.values[best]) {
			best = cand
		}
	}
	return best
}

// maximum is the symmetric counterpart of minimum: it skips the left
// subtree when nodeDim == fixedDim, since the k-d ordering invariant
// guarantees nothing there can exceed node's own key on that axis.
func maximum[V any](t *Tree[V], fixedDim, nodeDim, offset, node int) int {
	best := node

	if offset == 0 {
		return best
	}

	left := leftOf(node, offset)
	right := rightOf(node, offset)
	childDim := nextDim(nodeDim, t.idx.Dims())
	childOffset := offset / 2

	if nodeDim != fixedDim && t.states[left].live() {
		cand := maximum(t, fixedDim, childDim, childOffset, left)
		if t.idx.Less(fixedDim, t.values[best], t.values[cand]) {
			best = cand
		}
	}
	if t.states[right].live() {
		cand := maximum(t, fixedDim, childDim, childOffset, right)
		if t.idx.Less(fixedDim, t.values[best], t.values[cand]) {
			best = cand
		}
	}
	return best
}

// Min returns a live value whose key on axis is less than or equal to every
// other live value's key on that axis. It panics on an empty tree, since
// there is no value to return; callers must check Empty first.
func Min[V any](t *Tree[V], axis int) V {
	if t.Empty() {
		panic("kdtree: Min called on an empty tree")
	}
	pos := minimum(t, axis, 0, rootOffset(t.span), rootOf(0, t.span))
	return t.values[pos]
}

// Max returns a live value whose key on axis is greater than or equal to
// every other live value's key on that axis. It panics on an empty tree.
func Max[V any](t *Tree[V], axis int) V {
	if t.Empty() {
		panic("kdtree: Max called on an empty tree")
	}
	pos := maximum(t, axis, 0, rootOffset(t.span), rootOf(0, t.span))
	return t.values[pos]
}
