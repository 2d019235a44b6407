package kdtree

// place is the rotating inserter (C7): it writes pending into the subtree
// rooted at node, which spans offset slots to either side along dimension
// nodeDim, while preserving both the k-d ordering invariant and perfect
// balance. It returns the slot pending was ultimately written to.
//
// Preconditions: span >= 1 and the root slot exists before the first call
// (Tree.insertPending grows the tree before calling place).
func place[V any](t *Tree[V], nodeDim, offset, node int, val pending[V]) int {
	if offset > 0 && !t.states[node].live() {
		// An internal slot emptied by eraseAt has no live descendants, so
		// pending settles there directly.
		val.placeAt(t, node)
		t.states[node] = Unsure
		return node
	}
	switch {
	case offset == 0:
		return placeLeaf(t, node, val)
	case offset == 1:
		return placePair(t, nodeDim, node, val)
	default:
		return placeSubtree(t, nodeDim, offset, node, val)
	}
}

// placeLeaf handles a single-slot subtree: write pending directly and mark
// it full.
func placeLeaf[V any](t *Tree[V], node int, val pending[V]) int {
	val.placeAt(t, node)
	t.states[node] = t.fullState
	return node
}

// placePair handles a three-slot subtree (node plus two leaf children).
func placePair[V any](t *Tree[V], nodeDim, node int, val pending[V]) int {
	left := leftOf(node, 1)
	right := rightOf(node, 1)

	if t.idx.Less(nodeDim, val.cref(t), t.values[node]) {
		if !t.states[left].live() {
			val.placeAt(t, left)
			t.states[left] = t.fullState
			if t.states[right].live() {
				t.states[node] = t.fullState
			}
			return left
		}

		// Left child is occupied: promote node's current value into the
		// right slot, then decide between node and left for pending.
		memcpyPending[V](node).placeAt(t, right)
		t.states[right] = t.fullState
		t.states[node] = t.fullState

		if t.idx.Less(nodeDim, val.cref(t), t.values[left]) {
			memcpyPending[V](left).placeAt(t, node)
			val.placeAt(t, left)
			return left
		}
		val.placeAt(t, node)
		return node
	}

	// Symmetric handling of the right direction.
	if !t.states[right].live() {
		val.placeAt(t, right)
		t.states[right] = t.fullState
		if t.states[left].live() {
			t.states[node] = t.fullState
		}
		return right
	}

	memcpyPending[V](node).placeAt(t, left)
	t.states[left] = t.fullState
	t.states[node] = t.fullState

	if t.idx.Less(nodeDim, t.values[right], val.cref(t)) {
		memcpyPending[V](right).placeAt(t, node)
		val.placeAt(t, right)
		return right
	}
	val.placeAt(t, node)
	return node
}

// placeSubtree handles subtrees wider than three slots, rotating a value
// out via minimum/maximum extraction when the chosen side is already full.
func placeSubtree[V any](t *Tree[V], nodeDim, offset, node int, val pending[V]) int {
	left := leftOf(node, offset)
	right := rightOf(node, offset)
	k := t.idx.Dims()
	childDim := nextDim(nodeDim, k)
	childOffset := offset / 2

	var placedAt int
	switch {
	case t.idx.Less(nodeDim, val.cref(t), t.values[node]):
		placedAt = placeTowards(t, nodeDim, childDim, offset, childOffset, node, left, right, val, true)
	case t.idx.Less(nodeDim, t.values[node], val.cref(t)):
		placedAt = placeTowards(t, nodeDim, childDim, offset, childOffset, node, right, left, val, false)
	default:
		// Equal on nodeDim: prefer whichever side isn't full; prefer
		// right when both are available.
		if t.states[right] != t.fullState {
			placedAt = place(t, childDim, childOffset, right, val)
		} else {
			placedAt = place(t, childDim, childOffset, left, val)
		}
	}

	t.states[node] = merge(t.states[left], t.states[right])
	return placedAt
}

// placeTowards implements the direction-specific half of placeSubtree.
// near is the child on the side pending is headed towards (left if
// goingLeft, right otherwise); far is the other child. When near is full,
// node's current value is pushed into far as a deferred memcpy, then
// pending is compared against near's extremum (maximum of near when going
// left, minimum of near when going right) to decide whether pending can
// settle at node or must continue down into near.
func placeTowards[V any](t *Tree[V], nodeDim, childDim, offset, childOffset, node, near, far int, val pending[V], goingLeft bool) int {
	if t.states[near] != t.fullState {
		return place(t, childDim, childOffset, near, val)
	}

	place(t, childDim, childOffset, far, memcpyPending[V](node))

	var extreme int
	var mustDescend bool
	if goingLeft {
		extreme = maximum(t, nodeDim, childDim, childOffset, near)
		mustDescend = t.idx.Less(nodeDim, val.cref(t), t.values[extreme])
	} else {
		extreme = minimum(t, nodeDim, childDim, childOffset, near)
		mustDescend = t.idx.Less(nodeDim, t.values[extreme], val.cref(t))
	}

	if !mustDescend {
		val.placeAt(t, node)
		return node
	}

	t.values[node] = t.values[extreme]
	eraseAt(t, childDim, childOffset, near, extreme)
	return place(t, childDim, childOffset, near, val)
}

// find descends the tree looking for a live value equal to v on every
// axis, following the k-d ordering invariant: strictly less goes left
// only, strictly greater goes right only, and a tie on nodeDim means v
// could be on either side (equal keys may land on either side of an
// insertion), so both are probed.
func find[V any](t *Tree[V], nodeDim, offset, node int, v V) int {
	if !t.states[node].live() {
		return -1
	}

	k := t.idx.Dims()
	switch {
	case t.idx.Less(nodeDim, v, t.values[node]):
		if offset == 0 {
			return -1
		}
		return find(t, nextDim(nodeDim, k), offset/2, leftOf(node, offset), v)

	case t.idx.Less(nodeDim, t.values[node], v):
		if offset == 0 {
			return -1
		}
		return find(t, nextDim(nodeDim, k), offset/2, rightOf(node, offset), v)

	default:
		if equal(t.idx, v, t.values[node]) {
			return node
		}
		if offset == 0 {
			return -1
		}
		childDim := nextDim(nodeDim, k)
		childOffset := offset / 2
		if pos := find(t, childDim, childOffset, leftOf(node, offset), v); pos >= 0 {
			return pos
		}
		return find(t, childDim, childOffset, rightOf(node, offset), v)
	}
}

// eraseAt removes the live value at slot target from the subtree rooted at
// node, restoring the merge-derived state invariant on every ancestor
// along the way. It is used both by placeTowards, where target is always
// within a currently-full subtree ("_erase_when_full"-style use), and by
// Tree.Erase/Tree.EraseIterator, where the subtree may be only partially
// full. Both cases are handled by the same logic: when the removed slot is
// an internal node, its value is replaced by an extremum pulled from
// whichever child is live (preferring the right child's minimum, matching
// the source material's choice when a subtree is fully populated), and
// that extremum's old slot is then erased recursively.
func eraseAt[V any](t *Tree[V], nodeDim, offset, node, target int) {
	if offset == 0 {
		t.states[node] = Invalid
		return
	}

	left := leftOf(node, offset)
	right := rightOf(node, offset)
	childDim := nextDim(nodeDim, t.idx.Dims())
	childOffset := offset / 2

	switch {
	case node == target:
		switch {
		case t.states[right].live():
			m := minimum(t, nodeDim, childDim, childOffset, right)
			t.values[node] = t.values[m]
			eraseAt(t, childDim, childOffset, right, m)
		case t.states[left].live():
			m := maximum(t, nodeDim, childDim, childOffset, left)
			t.values[node] = t.values[m]
			eraseAt(t, childDim, childOffset, left, m)
		default:
			t.states[node] = Invalid
			return
		}
	case target < node:
		eraseAt(t, childDim, childOffset, left, target)
	default:
		eraseAt(t, childDim, childOffset, right, target)
	}

	t.states[node] = merge(t.states[left], t.states[right])
	if t.states[node] == Invalid {
		// node still holds a value even when both children are now empty.
		t.states[node] = Unsure
	}
}
