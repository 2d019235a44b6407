package kdtree

// grow doubles the tree's logical span (plus one), toggling full-state
// parity, and allocates a larger backing buffer first if capacity has been
// exhausted. Every live value at old slot i lands at new slot 2i+1; the
// even slots in between are the room the deepened tree needed. Walking the
// relocation from the high end down is what lets it happen without a
// temporary buffer even when it's done in place (see expandInPlace).
func (t *Tree[V]) grow() {
	oldSpan := t.span
	newSpan := 2*oldSpan + 1

	if t.cap0 >= newSpan {
		t.expandInPlace(oldSpan, newSpan)
	} else {
		newCap := 2*t.cap0 + 1
		if newCap < newSpan {
			newCap = newSpan
		}
		newValues := make([]V, newCap)
		newStates := make([]State, newCap)
		for i := 0; i < oldSpan; i++ {
			if t.states[i].live() {
				newValues[2*i+1] = t.values[i]
				newStates[2*i+1] = t.states[i]
			}
		}
		t.values = newValues
		t.states = newStates
		t.cap0 = newCap
	}

	t.span = newSpan
	t.fullState = t.fullState.complement()
}

// expandInPlace performs the grow() relocation when the backing buffer
// already has room for the new span, overlapping source and destination
// ranges in the same slice. Processing descending i guarantees slot i is
// read before anything at or past its destination 2i+1 is overwritten,
// since 2i+1 always exceeds every not-yet-processed (smaller) source
// index.
func (t *Tree[V]) expandInPlace(oldSpan, newSpan int) {
	for i := oldSpan - 1; i >= 0; i-- {
		dst := 2*i + 1
		t.values[dst] = t.values[i]
		t.states[dst] = t.states[i]
	}

	var zero V
	for i := 0; i < newSpan; i += 2 {
		t.values[i] = zero
		t.states[i] = Invalid
	}
}
