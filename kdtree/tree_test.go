package kdtree

import (
	"sort"
	"testing"
)

type intIndex struct{}

func (intIndex) Dims() int { return 1 }
func (intIndex) Less(d int, a, b int) bool {
	return a < b
}

type point2 [2]int

type point2Index struct{}

func (point2Index) Dims() int { return 2 }
func (point2Index) Less(d int, a, b point2) bool {
	return a[d] < b[d]
}

// liveValues collects every live value in slot order.
func liveValues[V any](tr *Tree[V]) []V {
	var out []V
	for it := tr.Begin(); it != tr.End(); it = tr.Next(it) {
		if it.IsValid() {
			out = append(out, it.Value())
		}
	}
	return out
}

// height returns the height of the live subtree rooted at node (0 for an
// invalid slot, 1 for a single live leaf), used to check the balance
// invariant after every insert.
func height[V any](tr *Tree[V], offset, node int) int {
	if node < 0 || node >= tr.span || !tr.states[node].live() {
		return 0
	}
	if offset == 0 {
		return 1
	}
	lh := height(tr, offset/2, leftOf(node, offset))
	rh := height(tr, offset/2, rightOf(node, offset))
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}

func checkBalanced[V any](t *testing.T, tr *Tree[V]) {
	if tr.span == 0 {
		return
	}
	var walk func(nodeDim, offset, node int)
	walk = func(nodeDim, offset, node int) {
		if node < 0 || node >= tr.span || !tr.states[node].live() {
			return
		}
		if offset == 0 {
			return
		}
		left := leftOf(node, offset)
		right := rightOf(node, offset)
		lh := height(tr, offset/2, left)
		rh := height(tr, offset/2, right)
		diff := lh - rh
		if diff < 0 {
			diff = -diff
		}
		if diff > 1 {
			t.Fatalf("unbalanced at node=%d: left height=%d right height=%d", node, lh, rh)
		}
		childDim := nextDim(nodeDim, tr.idx.Dims())
		walk(childDim, offset/2, left)
		walk(childDim, offset/2, right)
	}
	walk(0, rootOffset(tr.span), rootOf(0, tr.span))
}

func checkOrdered[V any](t *testing.T, tr *Tree[V]) {
	if tr.span == 0 {
		return
	}
	var walk func(nodeDim, offset, node int)
	walk = func(nodeDim, offset, node int) {
		if node < 0 || node >= tr.span || !tr.states[node].live() {
			return
		}
		if offset == 0 {
			return
		}
		left := leftOf(node, offset)
		right := rightOf(node, offset)
		checkSide(t, tr, nodeDim, offset/2, left, tr.values[node], true)
		checkSide(t, tr, nodeDim, offset/2, right, tr.values[node], false)
		childDim := nextDim(nodeDim, tr.idx.Dims())
		walk(childDim, offset/2, left)
		walk(childDim, offset/2, right)
	}
	walk(0, rootOffset(tr.span), rootOf(0, tr.span))
}

func checkSide[V any](t *testing.T, tr *Tree[V], fixedDim, offset, node int, pivot V, isLeft bool) {
	if node < 0 || node >= tr.span || !tr.states[node].live() {
		return
	}
	if isLeft {
		if tr.idx.Less(fixedDim, pivot, tr.values[node]) {
			t.Fatalf("k-d ordering violated: left descendant greater on axis %d", fixedDim)
		}
	} else {
		if tr.idx.Less(fixedDim, tr.values[node], pivot) {
			t.Fatalf("k-d ordering violated: right descendant less on axis %d", fixedDim)
		}
	}
	if offset == 0 {
		return
	}
	checkSide(t, tr, fixedDim, offset/2, leftOf(node, offset), pivot, isLeft)
	checkSide(t, tr, fixedDim, offset/2, rightOf(node, offset), pivot, isLeft)
}

func TestCapacityGeometry(t *testing.T) {
	cases := []struct{ hint, cap int }{
		{10, 15},
		{0, 0},
		{1, 1},
	}
	for _, c := range cases {
		tr := New[int](c.hint, intIndex{})
		if tr.Capacity() != c.cap {
			t.Fatalf("hint=%d: capacity=%d, want %d", c.hint, tr.Capacity(), c.cap)
		}
		if tr.Size() != 0 {
			t.Fatalf("hint=%d: size=%d, want 0", c.hint, tr.Size())
		}
	}
}

func TestAscendingInserts(t *testing.T) {
	tr := New[int](30, intIndex{})
	for i := 1; i <= 30; i++ {
		tr.Insert(i)
		checkBalanced(t, tr)
		checkOrdered(t, tr)
	}
	if tr.Capacity() != 31 {
		t.Fatalf("capacity=%d, want 31", tr.Capacity())
	}
	if tr.Size() != 30 {
		t.Fatalf("size=%d, want 30", tr.Size())
	}
	got := liveValues(tr)
	sort.Ints(got)
	for i, v := range got {
		if v != i+1 {
			t.Fatalf("sorted live values mismatch at %d: got %d", i, v)
		}
	}
}

func TestDescendingInserts(t *testing.T) {
	tr := New[int](30, intIndex{})
	for i := 30; i >= 1; i-- {
		tr.Insert(i)
		checkBalanced(t, tr)
		checkOrdered(t, tr)
	}
	if tr.Capacity() != 31 {
		t.Fatalf("capacity=%d, want 31", tr.Capacity())
	}
	if tr.Size() != 30 {
		t.Fatalf("size=%d, want 30", tr.Size())
	}
	got := liveValues(tr)
	sort.Ints(got)
	for i, v := range got {
		if v != i+1 {
			t.Fatalf("sorted live values mismatch at %d: got %d", i, v)
		}
	}
}

func TestDuplicateKeys(t *testing.T) {
	tr := New[int](0, intIndex{})
	for i := 0; i < 11; i++ {
		tr.Insert(2)
		checkBalanced(t, tr)
	}
	if tr.Capacity() != 15 {
		t.Fatalf("capacity=%d, want 15", tr.Capacity())
	}
	if tr.Size() != 11 {
		t.Fatalf("size=%d, want 11", tr.Size())
	}
	for _, v := range liveValues(tr) {
		if v != 2 {
			t.Fatalf("got value %d, want 2", v)
		}
	}
}

func TestTwoAxisRoundTrip(t *testing.T) {
	// 100000 inserts round-trips fine but takes the suite noticeably longer
	// to run; 2000 already walks through several capacity doublings and
	// exercises the same rotation paths.
	const max = 2000
	tr := New[point2](0, point2Index{})
	for i := 0; i < max; i++ {
		tr.Insert(point2{i, max - i})
	}
	for i := 0; i < max; i++ {
		it := tr.Find(point2{i, max - i})
		if !it.IsValid() {
			t.Fatalf("find missed i=%d", i)
		}
		if it.Value() != (point2{i, max - i}) {
			t.Fatalf("find returned wrong value for i=%d: %v", i, it.Value())
		}
	}
	checkBalanced(t, tr)
	checkOrdered(t, tr)
}

func TestExtremaSingleAxis(t *testing.T) {
	// Reduced from 100000 for test runtime; the extremum recursion's pruning
	// behavior doesn't depend on scale, only on having several full levels.
	const max = 2000
	tr := New[int](0, intIndex{})
	for i := 0; i < max; i++ {
		tr.Insert(i)
	}
	root := rootOf(0, tr.span)
	offset := rootOffset(tr.span)

	minPos := minimum(tr, 0, 0, offset, root)
	if tr.values[minPos] != 0 {
		t.Fatalf("minimum=%d, want 0", tr.values[minPos])
	}
	maxPos := maximum(tr, 0, 0, offset, root)
	if tr.values[maxPos] != max-1 {
		t.Fatalf("maximum=%d, want %d", tr.values[maxPos], max-1)
	}
}

func TestCopyIndependence(t *testing.T) {
	tr := New[int](0, intIndex{})
	for i := 0; i < 50; i++ {
		tr.Insert(i)
	}
	cp := tr.Copy()
	cp.Insert(1000)

	if tr.Size() == cp.Size() {
		t.Fatalf("copy shares size with source after mutation")
	}
	if it := tr.Find(1000); it.IsValid() {
		t.Fatalf("source sees value inserted into copy")
	}
	if it := cp.Find(1000); !it.IsValid() {
		t.Fatalf("copy missing its own inserted value")
	}
	checkOrdered(t, tr)
	checkOrdered(t, cp)
}

func TestCopyEmptyHint(t *testing.T) {
	tr := New[int](10, intIndex{})
	cp := tr.Copy()
	if cp.Capacity() != 15 {
		t.Fatalf("copy capacity=%d, want 15", cp.Capacity())
	}
	if cp.Size() != 0 {
		t.Fatalf("copy size=%d, want 0", cp.Size())
	}
	if tr.Begin() != tr.End() || cp.Begin() != cp.End() {
		t.Fatalf("empty tree's begin should equal end")
	}
}

func TestMoveEmptiness(t *testing.T) {
	src := New[int](30, intIndex{})
	for i := 0; i < 10; i++ {
		src.Insert(i)
	}
	dst := Move(src)

	if src.Capacity() != 0 || src.Size() != 0 {
		t.Fatalf("source not empty after move: cap=%d size=%d", src.Capacity(), src.Size())
	}
	if src.Begin() != src.End() {
		t.Fatalf("moved-from tree's begin should equal end")
	}
	if dst.Size() != 10 {
		t.Fatalf("destination size=%d, want 10", dst.Size())
	}
}

func TestResizeParity(t *testing.T) {
	tr := New[int](0, intIndex{})
	before := tr.fullState

	tr.Insert(1) // span 0 -> 1, triggers a grow
	after1 := tr.fullState
	if after1 == before {
		t.Fatalf("fullState did not flip after first resize")
	}

	tr.Insert(2) // count(1) == span(1), triggers a second grow
	after2 := tr.fullState
	if after2 != before {
		t.Fatalf("fullState should equal original parity after a second resize")
	}
}

func TestFindMiss(t *testing.T) {
	tr := New[int](0, intIndex{})
	for i := 0; i < 20; i += 2 {
		tr.Insert(i)
	}
	if it := tr.Find(1001); it.IsValid() {
		t.Fatalf("find should miss an absent value")
	}
}

func TestEraseRestoresInvariants(t *testing.T) {
	tr := New[int](0, intIndex{})
	for i := 0; i < 40; i++ {
		tr.Insert(i)
	}
	for i := 0; i < 40; i += 3 {
		if !tr.Erase(i) {
			t.Fatalf("erase missed existing value %d", i)
		}
		checkOrdered(t, tr)
	}
	for i := 0; i < 40; i++ {
		it := tr.Find(i)
		shouldExist := i%3 != 0
		if it.IsValid() != shouldExist {
			t.Fatalf("i=%d: find validity=%v, want %v", i, it.IsValid(), shouldExist)
		}
	}
}

func TestClear(t *testing.T) {
	tr := New[int](0, intIndex{})
	for i := 0; i < 10; i++ {
		tr.Insert(i)
	}
	capBefore := tr.Capacity()
	tr.Clear()
	if tr.Size() != 0 {
		t.Fatalf("size after clear=%d, want 0", tr.Size())
	}
	if tr.Capacity() != capBefore {
		t.Fatalf("capacity changed after clear: %d != %d", tr.Capacity(), capBefore)
	}
	if tr.Begin() != tr.End() {
		t.Fatalf("cleared tree's begin should equal end")
	}
}
