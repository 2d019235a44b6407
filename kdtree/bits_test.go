package kdtree

import "testing"

func assert(ok bool) {
	if !ok {
		panic("Assertion failed.")
	}
}

func TestFillTrailingZeros(t *testing.T) {
	assert(fillTrailingZeros(0) == 0)
	assert(fillTrailingZeros(1) == 1)
	assert(fillTrailingZeros(2) == 3)
	assert(fillTrailingZeros(3) == 3)
	assert(fillTrailingZeros(4) == 7)
	assert(fillTrailingZeros(10) == 15)
	assert(fillTrailingZeros(15) == 15)
	assert(fillTrailingZeros(16) == 31)
	assert(fillTrailingZeros(1000) == 1023)
}
