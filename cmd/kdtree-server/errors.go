package main

import "fmt"

var errEmptyTree = fmt.Errorf("tree has no values")

func errWrongDims(want, got int) error {
	return fmt.Errorf("point has wrong number of dimensions: wanted=%d, got=%d", want, got)
}

func errBadAxis(axis, dims int) error {
	return fmt.Errorf("axis out of range: wanted 0<=axis<%d, got=%d", dims, axis)
}
