package main

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// Point is the demo server's single fixed instantiation of the generic
// tree's value type: a coordinate vector of whatever dimension the config
// file asks for.
type Point []float64

// PointIndex implements kdtree.Index[Point] over a fixed number of axes.
type PointIndex struct {
	K int
}

func (pi PointIndex) Dims() int { return pi.K }

func (pi PointIndex) Less(d int, a, b Point) bool {
	return a[d] < b[d]
}

// PointCodec implements snapshot.ValueCodec[Point] so the server's tree can
// be saved to and loaded from a Store.
type PointCodec struct {
	K int
}

func (pc PointCodec) Marshal(buf *bytes.Buffer, v Point) error {
	if len(v) != pc.K {
		return errors.New("point has wrong number of dimensions")
	}
	for _, f := range v {
		if err := binary.Write(buf, binary.BigEndian, f); err != nil {
			return err
		}
	}
	return nil
}

func (pc PointCodec) Unmarshal(buf *bytes.Buffer) (Point, error) {
	v := make(Point, pc.K)
	for i := range v {
		if err := binary.Read(buf, binary.BigEndian, &v[i]); err != nil {
			return nil, err
		}
	}
	return v, nil
}
