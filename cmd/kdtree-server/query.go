package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// parsePointQuery parses the "point" query parameter as a comma-separated
// list of floats, e.g. "?point=1.5,2,-3", and checks it carries exactly
// dims coordinates.
func parsePointQuery(req *http.Request, dims int) (Point, error) {
	raw := req.URL.Query().Get("point")
	if raw == "" {
		return nil, fmt.Errorf("missing required query parameter: point")
	}
	parts := strings.Split(raw, ",")
	if len(parts) != dims {
		return nil, errWrongDims(dims, len(parts))
	}

	out := make(Point, dims)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}
