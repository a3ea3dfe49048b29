package tiling

import "github.com/pkg/errors"

var (
	// ErrInvalidInput reports malformed constructor or operation arguments:
	// out-of-range indices, inconsistent array lengths, non-finite
	// coordinates. Construction fails fast; nothing is partially built.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFlippable reports a flip on an edge that is not shared by
	// exactly two triangles. The tiling is left untouched.
	ErrNotFlippable = errors.New("edge is not shared by exactly two triangles")

	// ErrDegenerateNeighbor reports a flip whose outer-neighbor lookup
	// cannot be resolved unambiguously from the adjacency lists. The
	// tiling is left untouched.
	ErrDegenerateNeighbor = errors.New("degenerate neighbor lookup")
)
