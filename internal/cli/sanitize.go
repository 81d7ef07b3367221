package cli

import (
	"github.com/pkg/errors"

	"github.com/rickgorman/polaroid/internal/border"
)

// Flag conflict errors returned by Sanitize.
var (
	ErrTooManySizeFlags            = errors.New("too many size flags")
	ErrTooManyAspectRatioFlags     = errors.New("too many aspect ratio flags")
	ErrAspectRatioWithEqualBorders = errors.New("aspect ratio incompatible with equal borders")
)

// Sanitize checks the raw flags for conflicts and resolves them into an edge
// size and an aspect ratio.
//
// edge is nil when no size flag was given; callers substitute border.Medium.
// ratio is nil only when equal borders were requested, and defaults to 1:1
// otherwise. Size flags are checked before ratio flags.
func Sanitize(f Flags) (edge *border.EdgeSize, ratio *border.AspectRatio, err error) {
	for _, sf := range f.Sizes {
		if edge != nil {
			return nil, nil, errors.WithStack(ErrTooManySizeFlags)
		}
		size := sf.EdgeSize()
		edge = &size
	}

	for _, rf := range f.Ratios {
		if f.EqualBorders {
			return nil, nil, errors.WithStack(ErrAspectRatioWithEqualBorders)
		}
		if ratio != nil {
			return nil, nil, errors.WithStack(ErrTooManyAspectRatioFlags)
		}
		r := rf.AspectRatio()
		ratio = &r
	}

	if ratio == nil && !f.EqualBorders {
		square := border.Square
		ratio = &square
	}

	return edge, ratio, nil
}
