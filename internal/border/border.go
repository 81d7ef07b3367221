// Package border defines the border settings handed to the compositing engine.
package border

import (
	"fmt"
	"strings"
)

// EdgeSize is a border width expressed as a fraction of the image's short side.
type EdgeSize float64

// Named edge sizes selectable from the command line.
const (
	None       EdgeSize = 0
	ExtraSmall EdgeSize = 0.025
	Small      EdgeSize = 0.05
	Medium     EdgeSize = 0.075
	Large      EdgeSize = 0.1
	ExtraLarge EdgeSize = 0.125
)

// Name returns the human-readable name of a named edge size, or the raw
// fraction for anything else.
func (e EdgeSize) Name() string {
	switch e {
	case None:
		return "no"
	case ExtraSmall:
		return "extra small"
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	case ExtraLarge:
		return "extra large"
	default:
		return fmt.Sprintf("%g", float64(e))
	}
}

// Pixels returns the border width in pixels for an image of the given size.
func (e EdgeSize) Pixels(width, height int) int {
	short := width
	if height < short {
		short = height
	}
	return int(float64(short)*float64(e) + 0.5)
}

// AspectRatio is a target width:height ratio without orientation.
// Long is always >= Short.
type AspectRatio struct {
	Long  int
	Short int
}

// Supported aspect ratios.
var (
	Square      = AspectRatio{Long: 1, Short: 1}
	ThreeTwo    = AspectRatio{Long: 3, Short: 2}
	FiveFour    = AspectRatio{Long: 5, Short: 4}
	SixteenNine = AspectRatio{Long: 16, Short: 9}
)

// String formats the ratio as "long:short".
func (a AspectRatio) String() string {
	return fmt.Sprintf("%d:%d", a.Long, a.Short)
}

// Value returns long/short.
func (a AspectRatio) Value() float64 {
	if a.Short == 0 {
		return 0
	}
	return float64(a.Long) / float64(a.Short)
}

// Fit orients the ratio to match an image, returning width and height terms.
// Portrait images get the ratio flipped, so 3:2 becomes 2:3.
func (a AspectRatio) Fit(width, height int) (int, int) {
	if height > width {
		return a.Short, a.Long
	}
	return a.Long, a.Short
}

// Options is the resolved set of settings for one run.
type Options struct {
	EdgeSize EdgeSize
	// AspectRatio is nil when EqualBorders is set.
	AspectRatio    *AspectRatio
	EqualBorders   bool
	InstaOptimised bool
}

// Describe summarises the options for terminal output.
func (o Options) Describe() string {
	parts := []string{o.EdgeSize.Name() + " borders"}
	if o.EqualBorders {
		parts = append(parts, "equal")
	}
	if o.AspectRatio != nil {
		parts = append(parts, o.AspectRatio.String())
	}
	if o.InstaOptimised {
		parts = append(parts, "instagram optimised")
	}
	return strings.Join(parts, ", ")
}
