package cli

import "github.com/rickgorman/polaroid/internal/border"

// SizeFlag identifies one of the mutually exclusive border size flags.
type SizeFlag int

// Size flags in the order they are registered and scanned.
const (
	NoBorder SizeFlag = iota
	ExtraSmall
	Small
	Medium
	Large
	ExtraLarge

	sizeFlagCount
)

// SizeFlags lists every size flag in scan order.
var SizeFlags = []SizeFlag{NoBorder, ExtraSmall, Small, Medium, Large, ExtraLarge}

// Name returns the canonical long flag name.
func (f SizeFlag) Name() string {
	switch f {
	case NoBorder:
		return "no-border"
	case ExtraSmall:
		return "xs"
	case Small:
		return "sm"
	case Medium:
		return "md"
	case Large:
		return "lg"
	case ExtraLarge:
		return "xl"
	}
	return ""
}

// Aliases returns the alternative long flag names.
func (f SizeFlag) Aliases() []string {
	switch f {
	case NoBorder:
		return []string{"nb"}
	case ExtraSmall:
		return []string{"extra-small"}
	case Small:
		return []string{"small"}
	case Medium:
		return []string{"medium"}
	case Large:
		return []string{"large"}
	case ExtraLarge:
		return []string{"extra-large"}
	}
	return nil
}

// Usage returns the help text for the flag.
func (f SizeFlag) Usage() string {
	switch f {
	case NoBorder:
		return "disable borders"
	case ExtraSmall:
		return "extra small borders"
	case Small:
		return "small borders"
	case Medium:
		return "medium borders (default)"
	case Large:
		return "large borders"
	case ExtraLarge:
		return "extra large borders"
	}
	return ""
}

// EdgeSize returns the border width selected by the flag.
// NoBorder maps to a zero width like any other entry.
func (f SizeFlag) EdgeSize() border.EdgeSize {
	switch f {
	case NoBorder:
		return border.None
	case ExtraSmall:
		return border.ExtraSmall
	case Small:
		return border.Small
	case Large:
		return border.Large
	case ExtraLarge:
		return border.ExtraLarge
	}
	return border.Medium
}

// RatioFlag identifies one of the mutually exclusive aspect ratio flags.
type RatioFlag int

// Ratio flags in the order they are registered and scanned.
const (
	Ratio3x2 RatioFlag = iota
	Ratio5x4
	Ratio16x9

	ratioFlagCount
)

// RatioFlags lists every aspect ratio flag in scan order.
var RatioFlags = []RatioFlag{Ratio3x2, Ratio5x4, Ratio16x9}

// Name returns the canonical long flag name.
func (f RatioFlag) Name() string {
	switch f {
	case Ratio3x2:
		return "3-2"
	case Ratio5x4:
		return "5-4"
	case Ratio16x9:
		return "16-9"
	}
	return ""
}

// Aliases returns the alternative long flag names. Each ratio works in
// both orientations, so the alias is the flipped ratio.
func (f RatioFlag) Aliases() []string {
	switch f {
	case Ratio3x2:
		return []string{"2-3"}
	case Ratio5x4:
		return []string{"4-5"}
	case Ratio16x9:
		return []string{"9-16"}
	}
	return nil
}

// Usage returns the help text for the flag.
func (f RatioFlag) Usage() string {
	switch f {
	case Ratio3x2:
		return "3:2 aspect ratio, either orientation"
	case Ratio5x4:
		return "5:4 aspect ratio, either orientation"
	case Ratio16x9:
		return "16:9 aspect ratio, either orientation"
	}
	return ""
}

// AspectRatio returns the ratio selected by the flag.
func (f RatioFlag) AspectRatio() border.AspectRatio {
	switch f {
	case Ratio3x2:
		return border.ThreeTwo
	case Ratio5x4:
		return border.FiveFour
	case Ratio16x9:
		return border.SixteenNine
	}
	return border.Square
}

// Flags is the raw flag state after parsing, before sanitization.
// Sizes and Ratios hold the set flags in scan order.
type Flags struct {
	EqualBorders   bool
	Sizes          []SizeFlag
	Ratios         []RatioFlag
	InstaOptimised bool
}
