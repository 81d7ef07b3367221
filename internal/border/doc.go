// Package border defines the border settings handed to the compositing engine.
//
// The values here are the output of command-line parsing and sanitization:
//   - EdgeSize: border width as a fraction of the image's short side
//   - AspectRatio: orientation-agnostic target ratio (3:2 also covers 2:3)
//   - Options: the full set of resolved settings for one run
//
// Example usage:
//
//	opts := border.Options{
//	    EdgeSize:    border.Medium,
//	    AspectRatio: &border.Square,
//	}
//	fmt.Println(opts.Describe())
//	// Output: medium borders, 1:1
package border
