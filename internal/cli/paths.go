package cli

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ErrInvalidPaths is returned when a path is neither a file nor a directory.
var ErrInvalidPaths = errors.New("invalid paths provided")

// ValidatePaths checks that every path exists as a regular file or a
// directory and returns the cleaned paths in their original order.
// It stops at the first invalid path.
func ValidatePaths(paths []string) ([]string, error) {
	valid := make([]string, 0, len(paths))
	for _, path := range paths {
		// Clean turns "" into ".", the current directory.
		clean := filepath.Clean(path)
		if !isFileOrDir(clean) {
			return nil, errors.Wrap(ErrInvalidPaths, path)
		}
		valid = append(valid, clean)
	}
	return valid, nil
}

func isFileOrDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() || info.IsDir()
}
