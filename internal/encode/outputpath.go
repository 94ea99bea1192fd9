package encode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrOutputIsInput is returned when the derived destination would overwrite the source
var ErrOutputIsInput = errors.New("output path is the same as the input path")

// OutputDirPerm is the mode used for created output directories
const OutputDirPerm = 0o755

// DeriveOutputPath maps input to its destination inside outputDir.
//
// The file name is stem + suffix + ext. With preserve set, the input's
// directory is mirrored under outputDir, relative to baseDir when the input
// lies under it and relative to the volume root otherwise. Missing
// directories are created.
func DeriveOutputPath(input, outputDir, suffix string, preserve bool, baseDir string) (string, error) {
	if outputDir == "" {
		return "", ErrNoOutputDir
	}

	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(filepath.Base(input), ext)
	name := stem + suffix + ext

	dir := outputDir
	if preserve {
		rel, err := relativeDir(input, baseDir)
		if err != nil {
			return "", err
		}
		dir = filepath.Join(outputDir, rel)
	}

	out := filepath.Join(dir, name)
	if samePath(input, out) {
		return "", fmt.Errorf("%w: %s", ErrOutputIsInput, out)
	}

	if err := os.MkdirAll(dir, OutputDirPerm); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return out, nil
}

// relativeDir returns the input's parent directory relative to baseDir, or to
// its volume root when baseDir is unset or does not contain the input.
func relativeDir(input, baseDir string) (string, error) {
	absInput, err := filepath.Abs(input)
	if err != nil {
		return "", fmt.Errorf("failed to resolve input path: %w", err)
	}
	parent := filepath.Dir(absInput)

	if baseDir != "" {
		absBase, err := filepath.Abs(baseDir)
		if err == nil {
			if rel, err := filepath.Rel(absBase, parent); err == nil && isLocal(rel) {
				return rel, nil
			}
		}
	}

	root := filepath.VolumeName(parent) + string(filepath.Separator)
	rel, err := filepath.Rel(root, parent)
	if err != nil {
		return "", fmt.Errorf("failed to relativize %s: %w", parent, err)
	}
	return rel, nil
}

func isLocal(rel string) bool {
	return rel == "." || filepath.IsLocal(rel)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
