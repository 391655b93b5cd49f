// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathNotFound is returned when the input path does not exist. Nothing is
// launched or written in that case.
var ErrPathNotFound = errors.New("path does not exist")

// ResolveFiles expands path into the files a batch converts. A regular file
// is kept only when its extension equals from, ignoring case. A directory
// contributes its immediate children whose names match "*"+from; the match
// is case-sensitive and subdirectories are skipped. Results are sorted by name.
func ResolveFiles(path, from string) ([]string, error) {
	from = sourceExt(from)
	if from == "" {
		return nil, fmt.Errorf("source extension required")
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrPathNotFound)
		}
		return nil, fmt.Errorf("inspecting %s: %w", path, err)
	}

	if !info.IsDir() {
		if strings.EqualFold(filepath.Ext(path), from) {
			return []string{path}, nil
		}
		return nil, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", path, err)
	}

	pattern := "*" + from
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("bad source extension %q: %w", from, err)
		}
		if ok {
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}
	return files, nil
}

// sourceExt adds the leading dot to a source filter. Case is preserved
// because directory matching is case-sensitive.
func sourceExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
