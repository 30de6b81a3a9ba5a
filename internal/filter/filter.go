// Package filter resolves the object files a command operates on. Explicitly
// named files are taken as-is; directories are walked recursively and run
// through include/exclude patterns with find -path semantics.
package filter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dogtopus/ccppg-ripper/pkg/pathmatch"
)

// Filter decides whether a walked path is selected. With no include patterns
// everything is a candidate; exclude patterns always win over includes.
type Filter struct {
	includes    *pathmatch.Matcher
	excludes    *pathmatch.Matcher
	hasIncludes bool
}

// NewFilter compiles the pattern lists. hasIncludes marks that include
// filtering was requested at all, which matters when the list itself came
// back empty from a pattern file.
func NewFilter(includes, excludes []string, hasIncludes bool) (*Filter, error) {
	inc, err := pathmatch.NewMatcher(normalize(includes))
	if err != nil {
		return nil, fmt.Errorf("compiling include patterns: %w", err)
	}

	exc, err := pathmatch.NewMatcher(normalize(excludes))
	if err != nil {
		return nil, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	return &Filter{includes: inc, excludes: exc, hasIncludes: hasIncludes}, nil
}

// Selected reports whether a slash-separated relative path passes the
// filter.
func (f *Filter) Selected(path string) bool {
	if f.excludes.MatchAny(path) {
		return false
	}

	return !f.hasIncludes || f.includes.MatchAny(path)
}

// normalize strips a leading "./" so patterns line up with cleaned walk
// paths.
func normalize(patterns []string) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = strings.TrimPrefix(p, "./")
	}

	return out
}

// Resolve expands the positional arguments into the final file list.
// Arguments naming plain files bypass the patterns entirely; directory
// arguments are walked and filtered. The second return value is the number
// of candidate files seen before filtering.
func Resolve(args, includes, excludes []string, hasIncludes bool) ([]string, int, error) {
	for _, arg := range args {
		if err := validatePath(arg); err != nil {
			return nil, 0, err
		}
	}

	flt, err := NewFilter(includes, excludes, hasIncludes)
	if err != nil {
		return nil, 0, err
	}

	var (
		files   []string
		scanned int
	)

	seen := make(map[string]struct{})

	add := func(path string) {
		if _, dup := seen[path]; !dup {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			add(arg)

			continue
		}

		walked, total, err := flt.walk(arg)
		if err != nil {
			return nil, 0, err
		}

		scanned += total

		for _, path := range walked {
			add(path)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("no files matched the provided patterns: %v", args)
	}

	return files, scanned, nil
}

// walk collects the files under root that pass the filter, along with the
// total number of files visited.
func (f *Filter) walk(root string) ([]string, int, error) {
	var (
		files []string
		total int
	)

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		total++

		if f.Selected(filepath.ToSlash(filepath.Clean(path))) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, total, nil
}

// validatePath rejects arguments that reach outside the working directory.
// Books are unpacked into a local tree; anything else is a typo.
func validatePath(path string) error {
	if filepath.IsAbs(path) {
		return fmt.Errorf("absolute paths are not allowed: %q", path)
	}

	if strings.HasPrefix(filepath.Clean(path), "..") {
		return fmt.Errorf("paths must be within the current working directory: %q", path)
	}

	return nil
}
