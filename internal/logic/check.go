package logic

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dogtopus/ccppg-ripper/internal/config"
	"github.com/dogtopus/ccppg-ripper/internal/filter"
	"github.com/dogtopus/ccppg-ripper/pkg/pathmatch"
)

// patternReport is the outcome of testing one pattern against the tree.
type patternReport struct {
	kind    string
	pattern string
	hits    int
	err     error
}

func (r patternReport) failed() bool {
	return r.err != nil || r.hits == 0
}

func (r patternReport) String() string {
	if r.err != nil {
		return fmt.Sprintf("%s %q: invalid pattern: %v", r.kind, r.pattern, r.err)
	}

	if r.hits == 0 {
		return fmt.Sprintf("%s %q: no matches", r.kind, r.pattern)
	}

	return fmt.Sprintf("%s %q: %d file(s)", r.kind, r.pattern, r.hits)
}

// RunCheck tests every include and exclude pattern against the book tree and
// reports how many files each one hits. A pattern that hits nothing is
// treated as an error, it usually means a typo before a long run.
func RunCheck(cfg *config.Config) error {
	includes, excludes, err := loadPatterns(cfg)
	if err != nil {
		return err
	}

	if len(includes)+len(excludes) == 0 {
		return errors.New("no include or exclude patterns to check")
	}

	candidates, err := listFiles(cfg.Files)
	if err != nil {
		return err
	}

	var reports []patternReport

	for _, p := range includes {
		reports = append(reports, testPattern("include", p, candidates))
	}

	for _, p := range excludes {
		reports = append(reports, testPattern("exclude", p, candidates))
	}

	var failures int

	for _, r := range reports {
		if r.failed() {
			failures++

			fmt.Fprintln(os.Stderr, r)
		} else if !cfg.Quiet {
			fmt.Fprintln(os.Stderr, r)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d pattern(s) matched no files", failures)
	}

	return nil
}

// testPattern counts how many candidate paths one pattern matches.
func testPattern(kind, pattern string, candidates []string) patternReport {
	report := patternReport{kind: kind, pattern: pattern}

	m, err := pathmatch.NewMatcher([]string{pattern})
	if err != nil {
		report.err = err

		return report
	}

	for _, path := range candidates {
		if m.MatchAny(path) {
			report.hits++
		}
	}

	return report
}

// loadPatterns merges the flag-supplied patterns with the pattern files and
// strips leading "./" so they line up with cleaned walk paths.
func loadPatterns(cfg *config.Config) (includes, excludes []string, err error) {
	includes = append(includes, cfg.Include...)
	excludes = append(excludes, cfg.Exclude...)

	if cfg.IncludeFrom != "" {
		fromFile, err := filter.LoadPatterns(cfg.IncludeFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("loading include patterns: %w", err)
		}

		includes = append(includes, fromFile...)
	}

	if cfg.ExcludeFrom != "" {
		fromFile, err := filter.LoadPatterns(cfg.ExcludeFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("loading exclude patterns: %w", err)
		}

		excludes = append(excludes, fromFile...)
	}

	for i, p := range includes {
		includes[i] = strings.TrimPrefix(p, "./")
	}

	for i, p := range excludes {
		excludes[i] = strings.TrimPrefix(p, "./")
	}

	return includes, excludes, nil
}

// listFiles enumerates every file under the given paths, without filtering.
func listFiles(args []string) ([]string, error) {
	seen := make(map[string]struct{})

	var paths []string

	add := func(path string) {
		clean := filepath.ToSlash(filepath.Clean(path))
		if _, dup := seen[clean]; !dup {
			seen[clean] = struct{}{}
			paths = append(paths, clean)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			add(arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !entry.IsDir() {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	return paths, nil
}
