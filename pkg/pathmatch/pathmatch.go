// Package pathmatch matches paths the way find(1) -path does.
//
// Patterns follow fnmatch(3) without FNM_PATHNAME, so every wildcard is
// allowed to cross directory separators:
//   - `*` matches any run of characters, `/` included
//   - `?` matches exactly one character, `/` included
//   - `[...]` and `[!...]` match one character from a set
//   - `\` takes the next character literally
//
// This is deliberately not filepath.Match, whose `*` stops at `/` and makes
// patterns like `*.swf` useless against nested book trees.
package pathmatch

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

type compileCache struct {
	mu sync.RWMutex
	m  map[string]*regexp.Regexp
}

var compiled = compileCache{m: make(map[string]*regexp.Regexp)} //nolint:gochecknoglobals

func (c *compileCache) get(pattern string) (*regexp.Regexp, error) {
	c.mu.RLock()
	re, ok := c.m[pattern]
	c.mu.RUnlock()

	if ok {
		return re, nil
	}

	expr, err := translate(pattern)
	if err != nil {
		return nil, err
	}

	re, err = regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}

	c.mu.Lock()
	c.m[pattern] = re
	c.mu.Unlock()

	return re, nil
}

// Match reports whether path matches pattern.
func Match(pattern, path string) (bool, error) {
	re, err := compiled.get(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(path), nil
}

// Matcher holds a set of compiled patterns for matching many paths.
type Matcher struct {
	res []*regexp.Regexp
}

// NewMatcher compiles every pattern up front so later matching cannot fail.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{res: make([]*regexp.Regexp, 0, len(patterns))}

	for _, pattern := range patterns {
		re, err := compiled.get(pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}

		m.res = append(m.res, re)
	}

	return m, nil
}

// MatchAny reports whether path matches at least one pattern.
func (m *Matcher) MatchAny(path string) bool {
	for _, re := range m.res {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// translate turns a glob pattern into an anchored regexp expression.
func translate(pattern string) (string, error) {
	var sb strings.Builder

	sb.WriteByte('^')

	for i := 0; i < len(pattern); {
		switch pattern[i] {
		case '*':
			sb.WriteString(".*")
			i++
		case '?':
			sb.WriteByte('.')
			i++
		case '\\':
			if i == len(pattern)-1 {
				return "", fmt.Errorf("trailing backslash in pattern %q", pattern)
			}

			sb.WriteString(regexp.QuoteMeta(pattern[i+1 : i+2]))
			i += 2
		case '[':
			end, err := classEnd(pattern, i)
			if err != nil {
				return "", err
			}

			sb.WriteString(classToRegexp(pattern[i : end+1]))
			i = end + 1
		default:
			sb.WriteString(regexp.QuoteMeta(pattern[i : i+1]))
			i++
		}
	}

	sb.WriteByte('$')

	return sb.String(), nil
}

// classToRegexp rewrites a glob character class for the regexp engine. The
// only difference is the negation marker, `!` instead of `^`.
func classToRegexp(class string) string {
	if len(class) > 2 && class[1] == '!' {
		return "[^" + class[2:]
	}

	return class
}

// classEnd returns the index of the `]` closing the class that opens at
// start. A `]` directly after the opening (or after `!`) is a literal member
// of the set, not the terminator.
func classEnd(pattern string, start int) (int, error) {
	i := start + 1

	if i < len(pattern) && pattern[i] == '!' {
		i++
	}

	if i < len(pattern) && pattern[i] == ']' {
		i++
	}

	for ; i < len(pattern); i++ {
		if pattern[i] == ']' {
			return i, nil
		}
	}

	return 0, fmt.Errorf("unclosed character class in pattern %q", pattern)
}
