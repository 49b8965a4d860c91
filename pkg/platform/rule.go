package platform

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/devicekit/pkg/screen"
)

// Parser is the parsed user agent a rule is evaluated against.
// useragent.UserAgent implements it.
type Parser interface {
	// Test reports whether pattern matches the raw user agent string.
	Test(pattern *regexp.Regexp) bool
	BrowserName() string
	OSName() string
	OSVersion() string
	// String returns the raw user agent string.
	String() string
}

// Predicate is a custom rule test. It may consult the parser and the
// screen metrics of the current call but must not retain either.
type Predicate func(p Parser, m screen.Metrics) bool

type testKind uint8

const (
	testNone testKind = iota
	testPatterns
	testPredicate
)

// Test is the matching half of a Rule: either an ordered list of patterns,
// any of which must match the raw user agent, or a Predicate.
// The zero Test never matches.
type Test struct {
	kind      testKind
	patterns  []*regexp.Regexp
	predicate Predicate
}

// Patterns builds a pattern-list test. Expressions are compiled
// case-insensitively; an invalid expression panics, so Patterns is meant
// for statically defined rules. Use CompilePatterns for untrusted input.
func Patterns(exprs ...string) Test {
	t, err := CompilePatterns(exprs...)
	if err != nil {
		panic(err)
	}
	return t
}

// CompilePatterns is like Patterns but returns ErrInvalidPattern instead of
// panicking. A blank expression is rejected since it would match every
// user agent.
func CompilePatterns(exprs ...string) (Test, error) {
	if len(exprs) == 0 {
		return Test{}, ErrInvalidPattern
	}
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		if strings.TrimSpace(strings.TrimPrefix(expr, "(?i)")) == "" {
			return Test{}, fmt.Errorf("%w: empty expression", ErrInvalidPattern)
		}
		re, err := compile(expr)
		if err != nil {
			return Test{}, err
		}
		compiled = append(compiled, re)
	}
	return Test{kind: testPatterns, patterns: compiled}, nil
}

// Match builds a predicate test. A nil predicate never matches.
func Match(fn Predicate) Test {
	if fn == nil {
		return Test{}
	}
	return Test{kind: testPredicate, predicate: fn}
}

// Eval runs the test against one parsed user agent and its screen metrics.
func (t Test) Eval(p Parser, m screen.Metrics) bool {
	switch t.kind {
	case testPatterns:
		for _, re := range t.patterns {
			if p.Test(re) {
				return true
			}
		}
		return false
	case testPredicate:
		return t.predicate(p, m)
	default:
		return false
	}
}

// Rule pairs a Test with the Descriptor producer used when it matches.
type Rule struct {
	// Name identifies the rule in logs and errors.
	Name     string
	Test     Test
	Describe func(raw string) Descriptor
}

// Static returns a Describe function that always yields d.
func Static(d Descriptor) func(string) Descriptor {
	return func(string) Descriptor { return d }
}

func (r Rule) valid() bool {
	return r.Name != "" && r.Test.kind != testNone && r.Describe != nil
}

func compile(expr string) (*regexp.Regexp, error) {
	if !strings.HasPrefix(expr, "(?i)") {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}
	return re, nil
}

// firstMatch returns the first capture group of re in s, lower-cased.
// The boolean distinguishes "no match" from a match on an empty group.
func firstMatch(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return "", false
	}
	return strings.ToLower(m[1]), true
}
