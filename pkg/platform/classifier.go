package platform

import (
	"fmt"
	"sync"

	"github.com/dmitrymomot/devicekit/pkg/screen"
)

// Classifier evaluates an ordered rule sequence and returns the descriptor of
// the first matching rule. It is immutable after New and safe for concurrent
// use without locking.
type Classifier struct {
	rules []Rule
}

// Option configures a Classifier.
type Option func(*options)

type options struct {
	rules        []Rule
	skipDefaults bool
}

// WithRules adds rules evaluated before the built-in table, in the given
// order. Repeated calls append.
func WithRules(rules ...Rule) Option {
	return func(o *options) {
		o.rules = append(o.rules, rules...)
	}
}

// WithoutDefaults drops the built-in rule table.
func WithoutDefaults() Option {
	return func(o *options) {
		o.skipDefaults = true
	}
}

// New builds a classifier. It panics if a supplied rule has no name, no test
// or no Describe function: rules are configuration and a broken table should
// stop startup.
func New(opts ...Option) *Classifier {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	rules := make([]Rule, 0, len(o.rules)+len(defaultRules))
	for i, r := range o.rules {
		if !r.valid() {
			panic(fmt.Errorf("%w: rule #%d %q", ErrInvalidRule, i, r.Name))
		}
		rules = append(rules, r)
	}
	if !o.skipDefaults {
		rules = append(rules, defaultRules...)
	}
	return &Classifier{rules: rules}
}

// Rules returns a copy of the classifier's rules in evaluation order.
func (c *Classifier) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Match returns the first rule whose test passes. Evaluation stops at the
// first success.
func (c *Classifier) Match(p Parser, m screen.Metrics) (Rule, bool) {
	if p == nil {
		return Rule{}, false
	}
	for _, r := range c.rules {
		if r.Test.Eval(p, m) {
			return r, true
		}
	}
	return Rule{}, false
}

// Classify returns the descriptor of the first matching rule. No match is a
// valid outcome reported as (Descriptor{}, false), meaning "unknown device".
func (c *Classifier) Classify(p Parser, m screen.Metrics) (Descriptor, bool) {
	r, ok := c.Match(p, m)
	if !ok {
		return Descriptor{}, false
	}
	return r.Describe(p.String()), true
}

var defaultClassifier = sync.OnceValue(func() *Classifier { return New() })

// Default returns the shared classifier built from the built-in rules.
func Default() *Classifier {
	return defaultClassifier()
}

// Classify classifies with the default classifier.
func Classify(p Parser, m screen.Metrics) (Descriptor, bool) {
	return Default().Classify(p, m)
}
