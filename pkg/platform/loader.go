package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/devicekit/pkg/validator"
)

var typeNames = []string{string(TypeDesktop), string(TypeMobile), string(TypeTablet), string(TypeBot)}

type ruleFile struct {
	Rules []ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
	Type     string   `yaml:"type"`
	Vendor   string   `yaml:"vendor"`
	Model    string   `yaml:"model"`
}

// LoadRules decodes pattern rules from a YAML document:
//
//	rules:
//	  - name: acme-kiosk
//	    patterns: ["acmekiosk/\\d+"]
//	    type: tablet
//	    vendor: Acme
//	    model: Kiosk
//
// Patterns are matched case-insensitively against the raw user agent. The
// returned rules keep document order and are meant for WithRules. An empty
// document yields no rules; a stream with more than one document is rejected.
func LoadRules(ctx context.Context, r io.Reader) ([]Rule, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadRules, err)
	}

	var f ruleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Join(ErrParseRules, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrParseRules, errors.New("expected a single YAML document"), err)
	}

	rules := make([]Rule, 0, len(f.Rules))
	seen := make(map[string]struct{}, len(f.Rules))
	for i, rs := range f.Rules {
		rule, err := rs.build()
		if err != nil {
			return nil, fmt.Errorf("rule #%d %q: %w", i, rs.Name, err)
		}
		if _, dup := seen[rule.Name]; dup {
			return nil, fmt.Errorf("rule #%d %q: %w: duplicate name", i, rs.Name, ErrInvalidRule)
		}
		seen[rule.Name] = struct{}{}
		rules = append(rules, rule)
	}
	return rules, nil
}

// LoadRulesFile opens path and decodes it with LoadRules.
func LoadRulesFile(ctx context.Context, path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrLoadRules, err)
	}
	defer f.Close()

	return LoadRules(ctx, f)
}

func (s ruleSpec) build() (Rule, error) {
	if err := validator.Apply(
		validator.RequiredString("name", s.Name),
		validator.RequiredSlice("patterns", s.Patterns),
		validator.InListCaseInsensitive("type", s.Type, typeNames),
	); err != nil {
		if validator.ExtractValidationErrors(err).Has("type") {
			return Rule{}, errors.Join(ErrInvalidRule, ErrUnknownType, err)
		}
		return Rule{}, errors.Join(ErrInvalidRule, err)
	}

	typ, err := ParseType(s.Type)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q", err, s.Type)
	}

	test, err := CompilePatterns(s.Patterns...)
	if err != nil {
		return Rule{}, err
	}

	return Rule{
		Name:     s.Name,
		Test:     test,
		Describe: Static(Descriptor{Type: typ, Vendor: s.Vendor, Model: s.Model}),
	}, nil
}
