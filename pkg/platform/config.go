package platform

import "context"

// Config is the environment-driven classifier configuration.
type Config struct {
	// RulesFile is an optional YAML file of extra rules evaluated before
	// the built-in table.
	RulesFile string `env:"PLATFORM_RULES_FILE"`
	// DisableDefaults drops the built-in table.
	DisableDefaults bool `env:"PLATFORM_DISABLE_DEFAULTS" envDefault:"false"`
}

// NewFromConfig builds a classifier from Config.
func NewFromConfig(ctx context.Context, cfg Config) (*Classifier, error) {
	var opts []Option
	if cfg.RulesFile != "" {
		rules, err := LoadRulesFile(ctx, cfg.RulesFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithRules(rules...))
	}
	if cfg.DisableDefaults {
		opts = append(opts, WithoutDefaults())
	}
	return New(opts...), nil
}
