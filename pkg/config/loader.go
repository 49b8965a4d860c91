package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry memoizes one parsed configuration type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	mu      sync.Mutex
	entries = map[reflect.Type]*entry{}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v using `env` struct tags.
// The first call loads ./.env if present; files are optional and never
// override variables already set in the process environment. Each
// configuration type is parsed once and cached for the lifetime of the
// process, including a failed parse.
//
//	type ClassifierConfig struct {
//		RulesFile string `env:"PLATFORM_RULES_FILE"`
//	}
//
//	var cfg ClassifierConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	e := lookup(reflect.TypeFor[T]())
	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})

	if e.err != nil {
		return e.err
	}
	*v = e.value.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads the given .env files into the process environment without
// overriding variables that are already set. Unlike the implicit ./.env load
// performed by Load, missing files are reported.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration so the next Load re-parses
// the environment. Intended for tests.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	entries = map[reflect.Type]*entry{}
}

func lookup(t reflect.Type) *entry {
	mu.Lock()
	defer mu.Unlock()
	e, ok := entries[t]
	if !ok {
		e = &entry{}
		entries[t] = e
	}
	return e
}
