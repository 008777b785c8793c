// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiconfig

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"dario.cat/mergo"
	"github.com/rs/zerolog"
)

// settingKeyRegex matches valid configuration keys (example: YOUR_CONFIG_VAR).
var settingKeyRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Store holds a mapping of normalized configuration keys to arbitrary values
// together with an ordered list of registered resources and a read-only
// snapshot of the environment taken at construction time.
//
// Keys are case-insensitive and stored uppercase; every key matches
// settingKeyRegex. A Store is created with [New] and mutated through its
// methods; it has no internal locking.
type Store struct {
	values    map[string]any
	resources []resourceEntry
	env       map[string]string
	log       zerolog.Logger
}

// Option configures a [Store] during construction.
type Option func(*Store)

// WithEnvironment replaces the process-environment snapshot with the given
// map. The map is copied, so later mutations by the caller are not observed.
// Intended for deterministic tests and embedding scenarios where reading the
// real process environment is undesirable.
func WithEnvironment(environ map[string]string) Option {
	return func(s *Store) {
		s.env = maps.Clone(environ)
		if s.env == nil {
			s.env = map[string]string{}
		}
	}
}

// WithLogger attaches a zerolog logger used for debug-level events (dotenv
// discovery, environment detection). The default logger discards all output.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// New creates a Store seeded from initial, whose keys are validated and
// normalized to uppercase. The process environment is snapshotted once
// (unless [WithEnvironment] overrides it), after which the dotenv file named
// by the ENV_FILE setting (default ".env") is resolved: an existing path is
// loaded directly; otherwise the file is searched for upward from the
// working directory and, when found, its path is recorded under ENV_FILE.
// Dotenv values never override variables already present in the environment
// snapshot.
func New(initial map[string]any, opts ...Option) (*Store, error) {
	s := &Store{
		values: make(map[string]any, len(initial)),
		log:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.env == nil {
		s.env = snapshotEnviron()
	}

	if err := s.Apply(initial); err != nil {
		return nil, fmt.Errorf("error seeding initial configs: %w", err)
	}

	if err := s.loadDotenv(); err != nil {
		return nil, fmt.Errorf("error loading dotenv file: %w", err)
	}

	return s, nil
}

// Get returns the stored value for the normalized key, or nil when absent.
func (s *Store) Get(key string) any {
	return s.GetOr(key, nil)
}

// GetOr returns the stored value for the normalized key, or def when absent.
func (s *Store) GetOr(key string, def any) any {
	if value, ok := s.values[strings.ToUpper(key)]; ok {
		return value
	}

	return def
}

// GetOrFail returns the stored value for the normalized key, or
// [ErrKeyNotFound] when the key is absent. Unlike [Store.Get], absence is an
// error rather than a nil value.
func (s *Store) GetOrFail(key string) (any, error) {
	value, ok := s.values[strings.ToUpper(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	return value, nil
}

// Set stores value under the uppercased key, overwriting any prior value.
// Returns [ErrInvalidKey] when the key does not match [A-Za-z0-9_-]+.
func (s *Store) Set(key string, value any) error {
	if !settingKeyRegex.MatchString(key) {
		return fmt.Errorf("%w: %q (example: YOUR_CONFIG_VAR)", ErrInvalidKey, key)
	}

	s.values[strings.ToUpper(key)] = value

	return nil
}

// Apply calls [Store.Set] for every entry of settings, in sorted key order.
// On the first invalid key the error is returned immediately; entries
// already applied are left in place (no rollback).
func (s *Store) Apply(settings map[string]any) error {
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		if err := s.Set(key, settings[key]); err != nil {
			return err
		}
	}

	return nil
}

// ApplyDefaults merges settings into the store without overwriting entries
// that already exist, so explicit values keep precedence over layered
// framework defaults. Keys are validated and normalized like [Store.Set].
func (s *Store) ApplyDefaults(defaults map[string]any) error {
	missing := make(map[string]any, len(defaults))
	for key, value := range defaults {
		if !settingKeyRegex.MatchString(key) {
			return fmt.Errorf("%w: %q (example: YOUR_CONFIG_VAR)", ErrInvalidKey, key)
		}

		key = strings.ToUpper(key)
		if _, ok := s.values[key]; ok {
			// Stored entries keep precedence even when they hold empty
			// values (false, 0, ""), which mergo alone would fill.
			continue
		}
		missing[key] = value
	}

	if err := mergo.Merge(&s.values, missing); err != nil {
		return fmt.Errorf("error merging configs: %w", err)
	}

	return nil
}

// Settings returns a snapshot copy of the full configuration, ready to be
// handed to the owning framework. When no explicit DOMAIN override is
// stored, the computed [Store.Domain] mapping is injected under DOMAIN.
func (s *Store) Settings() map[string]any {
	data := maps.Clone(s.values)

	if _, ok := data["DOMAIN"]; !ok {
		data["DOMAIN"] = s.Domain()
	}

	return data
}
