package apiconfig

import (
	"fmt"
	"strings"
)

type detectOptions struct {
	def       any
	required  bool
	configKey string
}

// DetectOption adjusts how a single [Store.Detect] call resolves its value.
type DetectOption func(*detectOptions)

// WithDefault supplies the value returned when the key is found neither in
// the store nor in the environment. The default is not stored.
func WithDefault(def any) DetectOption {
	return func(o *detectOptions) {
		o.def = def
	}
}

// Required makes the detect call fail with [ErrMissingValue] when the key is
// found neither in the store nor in the environment.
func Required() DetectOption {
	return func(o *detectOptions) {
		o.required = true
	}
}

// WithConfigKey overrides the configuration key consulted and written by the
// detect call, which otherwise defaults to the uppercased envKey.
func WithConfigKey(key string) DetectOption {
	return func(o *detectOptions) {
		o.configKey = key
	}
}

// Detect resolves a configuration value from the environment with optional
// defaulting, in three tiers:
//  1. a value already present in the store is returned unchanged — explicit
//     and previously detected values always win and are never overwritten by
//     environment variables;
//  2. otherwise the environment snapshot is consulted; a hit is stored (so
//     subsequent calls resolve through tier 1) and returned;
//  3. otherwise [ErrMissingValue] is returned when [Required] was given, or
//     the [WithDefault] value (nil by default) without storing it.
func (s *Store) Detect(envKey string, opts ...DetectOption) (any, error) {
	var o detectOptions
	for _, opt := range opts {
		opt(&o)
	}

	settingKey := strings.ToUpper(envKey)

	configKey := o.configKey
	if configKey == "" {
		configKey = settingKey
	}

	// Explicit beats implied: a stored value is never reloaded from the
	// environment.
	if value, ok := s.values[configKey]; ok {
		return value, nil
	}

	if value, ok := s.env[configKey]; ok {
		if err := s.Set(configKey, value); err != nil {
			return nil, err
		}
		s.log.Debug().Str("key", configKey).Msg("configuration value detected from environment")

		return value, nil
	}

	if o.required {
		return nil, fmt.Errorf("%w: %q", ErrMissingValue, settingKey)
	}

	return o.def, nil
}
