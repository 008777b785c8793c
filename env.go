// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// snapshotEnviron copies the current process environment into a map. The
// copy is taken once per Store, so later mutations of the real environment
// are not observed by Detect or Bind.
func snapshotEnviron() map[string]string {
	environ := os.Environ()

	snapshot := make(map[string]string, len(environ))
	for _, entry := range environ {
		if key, value, ok := strings.Cut(entry, "="); ok {
			snapshot[key] = value
		}
	}

	return snapshot
}

// Bind populates an `env`-tagged struct from the store's environment
// snapshot using the caarlos0/env library, giving typed access alongside the
// dynamic key/value store. Dotenv values loaded at construction take part in
// the lookup; real environment variables still win over them.
//
// Returns a wrapped error if env.Parse fails (e.g. a required variable is
// missing or a value cannot be converted to the target type).
func (s *Store) Bind(v any) error {
	err := env.ParseWithOptions(v, env.Options{Environment: s.env})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
