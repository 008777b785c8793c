package apiconfig

import (
	"fmt"
	"strings"
)

// resourceEntry pairs a lowercase resource name with its configuration.
// Entries keep their registration order and are never mutated or removed.
type resourceEntry struct {
	name   string
	config map[string]any
}

// Resource registers a named resource so it becomes part of the computed
// DOMAIN mapping. The name is normalized to lowercase; registering a name
// that already exists fails with [ErrDuplicateResource].
func (s *Store) Resource(name string, config map[string]any) error {
	name = strings.ToLower(name)

	for _, entry := range s.resources {
		if entry.name == name {
			return fmt.Errorf("%w: refusing to re-define %q", ErrDuplicateResource, name)
		}
	}

	s.resources = append(s.resources, resourceEntry{name: name, config: config})

	return nil
}

// Domain generates the DOMAIN configuration mapping, from each registered
// resource name to its configuration, which tells the owning framework which
// resources to serve.
func (s *Store) Domain() map[string]map[string]any {
	domain := make(map[string]map[string]any, len(s.resources))
	for _, entry := range s.resources {
		domain[entry.name] = entry.config
	}

	return domain
}
