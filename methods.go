package apiconfig

import (
	"fmt"
	"slices"
	"strings"
)

// httpVerbs lists the HTTP verbs accepted by [Store.ResourceMethods] and
// [Store.ItemMethods].
var httpVerbs = []string{"GET", "POST", "PUT", "PATCH", "HEAD", "DELETE"}

// ResourceMethods stores the list of HTTP verbs allowed on resource
// endpoints under RESOURCE_METHODS, overwriting any prior value. Entries are
// normalized to uppercase and trimmed; an entry that is not a recognized
// verb fails with [ErrUnknownMethod] and leaves the store unchanged.
func (s *Store) ResourceMethods(methods []string) error {
	normalized, err := normalizeMethods(methods)
	if err != nil {
		return err
	}

	s.values["RESOURCE_METHODS"] = normalized

	return nil
}

// ItemMethods stores the list of HTTP verbs allowed on item endpoints under
// ITEM_METHODS, with the same normalization and validation as
// [Store.ResourceMethods].
func (s *Store) ItemMethods(methods []string) error {
	normalized, err := normalizeMethods(methods)
	if err != nil {
		return err
	}

	s.values["ITEM_METHODS"] = normalized

	return nil
}

func normalizeMethods(methods []string) ([]string, error) {
	normalized := make([]string, len(methods))
	for i, method := range methods {
		method = strings.ToUpper(strings.TrimSpace(method))
		if !slices.Contains(httpVerbs, method) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
		}
		normalized[i] = method
	}

	return normalized, nil
}
