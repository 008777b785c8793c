package apiconfig

import "errors"

// Errors returned by [Store] operations. All are raised synchronously to the
// caller and can be matched with errors.Is; nothing is retried or recovered
// internally.
var (
	// ErrInvalidKey indicates a configuration key that does not match the
	// allowed pattern [A-Za-z0-9_-]+ (for example, a key containing spaces).
	ErrInvalidKey = errors.New("invalid configuration key")
	// ErrMissingValue indicates a required [Store.Detect] lookup that found
	// no value in the store or the environment.
	ErrMissingValue = errors.New("required configuration value not found")
	// ErrKeyNotFound indicates a [Store.GetOrFail] read of an absent key.
	ErrKeyNotFound = errors.New("configuration key not found")
	// ErrUnknownMethod indicates an entry passed to [Store.ResourceMethods]
	// or [Store.ItemMethods] that is not a recognized HTTP verb.
	ErrUnknownMethod = errors.New("unrecognized HTTP verb")
	// ErrDuplicateResource indicates an attempt to re-register a resource
	// name that already exists in the store.
	ErrDuplicateResource = errors.New("resource already registered")
)
