package apiconfig

import "fmt"

// defaultCacheAge is the fallback, in seconds, for non-positive cache ages.
const defaultCacheAge = 20

// SetCache stores the cache headers for the application: CACHE_CONTROL as
// "max-age=<maxAge>" and CACHE_EXPIRES as the same number of seconds. A
// non-positive maxAge is coerced to 20.
func (s *Store) SetCache(maxAge int) {
	if maxAge <= 0 {
		maxAge = defaultCacheAge
	}

	s.SetCacheExpires(maxAge, maxAge)
}

// SetCacheExpires stores CACHE_CONTROL and CACHE_EXPIRES with independent
// values. Each non-positive argument is coerced to 20 on its own; an
// explicit non-positive expires does not inherit a valid maxAge.
func (s *Store) SetCacheExpires(maxAge, expires int) {
	if maxAge <= 0 {
		maxAge = defaultCacheAge
	}

	if expires <= 0 {
		expires = defaultCacheAge
	}

	s.values["CACHE_CONTROL"] = fmt.Sprintf("max-age=%d", maxAge)
	s.values["CACHE_EXPIRES"] = expires
}
