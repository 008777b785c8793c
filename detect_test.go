package apiconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_FromEnvironment(t *testing.T) {
	s := newTestStore(t, nil, map[string]string{"TEST_DETECT": "abc"})

	value, err := s.Detect("TEST_DETECT")

	require.NoError(t, err)
	assert.Equal(t, "abc", value)
	// The detected value is persisted so later lookups skip the environment.
	assert.Equal(t, "abc", s.Get("TEST_DETECT"))
}

func TestDetect_UppercasesEnvKey(t *testing.T) {
	s := newTestStore(t, nil, map[string]string{"LOWER_KEY": "x"})

	value, err := s.Detect("lower_key")

	require.NoError(t, err)
	assert.Equal(t, "x", value)
}

// TestDetect_StoredValueWins verifies that an explicitly set value is
// returned unchanged and never overwritten by the environment: the stored
// boolean true survives even though the environment says "no".
func TestDetect_StoredValueWins(t *testing.T) {
	s := newTestStore(t, nil, map[string]string{"ALREADY_EXIST": "no"})

	require.NoError(t, s.Set("ALREADY_EXIST", true))

	value, err := s.Detect("ALREADY_EXIST")

	require.NoError(t, err)
	assert.Equal(t, true, value)
	assert.Equal(t, true, s.Get("ALREADY_EXIST"))
}

func TestDetect_RequiredMissing(t *testing.T) {
	s := newTestStore(t, nil, nil)

	value, err := s.Detect("NOT_FOUND", Required())

	assert.Nil(t, value)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingValue)
}

func TestDetect_RequiredSatisfiedByEnvironment(t *testing.T) {
	s := newTestStore(t, nil, map[string]string{"PRESENT": "yes"})

	value, err := s.Detect("PRESENT", Required())

	require.NoError(t, err)
	assert.Equal(t, "yes", value)
}

// TestDetect_DefaultNotStored verifies tier 3: the default is returned but
// not written to the store, so the key stays detectable later.
func TestDetect_DefaultNotStored(t *testing.T) {
	s := newTestStore(t, nil, nil)

	value, err := s.Detect("STILL_MISSING", WithDefault("abc"))

	require.NoError(t, err)
	assert.Equal(t, "abc", value)
	assert.Nil(t, s.Get("STILL_MISSING"))
}

func TestDetect_MissingWithoutDefaultReturnsNil(t *testing.T) {
	s := newTestStore(t, nil, nil)

	value, err := s.Detect("STILL_MISSING")

	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestDetect_WithConfigKey(t *testing.T) {
	s := newTestStore(t, nil, map[string]string{"CUSTOM_KEY": "v"})

	value, err := s.Detect("ignored_name", WithConfigKey("CUSTOM_KEY"))

	require.NoError(t, err)
	assert.Equal(t, "v", value)
	assert.Equal(t, "v", s.Get("CUSTOM_KEY"))
	assert.Nil(t, s.Get("IGNORED_NAME"))
}
