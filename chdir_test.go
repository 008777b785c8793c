package apiconfig

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test and
// restores the previous one on cleanup, mirroring testing.T.Chdir (Go 1.24+),
// which is unavailable on the Go 1.21 toolchain used to build this module.
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}
