package testutil

import (
	"os"
	"testing"
)

// EnvLongTests enables tests that hash large inputs.
const EnvLongTests = "SHA256_CI"

// SkipCI skips the calling test unless EnvLongTests is set.
func SkipCI(t testing.TB) {
	t.Helper()
	if os.Getenv(EnvLongTests) == "" {
		t.Skipf("long-running, set %s=1 to run", EnvLongTests)
	}
}
