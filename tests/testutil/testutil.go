package testutil

import (
	"os"
	"testing"
)

// RequireTestEnvironment fails the test unless GO_ENV is set to "test".
// The suites under tests/ mutate process-wide state (environment variables,
// the shared config instance), so they must never run against a development
// or production environment by accident.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Fatalf("Tests must run with GO_ENV=test (current: %q). Use `GO_ENV=test go test ./...`.", env)
	}
}

// MustSetTestEnvironment forces GO_ENV=test. Use it in TestMain or suite
// setup so the rest of the suite sees a consistent environment.
func MustSetTestEnvironment(t *testing.T) {
	t.Helper()

	if err := os.Setenv("GO_ENV", "test"); err != nil {
		t.Fatalf("Failed to set GO_ENV=test: %v", err)
	}
}

// DemoModeEnv clears the backend configuration variables so config.Load
// falls back to the placeholder sentinels and the application runs in demo
// mode.
func DemoModeEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"DATABASE_URL", "BACKEND_API_KEY", "AWS_S3_BUCKET"} {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}
}
