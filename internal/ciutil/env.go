// Package ciutil detects the execution environment for tests: whether the
// process runs under CI, and which database URL integration tests should use.
package ciutil

import "os"

// Environment variable names checked across the codebase.
const (
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvCircleCI      = "CIRCLECI"

	// Database connection variables, in lookup order.
	EnvTestDatabaseURL = "TASKAPI_TEST_DATABASE_URL"
	EnvDatabaseURL     = "DATABASE_URL"

	// Explicit project root override.
	EnvProjectRoot = "TASKAPI_PROJECT_ROOT"
)

// IsCI returns true when the process runs under a known CI provider.
func IsCI() bool {
	return os.Getenv(EnvCI) != "" ||
		os.Getenv(EnvGitHubActions) != "" ||
		os.Getenv(EnvGitLabCI) != "" ||
		os.Getenv(EnvCircleCI) != ""
}

// TestDatabaseURL returns the database URL integration tests should use,
// checking TASKAPI_TEST_DATABASE_URL then DATABASE_URL. Empty means no
// database is available and integration tests should be skipped.
func TestDatabaseURL() string {
	if url := os.Getenv(EnvTestDatabaseURL); url != "" {
		return url
	}
	return os.Getenv(EnvDatabaseURL)
}
