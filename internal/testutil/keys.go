package testutil

// ContextKey is a dedicated type for context keys used in tests
type ContextKey string

// TestAppKey carries a preconfigured application container into CLI
// commands under test
const TestAppKey ContextKey = "testApp"
