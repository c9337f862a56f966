package cli

import (
	"context"

	"github.com/quadro-app/quadro/internal/app"
	"github.com/quadro-app/quadro/internal/testutil"
)

// GetCLIFromContext returns the CLI for a command invocation.
// Tests inject a preconfigured App through the context; outside of tests
// this falls through to a full NewCLI initialization.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok {
		return &CLI{App: testApp, ctx: ctx}, nil
	}
	return NewCLI(ctx)
}
