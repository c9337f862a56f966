package cli

import (
	"context"
	"testing"

	"github.com/quadro-app/quadro/internal/app"
	"github.com/quadro-app/quadro/internal/testutil"
	"github.com/spf13/cobra"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the command context so commands resolve it
// instead of opening the real database.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetArgs(args)

	ctxWithApp := context.WithValue(context.Background(), testutil.TestAppKey, testApp)
	cmd.SetContext(ctxWithApp)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}
