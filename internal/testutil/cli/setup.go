package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/quadro-app/quadro/internal/app"
	"github.com/quadro-app/quadro/internal/database"
)

// SetupCLITest creates a file-backed test database plus an App instance.
// This lives in a separate package to avoid import cycles when service
// tests import testutil.
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()

	dir := t.TempDir()
	db, err := database.InitDB(context.Background(), filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// EventPublisher is nil - event publishing is tested elsewhere
	return app.New(database.NewRepository(db), filepath.Join(dir, "boards"), nil)
}
