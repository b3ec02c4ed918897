package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_ExecuteSubcommand(t *testing.T) {
	app := setupTestApp(t)
	root := NewRootCommand(app, app.config)

	root.cmd.SetOut(&bytes.Buffer{})
	root.cmd.SetErr(&bytes.Buffer{})
	root.cmd.SetArgs([]string{"mechanic", "add", "Dana Flores", "--code", "MEC-01"})

	require.NoError(t, root.Execute())

	mechs, err := app.service.ListMechanics(context.Background())
	require.NoError(t, err)
	require.Len(t, mechs, 1)
	assert.Equal(t, "Dana Flores", mechs[0].Name)
}

func TestRootCommand_GlobalFlagOverrides(t *testing.T) {
	app := setupTestApp(t)
	root := NewRootCommand(app, app.config)

	root.cmd.SetOut(&bytes.Buffer{})
	root.cmd.SetErr(&bytes.Buffer{})
	root.cmd.SetArgs([]string{"--log-level", "debug", "--db-backend", "buntdb", "mechanic", "list"})

	require.NoError(t, root.Execute())

	// The pre-run hook folds the global flags into the configuration
	// before any handler runs.
	assert.Equal(t, "debug", app.config.Logging.Level)
	assert.Equal(t, "buntdb", app.config.Database.Backend)
}
