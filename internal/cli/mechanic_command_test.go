package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMechanicCommand_AddListRemove(t *testing.T) {
	app := setupTestApp(t)
	ctx := context.Background()

	out := &bytes.Buffer{}
	cmd := NewMechanicCommand(app)
	cmd.out = out

	require.NoError(t, cmd.Add(ctx, "Dana Flores", "MEC-01"))
	assert.Contains(t, out.String(), "Dana Flores")
	assert.Contains(t, out.String(), "MEC-01")

	out.Reset()
	require.NoError(t, cmd.List(ctx))
	assert.Contains(t, out.String(), "Dana Flores")
	assert.Contains(t, out.String(), "0h 0m")

	// Pull the id back out of the service to drive the remove.
	mechs, err := app.service.ListMechanics(ctx)
	require.NoError(t, err)
	require.Len(t, mechs, 1)

	out.Reset()
	require.NoError(t, cmd.Remove(ctx, mechs[0].ID))
	assert.Contains(t, out.String(), "Removed mechanic")

	out.Reset()
	require.NoError(t, cmd.List(ctx))
	assert.Contains(t, out.String(), "No mechanics found")
}

func TestMechanicCommand_AddRejectsBlankName(t *testing.T) {
	app := setupTestApp(t)
	cmd := NewMechanicCommand(app)
	cmd.out = &bytes.Buffer{}

	err := cmd.Add(context.Background(), "   ", "MEC-02")

	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to add mechanic"))
}

func TestMechanicCommand_RemoveUnknown(t *testing.T) {
	app := setupTestApp(t)
	cmd := NewMechanicCommand(app)
	cmd.out = &bytes.Buffer{}

	err := cmd.Remove(context.Background(), "no-such-id")

	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to remove mechanic"))
}
