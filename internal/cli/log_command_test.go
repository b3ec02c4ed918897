package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addMechanic(t *testing.T, app *App, name, code string) string {
	t.Helper()

	mech, err := app.service.CreateMechanic(context.Background(), name, code)
	require.NoError(t, err)
	return mech.ID
}

func TestLogCommand_Execute(t *testing.T) {
	app := setupTestApp(t)
	ctx := context.Background()
	id := addMechanic(t, app, "Dana Flores", "MEC-01")

	out := &bytes.Buffer{}
	cmd := NewLogCommand(app)
	cmd.out = out

	err := cmd.Execute(ctx, id, "2025-05-10",
		[]string{"09:00-11:30"}, []string{"pump rebuild"}, []string{"EXC-004"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "May 2025")
	assert.Contains(t, out.String(), "2h 30m")

	// A second same-day submission accumulates into the same bucket.
	out.Reset()
	err = cmd.Execute(ctx, id, "2025-05-10", []string{"14:00-15:00"}, nil, nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "3h 30m")
}

func TestLogCommand_OpenEndedWindow(t *testing.T) {
	app := setupTestApp(t)
	id := addMechanic(t, app, "Dana Flores", "MEC-01")

	out := &bytes.Buffer{}
	cmd := NewLogCommand(app)
	cmd.out = out

	err := cmd.Execute(context.Background(), id, "2025-05-10", []string{"22:00-"}, nil, nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "0h 0m")
}

func TestLogCommand_BadInput(t *testing.T) {
	app := setupTestApp(t)
	id := addMechanic(t, app, "Dana Flores", "MEC-01")
	cmd := NewLogCommand(app)
	cmd.out = &bytes.Buffer{}

	tests := []struct {
		name    string
		date    string
		windows []string
	}{
		{name: "malformed date", date: "10/05/2025", windows: []string{"09:00-10:00"}},
		{name: "malformed window", date: "2025-05-10", windows: []string{"nine-ish"}},
		{name: "window without separator", date: "2025-05-10", windows: []string{"0900"}},
		{name: "no windows", date: "2025-05-10", windows: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cmd.Execute(context.Background(), id, tt.date, tt.windows, nil, nil)
			assert.Error(t, err)
		})
	}
}

func TestLogCommand_UnknownMechanic(t *testing.T) {
	app := setupTestApp(t)
	cmd := NewLogCommand(app)
	cmd.out = &bytes.Buffer{}

	err := cmd.Execute(context.Background(), "no-such-id", "2025-05-10",
		[]string{"09:00-10:00"}, nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to log overtime")
}
