package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCommand_Execute(t *testing.T) {
	app := setupTestApp(t)
	ctx := context.Background()
	id := addMechanic(t, app, "Dana Flores", "MEC-01")

	logCmd := NewLogCommand(app)
	logCmd.out = &bytes.Buffer{}
	require.NoError(t, logCmd.Execute(ctx, id, "2025-05-10",
		[]string{"09:00-11:30"}, []string{"pump rebuild"}, []string{"EXC-004"}))
	require.NoError(t, logCmd.Execute(ctx, id, "2025-06-01",
		[]string{"18:00-19:00"}, nil, nil))

	out := &bytes.Buffer{}
	cmd := NewReportCommand(app)
	cmd.out = out

	require.NoError(t, cmd.Execute(ctx, id, 0, 0))

	report := out.String()
	assert.Contains(t, report, "Dana Flores")
	assert.Contains(t, report, "May 2025")
	assert.Contains(t, report, "June 2025")
	assert.Contains(t, report, "pump rebuild")
	assert.Contains(t, report, "EXC-004")

	// The grand total in the footer keeps the duration casing.
	assert.Contains(t, report, "3h 30m")
	assert.NotContains(t, report, "3H 30M")
}

func TestReportCommand_SingleMonth(t *testing.T) {
	app := setupTestApp(t)
	ctx := context.Background()
	id := addMechanic(t, app, "Dana Flores", "MEC-01")

	logCmd := NewLogCommand(app)
	logCmd.out = &bytes.Buffer{}
	require.NoError(t, logCmd.Execute(ctx, id, "2025-05-10", []string{"09:00-11:30"}, nil, nil))
	require.NoError(t, logCmd.Execute(ctx, id, "2025-06-01", []string{"18:00-19:00"}, nil, nil))

	out := &bytes.Buffer{}
	cmd := NewReportCommand(app)
	cmd.out = out

	require.NoError(t, cmd.Execute(ctx, id, 5, 2025))

	report := out.String()
	assert.Contains(t, report, "May 2025")
	assert.NotContains(t, report, "June 2025")
}

func TestReportCommand_EmptyMonth(t *testing.T) {
	app := setupTestApp(t)
	id := addMechanic(t, app, "Dana Flores", "MEC-01")

	out := &bytes.Buffer{}
	cmd := NewReportCommand(app)
	cmd.out = out

	require.NoError(t, cmd.Execute(context.Background(), id, 12, 2025))
	assert.Contains(t, out.String(), "No overtime recorded")
}

func TestReportCommand_UnknownMechanic(t *testing.T) {
	app := setupTestApp(t)
	cmd := NewReportCommand(app)
	cmd.out = &bytes.Buffer{}

	err := cmd.Execute(context.Background(), "no-such-id", 0, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to report overtime")
}
