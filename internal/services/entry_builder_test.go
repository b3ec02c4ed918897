package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-overtime/internal/validation"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestEntryBuilderBuild(t *testing.T) {
	builder := NewEntryBuilder()
	submitted := time.Date(2025, time.May, 10, 16, 45, 12, 0, time.Local)
	in := time.Date(2025, time.May, 10, 9, 0, 0, 0, time.Local)
	out := time.Date(2025, time.May, 10, 11, 30, 0, 0, time.Local)

	entry, key, err := builder.Build(OvertimeInput{
		Date:          submitted,
		TimeWindows:   []validation.WindowInput{{In: in, Out: timePtr(out)}},
		WorkDetails:   []string{"clutch replacement"},
		EquipmentRefs: []string{"LDR-012"},
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.May, 10, 0, 0, 0, 0, time.Local), entry.Date)
	assert.Equal(t, "10-05-2025", entry.FormattedDate)
	assert.Equal(t, 150, entry.TotalMinutes)
	assert.Equal(t, "2h 30m", entry.FormattedTime)
	assert.Equal(t, "May 2025", key.String())
}

func TestEntryBuilderBuildMultipleWindows(t *testing.T) {
	builder := NewEntryBuilder()
	day := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.Local)
	morningIn := day.Add(6 * time.Hour)
	morningOut := day.Add(7 * time.Hour)
	eveningIn := day.Add(18 * time.Hour)

	entry, _, err := builder.Build(OvertimeInput{
		Date: day,
		TimeWindows: []validation.WindowInput{
			{In: morningIn, Out: timePtr(morningOut)},
			{In: eveningIn}, // still on site
		},
	})

	require.NoError(t, err)
	require.Len(t, entry.TimeWindows, 2)
	// The open window contributes nothing yet.
	assert.Equal(t, 60, entry.TotalMinutes)
}

func TestEntryBuilderBuildValidation(t *testing.T) {
	builder := NewEntryBuilder()
	day := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		input OvertimeInput
	}{
		{
			name:  "should reject a submission with no windows",
			input: OvertimeInput{Date: day},
		},
		{
			name: "should reject a window without an in-time",
			input: OvertimeInput{
				Date:        day,
				TimeWindows: []validation.WindowInput{{Out: timePtr(day.Add(time.Hour))}},
			},
		},
		{
			name: "should reject a zero date",
			input: OvertimeInput{
				TimeWindows: []validation.WindowInput{{In: day.Add(9 * time.Hour)}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := builder.Build(tt.input)

			require.Error(t, err)
			assert.True(t, validation.IsValidationError(err))
		})
	}
}
