package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-overtime/internal/repository"
)

func TestMapperRoundTrip(t *testing.T) {
	mapper := NewMapper()
	mech := NewMechanic("m1", "A. Okafor", "MEC-01")
	day := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.Local)
	mech.ApplyEntry(MonthKeyFor(day), NewOvertimeEntry(day,
		[]TimeWindow{window(day, 9, 0, 11, 30)},
		[]string{"coolant flush"},
		[]string{"EXC-004"},
	))

	rec := mapper.ToRecord(mech)
	require.Len(t, rec.Buckets, 1)
	assert.Equal(t, "May 2025", rec.Buckets[0].MonthKey)
	assert.Equal(t, 150, rec.Buckets[0].TotalMinutes)
	assert.Equal(t, "2h 30m", rec.Buckets[0].FormattedTotal)
	assert.Equal(t, "10-05-2025", rec.Buckets[0].Entries[0].FormattedDate)

	back := mapper.FromRecord(rec)
	assert.Equal(t, mech.ID, back.ID)
	require.Len(t, back.Buckets, 1)
	assert.Equal(t, mech.Buckets[0].MonthKey, back.Buckets[0].MonthKey)
	assert.Equal(t, mech.Buckets[0].TotalMinutes, back.Buckets[0].TotalMinutes)
	require.Len(t, back.Buckets[0].Entries, 1)
	assert.Equal(t, []string{"coolant flush"}, back.Buckets[0].Entries[0].WorkDetails)
}

func TestMapperRecomputesDerivedFields(t *testing.T) {
	// A stale stored total is corrected on load: derived fields are always
	// rederived from the window list.
	mapper := NewMapper()
	in := time.Date(2025, time.May, 10, 9, 0, 0, 0, time.Local)
	out := in.Add(2 * time.Hour)

	rec := repository.MechanicRecord{
		ID:   "m1",
		Name: "A. Okafor",
		Buckets: []repository.BucketRecord{{
			MonthKey:     "May 2025",
			TotalMinutes: 9999,
			Entries: []repository.EntryRecord{{
				Date:         in,
				TimeWindows:  []repository.TimeWindowRecord{{In: in, Out: &out}},
				TotalMinutes: 9999,
			}},
		}},
	}

	mech := mapper.FromRecord(rec)
	require.Len(t, mech.Buckets, 1)
	assert.Equal(t, 120, mech.Buckets[0].TotalMinutes)
	assert.Equal(t, 120, mech.Buckets[0].Entries[0].TotalMinutes)
}

func TestMapperKeepsUnparseableMonthKeys(t *testing.T) {
	// Corrupt stored keys survive the round trip: each keeps its own text,
	// so two bad buckets stay distinct and never fold into one another.
	mapper := NewMapper()

	rec := repository.MechanicRecord{
		ID:   "m1",
		Name: "A. Okafor",
		Buckets: []repository.BucketRecord{
			{MonthKey: "Mist 2025"},
			{MonthKey: "garbage"},
		},
	}

	mech := mapper.FromRecord(rec)
	require.Len(t, mech.Buckets, 2)
	assert.Equal(t, "Mist 2025", mech.Buckets[0].MonthKey.String())
	assert.Equal(t, "garbage", mech.Buckets[1].MonthKey.String())
	assert.NotEqual(t, mech.Buckets[0].MonthKey, mech.Buckets[1].MonthKey)

	// Both sort before any real cutoff, so the sweeper removes them.
	cutoff := MonthKey{Year: 2025, Month: time.April}
	assert.True(t, mech.Buckets[0].MonthKey.Before(cutoff))
	assert.True(t, mech.Buckets[1].MonthKey.Before(cutoff))

	back := mapper.ToRecord(mech)
	require.Len(t, back.Buckets, 2)
	assert.Equal(t, "Mist 2025", back.Buckets[0].MonthKey)
	assert.Equal(t, "garbage", back.Buckets[1].MonthKey)
}
