package domain

import (
	"time"

	"fleet-overtime/internal/duration"
)

// MonthlyOvertimeBucket holds all of one mechanic's overtime entries for one
// calendar month. TotalMinutes and FormattedTotal are derived from the entry
// list and never set directly.
type MonthlyOvertimeBucket struct {
	MonthKey       MonthKey
	Entries        []OvertimeEntry
	TotalMinutes   int
	FormattedTotal string
}

// NewMonthlyOvertimeBucket creates a bucket seeded with its first entry.
func NewMonthlyOvertimeBucket(key MonthKey, first OvertimeEntry) MonthlyOvertimeBucket {
	b := MonthlyOvertimeBucket{
		MonthKey: key,
		Entries:  []OvertimeEntry{first},
	}
	b.Recompute()
	return b
}

// Recompute rederives the bucket total from its entries. Idempotent; called
// after any entry mutation.
func (b *MonthlyOvertimeBucket) Recompute() {
	total := 0
	for _, e := range b.Entries {
		total += e.TotalMinutes
	}
	b.TotalMinutes = total
	b.FormattedTotal = duration.Format(total)
}

// findEntry returns the index of the entry for the given day, or false.
func (b *MonthlyOvertimeBucket) findEntry(date time.Time) (int, bool) {
	for i, e := range b.Entries {
		if e.SameDay(date) {
			return i, true
		}
	}
	return 0, false
}

// Apply folds a new same-month entry into the bucket: a first submission for
// the day appends, a repeat merges into the existing entry in place of the
// old value. The bucket total is recomputed either way.
func (b *MonthlyOvertimeBucket) Apply(entry OvertimeEntry) {
	if i, ok := b.findEntry(entry.Date); ok {
		b.Entries[i] = b.Entries[i].Merge(entry)
	} else {
		b.Entries = append(b.Entries, entry)
	}
	b.Recompute()
}
