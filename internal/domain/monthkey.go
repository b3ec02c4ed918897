package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// monthNames is the fixed English table used for bucket keys. The ordinal
// (time.Month) is the comparison key; the name appears only in the rendered
// string and the stored document.
var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthKey identifies one calendar month of one mechanic's overtime.
// It is the uniqueness key within a mechanic's bucket collection.
// Raw is set only when a stored key failed to parse: it keeps the stored
// text renderable and makes distinct unparseable keys compare unequal, so
// their buckets never alias each other. A key with Raw set has zero
// Year/Month and sorts before every real cutoff, which is how the sweeper
// eventually removes it.
type MonthKey struct {
	Year  int
	Month time.Month
	Raw   string
}

// MonthKeyFor returns the key of the month containing t, using t's local
// calendar fields.
func MonthKeyFor(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// String renders the human-readable "Month Year" form, e.g. "May 2025".
// An unparseable stored key renders its original text; any other
// out-of-range month renders as "? Year" instead of panicking.
func (mk MonthKey) String() string {
	if mk.Raw != "" {
		return mk.Raw
	}
	if mk.Month < time.January || mk.Month > time.December {
		return fmt.Sprintf("? %d", mk.Year)
	}
	return fmt.Sprintf("%s %d", monthNames[mk.Month-1], mk.Year)
}

// Before reports whether mk is strictly older than other.
func (mk MonthKey) Before(other MonthKey) bool {
	if mk.Year != other.Year {
		return mk.Year < other.Year
	}
	return mk.Month < other.Month
}

// AddMonths returns the key n calendar months after mk (n may be negative).
func (mk MonthKey) AddMonths(n int) MonthKey {
	t := time.Date(mk.Year, mk.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// IsZero reports whether mk is the zero value.
func (mk MonthKey) IsZero() bool {
	return mk.Year == 0 && mk.Month == 0
}

// ParseMonthKey parses the "Month Year" form back into a MonthKey. It is
// only needed at the storage and display boundary; all ordering logic works
// on the parsed value.
func ParseMonthKey(s string) (MonthKey, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return MonthKey{}, fmt.Errorf("invalid month key %q", s)
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid year in month key %q", s)
	}

	for i, name := range monthNames {
		if name == parts[0] {
			return MonthKey{Year: year, Month: time.Month(i + 1)}, nil
		}
	}
	return MonthKey{}, fmt.Errorf("unknown month name in month key %q", s)
}
