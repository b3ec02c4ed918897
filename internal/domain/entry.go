package domain

import (
	"time"

	"fleet-overtime/internal/duration"
)

// TimeWindow is one in/out pair within a day. Out is nil while the window
// is open-ended (mechanic still on site); open windows contribute zero
// minutes until later updated.
type TimeWindow struct {
	In  time.Time
	Out *time.Time
}

// Minutes returns the window's contribution to the day's total.
func (w TimeWindow) Minutes() int {
	if w.Out == nil {
		return 0
	}
	return duration.MinutesBetween(w.In, *w.Out)
}

// IsOpen reports whether the window has no out-time yet.
func (w TimeWindow) IsOpen() bool {
	return w.Out == nil
}

// OvertimeEntry is one calendar day's accumulated overtime for a mechanic.
// Date is normalized to local midnight and is the uniqueness key within a
// bucket. Repeated submissions for the same day merge into one entry.
type OvertimeEntry struct {
	Date          time.Time
	FormattedDate string
	EquipmentRefs []string
	TimeWindows   []TimeWindow
	WorkDetails   []string
	TotalMinutes  int
	FormattedTime string
}

// NewOvertimeEntry builds a fully-derived entry for the given day. The date
// is normalized to midnight; totals are computed from the windows.
func NewOvertimeEntry(date time.Time, windows []TimeWindow, workDetails, equipmentRefs []string) OvertimeEntry {
	day := duration.Midnight(date)
	e := OvertimeEntry{
		Date:          day,
		FormattedDate: duration.FormatDate(day),
		EquipmentRefs: equipmentRefs,
		TimeWindows:   windows,
		WorkDetails:   workDetails,
	}
	e.recompute()
	return e
}

// SameDay reports whether the entry covers the given calendar day.
func (e OvertimeEntry) SameDay(date time.Time) bool {
	return e.Date.Equal(duration.Midnight(date))
}

// Merge combines a second same-day submission into this entry, returning a
// new value; the receiver is not modified. Equipment refs union without
// duplicates, time windows and work details concatenate, and windows logged
// twice each count toward the total (two overlapping tasks may share a
// window).
func (e OvertimeEntry) Merge(incoming OvertimeEntry) OvertimeEntry {
	merged := OvertimeEntry{
		Date:          e.Date,
		FormattedDate: e.FormattedDate,
		EquipmentRefs: unionStrings(e.EquipmentRefs, incoming.EquipmentRefs),
		TimeWindows:   append(append([]TimeWindow{}, e.TimeWindows...), incoming.TimeWindows...),
		WorkDetails:   append(append([]string{}, e.WorkDetails...), incoming.WorkDetails...),
	}
	merged.recompute()
	return merged
}

// recompute rederives TotalMinutes and FormattedTime from the window list.
func (e *OvertimeEntry) recompute() {
	total := 0
	for _, w := range e.TimeWindows {
		total += w.Minutes()
	}
	e.TotalMinutes = total
	e.FormattedTime = duration.Format(total)
}

// unionStrings appends items from add not already present in base,
// preserving first-seen order.
func unionStrings(base, add []string) []string {
	out := append([]string{}, base...)
	seen := make(map[string]struct{}, len(base))
	for _, s := range base {
		seen[s] = struct{}{}
	}
	for _, s := range add {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
