package duration

import (
	"fmt"
	"time"
)

// MinutesBetween returns the whole minutes elapsed from start to end.
// Windows where end is not after start contribute zero; an operator
// logging an out-time before the in-time is tolerated, never negative.
func MinutesBetween(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start) / time.Minute)
}

// SubtractBreak removes a break interval from a total, floored at zero.
// Missing break bounds leave the total untouched.
func SubtractBreak(totalMinutes int, breakStart, breakEnd *time.Time) int {
	if breakStart == nil || breakEnd == nil {
		return totalMinutes
	}
	remaining := totalMinutes - MinutesBetween(*breakStart, *breakEnd)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Format renders a minute count as "Xh Ym". Zero renders "0h 0m".
func Format(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}

// FormatDate renders a date as "dd-mm-yyyy" using its local calendar fields.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d-%02d-%04d", t.Day(), int(t.Month()), t.Year())
}

// Midnight strips the time-of-day, keeping the local calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
