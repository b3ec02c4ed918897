package services

import (
	"fleet-overtime/internal/domain"
	"fleet-overtime/internal/validation"
)

// EntryBuilder turns a raw overtime submission into a normalized, fully-
// derived entry plus the key of the monthly bucket that owns it. The entry
// it returns is not yet attached to any bucket.
type EntryBuilder struct {
	validator *validation.OvertimeValidator
}

// NewEntryBuilder creates an EntryBuilder.
func NewEntryBuilder() *EntryBuilder {
	return &EntryBuilder{validator: validation.NewOvertimeValidator()}
}

// Build validates the submission and produces the entry and its month key.
// The date normalizes to local midnight; open-ended windows (no out-time)
// are allowed and contribute zero minutes until later updated.
func (b *EntryBuilder) Build(input OvertimeInput) (domain.OvertimeEntry, domain.MonthKey, error) {
	if err := b.validator.ValidateSubmission(input.Date, input.TimeWindows); err != nil {
		return domain.OvertimeEntry{}, domain.MonthKey{}, err
	}

	windows := make([]domain.TimeWindow, len(input.TimeWindows))
	for i, w := range input.TimeWindows {
		windows[i] = domain.TimeWindow{In: w.In, Out: w.Out}
	}

	entry := domain.NewOvertimeEntry(input.Date, windows, input.WorkDetails, input.EquipmentRefs)
	return entry, domain.MonthKeyFor(entry.Date), nil
}
