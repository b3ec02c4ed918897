package domain

import (
	"fleet-overtime/internal/repository"
)

// Mapper converts between domain models and stored mechanic documents.
// Derived fields (totals, formatted strings) travel with the record so the
// stored document is self-describing, but the domain side always recomputes
// them through its own methods.
type Mapper struct{}

// NewMapper creates a new Mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// FromRecord converts a stored mechanic document to the domain aggregate.
// Bucket month keys that fail to parse are kept rather than dropped: the
// key holds the raw stored text so such buckets stay distinct and
// renderable, and the sweeper treats them as expired.
func (m *Mapper) FromRecord(rec repository.MechanicRecord) Mechanic {
	mech := Mechanic{
		ID:   rec.ID,
		Name: rec.Name,
		Code: rec.Code,
	}
	for _, b := range rec.Buckets {
		mech.Buckets = append(mech.Buckets, m.bucketFromRecord(b))
	}
	return mech
}

// ToRecord converts a domain aggregate back to its stored document.
// Timestamps are owned by the store and left zero here.
func (m *Mapper) ToRecord(mech Mechanic) repository.MechanicRecord {
	rec := repository.MechanicRecord{
		ID:   mech.ID,
		Name: mech.Name,
		Code: mech.Code,
	}
	for _, b := range mech.Buckets {
		rec.Buckets = append(rec.Buckets, m.bucketToRecord(b))
	}
	return rec
}

func (m *Mapper) bucketFromRecord(rec repository.BucketRecord) MonthlyOvertimeBucket {
	key, err := ParseMonthKey(rec.MonthKey)
	if err != nil {
		key = MonthKey{Raw: rec.MonthKey}
	}
	b := MonthlyOvertimeBucket{MonthKey: key}
	for _, e := range rec.Entries {
		b.Entries = append(b.Entries, m.entryFromRecord(e))
	}
	b.Recompute()
	return b
}

func (m *Mapper) bucketToRecord(b MonthlyOvertimeBucket) repository.BucketRecord {
	rec := repository.BucketRecord{
		MonthKey:       b.MonthKey.String(),
		TotalMinutes:   b.TotalMinutes,
		FormattedTotal: b.FormattedTotal,
	}
	for _, e := range b.Entries {
		rec.Entries = append(rec.Entries, m.entryToRecord(e))
	}
	return rec
}

func (m *Mapper) entryFromRecord(rec repository.EntryRecord) OvertimeEntry {
	windows := make([]TimeWindow, len(rec.TimeWindows))
	for i, w := range rec.TimeWindows {
		windows[i] = TimeWindow{In: w.In, Out: w.Out}
	}
	return NewOvertimeEntry(rec.Date, windows, rec.WorkDetails, rec.EquipmentRefs)
}

func (m *Mapper) entryToRecord(e OvertimeEntry) repository.EntryRecord {
	windows := make([]repository.TimeWindowRecord, len(e.TimeWindows))
	for i, w := range e.TimeWindows {
		windows[i] = repository.TimeWindowRecord{In: w.In, Out: w.Out}
	}
	return repository.EntryRecord{
		Date:          e.Date,
		FormattedDate: e.FormattedDate,
		EquipmentRefs: e.EquipmentRefs,
		TimeWindows:   windows,
		WorkDetails:   e.WorkDetails,
		TotalMinutes:  e.TotalMinutes,
		FormattedTime: e.FormattedTime,
	}
}
