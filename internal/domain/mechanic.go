package domain

// Mechanic is the aggregate root: it exclusively owns its monthly buckets,
// and buckets exclusively own their entries. All mutation goes through the
// methods here so the one-bucket-per-month and one-entry-per-day invariants
// hold.
type Mechanic struct {
	ID      string
	Name    string
	Code    string
	Buckets []MonthlyOvertimeBucket
}

// NewMechanic creates a mechanic with no overtime recorded yet.
func NewMechanic(id, name, code string) Mechanic {
	return Mechanic{ID: id, Name: name, Code: code}
}

// IsValid checks that the mechanic carries the minimum identity fields.
func (m Mechanic) IsValid() bool {
	return m.ID != "" && m.Name != ""
}

// FindBucket returns the bucket for the given month, or false. Callers get
// an explicit miss instead of a sentinel index so the create/append/merge
// branch is exhaustive.
func (m *Mechanic) FindBucket(key MonthKey) (*MonthlyOvertimeBucket, bool) {
	for i := range m.Buckets {
		if m.Buckets[i].MonthKey == key {
			return &m.Buckets[i], true
		}
	}
	return nil, false
}

// ApplyEntry routes a built entry into the right monthly bucket, creating
// the bucket lazily on the first entry of a month. Bucket order is insertion
// order; rendering sorts on demand. Returns the affected bucket.
func (m *Mechanic) ApplyEntry(key MonthKey, entry OvertimeEntry) *MonthlyOvertimeBucket {
	if bucket, ok := m.FindBucket(key); ok {
		bucket.Apply(entry)
		return bucket
	}
	m.Buckets = append(m.Buckets, NewMonthlyOvertimeBucket(key, entry))
	return &m.Buckets[len(m.Buckets)-1]
}

// RemoveBucketsBefore drops every bucket whose month is strictly older than
// the cutoff, returning how many were removed. Used by the retention sweep.
func (m *Mechanic) RemoveBucketsBefore(cutoff MonthKey) int {
	kept := m.Buckets[:0]
	removed := 0
	for _, b := range m.Buckets {
		if b.MonthKey.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	m.Buckets = kept
	return removed
}
