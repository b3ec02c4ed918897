package repository

import (
	"context"
	"time"
)

// TimeWindowRecord is one stored in/out pair. Out is absent while the
// window is open-ended.
type TimeWindowRecord struct {
	In  time.Time  `json:"in"`
	Out *time.Time `json:"out,omitempty"`
}

// EntryRecord is the stored shape of one calendar day's overtime.
type EntryRecord struct {
	Date          time.Time          `json:"date"`
	FormattedDate string             `json:"formattedDate"`
	EquipmentRefs []string           `json:"equipmentRefs"`
	TimeWindows   []TimeWindowRecord `json:"timeWindows"`
	WorkDetails   []string           `json:"workDetails"`
	TotalMinutes  int                `json:"totalMinutes"`
	FormattedTime string             `json:"formattedTime"`
}

// BucketRecord is the stored shape of one monthly bucket. MonthKey is the
// rendered "Month Year" string; ordering logic parses it back before
// comparing.
type BucketRecord struct {
	MonthKey       string        `json:"monthKey"`
	Entries        []EntryRecord `json:"entries"`
	TotalMinutes   int           `json:"totalMinutes"`
	FormattedTotal string        `json:"formattedTotal"`
}

// MechanicRecord is the mechanic document as persisted: identity plus the
// full bucket array. It is loaded and written back whole.
type MechanicRecord struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Code      string         `json:"code"`
	Buckets   []BucketRecord `json:"buckets"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Store is the document store consumed by the service layer. Writes replace
// the whole mechanic document; there is no optimistic-concurrency check, so
// concurrent writers to one mechanic are last-write-wins. Acceptable for
// the intended scale, and documented rather than fixed.
type Store interface {
	CreateMechanic(ctx context.Context, rec *MechanicRecord) error
	GetMechanic(ctx context.Context, id string) (*MechanicRecord, error)
	ListMechanics(ctx context.Context) ([]*MechanicRecord, error)
	SaveMechanic(ctx context.Context, rec *MechanicRecord) error
	DeleteMechanic(ctx context.Context, id string) error
	Close() error
}
