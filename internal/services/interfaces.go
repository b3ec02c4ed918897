package services

import (
	"context"
	"time"

	"fleet-overtime/internal/domain"
	"fleet-overtime/internal/validation"
)

// OvertimeInput is one raw overtime submission for a mechanic: a calendar
// day, one or more in/out windows, free-text work details and optional
// equipment references.
type OvertimeInput struct {
	Date          time.Time
	TimeWindows   []validation.WindowInput
	WorkDetails   []string
	EquipmentRefs []string
}

// OvertimeService is the aggregate-root surface: every mutation of a
// mechanic's bucket collection goes through it.
type OvertimeService interface {
	// Mechanic lifecycle
	CreateMechanic(ctx context.Context, name, code string) (*domain.Mechanic, error)
	GetMechanic(ctx context.Context, id string) (*domain.Mechanic, error)
	ListMechanics(ctx context.Context) ([]*domain.Mechanic, error)
	DeleteMechanic(ctx context.Context, id string) error

	// Overtime operations
	//
	// LogOvertime merges the submission into the mechanic's bucket for the
	// entry's month, persists the whole aggregate and returns a copy of the
	// affected bucket as committed. Repeated windows accumulate additively:
	// there is no idempotency key, so a client retry double-counts.
	LogOvertime(ctx context.Context, mechanicID string, input OvertimeInput) (*domain.MonthlyOvertimeBucket, error)

	// GetMonthlyOvertime returns the single bucket for month/year when both
	// are given (nil, nil when that month has no bucket), or every bucket
	// when both are zero.
	GetMonthlyOvertime(ctx context.Context, mechanicID string, month, year int) ([]domain.MonthlyOvertimeBucket, error)
}

// RetentionSweeper enforces the rolling retention window over monthly
// buckets.
type RetentionSweeper interface {
	SweepMechanic(ctx context.Context, mechanicID string) (int, error)
	SweepAll(ctx context.Context) (int, error)
}
