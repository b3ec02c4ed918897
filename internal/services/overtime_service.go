package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"fleet-overtime/internal/domain"
	"fleet-overtime/internal/repository"
	"fleet-overtime/internal/validation"
)

// sweepTimeout bounds the detached per-request sweep, which runs outside
// any request context.
const sweepTimeout = 30 * time.Second

// overtimeServiceImpl implements the OvertimeService interface.
type overtimeServiceImpl struct {
	store     repository.Store
	mapper    *domain.Mapper
	builder   *EntryBuilder
	validator *validation.OvertimeValidator
	sweeper   *Sweeper
	logger    *logrus.Logger

	// sweepSampleRate is the probability that a successful LogOvertime
	// triggers a detached sweep of that mechanic. 0 disables the hook.
	sweepSampleRate float64
	sampler         func() float64
}

// NewOvertimeService creates the aggregate-root service.
func NewOvertimeService(store repository.Store, sweeper *Sweeper, logger *logrus.Logger, sweepSampleRate float64) OvertimeService {
	return &overtimeServiceImpl{
		store:           store,
		mapper:          domain.NewMapper(),
		builder:         NewEntryBuilder(),
		validator:       validation.NewOvertimeValidator(),
		sweeper:         sweeper,
		logger:          logger,
		sweepSampleRate: sweepSampleRate,
		sampler:         rand.Float64,
	}
}

// CreateMechanic onboards a mechanic with an empty bucket collection.
func (s *overtimeServiceImpl) CreateMechanic(ctx context.Context, name, code string) (*domain.Mechanic, error) {
	if err := s.validator.ValidateMechanicName(name); err != nil {
		return nil, err
	}

	mech := domain.NewMechanic(uuid.NewString(), name, code)
	rec := s.mapper.ToRecord(mech)
	if err := s.store.CreateMechanic(ctx, &rec); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"mechanic_id": mech.ID,
		"code":        code,
	}).Info("Mechanic onboarded")

	return &mech, nil
}

// GetMechanic loads one mechanic aggregate.
func (s *overtimeServiceImpl) GetMechanic(ctx context.Context, id string) (*domain.Mechanic, error) {
	if err := s.validator.ValidateMechanicID(id); err != nil {
		return nil, err
	}

	rec, err := s.store.GetMechanic(ctx, id)
	if err != nil {
		return nil, err
	}
	mech := s.mapper.FromRecord(*rec)
	return &mech, nil
}

// ListMechanics loads every mechanic aggregate.
func (s *overtimeServiceImpl) ListMechanics(ctx context.Context) ([]*domain.Mechanic, error) {
	recs, err := s.store.ListMechanics(ctx)
	if err != nil {
		return nil, err
	}

	mechs := make([]*domain.Mechanic, 0, len(recs))
	for _, rec := range recs {
		mech := s.mapper.FromRecord(*rec)
		mechs = append(mechs, &mech)
	}
	return mechs, nil
}

// DeleteMechanic removes a mechanic; buckets and entries cascade with the
// document.
func (s *overtimeServiceImpl) DeleteMechanic(ctx context.Context, id string) error {
	if err := s.validator.ValidateMechanicID(id); err != nil {
		return err
	}
	if err := s.store.DeleteMechanic(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("mechanic_id", id).Info("Mechanic deleted")
	return nil
}

// LogOvertime builds the entry, folds it into the right monthly bucket,
// recomputes the rollup and writes the aggregate back whole. The returned
// bucket is a copy of the committed state; if the save fails, the merged
// in-memory result is discarded and nothing is reported as committed.
func (s *overtimeServiceImpl) LogOvertime(ctx context.Context, mechanicID string, input OvertimeInput) (*domain.MonthlyOvertimeBucket, error) {
	if err := s.validator.ValidateMechanicID(mechanicID); err != nil {
		return nil, err
	}

	entry, key, err := s.builder.Build(input)
	if err != nil {
		return nil, err
	}

	rec, err := s.store.GetMechanic(ctx, mechanicID)
	if err != nil {
		return nil, err
	}

	mech := s.mapper.FromRecord(*rec)
	affected := mech.ApplyEntry(key, entry)

	out := s.mapper.ToRecord(mech)
	out.CreatedAt = rec.CreatedAt
	if err := s.store.SaveMechanic(ctx, &out); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"mechanic_id":   mechanicID,
		"month":         affected.MonthKey.String(),
		"entry_date":    entry.FormattedDate,
		"entry_minutes": entry.TotalMinutes,
		"bucket_total":  affected.TotalMinutes,
	}).Info("Overtime logged")

	s.maybeSweepAsync(mechanicID)

	committed := *affected
	committed.Entries = append([]domain.OvertimeEntry{}, affected.Entries...)
	return &committed, nil
}

// GetMonthlyOvertime returns the single bucket for month/year, or all
// buckets when no month is given. A month with no bucket yields nil with no
// error.
func (s *overtimeServiceImpl) GetMonthlyOvertime(ctx context.Context, mechanicID string, month, year int) ([]domain.MonthlyOvertimeBucket, error) {
	if err := s.validator.ValidateMechanicID(mechanicID); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateMonthYear(month, year); err != nil {
		return nil, err
	}

	rec, err := s.store.GetMechanic(ctx, mechanicID)
	if err != nil {
		return nil, err
	}
	mech := s.mapper.FromRecord(*rec)

	if month == 0 && year == 0 {
		return mech.Buckets, nil
	}

	key := domain.MonthKey{Year: year, Month: time.Month(month)}
	if bucket, ok := mech.FindBucket(key); ok {
		return []domain.MonthlyOvertimeBucket{*bucket}, nil
	}
	return nil, nil
}

// maybeSweepAsync fires the sampled retention sweep after a successful log.
// It is detached from the request: its own context, its own error boundary,
// and no effect on the logging result.
func (s *overtimeServiceImpl) maybeSweepAsync(mechanicID string) {
	if s.sweepSampleRate <= 0 || s.sampler() >= s.sweepSampleRate {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		if _, err := s.sweeper.SweepMechanic(ctx, mechanicID); err != nil {
			s.logger.WithError(err).WithField("mechanic_id", mechanicID).
				Error("Sampled retention sweep failed")
		}
	}()
}
