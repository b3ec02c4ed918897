package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"fleet-overtime/internal/domain"
	"fleet-overtime/internal/errors"
	"fleet-overtime/internal/repository"
)

// retentionMonths is the rolling window: the current month and the previous
// month stay; anything strictly older than (now - 2 months) goes.
const retentionMonths = 2

// Sweeper removes monthly buckets that fell out of the retention window.
// It is best-effort background maintenance: per-mechanic failures are
// logged and never abort the rest of a sweep.
type Sweeper struct {
	store  repository.Store
	mapper *domain.Mapper
	clock  Clock
	logger *logrus.Logger
}

// NewSweeper creates a retention sweeper.
func NewSweeper(store repository.Store, clock Clock, logger *logrus.Logger) *Sweeper {
	return &Sweeper{
		store:  store,
		mapper: domain.NewMapper(),
		clock:  clock,
		logger: logger,
	}
}

// CutoffMonthKey returns the oldest month still retained as of now.
func CutoffMonthKey(now time.Time) domain.MonthKey {
	return domain.MonthKeyFor(now).AddMonths(-retentionMonths)
}

// SweepMechanic removes expired buckets for one mechanic and persists the
// result. Returns the number of buckets removed; skips the write entirely
// when nothing expired.
func (s *Sweeper) SweepMechanic(ctx context.Context, mechanicID string) (int, error) {
	rec, err := s.store.GetMechanic(ctx, mechanicID)
	if err != nil {
		return 0, err
	}

	mech := s.mapper.FromRecord(*rec)
	removed := mech.RemoveBucketsBefore(CutoffMonthKey(s.clock.Now()))
	if removed == 0 {
		return 0, nil
	}

	out := s.mapper.ToRecord(mech)
	out.CreatedAt = rec.CreatedAt
	if err := s.store.SaveMechanic(ctx, &out); err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"mechanic_id":     mechanicID,
		"buckets_removed": removed,
	}).Info("Expired overtime buckets removed")

	return removed, nil
}

// SweepAll sweeps every mechanic. One mechanic's failure is logged as a
// sweep error and the pass continues; the aggregate count of removed
// buckets is returned. The error result reflects only a failure to list
// mechanics at all.
func (s *Sweeper) SweepAll(ctx context.Context) (int, error) {
	recs, err := s.store.ListMechanics(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, rec := range recs {
		removed, err := s.SweepMechanic(ctx, rec.ID)
		if err != nil {
			sweepErr := errors.NewSweepError(rec.ID, err)
			s.logger.WithError(sweepErr).WithField("mechanic_id", rec.ID).
				Error("Retention sweep failed for mechanic")
			continue
		}
		total += removed
	}

	s.logger.WithFields(logrus.Fields{
		"mechanics":       len(recs),
		"buckets_removed": total,
	}).Debug("Retention sweep pass finished")

	return total, nil
}

// RunScheduled sweeps all mechanics on the given interval until ctx is
// cancelled. Errors are already absorbed inside SweepAll; a listing failure
// is logged and the loop keeps going.
func (s *Sweeper) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepAll(ctx); err != nil {
				s.logger.WithError(err).Error("Scheduled retention sweep failed")
			}
		}
	}
}
