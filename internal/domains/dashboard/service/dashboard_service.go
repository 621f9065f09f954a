package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"blood-donation-backend/internal/domains/appointment"
	"blood-donation-backend/internal/domains/bloodunit"
	"blood-donation-backend/internal/domains/dashboard"
	"blood-donation-backend/internal/domains/donor"
	"blood-donation-backend/pkg/cache"
)

// Config cho dashboard service
type Config struct {
	StockTarget int
	CacheTTL    time.Duration
}

type dashboardService struct {
	donors       donor.Repository
	appointments appointment.Repository
	units        bloodunit.Repository
	cache        cache.Cache
	cfg          Config
	now          func() time.Time
}

func NewDashboardService(
	donors donor.Repository,
	appointments appointment.Repository,
	units bloodunit.Repository,
	c cache.Cache,
	cfg Config,
) dashboard.Service {
	return &dashboardService{
		donors:       donors,
		appointments: appointments,
		units:        units,
		cache:        c,
		cfg:          cfg,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// GetSummary đọc cache trước, miss thì load ba collection song song rồi build summary
func (s *dashboardService) GetSummary(ctx context.Context) (*dashboard.Summary, error) {
	if s.cache != nil {
		var cached dashboard.Summary
		found, err := s.cache.Get(ctx, cache.KeyDashboardSummary, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", cache.KeyDashboardSummary).Msg("Cache read failed")
		} else if found {
			return &cached, nil
		}
	}

	var (
		donors       []*donor.Donor
		appointments []*appointment.Appointment
		details      []*bloodunit.Detail
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		donors, err = s.donors.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		appointments, err = s.appointments.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		details, err = s.units.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dashboard.NewSummaryError(err)
	}

	units := make([]*bloodunit.BloodUnit, 0, len(details))
	for _, d := range details {
		units = append(units, &d.BloodUnit)
	}

	summary := dashboard.BuildSummary(s.now(), donors, appointments, units, s.cfg.StockTarget)

	if s.cache != nil && s.cfg.CacheTTL > 0 {
		if err := s.cache.Set(ctx, cache.KeyDashboardSummary, summary, s.cfg.CacheTTL); err != nil {
			log.Warn().Err(err).Str("key", cache.KeyDashboardSummary).Msg("Cache write failed")
		}
	}

	return summary, nil
}
