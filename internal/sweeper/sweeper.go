package sweeper

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avelarde/recargas/internal/config"
	"github.com/avelarde/recargas/internal/domain"
)

const sweepLimit = 100

type Workflow interface {
	FindUnassigned(ctx context.Context, limit int) ([]domain.SolicitudRecarga, error)
	AssignPending(ctx context.Context, solicitud *domain.SolicitudRecarga) error
}

var sweeping sync.Map

// Service periodically retries assignment for pendiente requests that were
// left without a verifier, e.g. when the pool was exhausted at creation
// time.
type Service struct {
	workflow Workflow
	interval time.Duration
}

func New(cfg *config.Config, workflow Workflow) *Service {
	return &Service{
		workflow: workflow,
		interval: cfg.SweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("assignment sweeper started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	solicitudes, err := s.workflow.FindUnassigned(ctx, sweepLimit)
	if err != nil {
		zap.L().Error("failed to fetch unassigned solicitudes", zap.Error(err))
		return
	}

	var g errgroup.Group
	g.SetLimit(10)
	for _, solicitud := range solicitudes {
		solicitud := solicitud

		if _, loaded := sweeping.LoadOrStore(solicitud.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			defer sweeping.Delete(solicitud.ID)
			if err := s.workflow.AssignPending(ctx, &solicitud); err != nil {
				zap.L().Warn("sweep could not assign solicitud",
					zap.Int("solicitud_id", solicitud.ID), zap.Error(err))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error sweeping solicitudes", zap.Error(err))
	}
}
