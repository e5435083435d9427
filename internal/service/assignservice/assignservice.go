package assignservice

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/avelarde/recargas/internal/domain"
	"github.com/avelarde/recargas/internal/pg"
)

type Repo interface {
	PickWorker(ctx context.Context, group string) (*domain.Worker, error)
	CreateAssignment(ctx context.Context, itemType string, itemID, workerID int) (*domain.Asignacion, error)
	CloseAssignment(ctx context.Context, itemType string, itemID int) error
	FindActiveAssignment(ctx context.Context, itemType string, itemID int) (*domain.Asignacion, error)
	TouchActivity(ctx context.Context, workerID int) error
}

var ErrNoWorkerAvailable = errors.New("no worker available")

var (
	assignmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recargas_assignments_total",
		Help: "Work item assignments made, by work group.",
	}, []string{"group"})
	poolExhaustedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recargas_assignments_exhausted_total",
		Help: "Assignment attempts that found no unlocked eligible worker.",
	}, []string{"group"})
)

// Service hands work items to the least-loaded available worker. The pick
// and the assignment write share one transaction, so the worker row lock
// taken by the pick is released exactly when the assignment lands.
type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// Assign selects one eligible worker for the item and records the
// assignment. Workers locked by concurrent assignments are skipped, never
// waited on; ErrNoWorkerAvailable means the whole pool was taken or empty
// and the item simply stays unassigned for a later sweep.
func (s *Service) Assign(ctx context.Context, itemType string, itemID int, group string) (*domain.Asignacion, error) {
	var assignment *domain.Asignacion

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.CloseAssignment(ctx, itemType, itemID); err != nil {
			return err
		}

		worker, err := s.repo.PickWorker(ctx, group)
		if err != nil {
			return err
		}
		if worker == nil {
			poolExhaustedTotal.WithLabelValues(group).Inc()
			return ErrNoWorkerAvailable
		}

		assignment, err = s.repo.CreateAssignment(ctx, itemType, itemID, worker.ID)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNoWorkerAvailable) {
			zap.L().Error("failed to assign item", zap.Error(err))
		}
		return nil, err
	}

	assignmentsTotal.WithLabelValues(group).Inc()
	zap.L().Info("item assigned",
		zap.String("item_type", itemType), zap.Int("item_id", itemID), zap.Int("worker_id", assignment.WorkerID))
	return assignment, nil
}

// Complete closes the item's active assignment and stamps the worker's
// activity. Runs in the ambient transaction of the state transition that
// completed the item.
func (s *Service) Complete(ctx context.Context, itemType string, itemID, workerID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.CloseAssignment(ctx, itemType, itemID); err != nil {
			return err
		}
		return s.repo.TouchActivity(ctx, workerID)
	})
}

func (s *Service) GetActiveAssignment(ctx context.Context, itemType string, itemID int) (*domain.Asignacion, error) {
	return s.repo.FindActiveAssignment(ctx, itemType, itemID)
}
