package sweeper

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avelarde/recargas/internal/config"
	"github.com/avelarde/recargas/internal/domain"
)

type fakeWorkflow struct {
	mu         sync.Mutex
	unassigned []domain.SolicitudRecarga
	findErr    error
	assignErr  error
	assigned   []int
}

func (f *fakeWorkflow) FindUnassigned(_ context.Context, limit int) ([]domain.SolicitudRecarga, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	if len(f.unassigned) > limit {
		return f.unassigned[:limit], nil
	}
	return f.unassigned, nil
}

func (f *fakeWorkflow) AssignPending(_ context.Context, solicitud *domain.SolicitudRecarga) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.assignErr != nil {
		return f.assignErr
	}
	f.assigned = append(f.assigned, solicitud.ID)
	return nil
}

func TestService_Sweep(t *testing.T) {
	t.Run("Assigns every unassigned pendiente", func(t *testing.T) {
		workflow := &fakeWorkflow{
			unassigned: []domain.SolicitudRecarga{{ID: 1}, {ID: 2}, {ID: 3}},
		}
		service := New(&config.Config{SweepInterval: time.Minute}, workflow)

		service.sweep(context.Background())

		workflow.mu.Lock()
		defer workflow.mu.Unlock()
		assert.ElementsMatch(t, []int{1, 2, 3}, workflow.assigned)
	})

	t.Run("Fetch failure skips the cycle", func(t *testing.T) {
		workflow := &fakeWorkflow{findErr: errors.New("database error")}
		service := New(&config.Config{SweepInterval: time.Minute}, workflow)

		service.sweep(context.Background())

		workflow.mu.Lock()
		defer workflow.mu.Unlock()
		assert.Empty(t, workflow.assigned)
	})

	t.Run("Assignment failures do not stop the sweep", func(t *testing.T) {
		workflow := &fakeWorkflow{
			unassigned: []domain.SolicitudRecarga{{ID: 1}, {ID: 2}},
			assignErr:  errors.New("no worker available"),
		}
		service := New(&config.Config{SweepInterval: time.Minute}, workflow)

		assert.NotPanics(t, func() {
			service.sweep(context.Background())
		})
	})

	t.Run("Item already being swept is skipped", func(t *testing.T) {
		workflow := &fakeWorkflow{
			unassigned: []domain.SolicitudRecarga{{ID: 42}},
		}
		service := New(&config.Config{SweepInterval: time.Minute}, workflow)

		sweeping.Store(42, struct{}{})
		defer sweeping.Delete(42)

		service.sweep(context.Background())

		workflow.mu.Lock()
		defer workflow.mu.Unlock()
		assert.Empty(t, workflow.assigned)
	})
}

func TestService_Run(t *testing.T) {
	workflow := &fakeWorkflow{
		unassigned: []domain.SolicitudRecarga{{ID: 7}},
	}
	service := New(&config.Config{SweepInterval: 10 * time.Millisecond}, workflow)

	ctx, cancel := context.WithCancel(context.Background())
	go service.run(ctx)

	assert.Eventually(t, func() bool {
		workflow.mu.Lock()
		defer workflow.mu.Unlock()
		return len(workflow.assigned) > 0
	}, time.Second, 5*time.Millisecond)

	cancel()
}
