package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool_AddTask(t *testing.T) {
	wp := NewWorkerPool(2)
	defer wp.Close()

	var wg sync.WaitGroup
	var mu sync.Mutex
	done := 0

	for i := 0; i < 5; i++ {
		wg.Add(1)
		err := wp.AddTask(context.Background(), func() error {
			defer wg.Done()
			mu.Lock()
			done++
			mu.Unlock()
			return nil
		})
		assert.NoError(t, err)
	}

	wg.Wait()
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 5, done)
}

func TestWorkerPool_AddTaskCanceledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	// Saturate the pool so the add has to wait on the context.
	block := make(chan struct{})
	_ = wp.AddTask(context.Background(), func() error {
		<-block
		return nil
	})
	_ = wp.AddTask(context.Background(), func() error { return nil })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(block)
}

func TestWorkerPool_TaskErrorDoesNotStopWorkers(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	assert.NoError(t, wp.AddTask(context.Background(), func() error {
		defer wg.Done()
		return errors.New("delivery failed")
	}))
	assert.NoError(t, wp.AddTask(context.Background(), func() error {
		defer wg.Done()
		return nil
	}))
	wg.Wait()
}

func TestWorkerPool_CloseIsIdempotent(t *testing.T) {
	wp := NewWorkerPool(1)
	wp.Close()
	assert.NotPanics(t, wp.Close)
}
