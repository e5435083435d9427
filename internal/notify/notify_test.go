package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelarde/recargas/internal/config"
)

type fakePostClient struct {
	mu         sync.Mutex
	calls      []fakeCall
	statusCode int
	err        error
	delivered  chan struct{}
}

type fakeCall struct {
	url  string
	body []byte
}

func newFakePostClient(statusCode int, err error) *fakePostClient {
	return &fakePostClient{
		statusCode: statusCode,
		err:        err,
		delivered:  make(chan struct{}, 16),
	}
}

func (f *fakePostClient) Post(url string, _ http.Header, body []byte) (int, []byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{url: url, body: body})
	f.mu.Unlock()
	f.delivered <- struct{}{}
	return f.statusCode, nil, f.err
}

func (f *fakePostClient) wait(t *testing.T) {
	t.Helper()
	select {
	case <-f.delivered:
	case <-time.After(time.Second):
		t.Fatal("event was never delivered")
	}
}

func TestNotifier_Publish(t *testing.T) {
	client := newFakePostClient(http.StatusOK, nil)
	notifier := New(&config.Config{NotifyAddress: "http://localhost:8081"}, client)
	defer notifier.Close()

	notifier.Publish(context.Background(), "recarga.pendiente", 10, 1)
	client.wait(t)

	client.mu.Lock()
	defer client.mu.Unlock()
	require.Len(t, client.calls, 1)
	assert.Equal(t, "http://localhost:8081/api/events", client.calls[0].url)

	var event Event
	require.NoError(t, json.Unmarshal(client.calls[0].body, &event))
	assert.Equal(t, Event{Event: "recarga.pendiente", UserID: 10, ItemID: 1}, event)
}

func TestNotifier_PublishDeliveryFailureIsSwallowed(t *testing.T) {
	client := newFakePostClient(0, errors.New("connection refused"))
	notifier := New(&config.Config{NotifyAddress: "http://localhost:8081"}, client)
	defer notifier.Close()

	assert.NotPanics(t, func() {
		notifier.Publish(context.Background(), "recarga.verificado", 10, 1)
	})
	client.wait(t)
}

func TestNotifier_PublishBadStatusIsSwallowed(t *testing.T) {
	client := newFakePostClient(http.StatusInternalServerError, nil)
	notifier := New(&config.Config{NotifyAddress: "http://localhost:8081"}, client)
	defer notifier.Close()

	assert.NotPanics(t, func() {
		notifier.Publish(context.Background(), "recarga.rechazado", 10, 1)
	})
	client.wait(t)
}
