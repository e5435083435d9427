package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/avelarde/recargas/internal/config"
)

// Event is what the notification collaborator receives on every recharge
// state transition. Delivery format beyond this envelope is its concern.
type Event struct {
	Event  string `json:"event"`
	UserID int    `json:"user_id"`
	ItemID int    `json:"item_id"`
}

type PostClient interface {
	Post(url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error)
}

// Notifier ships transition events to the notification collaborator in the
// background. Publishing never blocks a state transition and delivery
// failures are logged, not surfaced.
type Notifier struct {
	url        string
	client     PostClient
	workerPool WorkerPoolI
}

func New(cfg *config.Config, client PostClient) *Notifier {
	return &Notifier{
		url:        cfg.NotifyAddress + "/api/events",
		client:     client,
		workerPool: NewWorkerPool(4),
	}
}

func (n *Notifier) Publish(ctx context.Context, event string, userID, itemID int) {
	body, err := json.Marshal(Event{Event: event, UserID: userID, ItemID: itemID})
	if err != nil {
		zap.L().Error("can't marshal event", zap.Error(err))
		return
	}

	err = n.workerPool.AddTask(ctx, func() error {
		statusCode, _, err := n.client.Post(n.url, nil, body)
		if err != nil {
			return fmt.Errorf("failed to deliver event %s: %w", event, err)
		}
		if statusCode >= http.StatusBadRequest {
			return fmt.Errorf("notification collaborator replied %d for event %s", statusCode, event)
		}
		return nil
	})
	if err != nil {
		zap.L().Warn("event dropped", zap.String("event", event), zap.Error(err))
	}
}

func (n *Notifier) Close() {
	n.workerPool.Close()
}
