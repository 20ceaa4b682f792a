package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/diwise/postharvest/pkg/postharvest/types"
)

//go:generate moq -rm -out notifier_mock.go . Notifier

type Notifier interface {
	Start() error
	Stop() error

	CommodityCreated(ctx context.Context, c types.Commodity)
	CommodityUpdated(ctx context.Context, c types.Commodity)
	CommodityRemoved(ctx context.Context, commodityID string)
}

const (
	CommodityCreated string = "CommodityCreated"
	CommodityUpdated string = "CommodityUpdated"
	CommodityRemoved string = "CommodityRemoved"
)

// Notification is the body posted to the configured endpoint
type Notification struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	CommodityID string           `json:"commodityId"`
	Commodity   *types.Commodity `json:"commodity,omitempty"`
	NotifiedAt  string           `json:"notifiedAt"`
}

var tracer = otel.Tracer("postharvest/notifier")

type action func()

type notifier struct {
	endpoint string
	client   http.Client

	// mu guards started and the queue. Senders hold the read lock so the
	// queue is never closed under them.
	mu      sync.RWMutex
	started bool
	queue   chan action
	done    chan struct{}
}

func NewNotifier(ctx context.Context, endpoint string) (Notifier, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("a notification endpoint is required")
	}

	return &notifier{
		endpoint: endpoint,
		client: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   10 * time.Second,
		},
	}, nil
}

func (n *notifier) Start() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.started {
		return fmt.Errorf("already started")
	}

	n.started = true
	n.queue = make(chan action, 32)
	n.done = make(chan struct{})

	go n.run(n.queue, n.done)

	return nil
}

// Stop blocks until every queued notification has been sent. Notifications
// raised after Stop are dropped.
func (n *notifier) Stop() error {
	n.mu.Lock()

	if !n.started {
		n.mu.Unlock()
		return nil
	}

	n.started = false
	close(n.queue)
	done := n.done

	n.mu.Unlock()

	<-done
	return nil
}

func (n *notifier) CommodityCreated(ctx context.Context, c types.Commodity) {
	n.enqueue(ctx, CommodityCreated, c.ID, &c)
}

func (n *notifier) CommodityUpdated(ctx context.Context, c types.Commodity) {
	n.enqueue(ctx, CommodityUpdated, c.ID, &c)
}

func (n *notifier) CommodityRemoved(ctx context.Context, commodityID string) {
	n.enqueue(ctx, CommodityRemoved, commodityID, nil)
}

func (n *notifier) enqueue(ctx context.Context, notificationType, commodityID string, c *types.Commodity) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if !n.started {
		return
	}

	var err error

	logger := logging.GetFromContext(ctx)

	ctx, span := tracer.Start(
		tracing.ExtractHeaders(context.Background(), tracing.InjectHeaders(ctx)),
		"post",
	)

	notification := Notification{
		ID:          uuid.NewString(),
		Type:        notificationType,
		CommodityID: commodityID,
		Commodity:   c,
		NotifiedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	}

	n.queue <- func() {
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		err = n.post(ctx, notification)
		if err != nil {
			logger.Error("failed to post notification", "type", notificationType, "commodity_id", commodityID, "err", err.Error())
		}
	}
}

func (n *notifier) post(ctx context.Context, notification Notification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshalling error (%w)", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("unable to create new request (%w)", err)
	}

	req.Header.Add("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request (%w)", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notification endpoint responded with status code %d", resp.StatusCode)
	}

	return nil
}

func (n *notifier) run(queue <-chan action, done chan<- struct{}) {
	defer close(done)

	for action := range queue {
		action()
	}
}
