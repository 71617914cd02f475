package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/wakestop/internal/pkg/constants"
	appctx "github.com/piresc/wakestop/internal/pkg/context"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/models"
	natspkg "github.com/piresc/wakestop/internal/pkg/nats"
	nrpkg "github.com/piresc/wakestop/internal/pkg/newrelic"
	"github.com/piresc/wakestop/services/tracker"
)

// LocationHandler consumes the geolocation feed from NATS
type LocationHandler struct {
	tripUC     tracker.TripUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
	nrApp      *newrelic.Application
}

// NewLocationHandler creates a new location feed handler
func NewLocationHandler(
	tripUC tracker.TripUC,
	client *natspkg.Client,
	nrApp *newrelic.Application,
) *LocationHandler {
	return &LocationHandler{
		tripUC:     tripUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
		nrApp:      nrApp,
	}
}

// InitNATSConsumers subscribes every tracker instance to the whole feed. Trips live in
// the memory of the instance that started them, so samples are fanned out rather than
// load balanced and instances without an active trip for the user only record the
// last known position.
func (h *LocationHandler) InitNATSConsumers() error {
	consumers := []struct {
		subject string
		handler nats.MsgHandler
	}{
		{constants.SubjectLocationSample, h.onSample},
		{constants.SubjectLocationError, h.onError},
	}

	for _, consumer := range consumers {
		sub, err := h.natsClient.Subscribe(consumer.subject, consumer.handler)
		if err != nil {
			h.Close()
			return fmt.Errorf("failed to subscribe to %s: %w", consumer.subject, err)
		}
		h.subs = append(h.subs, sub)
		logger.Info("Subscribed to location feed",
			logger.String("subject", consumer.subject))
	}
	return nil
}

// Close unsubscribes from every feed subject
func (h *LocationHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe",
				logger.String("subject", sub.Subject),
				logger.Err(err))
		}
	}
	h.subs = h.subs[:0]
}

func (h *LocationHandler) onSample(msg *nats.Msg) {
	ctx, txn := nrpkg.StartBackgroundTransaction(h.nrApp, context.Background(), "NATS.Tracker.HandlePositionSample")
	if txn != nil {
		defer txn.End()
	}
	nrpkg.AddTransactionAttribute(txn, "message.subject", msg.Subject)
	nrpkg.AddTransactionAttribute(txn, "message.size", len(msg.Data))

	if err := h.handleSample(ctx, msg.Data); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.WarnCtx(ctx, "Dropped position sample", logger.Err(err))
	}
}

func (h *LocationHandler) onError(msg *nats.Msg) {
	ctx, txn := nrpkg.StartBackgroundTransaction(h.nrApp, context.Background(), "NATS.Tracker.HandlePositionError")
	if txn != nil {
		defer txn.End()
	}

	if err := h.handlePositionError(ctx, msg.Data); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.WarnCtx(ctx, "Dropped position error", logger.Err(err))
	}
}

func (h *LocationHandler) handleSample(ctx context.Context, data []byte) error {
	var sample models.PositionSample
	if err := json.Unmarshal(data, &sample); err != nil {
		return fmt.Errorf("failed to unmarshal position sample: %w", err)
	}
	if sample.Timestamp.IsZero() {
		sample.Timestamp = models.Now()
	}
	ctx = appctx.WithUserID(ctx, sample.UserID)

	if err := h.tripUC.HandlePosition(ctx, sample); err != nil {
		return fmt.Errorf("failed to apply position sample: %w", err)
	}
	return nil
}

func (h *LocationHandler) handlePositionError(ctx context.Context, data []byte) error {
	var perr models.PositionError
	if err := json.Unmarshal(data, &perr); err != nil {
		return fmt.Errorf("failed to unmarshal position error: %w", err)
	}
	ctx = appctx.WithUserID(ctx, perr.UserID)

	return h.tripUC.HandlePositionError(ctx, perr)
}
