package gateway

import (
	"context"

	"github.com/piresc/wakestop/internal/pkg/constants"
	"github.com/piresc/wakestop/internal/pkg/models"
	nsqpkg "github.com/piresc/wakestop/internal/pkg/nsq"
)

// AuditGW publishes call events to NSQ
type AuditGW struct {
	producer *nsqpkg.Producer
	topic    string
}

// NewAuditGW creates a call audit gateway; an empty topic falls back to call_events
func NewAuditGW(producer *nsqpkg.Producer, topic string) *AuditGW {
	if topic == "" {
		topic = constants.TopicCallEvents
	}
	return &AuditGW{
		producer: producer,
		topic:    topic,
	}
}

// PublishCallEvent publishes event to the audit topic
func (g *AuditGW) PublishCallEvent(ctx context.Context, event models.CallEvent) error {
	return g.producer.Publish(g.topic, event)
}
