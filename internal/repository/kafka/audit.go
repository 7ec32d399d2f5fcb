// Package kafka publishes feedback routing decisions to the compliance audit stream.
package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/reputation-engine/internal/config"
	"github.com/YusovID/reputation-engine/internal/domain"
	"github.com/YusovID/reputation-engine/pkg/logger/sl"
	"github.com/segmentio/kafka-go"
)

const (
	EventTypeRoutingDecided = "feedback.routing.decided"
	aggregateType           = "feedback_request"
	eventSource             = "reputation-engine"
)

// RoutingAudit is the payload of a routing audit event. ReviewURLs is every
// link the customer was shown, whatever the decision.
type RoutingAudit struct {
	ResponseID string            `json:"response_id"`
	BusinessID string            `json:"business_id"`
	Rating     int               `json:"rating"`
	Decision   domain.Routing    `json:"decision"`
	ReviewURLs map[string]string `json:"review_urls"`
	RatedAt    time.Time         `json:"rated_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type AuditPublisher struct {
	writer messageWriter
	topic  string
	log    *slog.Logger
}

func NewAuditPublisher(cfg config.Kafka, log *slog.Logger) *AuditPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
	}

	return newAuditPublisher(w, cfg.AuditTopic, log)
}

func newAuditPublisher(w messageWriter, topic string, log *slog.Logger) *AuditPublisher {
	return &AuditPublisher{
		writer: w,
		topic:  topic,
		log:    log,
	}
}

// PublishRouting writes one audit event keyed by the customer token, so all
// events of a feedback request land on the same partition.
func (p *AuditPublisher) PublishRouting(ctx context.Context, resp *domain.FeedbackResponse, reviewURLs map[string]string) error {
	const op = "internal.repository.kafka.PublishRouting"

	log := p.log.With(
		slog.String("op", op),
		slog.String("business_id", resp.BusinessID),
	)

	event, err := NewEvent(EventTypeRoutingDecided, resp.CustomerToken, aggregateType, eventSource, RoutingAudit{
		ResponseID: resp.ID,
		BusinessID: resp.BusinessID,
		Rating:     resp.Rating,
		Decision:   resp.Decision,
		ReviewURLs: reviewURLs,
		RatedAt:    resp.CreatedAt,
	}, resp.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: build event: %w", op, err)
	}

	data, err := event.Marshal()
	if err != nil {
		return fmt.Errorf("%s: marshal event: %w", op, err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.AggregateID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "source", Value: []byte(event.Source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Error("failed to publish routing audit", sl.Err(err))
		return fmt.Errorf("%s: publish to %s: %w", op, p.topic, err)
	}

	log.Debug("routing audit published", slog.String("event_id", event.EventID))

	return nil
}

func (p *AuditPublisher) Close() error {
	return p.writer.Close()
}

// NoopAuditPublisher is used when no brokers are configured.
type NoopAuditPublisher struct{}

func (NoopAuditPublisher) PublishRouting(context.Context, *domain.FeedbackResponse, map[string]string) error {
	return nil
}
