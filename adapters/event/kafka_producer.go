package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/dinakaran-k/portfolio-api/internal/application/service"
	"github.com/dinakaran-k/portfolio-api/internal/config"
)

const (
	TopicViewEvents    = "view.events"
	TopicContactEvents = "contact.events"
)

type KafkaEventPublisher struct {
	viewWriter    *kafka.Writer
	contactWriter *kafka.Writer
}

func NewKafkaEventPublisher(cfg config.Config) (*KafkaEventPublisher, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	viewWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicViewEvents,
		Balancer: &kafka.LeastBytes{},
	}

	contactWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContactEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaEventPublisher{
		viewWriter:    viewWriter,
		contactWriter: contactWriter,
	}, nil
}

func (p *KafkaEventPublisher) PublishView(ctx context.Context, event service.ViewEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal view event failed: %w", err)
	}
	return p.viewWriter.WriteMessages(ctx, kafka.Message{Value: value})
}

func (p *KafkaEventPublisher) PublishContact(ctx context.Context, event service.ContactEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal contact event failed: %w", err)
	}
	return p.contactWriter.WriteMessages(ctx, kafka.Message{Value: value})
}

func (p *KafkaEventPublisher) Close() {
	if p.viewWriter != nil {
		p.viewWriter.Close()
	}
	if p.contactWriter != nil {
		p.contactWriter.Close()
	}
}
