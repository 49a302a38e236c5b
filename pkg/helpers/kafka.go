package helpers

import (
	"context"
	"errors"
	"time"

	json "github.com/goccy/go-json"
	sdk "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Keyed is implemented by messages that should land on a stable partition.
type Keyed interface {
	MessageKey() string
}

// KafkaPublisher writes JSON messages to a single topic.
type KafkaPublisher struct {
	writer *sdk.Writer
	Topic  string
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &sdk.Writer{
			Addr:                   sdk.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &sdk.Hash{},
			RequiredAcks:           sdk.RequireAll,
			AllowAutoTopicCreation: true,
		},
		Topic: topic,
	}
}

func (p *KafkaPublisher) Close() {
	if p == nil || p.writer == nil {
		return
	}
	_ = p.writer.Close()
}

// PublishJSON writes body as one message. Keyed bodies keep their per-key ordering.
func (p *KafkaPublisher) PublishJSON(ctx context.Context, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	msg := sdk.Message{Value: b, Time: time.Now().UTC()}
	if k, ok := body.(Keyed); ok {
		msg.Key = []byte(k.MessageKey())
	}
	return p.writer.WriteMessages(ctx, msg)
}

// ConsumeKafka reads topic as member of groupID until ctx is done.
// A message is committed once handled, dropped, or after maxAttempts failures.
func ConsumeKafka(ctx context.Context, brokers []string, topic, groupID string, handle MessageHandler, logger *logrus.Logger) error {
	reader := sdk.NewReader(sdk.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
	defer func() { _ = reader.Close() }()

	const maxAttempts = 3
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		for attempt := 1; ; attempt++ {
			err = handle(ctx, msg.Value)
			if err == nil || errors.Is(err, ErrDropMessage) || attempt == maxAttempts || ctx.Err() != nil {
				break
			}
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}
		if err != nil {
			logger.WithError(err).WithFields(logrus.Fields{"topic": topic, "offset": msg.Offset}).Warn("giving up on message")
		}

		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			return err
		}
	}
}
