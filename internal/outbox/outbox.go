package outbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
	"github.com/alexandernizov/mogakco/internal/storage"
)

type Source interface {
	GetNextOutbox(ctx context.Context) (*domain.Outbox, error)
	ConfirmOutboxSent(ctx context.Context, id int64) error
}

var (
	ErrNoConnection = errors.New("can't establish connection to kafka")
)

type Publisher struct {
	log      *slog.Logger
	producer sarama.SyncProducer
	source   Source
	interval time.Duration
}

type ConnectOptions struct {
	Brokers []string
}

func New(log *slog.Logger, producer sarama.SyncProducer, source Source, interval time.Duration) *Publisher {
	return &Publisher{log: log, producer: producer, source: source, interval: interval}
}

func NewProducer(cOpts ConnectOptions) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Backoff = 100 * time.Millisecond

	producer, err := sarama.NewSyncProducer(cOpts.Brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("can't connect to Kafka: %w: %w", ErrNoConnection, err)
	}
	return producer, nil
}

// PublishPending sends every unsent outbox record and returns how many were
// delivered. It stops at the first failure, leaving the record for the next
// round.
func (p *Publisher) PublishPending(ctx context.Context) (int, error) {
	const op = "outbox.PublishPending"
	log := p.log.With(slog.String("op", op))

	sent := 0
	for {
		if err := ctx.Err(); err != nil {
			return sent, err
		}

		record, err := p.source.GetNextOutbox(ctx)
		if errors.Is(err, storage.ErrNoOutbox) {
			return sent, nil
		}
		if err != nil {
			return sent, fmt.Errorf("%s: %w", op, err)
		}

		partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
			Topic: record.Topic,
			Key:   sarama.StringEncoder(record.Key.String()),
			Value: sarama.ByteEncoder(record.Payload),
		})
		if err != nil {
			log.Warn("failed to deliver message", slog.String("topic", record.Topic), sl.Err(err))
			return sent, fmt.Errorf("%s: %w", op, err)
		}

		if err := p.source.ConfirmOutboxSent(ctx, record.ID); err != nil {
			return sent, fmt.Errorf("%s: %w", op, err)
		}

		log.Debug("produced event to topic",
			slog.String("topic", record.Topic),
			slog.Int("partition", int(partition)),
			slog.Int64("offset", offset),
		)
		sent++
	}
}

// ServePublish polls the outbox until ctx is done.
func (p *Publisher) ServePublish(ctx context.Context) {
	const op = "outbox.ServePublish"
	log := p.log.With(slog.String("op", op))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if _, err := p.PublishPending(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("publish round failed", sl.Err(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
