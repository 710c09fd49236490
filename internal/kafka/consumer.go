package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"field-sales/internal/logger/sl"
	"field-sales/internal/metric"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type MessageProcessor func(context.Context, []byte) error

// SubmissionConsumer читает заявки из топика приема.
type SubmissionConsumer struct {
	consumer sarama.Consumer
	topic    string
	// сервис, который умеет валидировать и сохранять
	processor MessageProcessor
}

func NewSubmissionConsumer(broker []string, topic string, processor MessageProcessor) (*SubmissionConsumer, error) {
	conf := sarama.NewConfig()
	// Указываем, откуда будет читать наш консьюмер
	conf.Consumer.Offsets.Initial = sarama.OffsetNewest

	consumer, err := sarama.NewConsumer(broker, conf)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании консьюмера: %w", err)
	}
	return newSubmissionConsumer(consumer, topic, processor), nil
}

func newSubmissionConsumer(consumer sarama.Consumer, topic string, processor MessageProcessor) *SubmissionConsumer {
	return &SubmissionConsumer{consumer: consumer, topic: topic, processor: processor}
}

// Start читает партицию 0 до отмены контекста. Ошибка обработки не останавливает чтение.
func (sc *SubmissionConsumer) Start(ctx context.Context) error {
	partitionConsumer, err := sc.consumer.ConsumePartition(sc.topic, 0, sarama.OffsetNewest)
	if err != nil {
		return fmt.Errorf("не удалось подключиться к партиции %s/0: %w", sc.topic, err)
	}
	defer func() {
		if err := partitionConsumer.Close(); err != nil {
			slog.Warn("ошибка при закрытии partitionConsumer", sl.Err(err))
		}
	}()

	for {
		select {
		case <-ctx.Done(): // graceful shutdown
			slog.Info("Kafka consumer stopping...")
			return ctx.Err()
		case message, ok := <-partitionConsumer.Messages():
			if !ok {
				return nil
			}
			sc.handle(ctx, message)
		}
	}
}

func (sc *SubmissionConsumer) handle(ctx context.Context, message *sarama.ConsumerMessage) {
	carrier := propagation.MapCarrier{}
	for _, h := range message.Headers {
		if h != nil {
			carrier[string(h.Key)] = string(h.Value)
		}
	}
	msgCtx := otel.GetTextMapPropagator().Extract(ctx, carrier)

	if err := sc.processor(msgCtx, message.Value); err != nil {
		slog.WarnContext(msgCtx, "заявка из Kafka пропущена",
			slog.Int64("offset", message.Offset), sl.Err(err))
		metric.KafkaMessagesTotal.WithLabelValues("error").Inc()
		return
	}
	metric.KafkaMessagesTotal.WithLabelValues("success").Inc()
}

func (sc *SubmissionConsumer) Close() error {
	return sc.consumer.Close()
}
