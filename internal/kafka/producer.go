package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"field-sales/internal/models"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(broker []string, topic string) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll // Ждем подтверждения от всех брокеров

	producer, err := sarama.NewSyncProducer(broker, config)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать продюсера: %w", err)
	}
	return newProducer(producer, topic), nil
}

func newProducer(producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{producer: producer, topic: topic}
}

// Publish отправляет событие о сохраненном заказе. Ключ - id точки,
// чтобы события одной точки шли по порядку.
func (pr *Producer) Publish(ctx context.Context, event models.SubmissionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("ошибка при парсинге для отправки: %w", err)
	}
	return pr.send(ctx, strconv.FormatInt(event.RetailerID, 10), data)
}

// Send кладет заявку в топик приема.
func (pr *Producer) Send(ctx context.Context, envelope models.SubmissionEnvelope) error {
	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("ошибка при парсинге для отправки: %w", err)
	}
	return pr.send(ctx, envelope.Kind, data)
}

func (pr *Producer) send(ctx context.Context, key string, data []byte) error {
	//1. Создание сообщения, trace context уходит в заголовках
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	headers := make([]sarama.RecordHeader, 0, len(carrier))
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}
	message := &sarama.ProducerMessage{
		Topic:   pr.topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(data),
		Headers: headers,
	}
	//2. Отправка сообщений в кафку
	partition, offset, err := pr.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("ошибка при отправке данных в кафку: %w", err)
	}
	slog.DebugContext(ctx, "сообщение отправлено в Kafka",
		slog.String("topic", pr.topic), slog.Int("partition", int(partition)), slog.Int64("offset", offset))
	return nil
}

func (pr *Producer) Close() error {
	return pr.producer.Close()
}

// NopPublisher - события никуда не уходят, если Kafka выключена.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.SubmissionEvent) error {
	return nil
}
