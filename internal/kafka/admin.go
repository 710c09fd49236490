package kafka

import (
	"fmt"
	"log/slog"

	"field-sales/internal/logger/sl"

	"github.com/IBM/sarama"
)

// EnsureTopicsExist создает недостающие топики.
func EnsureTopicsExist(broker []string, topics ...string) error {
	config := sarama.NewConfig()
	config.Version = sarama.V2_1_0_0

	//создаем клиента для управления кластером
	admin, err := sarama.NewClusterAdmin(broker, config)
	if err != nil {
		return fmt.Errorf("ошибка создания admin-клиента Kafka: %w", err)
	}
	defer func() {
		if err := admin.Close(); err != nil {
			slog.Warn("не удалось закрыть admin-клиент Kafka", sl.Err(err))
		}
	}()
	return ensureTopics(admin, topics)
}

func ensureTopics(admin sarama.ClusterAdmin, topics []string) error {
	//1. получаем список существующих топиков
	existing, err := admin.ListTopics()
	if err != nil {
		return fmt.Errorf("ошибка получения списка топиков: %w", err)
	}

	for _, topic := range topics {
		//2. если топик есть, идем дальше
		if _, exists := existing[topic]; exists {
			slog.Info("Kafka: топик уже существует", slog.String("topic", topic))
			continue
		}
		//3. если нет, то конфигурируем новый
		topicDetails := &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
			ConfigEntries: map[string]*string{
				"retention.ms": strPtr("604800000"),
			},
		}
		if err := admin.CreateTopic(topic, topicDetails, false); err != nil {
			return fmt.Errorf("не удалось создать топик %s: %w", topic, err)
		}
		slog.Info("Kafka: топик успешно создан", slog.String("topic", topic))
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}
