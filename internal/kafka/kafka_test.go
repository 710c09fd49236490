package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"field-sales/internal/models"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducer_Publish(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event models.SubmissionEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		if event.OrderID != 77 || event.Kind != models.KindOrder || !event.TotalNet.Equal(decimal.NewFromInt(1970)) {
			return errors.New("неожиданное событие")
		}
		return nil
	})
	producer := newProducer(sp, "field-sales.submissions")

	err := producer.Publish(context.Background(), models.SubmissionEvent{
		EventID: "e-1", Kind: models.KindOrder, OrderID: 77, RetailerID: 10, TotalQty: 42,
		TotalNet: decimal.NewFromInt(1970),
	})
	require.NoError(t, err)
	require.NoError(t, producer.Close())
}

func TestProducer_PublishError(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	producer := newProducer(sp, "field-sales.submissions")

	err := producer.Publish(context.Background(), models.SubmissionEvent{Kind: models.KindVisit})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, producer.Close())
}

func TestProducer_Send(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var envelope models.SubmissionEnvelope
		if err := json.Unmarshal(val, &envelope); err != nil {
			return err
		}
		if envelope.Visit == nil || envelope.Visit.VisitType != "Disagree" {
			return errors.New("неожиданная заявка")
		}
		return nil
	})
	producer := newProducer(sp, "field-sales.intake")

	err := producer.Send(context.Background(), models.SubmissionEnvelope{
		Kind:  models.KindVisit,
		Visit: &models.VisitRequest{UserID: "SR-1", RetailerID: 1, VisitType: "Disagree"},
	})
	require.NoError(t, err)
	require.NoError(t, producer.Close())
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), models.SubmissionEvent{}))
}

func TestSubmissionConsumer_Start(t *testing.T) {
	consumer := mocks.NewConsumer(t, nil)
	pc := consumer.ExpectConsumePartition("field-sales.intake", 0, sarama.OffsetNewest)
	pc.YieldMessage(&sarama.ConsumerMessage{Value: []byte(`{"kind":"visit"}`)})
	pc.YieldMessage(&sarama.ConsumerMessage{Value: []byte(`broken`)})

	var (
		mu       sync.Mutex
		received [][]byte
	)
	processor := func(_ context.Context, data []byte) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, data)
		if string(data) == "broken" {
			return errors.New("ошибка при парсинге")
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	sc := newSubmissionConsumer(consumer, "field-sales.intake", processor)
	done := make(chan error, 1)
	go func() { done <- sc.Start(ctx) }()

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 2
	}, time.Second, 10*time.Millisecond, "битое сообщение не останавливает чтение")

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestFakeEnvelope(t *testing.T) {
	for n := 0; n < 50; n++ {
		envelope := FakeEnvelope([]string{"SR-1", "SR-2"}, []int64{10, 11}, []int64{100, 101, 102})
		switch envelope.Kind {
		case models.KindOrder:
			require.NotNil(t, envelope.Order)
			assert.NotEmpty(t, envelope.Order.Items)
			assert.LessOrEqual(t, len(envelope.Order.Items), 3)
			seen := map[int64]bool{}
			for _, it := range envelope.Order.Items {
				assert.False(t, seen[it.ProductID], "товар в заявке не повторяется")
				seen[it.ProductID] = true
				assert.GreaterOrEqual(t, int(it.Quantity), 1)
			}
		case models.KindVisit:
			require.NotNil(t, envelope.Visit)
			assert.True(t, models.IsVisitType(envelope.Visit.VisitType))
		default:
			t.Fatalf("неизвестный тип заявки %q", envelope.Kind)
		}
	}
}
