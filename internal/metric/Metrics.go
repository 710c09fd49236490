package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "field_sales"

var (
	// 1. Группа Kafka: входящие заявки и опубликованные события
	KafkaMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "kafka",
		Name:      "messages_received_total",
		Help:      "Сколько заявок пришло из топика приема",
	}, []string{"status"}) // success / error (битый JSON) / rejected (не прошла проверку)

	EventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "kafka",
		Name:      "events_published_total",
		Help:      "События о сохраненных заказах и визитах",
	}, []string{"kind", "status"})

	// 2.1 Группа Database
	DbOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "db",
		Name:      "operations_total",
		Help:      "Статистика операций с БД",
	}, []string{"operation", "status"})

	// 2.2 Гистограмма для БД
	DbDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "db",
		Name:      "operation_duration_seconds",
		Help:      "Время выполнения операций с БД",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"}) // save_order, save_visit, get_order, offers, stock ...

	// 3. Ценообразование и остатки
	OffersResolvedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pricing",
		Name:      "offers_resolved_total",
		Help:      "Подбор предложения для строки корзины",
	}, []string{"result"}) // applied / none / error

	StockRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cart",
		Name:      "stock_rejections_total",
		Help:      "Изменения корзины, отклоненные из-за остатка",
	})

	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "submission",
		Name:      "total",
		Help:      "Отправленные заказы и визиты",
	}, []string{"kind", "status"})

	// 4.1 Размер кеша
	CacheSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "items_count",
		Help:      "Текущее количество записей в оперативной памяти",
	}, []string{"cache"})

	// 4.2 попадания в кеш
	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Обращения к кешу",
	}, []string{"cache", "result"}) // hit-нашли, miss-нет

	// 5 запросы
	RequestMetrics = promauto.NewSummaryVec(prometheus.SummaryOpts{
		Namespace:  namespace,
		Subsystem:  "http",
		Name:       "request",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	}, []string{"status"})
)

func ObserveRequest(t time.Duration, status int) {
	RequestMetrics.WithLabelValues(strconv.Itoa(status)).Observe(t.Seconds())
}

// ObserveDB пишет длительность и результат операции с БД.
func ObserveDB(operation string, start time.Time, err error) {
	DbDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	status := "success"
	if err != nil {
		status = "error"
	}
	DbOperationsTotal.WithLabelValues(operation, status).Inc()
}
