package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// writerBatchTimeout напоминания отправляются по одному, ждать наполнения пачки не нужно
const writerBatchTimeout = 10 * time.Millisecond

// KafkaNotifier публикует напоминания в топик Kafka
// Разрешение выдаётся, если брокер доступен
type KafkaNotifier struct {
	permission
	brokers     []string
	topic       string
	dialTimeout time.Duration
	writer      MessageWriter
	dial        func(ctx context.Context, address string) error
	now         func() time.Time
	logger      Logger
}

// NewKafkaNotifier создает нотификатор поверх kafka.Writer
func NewKafkaNotifier(brokers []string, topic string, dialTimeout time.Duration, logger Logger) *KafkaNotifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: writerBatchTimeout,
	}
	return newKafkaNotifier(brokers, topic, dialTimeout, writer, logger)
}

func newKafkaNotifier(brokers []string, topic string, dialTimeout time.Duration, writer MessageWriter, logger Logger) *KafkaNotifier {
	n := &KafkaNotifier{
		brokers:     brokers,
		topic:       topic,
		dialTimeout: dialTimeout,
		writer:      writer,
		now:         time.Now,
		logger:      logger,
	}
	n.dial = n.dialBroker
	return n
}

// SplitBrokers разбирает список брокеров через запятую
func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// RequestPermission проверяет доступность первого брокера
func (n *KafkaNotifier) RequestPermission(ctx context.Context) bool {
	if len(n.brokers) == 0 {
		n.logger.Warn("RequestPermission: %v", ErrNoBrokers)
		n.granted.Store(false)
		return false
	}

	if err := n.dial(ctx, n.brokers[0]); err != nil {
		n.logger.Warn("RequestPermission: broker %s unreachable: %v", n.brokers[0], err)
		n.granted.Store(false)
		return false
	}

	n.logger.Info("RequestPermission: broker %s reachable, topic=%s", n.brokers[0], n.topic)
	n.granted.Store(true)
	return true
}

// Notify публикует уведомление; ключ сообщения - ID записи
func (n *KafkaNotifier) Notify(ctx context.Context, notification domain.Notification) (bool, error) {
	if !n.Granted() {
		return false, nil
	}

	payload, err := json.Marshal(ReminderEvent{
		AppointmentID: notification.AppointmentID,
		Title:         notification.Title,
		Body:          notification.Body,
		Icon:          notification.Icon,
		SentAt:        n.now().UTC(),
	})
	if err != nil {
		return false, fmt.Errorf("%w: marshal: %v", ErrPublish, err)
	}

	msg := kafka.Message{
		Key:   []byte(notification.AppointmentID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeReminder)},
		},
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return false, fmt.Errorf("%w: appointment=%s: %v", ErrPublish, notification.AppointmentID, err)
	}

	return true, nil
}

// Close закрывает продюсер
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

func (n *KafkaNotifier) dialBroker(ctx context.Context, address string) error {
	dialer := kafka.Dialer{Timeout: n.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return err
	}
	return conn.Close()
}
