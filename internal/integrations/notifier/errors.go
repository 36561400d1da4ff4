package notifier

import "errors"

var (
	// ErrPublish возвращается, когда уведомление не удалось отправить в брокер
	ErrPublish = errors.New("notifier: failed to publish notification")

	// ErrNoBrokers возвращается, когда список брокеров пуст
	ErrNoBrokers = errors.New("notifier: kafka brokers not configured")
)
