package notifier

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// LogNotifier пишет уведомления в лог
// Разрешение выдаётся всегда
type LogNotifier struct {
	permission
	logger Logger
}

// NewLogNotifier создает нотификатор, пишущий в лог
func NewLogNotifier(logger Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// RequestPermission всегда выдаёт разрешение
func (n *LogNotifier) RequestPermission(_ context.Context) bool {
	n.granted.Store(true)
	return true
}

// Notify пишет уведомление в лог
func (n *LogNotifier) Notify(_ context.Context, notification domain.Notification) (bool, error) {
	if !n.Granted() {
		return false, nil
	}
	n.logger.Info("Notify: [%s] %s: %s", notification.AppointmentID, notification.Title, notification.Body)
	return true, nil
}

// Close ничего не делает
func (n *LogNotifier) Close() error {
	return nil
}

// NoopNotifier нотификатор для платформ без уведомлений: разрешение не выдаётся
type NoopNotifier struct{}

// NewNoopNotifier создает отключённый нотификатор
func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

// RequestPermission всегда отказывает
func (n *NoopNotifier) RequestPermission(_ context.Context) bool {
	return false
}

// Notify никогда не отправляет
func (n *NoopNotifier) Notify(_ context.Context, _ domain.Notification) (bool, error) {
	return false, nil
}

// Close ничего не делает
func (n *NoopNotifier) Close() error {
	return nil
}
