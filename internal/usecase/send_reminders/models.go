package send_reminders

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Результаты отправки для метрик
const (
	ResultSent    = "sent"
	ResultLate    = "late"
	ResultSkipped = "skipped" // нет разрешения на уведомления
	ResultFailed  = "failed"
)

const (
	reminderTitle       = "Lumina Randevu Hatırlatması"
	defaultReminderIcon = "https://api.dicebear.com/7.x/initials/svg?seed=Lumina&backgroundColor=f43f5e"
)

// Config параметры планировщика
type Config struct {
	PollInterval       time.Duration
	WindowMinutes      int
	MissedGraceMinutes int // 0 - опоздавшие напоминания не отправляются
	Location           *time.Location
}

// TickResult итог одного прохода
type TickResult struct {
	Checked  int // записей в статусе confirmed без напоминания
	Reminded int // записей, помеченных reminderSent
	Late     int // из них поздних уведомлений
}

// dueReminder уведомление, отправляемое после сохранения флагов
type dueReminder struct {
	notification domain.Notification
	late         bool
}

func reminderBody(customerName, serviceName string) string {
	return fmt.Sprintf("Sayın %s, \"%s\" randevunuza 1 saat kaldı. Sizi bekliyoruz!", customerName, serviceName)
}

func lateBody(customerName, serviceName string) string {
	return fmt.Sprintf("Sayın %s, \"%s\" randevunuzun saati geldi. Sizi bekliyoruz!", customerName, serviceName)
}

func buildNotification(app *domain.Appointment, serviceName, icon string, late bool) domain.Notification {
	body := reminderBody(app.CustomerName, serviceName)
	if late {
		body = lateBody(app.CustomerName, serviceName)
	}
	if icon == "" {
		icon = defaultReminderIcon
	}
	return domain.Notification{
		AppointmentID: app.ID,
		Title:         reminderTitle,
		Body:          body,
		Icon:          icon,
	}
}
