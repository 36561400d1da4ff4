package send_reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/store"
)

// Scheduler фоновая проверка записей, входящих в окно напоминания
type Scheduler struct {
	store        StateStore
	notifier     Notifier
	metrics      Metrics
	config       Config
	timeProvider TimeProvider
	logger       Logger
}

// NewScheduler создает планировщик напоминаний
func NewScheduler(store StateStore, notifier Notifier, metrics Metrics, config Config, logger Logger) *Scheduler {
	if config.PollInterval <= 0 {
		config.PollInterval = domain.DefaultReminderPollSeconds * time.Second
	}
	if config.WindowMinutes <= 0 {
		config.WindowMinutes = domain.DefaultReminderWindowMinutes
	}
	if config.MissedGraceMinutes < 0 {
		config.MissedGraceMinutes = 0
	}
	if config.Location == nil {
		config.Location = time.Local
	}
	return &Scheduler{
		store:        store,
		notifier:     notifier,
		metrics:      metrics,
		config:       config,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Run запускает периодическую проверку и блокируется до отмены ctx
// Первая проверка выполняется сразу; перекрывающиеся проверки пропускаются
func (s *Scheduler) Run(ctx context.Context) error {
	c := cron.New(
		cron.WithLocation(s.config.Location),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{s.logger})),
	)

	job := func() {
		if _, err := s.Tick(ctx); err != nil {
			s.logger.Error("SendReminders: tick failed: %v", err)
		}
	}

	schedule := fmt.Sprintf("@every %s", s.config.PollInterval)
	if _, err := c.AddFunc(schedule, job); err != nil {
		return fmt.Errorf("send_reminders: failed to schedule %q: %w", schedule, err)
	}

	s.logger.Info("SendReminders: started, interval=%s, window=%dm, grace=%dm",
		s.config.PollInterval, s.config.WindowMinutes, s.config.MissedGraceMinutes)

	job()
	c.Start()

	<-ctx.Done()

	// ждём завершения выполняющейся проверки
	<-c.Stop().Done()
	s.logger.Info("SendReminders: stopped")
	return nil
}

// Tick выполняет одну проверку
// Для каждой записи confirmed без напоминания, начало которой наступит через (0, window] минут,
// выставляется reminderSent и отправляется одно уведомление.
// Флаги сохраняются до отправки; уведомления отправляются вне блокировки хранилища.
// Флаг выставляется и тогда, когда уведомление не удалось доставить
func (s *Scheduler) Tick(ctx context.Context) (TickResult, error) {
	now := s.timeProvider.Now().In(s.config.Location)
	window := float64(s.config.WindowMinutes)
	grace := float64(s.config.MissedGraceMinutes)

	var (
		result TickResult
		due    []dueReminder
	)

	err := s.store.Mutate(ctx, func(st *store.State) ([]domain.Collection, error) {
		result = TickResult{}
		due = due[:0]

		for i := range st.Appointments {
			app := &st.Appointments[i]
			if !app.NeedsReminder() {
				continue
			}
			result.Checked++

			start, err := app.StartsAt(s.config.Location)
			if err != nil {
				s.logger.Warn("SendReminders: skipping appointment id=%s: %v", app.ID, err)
				continue
			}

			diff := start.Sub(now).Minutes()

			var late bool
			switch {
			case diff > 0 && diff <= window:
			case grace > 0 && diff <= 0 && diff > -grace:
				late = true
			default:
				continue
			}

			serviceName := st.ServiceName(app.ServiceID, domain.ReminderServiceName)
			due = append(due, dueReminder{
				notification: buildNotification(app, serviceName, st.Settings.LogoURL, late),
				late:         late,
			})

			app.ReminderSent = true
			result.Reminded++
			if late {
				result.Late++
			}
		}

		if result.Reminded == 0 {
			return nil, nil
		}
		return []domain.Collection{domain.CollectionAppointments}, nil
	})
	if err != nil {
		return TickResult{}, fmt.Errorf("send_reminders: failed to store reminder flags: %w", err)
	}

	for _, r := range due {
		s.notify(ctx, r.notification, r.late)
	}

	if result.Reminded > 0 {
		s.logger.Info("SendReminders: reminded %d of %d appointments (%d late)",
			result.Reminded, result.Checked, result.Late)
	}
	return result, nil
}

func (s *Scheduler) notify(ctx context.Context, notification domain.Notification, late bool) {
	sent, err := s.notifier.Notify(ctx, notification)
	switch {
	case err != nil:
		s.logger.Error("SendReminders: notify failed for appointment id=%s: %v", notification.AppointmentID, err)
		s.metrics.IncReminders(ResultFailed)
	case !sent:
		s.logger.Warn("SendReminders: notification for appointment id=%s not delivered, permission not granted", notification.AppointmentID)
		s.metrics.IncReminders(ResultSkipped)
	case late:
		s.metrics.IncReminders(ResultLate)
	default:
		s.metrics.IncReminders(ResultSent)
	}
}

// cronLogger адаптирует Logger к cron.Logger
type cronLogger struct {
	logger Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info("SendReminders: cron %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("SendReminders: cron %s: %v %v", msg, err, keysAndValues)
}
