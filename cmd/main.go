package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	adviceHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/advice"
	cancelAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/cancel_appointment"
	categoriesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/categories"
	clearAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/clear_appointments"
	createAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_appointment"
	exportAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/export_appointments"
	getAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getCustomerAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_customer_appointments"
	getSettingsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_settings"
	listAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_appointments"
	notificationPermissionHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/notification_permission"
	servicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/services"
	updateSettingsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/collections"
	"github.com/m04kA/SMC-SalonService/internal/integrations/advisor"
	"github.com/m04kA/SMC-SalonService/internal/integrations/notifier"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	settingsService "github.com/m04kA/SMC-SalonService/internal/service/settings"
	"github.com/m04kA/SMC-SalonService/internal/store"
	createAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	exportAppointmentsUC "github.com/m04kA/SMC-SalonService/internal/usecase/export_appointments"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	sendRemindersUC "github.com/m04kA/SMC-SalonService/internal/usecase/send_reminders"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
)

// reminderNotifier канал доставки напоминаний
type reminderNotifier interface {
	RequestPermission(ctx context.Context) bool
	Notify(ctx context.Context, notification domain.Notification) (bool, error)
	Close() error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем хранилище коллекций
	var repository store.Repository
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		repository = collections.NewPostgresRepository(db)

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

		repository = collections.NewRedisRepository(client, cfg.Redis.KeyPrefix)

	default:
		log.Warn("Using in-memory storage, data will be lost on restart")
		repository = collections.NewMemoryRepository()
	}

	// Загружаем состояние салона
	stateStore := store.New(
		repository,
		store.RetryConfig{
			MaxRetries:      cfg.Persistence.MaxRetries,
			InitialInterval: time.Duration(cfg.Persistence.InitialIntervalMs) * time.Millisecond,
			MaxInterval:     time.Duration(cfg.Persistence.MaxIntervalMs) * time.Millisecond,
		},
		metricsCollector,
		log,
	)
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := stateStore.Load(loadCtx); err != nil {
		loadCancel()
		log.Fatal("Failed to load salon state: %v", err)
	}
	loadCancel()

	// Канал уведомлений
	var reminders reminderNotifier
	switch cfg.Notifications.Driver {
	case config.NotifierKafka:
		reminders = notifier.NewKafkaNotifier(
			notifier.SplitBrokers(cfg.Notifications.Brokers),
			cfg.Notifications.Topic,
			time.Duration(cfg.Notifications.DialTimeout)*time.Second,
			log,
		)
	case config.NotifierNone:
		reminders = notifier.NewNoopNotifier()
	default:
		reminders = notifier.NewLogNotifier(log)
	}
	defer func() {
		if err := reminders.Close(); err != nil {
			log.Error("Failed to close notifier: %v", err)
		}
	}()

	if !reminders.RequestPermission(context.Background()) {
		log.Warn("Notification permission denied (driver=%s), reminders will be marked but not delivered",
			cfg.Notifications.Driver)
	}

	// Генеративный ассистент
	advisorClient := advisor.NewClient(
		cfg.Advisor.URL,
		cfg.Advisor.APIKey,
		cfg.Advisor.Model,
		time.Duration(cfg.Advisor.Timeout)*time.Second,
		log,
	)
	if cfg.Advisor.APIKey == "" {
		log.Warn("Advisor API key is not set, advice endpoints will return fallback answers")
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(stateStore, metricsCollector, log)
	catalogSvc := catalogService.NewService(stateStore, log)
	settingsSvc := settingsService.NewService(stateStore, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(stateStore, metricsCollector, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(stateStore, log)
	exportAppointmentsUseCase := exportAppointmentsUC.NewUseCase(stateStore, log)

	// Планировщик напоминаний
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	schedulerDone := make(chan struct{})
	if cfg.Reminders.Enabled {
		location, _ := cfg.Reminders.Location()
		scheduler := sendRemindersUC.NewScheduler(
			stateStore,
			reminders,
			metricsCollector,
			sendRemindersUC.Config{
				PollInterval:       time.Duration(cfg.Reminders.PollInterval) * time.Second,
				WindowMinutes:      cfg.Reminders.WindowMinutes,
				MissedGraceMinutes: cfg.Reminders.MissedGraceMinutes,
				Location:           location,
			},
			log,
		)
		go func() {
			defer close(schedulerDone)
			if err := scheduler.Run(schedulerCtx); err != nil {
				log.Error("Reminder scheduler failed: %v", err)
			}
		}()
	} else {
		close(schedulerDone)
		log.Info("Reminder scheduler disabled")
	}

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, appointmentSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	clearAppointments := clearAppointmentsHandler.NewHandler(appointmentSvc, log)
	exportAppointments := exportAppointmentsHandler.NewHandler(exportAppointmentsUseCase, log)
	services := servicesHandler.NewHandler(catalogSvc, log)
	categories := categoriesHandler.NewHandler(catalogSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	advice := adviceHandler.NewHandler(advisorClient, catalogSvc, log)
	notificationPermission := notificationPermissionHandler.NewHandler(reminders, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", services.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", services.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/categories", categories.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/advice", advice.HandleAdvice).Methods(http.MethodPost)
	api.HandleFunc("/advice/skin-analysis", advice.HandleSkinAnalysis).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))
	if cfg.Admin.Token == "" {
		log.Warn("Admin token is not set, admin routes are not protected")
	}

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments", createAppointment.HandleAdmin).Methods(http.MethodPost)
	admin.HandleFunc("/appointments", clearAppointments.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/appointments/stats", listAppointments.HandleStats).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/export", exportAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Каталог ---
	admin.HandleFunc("/services", services.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", services.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", services.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/categories", categories.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/categories/{name}", categories.HandleDelete).Methods(http.MethodDelete)

	// --- Настройки и уведомления ---
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/notifications/permission", notificationPermission.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем планировщик напоминаний
	stopScheduler()
	<-schedulerDone

	log.Info("Server stopped gracefully")
}
