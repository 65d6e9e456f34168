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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getScheduleSettingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_schedule_settings"
	healthHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/health"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/app"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	blockedSlotRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/blockedslot"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/catalog"
	companyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/company"
	staffRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/staff"
	settingsService "github.com/m04kA/SMC-AvailabilityService/internal/service/settings"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if err := app.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем репозитории (с метриками или без)
	var (
		companyRepository     *companyRepo.Repository
		catalogRepository     *catalogRepo.Repository
		staffRepository       *staffRepo.Repository
		blockedSlotRepository *blockedSlotRepo.Repository
		bookingRepository     *bookingRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")

		companyRepository = companyRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		blockedSlotRepository = blockedSlotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
	} else {
		companyRepository = companyRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		blockedSlotRepository = blockedSlotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
	}

	// Инициализируем сервисы и use cases
	settingsSvc := settingsService.NewService(companyRepository, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		companyRepository,
		catalogRepository,
		staffRepository,
		blockedSlotRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getScheduleSettings := getScheduleSettingsHandler.NewHandler(settingsSvc, log)
	health := healthHandler.NewHandler(db, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Получение доступных слотов для записи
	api.HandleFunc("/companies/{companyId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Получение настроек расписания компании
	api.HandleFunc("/companies/{companyId}/schedule-settings",
		getScheduleSettings.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
