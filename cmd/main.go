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

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/curbside-pickup/internal/api"
	"github.com/m04kA/curbside-pickup/internal/config"
	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/internal/infra/cache/slots"
	bookingRepo "github.com/m04kA/curbside-pickup/internal/infra/storage/booking"
	"github.com/m04kA/curbside-pickup/internal/integrations/mailer"
	bookingsService "github.com/m04kA/curbside-pickup/internal/service/bookings"
	configService "github.com/m04kA/curbside-pickup/internal/service/config"
	"github.com/m04kA/curbside-pickup/internal/service/notifications"
	"github.com/m04kA/curbside-pickup/internal/service/tokens"
	createBookingUC "github.com/m04kA/curbside-pickup/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/curbside-pickup/internal/usecase/get_available_slots"
	reviewBookingUC "github.com/m04kA/curbside-pickup/internal/usecase/review_booking"
	"github.com/m04kA/curbside-pickup/pkg/dbmetrics"
	"github.com/m04kA/curbside-pickup/pkg/logger"
	"github.com/m04kA/curbside-pickup/pkg/metrics"
	"github.com/m04kA/curbside-pickup/pkg/txmanager"
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

	log.Info("Starting curbside-pickup...")

	// Расписание (значения уже проверены в config.Validate)
	location, _ := cfg.Business.Location()
	closedDays, _ := cfg.Business.Weekdays()
	schedule := domain.Schedule{
		OpeningHour:         cfg.Business.OpeningHour,
		ClosingHour:         cfg.Business.ClosingHour,
		SlotDurationMinutes: cfg.Business.SlotDurationMinutes,
		LeadTime:            time.Duration(cfg.Business.LeadTimeMinutes) * time.Minute,
		Location:            location,
		ClosedDays:          closedDays,
	}

	// Инициализируем метрики (если включены). nil *Metrics безопасно передавать дальше.
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Кэш занятых слотов (опционально)
	var slotCache *slots.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		slotCache = slots.NewCache(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		log.Info("Slot cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	txManager := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем интеграционных клиентов
	emailTimeout := time.Duration(cfg.Email.Timeout) * time.Second
	mailClient, err := mailer.NewClient(mailer.Settings{
		Host:        cfg.Email.Host,
		Port:        cfg.Email.Port,
		Username:    cfg.Email.Username,
		Password:    cfg.Email.Password,
		FromName:    cfg.Email.FromName,
		FromAddress: cfg.Email.FromAddress,
	}, emailTimeout, log)
	if err != nil {
		log.Fatal("Failed to initialize mailer: %v", err)
	}
	log.Info("Mailer initialized (host=%s, port=%d, staff=%d)", cfg.Email.Host, cfg.Email.Port, len(cfg.Email.StaffEmails))

	// Инициализируем сервисы
	notifier, err := notifications.NewService(mailClient, bookingRepository, metricsCollector, notifications.Settings{
		BusinessName:    cfg.Business.Name,
		BusinessAddress: cfg.Business.Address,
		FrontendURL:     cfg.Frontend.URL,
		StaffEmails:     cfg.Email.StaffEmails,
		SendTimeout:     emailTimeout,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize notifications: %v", err)
	}

	bookingSvc := bookingsService.NewService(bookingRepository, slotCache, metricsCollector, schedule, log)
	settingsSvc := configService.NewService(configService.Business{
		Name:    cfg.Business.Name,
		Address: cfg.Business.Address,
	}, schedule, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txManager,
		tokens.NewIssuer(),
		slotCache,
		notifier,
		metricsCollector,
		schedule,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		slotCache,
		metricsCollector,
		schedule,
		cfg.Business.MaxRangeDays,
		log,
	)
	reviewBookingUseCase := reviewBookingUC.NewUseCase(bookingRepository, notifier, metricsCollector, log)

	// Настраиваем роутер
	deps := api.Dependencies{
		CreateBooking:     createBookingUseCase,
		GetAvailableSlots: getAvailableSlotsUseCase,
		ReviewBooking:     reviewBookingUseCase,
		Bookings:          bookingSvc,
		Settings:          settingsSvc,
		DB:                wrappedDB,
		Logger:            log,
		AllowedOrigins:    cfg.Frontend.AllowedOrigins,
		AdminAPIKey:       cfg.Admin.APIKey,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = metricsCollector
		deps.MetricsPath = cfg.Metrics.Path
		deps.MetricsHandler = metricsCollector.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	if cfg.Admin.APIKey == "" {
		log.Warn("admin.api_key is empty: staff listing and stats are not protected")
	}

	r := api.NewRouter(deps)

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
	close(stopMetricsCh)

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
