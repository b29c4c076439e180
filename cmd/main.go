package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/maineblanc/camping-booking/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/maineblanc/camping-booking/internal/api/handlers/check_availability"
	createBookingHandler "github.com/maineblanc/camping-booking/internal/api/handlers/create_booking"
	getBookingHandler "github.com/maineblanc/camping-booking/internal/api/handlers/get_booking"
	getTariffsHandler "github.com/maineblanc/camping-booking/internal/api/handlers/get_tariffs"
	getUserBookingsHandler "github.com/maineblanc/camping-booking/internal/api/handlers/get_user_bookings"
	markDepositPaidHandler "github.com/maineblanc/camping-booking/internal/api/handlers/mark_deposit_paid"
	quoteBookingHandler "github.com/maineblanc/camping-booking/internal/api/handlers/quote_booking"
	updateBookingDatesHandler "github.com/maineblanc/camping-booking/internal/api/handlers/update_booking_dates"
	"github.com/maineblanc/camping-booking/internal/api/middleware"
	"github.com/maineblanc/camping-booking/internal/capacity"
	"github.com/maineblanc/camping-booking/internal/config"
	"github.com/maineblanc/camping-booking/internal/events"
	bookingRepo "github.com/maineblanc/camping-booking/internal/infra/storage/booking"
	capacityRepo "github.com/maineblanc/camping-booking/internal/infra/storage/capacity"
	tariffRepo "github.com/maineblanc/camping-booking/internal/infra/storage/tariff"
	"github.com/maineblanc/camping-booking/internal/pricing"
	bookingsService "github.com/maineblanc/camping-booking/internal/service/bookings"
	tariffsService "github.com/maineblanc/camping-booking/internal/service/tariffs"
	checkAvailabilityUC "github.com/maineblanc/camping-booking/internal/usecase/check_availability"
	createBookingUC "github.com/maineblanc/camping-booking/internal/usecase/create_booking"
	quoteBookingUC "github.com/maineblanc/camping-booking/internal/usecase/quote_booking"
	updateBookingDatesUC "github.com/maineblanc/camping-booking/internal/usecase/update_booking_dates"
	"github.com/maineblanc/camping-booking/internal/validation"
	"github.com/maineblanc/camping-booking/pkg/dbmetrics"
	"github.com/maineblanc/camping-booking/pkg/logger"
	"github.com/maineblanc/camping-booking/pkg/metrics"
	"github.com/maineblanc/camping-booking/pkg/txmanager"
)

// publisher продюсер событий, закрывается при остановке
type publisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
	Close() error
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting camping-booking...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики нужны и для бизнес-счетчиков, поэтому создаются всегда
	// Флаг управляет только публикацией endpoint и сбором по БД
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

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
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB).WithMaxAttempts(cfg.Booking.TxMaxAttempts)

	// Продюсер событий бронирования
	var eventPublisher publisher
	if cfg.Kafka.Enabled {
		eventPublisher, err = events.NewKafkaPublisher(events.Config{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			RequiredAcks: cfg.Kafka.RequiredAcks,
			Compression:  cfg.Kafka.Compression,
			MaxAttempts:  cfg.Kafka.MaxAttempts,
			BatchTimeout: cfg.Kafka.BatchTimeout(),
			WriteTimeout: time.Duration(cfg.Kafka.WriteTimeout) * time.Second,
		}, log)
		if err != nil {
			log.Fatal("Failed to create kafka publisher: %v", err)
		}
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		eventPublisher = events.NewNopPublisher(log)
		log.Info("Kafka publisher disabled, events are only logged")
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	capacityRepository := capacityRepo.NewRepository(wrappedDB)
	tariffRepository := tariffRepo.NewRepository(wrappedDB)

	// Доменные компоненты
	calculator := pricing.NewCalculator()
	validator := validation.New()
	guard := capacity.NewGuard(capacityRepository, bookingRepository, log)

	// Инициализируем сервисы
	tariffSvc := tariffsService.NewService(tariffRepository, capacityRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, eventPublisher, log)

	// Инициализируем use cases
	quoteBookingUseCase := quoteBookingUC.NewUseCase(tariffSvc, calculator, validator, metricsCollector, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		tariffSvc,
		calculator,
		guard,
		validator,
		eventPublisher,
		metricsCollector,
		txMgr,
		log,
	)
	updateBookingDatesUseCase := updateBookingDatesUC.NewUseCase(
		bookingRepository,
		tariffSvc,
		calculator,
		guard,
		validator,
		eventPublisher,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(guard, bookingRepository, validator, log)

	// Инициализируем handlers
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBookingDates := updateBookingDatesHandler.NewHandler(updateBookingDatesUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	markDepositPaid := markDepositPaidHandler.NewHandler(bookingSvc, log)
	getTariffs := getTariffsHandler.NewHandler(tariffSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/tariffs", getTariffs.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/quote", quoteBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/dates", updateBookingDates.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/deposit", markDepositPaid.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId:[0-9]+}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	// Дописываем события, накопленные продюсером
	if err := eventPublisher.Close(); err != nil {
		log.Error("Failed to close event publisher: %v", err)
	}

	log.Info("Server stopped gracefully")
}
