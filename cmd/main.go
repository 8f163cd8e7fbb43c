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
	"github.com/redis/go-redis/v9"

	checkShiftConflictsHandler "github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers/check_shift_conflicts"
	createBookingHandler "github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers/create_booking"
	createShiftHandler "github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers/create_shift"
	deleteBookingHandler "github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers/get_booking"
	getDateAvailabilityHandler "github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers/get_date_availability"
	getUnavailableDatesHandler "github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers/get_unavailable_dates"
	listBookingsHandler "github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers/list_bookings"
	listShiftsHandler "github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers/list_shifts"
	setDateAvailabilityHandler "github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers/set_date_availability"
	setShiftActiveHandler "github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers/set_shift_active"
	stripeWebhookHandler "github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers/stripe_webhook"
	toggleDateAvailabilityHandler "github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers/toggle_date_availability"
	updateBookingStatusHandler "github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers/update_booking_status"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/api/middleware"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/config"
	availabilityCache "github.com/dobaato-technical/KnowALocal-sub000/internal/infra/cache/availability"
	availabilityRepo "github.com/dobaato-technical/KnowALocal-sub000/internal/infra/storage/availability"
	bookingRepo "github.com/dobaato-technical/KnowALocal-sub000/internal/infra/storage/booking"
	shiftRepo "github.com/dobaato-technical/KnowALocal-sub000/internal/infra/storage/shift"
	tourRepo "github.com/dobaato-technical/KnowALocal-sub000/internal/infra/storage/tour"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/integrations/payments"
	availabilityService "github.com/dobaato-technical/KnowALocal-sub000/internal/service/availability"
	bookingsService "github.com/dobaato-technical/KnowALocal-sub000/internal/service/bookings"
	shiftsService "github.com/dobaato-technical/KnowALocal-sub000/internal/service/shifts"
	checkShiftConflictsUC "github.com/dobaato-technical/KnowALocal-sub000/internal/usecase/check_shift_conflicts"
	createBookingUC "github.com/dobaato-technical/KnowALocal-sub000/internal/usecase/create_booking"
	getUnavailableDatesUC "github.com/dobaato-technical/KnowALocal-sub000/internal/usecase/get_unavailable_dates"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/dbmetrics"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/logger"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/metrics"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
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

	log.Info("Starting KnowALocal booking service...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики: при выключенных передаем nil, все методы nil-safe
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

	// Redis для кэша месячной доступности (опционально)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Кэш не обязателен: ошибки чтения и записи дальше только логируются
			log.Warn("Redis ping failed (addr=%s), cache will degrade to store reads: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Connected to redis (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
		}
		cancel()
	}
	monthCache := availabilityCache.NewCache(redisClient, time.Duration(cfg.Redis.TTL)*time.Second)

	// Инициализируем репозитории
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	shiftRepository := shiftRepo.NewRepository(wrappedDB)
	tourRepository := tourRepo.NewRepository(wrappedDB)

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(availabilityRepository, monthCache, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	shiftSvc := shiftsService.NewService(shiftRepository, log)

	// Инициализируем use cases
	getUnavailableDatesUseCase := getUnavailableDatesUC.NewUseCase(
		availabilityRepository,
		monthCache,
		metricsCollector,
		log,
	)

	checkShiftConflictsUseCase := checkShiftConflictsUC.NewUseCase(
		shiftRepository,
		bookingRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		shiftRepository,
		tourRepository,
		txMgr,
		metricsCollector,
		cfg.Booking.Currency,
		log,
	)

	// Инициализируем handlers
	getUnavailableDates := getUnavailableDatesHandler.NewHandler(getUnavailableDatesUseCase, log)
	checkShiftConflicts := checkShiftConflictsHandler.NewHandler(checkShiftConflictsUseCase, log)
	listPublicShifts := listShiftsHandler.NewHandler(shiftSvc, true, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)

	getDateAvailability := getDateAvailabilityHandler.NewHandler(availabilitySvc, log)
	setDateAvailability := setDateAvailabilityHandler.NewHandler(availabilitySvc, log)
	toggleDateAvailability := toggleDateAvailabilityHandler.NewHandler(availabilitySvc, log)
	listAllShifts := listShiftsHandler.NewHandler(shiftSvc, false, log)
	createShift := createShiftHandler.NewHandler(shiftSvc, log)
	setShiftActive := setShiftActiveHandler.NewHandler(shiftSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/availability/unavailable-dates", getUnavailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/check", checkShiftConflicts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shifts", listPublicShifts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Без секрета подпись проверить нельзя, маршрут не регистрируем
	if cfg.Payments.StripeWebhookSecret != "" {
		verifier := payments.NewWebhookVerifier(cfg.Payments.StripeWebhookSecret, log)
		stripeWebhook := stripeWebhookHandler.NewHandler(verifier, bookingSvc, log)
		api.HandleFunc("/webhooks/stripe", stripeWebhook.Handle).Methods(http.MethodPost)
	} else {
		log.Warn("STRIPE_WEBHOOK_SECRET is not set, payment webhook disabled")
	}

	// ============================================================
	// ADMIN ROUTES (Bearer JWT, role=admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.JWTSecret, cfg.Auth.Issuer, log))

	// --- Доступность дат ---
	admin.HandleFunc("/availability/{date}", getDateAvailability.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability/{date}", setDateAvailability.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/availability/{date}/toggle", toggleDateAvailability.Handle).Methods(http.MethodPost)

	// --- Смены ---
	admin.HandleFunc("/shifts", listAllShifts.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/shifts", createShift.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/shifts/{shiftId}/active", setShiftActive.Handle).Methods(http.MethodPatch)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
