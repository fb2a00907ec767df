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

	cancelBookingHandler "github.com/turki-wellness/TURKI-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/turki-wellness/TURKI-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/turki-wellness/TURKI-BookingService/internal/api/handlers/get_available_slots"
	getBranchBookingsHandler "github.com/turki-wellness/TURKI-BookingService/internal/api/handlers/get_branch_bookings"
	listBranchServicesHandler "github.com/turki-wellness/TURKI-BookingService/internal/api/handlers/list_branch_services"
	listBranchesHandler "github.com/turki-wellness/TURKI-BookingService/internal/api/handlers/list_branches"
	updateBookingStatusHandler "github.com/turki-wellness/TURKI-BookingService/internal/api/handlers/update_booking_status"
	"github.com/turki-wellness/TURKI-BookingService/internal/api/middleware"
	"github.com/turki-wellness/TURKI-BookingService/internal/config"
	catalogStore "github.com/turki-wellness/TURKI-BookingService/internal/infra/catalog"
	bookingRepo "github.com/turki-wellness/TURKI-BookingService/internal/infra/storage/booking"
	bookingsService "github.com/turki-wellness/TURKI-BookingService/internal/service/bookings"
	catalogService "github.com/turki-wellness/TURKI-BookingService/internal/service/catalog"
	createBookingUC "github.com/turki-wellness/TURKI-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/turki-wellness/TURKI-BookingService/internal/usecase/get_available_slots"
	"github.com/turki-wellness/TURKI-BookingService/pkg/dbmetrics"
	"github.com/turki-wellness/TURKI-BookingService/pkg/logger"
	"github.com/turki-wellness/TURKI-BookingService/pkg/metrics"
	"github.com/turki-wellness/TURKI-BookingService/pkg/simpletxmanager"
	"github.com/turki-wellness/TURKI-BookingService/pkg/txmanager"
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

	log.Info("Starting TURKI-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Загружаем каталог филиалов и услуг
	catalog, err := catalogStore.Load(cfg.Catalog.File)
	if err != nil {
		log.Fatal("Failed to load catalog from %s: %v", cfg.Catalog.File, err)
	}
	log.Info("Catalog loaded from %s: %d branches", cfg.Catalog.File, len(catalog.ListBranches()))

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Параметры расписания из конфигурации
	schedule := createBookingUC.Schedule{
		OperatingStart: cfg.OperatingStart(),
		OperatingEnd:   cfg.OperatingEnd(),
	}
	slotsSchedule := getAvailableSlotsUC.Schedule{
		OperatingStart:      cfg.OperatingStart(),
		OperatingEnd:        cfg.OperatingEnd(),
		SlotIntervalMinutes: cfg.Schedule.SlotIntervalMinutes,
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		catalog,
		log,
	)
	catalogSvc := catalogService.NewService(
		catalog,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalog,
		txMgr,
		schedule,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalog,
		slotsSchedule,
		log,
	)

	// Инициализируем handlers
	listBranches := listBranchesHandler.NewHandler(catalogSvc, log)
	listBranchServices := listBranchServicesHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBranchBookings := getBranchBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	// Список филиалов
	api.HandleFunc("/branches", listBranches.Handle).Methods(http.MethodGet)

	// Услуги филиала, сгруппированные по категориям
	api.HandleFunc("/branches/{branchId}/services", listBranchServices.Handle).Methods(http.MethodGet)

	// --- Слоты ---
	// Сетка доступности на дату
	api.HandleFunc("/branches/{branchId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований филиала (административный просмотр)
	api.HandleFunc("/branches/{branchId}/bookings", getBranchBookings.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Обновление статуса бронирования
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

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
