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

	cancelBookingHandler "github.com/pixelvan/PhotoBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/pixelvan/PhotoBookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/pixelvan/PhotoBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/pixelvan/PhotoBookingService/internal/api/handlers/get_booking"
	getDayBookingsHandler "github.com/pixelvan/PhotoBookingService/internal/api/handlers/get_day_bookings"
	getScheduleConfigHandler "github.com/pixelvan/PhotoBookingService/internal/api/handlers/get_schedule_config"
	getUserBookingsHandler "github.com/pixelvan/PhotoBookingService/internal/api/handlers/get_user_bookings"
	updateBookingStatusHandler "github.com/pixelvan/PhotoBookingService/internal/api/handlers/update_booking_status"
	updateScheduleConfigHandler "github.com/pixelvan/PhotoBookingService/internal/api/handlers/update_schedule_config"
	"github.com/pixelvan/PhotoBookingService/internal/api/middleware"
	"github.com/pixelvan/PhotoBookingService/internal/config"
	bookingRepo "github.com/pixelvan/PhotoBookingService/internal/infra/storage/booking"
	configRepo "github.com/pixelvan/PhotoBookingService/internal/infra/storage/scheduleconfig"
	"github.com/pixelvan/PhotoBookingService/internal/integrations/gcalendar"
	bookingsService "github.com/pixelvan/PhotoBookingService/internal/service/bookings"
	configService "github.com/pixelvan/PhotoBookingService/internal/service/scheduleconfig"
	"github.com/pixelvan/PhotoBookingService/internal/service/travelbuffer"
	createBookingUC "github.com/pixelvan/PhotoBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/pixelvan/PhotoBookingService/internal/usecase/get_available_slots"
	"github.com/pixelvan/PhotoBookingService/pkg/dbmetrics"
	"github.com/pixelvan/PhotoBookingService/pkg/logger"
	"github.com/pixelvan/PhotoBookingService/pkg/metrics"
	"github.com/pixelvan/PhotoBookingService/pkg/simpletxmanager"
	"github.com/pixelvan/PhotoBookingService/pkg/txmanager"
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

	log.Info("Starting PhotoBookingService...")
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

	// Инициализируем клиент внешнего календаря
	calendarTimeout := time.Duration(cfg.Calendar.Timeout) * time.Second
	tokenProvider := gcalendar.NewCachedTokenProvider(
		cfg.Calendar.TokenURL,
		cfg.Calendar.ClientID,
		cfg.Calendar.ClientSecret,
		calendarTimeout,
	)
	calendarClient := gcalendar.NewClient(
		cfg.Calendar.BaseURL,
		cfg.Calendar.CalendarID,
		calendarTimeout,
		tokenProvider,
		log,
	)
	log.Info("Calendar client initialized (url=%s, calendar=%s, timeout=%ds)",
		cfg.Calendar.BaseURL, cfg.Calendar.CalendarID, cfg.Calendar.Timeout)

	// Инициализируем валидатор travel buffer
	travelBufferPolicy := travelbuffer.Policy{
		NearRadiusKm:     cfg.TravelBuffer.NearRadiusKm,
		FarRadiusKm:      cfg.TravelBuffer.FarRadiusKm,
		MidBufferMinutes: cfg.TravelBuffer.MidBufferMinutes,
		FarBufferMinutes: cfg.TravelBuffer.FarBufferMinutes,
	}
	if travelBufferPolicy == (travelbuffer.Policy{}) {
		travelBufferPolicy = travelbuffer.DefaultPolicy()
	}
	travelBufferValidator := travelbuffer.NewValidator(travelBufferPolicy, log)
	log.Info("Travel buffer policy: near=%.1fkm, far=%.1fkm, mid=%dmin, far=%dmin",
		travelBufferPolicy.NearRadiusKm, travelBufferPolicy.FarRadiusKm,
		travelBufferPolicy.MidBufferMinutes, travelBufferPolicy.FarBufferMinutes)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		configRepository  *configRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		configRepository = configRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		configRepository = configRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	configSvc := configService.NewService(configRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		configRepository,
		calendarClient,
		travelBufferValidator,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		configRepository,
		calendarClient,
		travelBufferValidator,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(configSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Request ID на все запросы
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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов для бронирования
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Получение конфигурации расписания
	api.HandleFunc("/schedule/config", getScheduleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление студией (для сотрудников) ---
	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireStaff)

	// Расписание студии на день
	staff.HandleFunc("/schedule/bookings", getDayBookings.Handle).Methods(http.MethodGet)

	// Обновление статуса бронирования
	staff.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Обновление конфигурации расписания
	staff.HandleFunc("/schedule/config", updateScheduleConfig.Handle).Methods(http.MethodPut)

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
