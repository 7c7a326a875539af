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

	cancelBookingHandler "github.com/m04kA/REBALL-BookingService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/m04kA/REBALL-BookingService/internal/api/handlers/complete_booking"
	confirmBookingHandler "github.com/m04kA/REBALL-BookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/REBALL-BookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/REBALL-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/REBALL-BookingService/internal/api/handlers/get_booking"
	getCourseHandler "github.com/m04kA/REBALL-BookingService/internal/api/handlers/get_course"
	getUserBookingsHandler "github.com/m04kA/REBALL-BookingService/internal/api/handlers/get_user_bookings"
	holdSlotHandler "github.com/m04kA/REBALL-BookingService/internal/api/handlers/hold_slot"
	listCoursesHandler "github.com/m04kA/REBALL-BookingService/internal/api/handlers/list_courses"
	releaseHoldHandler "github.com/m04kA/REBALL-BookingService/internal/api/handlers/release_hold"
	"github.com/m04kA/REBALL-BookingService/internal/api/middleware"
	"github.com/m04kA/REBALL-BookingService/internal/config"
	bookingRepo "github.com/m04kA/REBALL-BookingService/internal/infra/storage/booking"
	courseRepo "github.com/m04kA/REBALL-BookingService/internal/infra/storage/course"
	holdRepo "github.com/m04kA/REBALL-BookingService/internal/infra/storage/hold"
	"github.com/m04kA/REBALL-BookingService/internal/infra/sweeper"
	"github.com/m04kA/REBALL-BookingService/internal/integrations/gcal"
	bookingsService "github.com/m04kA/REBALL-BookingService/internal/service/bookings"
	coursesService "github.com/m04kA/REBALL-BookingService/internal/service/courses"
	holdsService "github.com/m04kA/REBALL-BookingService/internal/service/holds"
	confirmBookingUC "github.com/m04kA/REBALL-BookingService/internal/usecase/confirm_booking"
	createBookingUC "github.com/m04kA/REBALL-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/REBALL-BookingService/internal/usecase/get_availability"
	holdSlotUC "github.com/m04kA/REBALL-BookingService/internal/usecase/hold_slot"
	"github.com/m04kA/REBALL-BookingService/pkg/dbmetrics"
	"github.com/m04kA/REBALL-BookingService/pkg/logger"
	"github.com/m04kA/REBALL-BookingService/pkg/metrics"
	"github.com/m04kA/REBALL-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/REBALL-BookingService/pkg/txmanager"
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

	log.Info("Starting REBALL-BookingService...")
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

	// Инициализируем клиента календаря (если включен)
	var calendarClient *gcal.Client
	if cfg.Calendar.Enabled {
		calendarClient, err = gcal.NewClient(context.Background(), gcal.Config{
			CalendarID:     cfg.Calendar.CalendarID,
			AccessToken:    cfg.Calendar.AccessToken,
			RateLimitRPS:   cfg.Calendar.RateLimitRPS,
			RateLimitBurst: cfg.Calendar.RateLimitBurst,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize calendar client: %v", err)
		}
		log.Info("Calendar integration enabled (calendar_id=%s)", cfg.Calendar.CalendarID)
	} else {
		log.Info("Calendar integration disabled")
	}

	// Интерфейсы календаря для сервисов: typed nil в интерфейсе не равен
	// nil, поэтому заполняем их только при включенной интеграции
	var confirmCalendar confirmBookingUC.CalendarClient
	var bookingsCalendar bookingsService.CalendarClient
	if calendarClient != nil {
		confirmCalendar = calendarClient
		bookingsCalendar = calendarClient
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		courseRepository  *courseRepo.Repository
		holdRepository    *holdRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		courseRepository = courseRepo.NewRepository(wrappedDB)
		holdRepository = holdRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		courseRepository = courseRepo.NewRepository(db)
		holdRepository = holdRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, bookingsCalendar, log)
	courseSvc := coursesService.NewService(courseRepository, log)
	holdSvc := holdsService.NewService(holdRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		holdRepository,
		&getAvailabilityUC.RealTimeProvider{},
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		courseRepository,
		holdRepository,
		txMgr,
		log,
	)

	holdSlotUseCase := holdSlotUC.NewUseCase(
		bookingRepository,
		holdRepository,
		txMgr,
		time.Duration(cfg.Holds.TTLMinutes)*time.Minute,
		log,
	)

	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		courseRepository,
		confirmCalendar,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	holdSlot := holdSlotHandler.NewHandler(holdSlotUseCase, log)
	releaseHold := releaseHoldHandler.NewHandler(holdSvc, log)
	listCourses := listCoursesHandler.NewHandler(courseSvc, log)
	getCourse := getCourseHandler.NewHandler(courseSvc, log)

	// Запускаем фоновую чистку истекших holds
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()

	holdSweeper := sweeper.New(
		holdRepository,
		time.Duration(cfg.Holds.SweepIntervalSecs)*time.Second,
		log,
	)
	go holdSweeper.Run(sweepCtx)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Таблица доступности на месяц
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Каталог курсов
	api.HandleFunc("/courses", listCourses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courses/{courseId}", getCourse.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Holds на слоты ---
	protected.HandleFunc("/holds", holdSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/holds/{holdToken}", releaseHold.Handle).Methods(http.MethodDelete)

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

	// Останавливаем фоновые задачи
	stopSweeper()
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
