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

	cancelBookingHandler "github.com/a7jazili/hall-booking-service/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/a7jazili/hall-booking-service/internal/api/handlers/check_availability"
	createAdminBlockHandler "github.com/a7jazili/hall-booking-service/internal/api/handlers/create_admin_block"
	createBookingHandler "github.com/a7jazili/hall-booking-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/a7jazili/hall-booking-service/internal/api/handlers/get_booking"
	getHallHandler "github.com/a7jazili/hall-booking-service/internal/api/handlers/get_hall"
	getHallBookingsHandler "github.com/a7jazili/hall-booking-service/internal/api/handlers/get_hall_bookings"
	getUserBookingsHandler "github.com/a7jazili/hall-booking-service/internal/api/handlers/get_user_bookings"
	listNotificationsHandler "github.com/a7jazili/hall-booking-service/internal/api/handlers/list_notifications"
	manageHallMealsHandler "github.com/a7jazili/hall-booking-service/internal/api/handlers/manage_hall_meals"
	manageHallServicesHandler "github.com/a7jazili/hall-booking-service/internal/api/handlers/manage_hall_services"
	markNotificationReadHandler "github.com/a7jazili/hall-booking-service/internal/api/handlers/mark_notification_read"
	updateBookingStatusHandler "github.com/a7jazili/hall-booking-service/internal/api/handlers/update_booking_status"
	"github.com/a7jazili/hall-booking-service/internal/api/middleware"
	"github.com/a7jazili/hall-booking-service/internal/config"
	bookingRepo "github.com/a7jazili/hall-booking-service/internal/infra/storage/booking"
	hallRepo "github.com/a7jazili/hall-booking-service/internal/infra/storage/hall"
	notificationRepo "github.com/a7jazili/hall-booking-service/internal/infra/storage/notification"
	bookingsService "github.com/a7jazili/hall-booking-service/internal/service/bookings"
	hallsService "github.com/a7jazili/hall-booking-service/internal/service/halls"
	notificationsService "github.com/a7jazili/hall-booking-service/internal/service/notifications"
	checkAvailabilityUC "github.com/a7jazili/hall-booking-service/internal/usecase/check_availability"
	createAdminBlockUC "github.com/a7jazili/hall-booking-service/internal/usecase/create_admin_block"
	createBookingUC "github.com/a7jazili/hall-booking-service/internal/usecase/create_booking"
	"github.com/a7jazili/hall-booking-service/pkg/dbmetrics"
	"github.com/a7jazili/hall-booking-service/pkg/logger"
	"github.com/a7jazili/hall-booking-service/pkg/metrics"
	"github.com/a7jazili/hall-booking-service/pkg/simpletxmanager"
	"github.com/a7jazili/hall-booking-service/pkg/txmanager"
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

	log.Info("Starting hall-booking-service...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		hallRepository         *hallRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		hallRepository = hallRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		hallRepository = hallRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	notificationSvc := notificationsService.NewService(notificationRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, hallRepository, notificationSvc, log)
	hallSvc := hallsService.NewService(hallRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		hallRepository,
		txMgr,
		cfg.Booking.StrictLineItems,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, hallRepository, log)
	createAdminBlockUseCase := createAdminBlockUC.NewUseCase(bookingRepository, hallRepository, txMgr, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createAdminBlock := createAdminBlockHandler.NewHandler(createAdminBlockUseCase, log)
	getHall := getHallHandler.NewHandler(hallSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getHallBookings := getHallBookingsHandler.NewHandler(bookingSvc, log)
	listNotifications := listNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)
	manageHallServices := manageHallServicesHandler.NewHandler(hallSvc, log)
	manageHallMeals := manageHallMealsHandler.NewHandler(hallSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Карточка зала с каталогом услуг и блюд
	api.HandleFunc("/halls/{hallId}", getHall.Handle).Methods(http.MethodGet)

	// Проверка доступности интервала
	api.HandleFunc("/halls/{hallId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования: X-User-ID опционален, без него заявка анонимная
	anonymous := api.PathPrefix("").Subrouter()
	anonymous.Use(middleware.OptionalAuth)
	anonymous.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление залом (для менеджеров) ---
	protected.HandleFunc("/halls/{hallId}/bookings", getHallBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/halls/{hallId}/blocks", createAdminBlock.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/halls/{hallId}/services", manageHallServices.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/halls/{hallId}/services/{serviceId}", manageHallServices.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/halls/{hallId}/services/{serviceId}", manageHallServices.HandleDelete).Methods(http.MethodDelete)

	protected.HandleFunc("/halls/{hallId}/meals", manageHallMeals.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/halls/{hallId}/meals/{mealId}", manageHallMeals.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/halls/{hallId}/meals/{mealId}", manageHallMeals.HandleDelete).Methods(http.MethodDelete)

	// --- Уведомления ---
	protected.HandleFunc("/users/{userId}/notifications", listNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPatch)

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
