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

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	createAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_appointment"
	createReviewHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_review"
	deleteAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_appointment"
	deleteReviewHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_review"
	getCustomerAppointmentsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_customer_appointments"
	getReviewHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_review"
	getStaffAvailabilityHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_staff_availability"
	healthHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/health"
	listReviewsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_reviews"
	listServicesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_services"
	listStaffHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_staff"
	loginHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/login"
	registerHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/register"
	updateAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_appointment"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogCache "github.com/m04kA/SMC-SalonBooking/internal/infra/cache/catalog"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/customer"
	reviewRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/review"
	appointmentsService "github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	customersService "github.com/m04kA/SMC-SalonBooking/internal/service/customers"
	reviewsService "github.com/m04kA/SMC-SalonBooking/internal/service/reviews"
	createAppointmentUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_appointment"
	getStaffAvailabilityUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_staff_availability"
	updateAppointmentUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-SalonBooking/migrations"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/jwtauth"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/migrator"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

// catalogSource справочник сотрудников и услуг: репозиторий или кеш над ним
type catalogSource interface {
	ListStaff(ctx context.Context) ([]*domain.StaffMember, error)
	GetStaffByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	GetServiceByName(ctx context.Context, name string) (*domain.Service, error)
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

	log.Info("Starting SMC-SalonBooking %s...", cfg.Server.Version)

	// Расписание салона строится один раз и дальше только читается
	hours, err := cfg.Schedule.OperatingHours()
	if err != nil {
		log.Fatal("Invalid schedule: %v", err)
	}
	log.Info("Operating hours loaded (timezone=%s, closed=%v)", hours.Location(), hours.ClosedDays())

	// Инициализируем метрики (если включены). nil коллектор отключает сбор
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Применяем миграции
	if cfg.Migrations.RunOnStart {
		version, err := migrator.Up(cfg.Database.URL(), migrations.FS)
		if err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database schema is at version %d", version)
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
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	reviewRepository := reviewRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Справочник читается через Redis, если кеш включён
	var catalog catalogSource = catalogRepository
	var rdb *redis.Client
	if cfg.Cache.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			// Кеш не обязателен: ошибки Redis при чтении уходят в БД
			log.Warn("Redis is unavailable at %s, catalog reads will fall through: %v", cfg.Cache.Addr, err)
		}
		cancel()

		cache := catalogCache.NewCache(catalogRepository, rdb, cfg.Cache.TTL(), log)
		// Миграции могли изменить справочник
		if err := cache.Invalidate(context.Background()); err != nil {
			log.Warn("Failed to invalidate catalog cache: %v", err)
		}
		catalog = cache
		log.Info("Catalog cache enabled (addr=%s, ttl=%s)", cfg.Cache.Addr, cfg.Cache.TTL())
	}

	tokens := jwtauth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience, cfg.Auth.JWTTTL())

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	catalogSvc := catalogService.NewService(catalog, log)
	customerSvc := customersService.NewService(customerRepository, tokens, cfg.Auth.BcryptCost, log)
	reviewSvc := reviewsService.NewService(reviewRepository, customerRepository, log)

	// Инициализируем use cases
	getStaffAvailabilityUseCase := getStaffAvailabilityUC.NewUseCase(
		appointmentRepository,
		catalog,
		hours,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalog,
		txMgr,
		hours,
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		catalog,
		txMgr,
		hours,
		log,
	)

	// Инициализируем handlers
	allowedServices := handlers.NewServiceAllowlist(cfg.Booking.AllowedServices)

	health := healthHandler.NewHandler(cfg.Server.Version)
	register := registerHandler.NewHandler(customerSvc, log)
	login := loginHandler.NewHandler(customerSvc, log)
	listStaff := listStaffHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getStaffAvailability := getStaffAvailabilityHandler.NewHandler(getStaffAvailabilityUseCase, hours.Location(), log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, allowedServices, hours.Location(), log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, allowedServices, hours.Location(), log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewSvc, log)
	getReview := getReviewHandler.NewHandler(reviewSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	deleteReview := deleteReviewHandler.NewHandler(reviewSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/health/ping", health.Ping).Methods(http.MethodGet)
	api.HandleFunc("/health/version", health.Version).Methods(http.MethodGet)

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	api.HandleFunc("/staff", listStaff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId}/availability", getStaffAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	api.HandleFunc("/reviews", listReviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reviews/{reviewId}", getReview.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, log))

	// --- Приёмы ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{customerId}", getCustomerAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Отзывы ---
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reviews/{reviewId}", deleteReview.Handle).Methods(http.MethodDelete)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
