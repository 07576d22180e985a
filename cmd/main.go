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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "modernc.org/sqlite"

	catalogHandler "github.com/m04kA/OtoCare-BookingService/internal/api/handlers/catalog"
	createBookingHandler "github.com/m04kA/OtoCare-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/OtoCare-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/OtoCare-BookingService/internal/api/handlers/get_booking"
	getGarageBookingsHandler "github.com/m04kA/OtoCare-BookingService/internal/api/handlers/get_garage_bookings"
	getUserBookingsHandler "github.com/m04kA/OtoCare-BookingService/internal/api/handlers/get_user_bookings"
	healthHandler "github.com/m04kA/OtoCare-BookingService/internal/api/handlers/health"
	sessionsHandler "github.com/m04kA/OtoCare-BookingService/internal/api/handlers/sessions"
	usersHandler "github.com/m04kA/OtoCare-BookingService/internal/api/handlers/users"
	watchAvailableSlotsHandler "github.com/m04kA/OtoCare-BookingService/internal/api/handlers/watch_available_slots"
	"github.com/m04kA/OtoCare-BookingService/internal/api/middleware"
	"github.com/m04kA/OtoCare-BookingService/internal/config"
	"github.com/m04kA/OtoCare-BookingService/internal/infra/events"
	"github.com/m04kA/OtoCare-BookingService/internal/infra/notify"
	bookingRepo "github.com/m04kA/OtoCare-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/OtoCare-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/OtoCare-BookingService/internal/infra/storage/migrations"
	sessionStore "github.com/m04kA/OtoCare-BookingService/internal/infra/storage/session"
	userRepo "github.com/m04kA/OtoCare-BookingService/internal/infra/storage/user"
	bookingsService "github.com/m04kA/OtoCare-BookingService/internal/service/bookings"
	catalogService "github.com/m04kA/OtoCare-BookingService/internal/service/catalog"
	sessionsService "github.com/m04kA/OtoCare-BookingService/internal/service/sessions"
	usersService "github.com/m04kA/OtoCare-BookingService/internal/service/users"
	createBookingUC "github.com/m04kA/OtoCare-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/OtoCare-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/OtoCare-BookingService/pkg/dbmetrics"
	"github.com/m04kA/OtoCare-BookingService/pkg/logger"
	"github.com/m04kA/OtoCare-BookingService/pkg/metrics"
	"github.com/m04kA/OtoCare-BookingService/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

// changeNotifier publishes and subscribes to schedule change signals.
type changeNotifier interface {
	createBookingUC.ChangePublisher
	getAvailableSlotsUC.ChangeFeed
}

// bookingEvents is the integration event sink selected by configuration.
type bookingEvents interface {
	createBookingUC.EventPublisher
	Close() error
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting OtoCare-BookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Metrics stay nil when disabled; every collector method is nil-safe.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	cancelPing()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to %s database", cfg.Database.Driver)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	if cfg.Database.AutoMigrate {
		if err := migrations.Apply(context.Background(), wrappedDB, migrations.Dialect(cfg.Database.Driver)); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database schema is up to date")
	}

	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	healthDeps := map[string]healthHandler.Pinger{"database": wrappedDB}

	// Change feed and session store: Redis when configured, process memory otherwise.
	var (
		changes  changeNotifier
		sessions sessionsService.SessionStore
	)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancelPing()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		changes = notify.NewRedisNotifier(redisClient, cfg.Redis.ChannelPrefix)
		sessions = sessionStore.NewRedisStore(redisClient, cfg.Sessions.KeyPrefix)
		healthDeps["redis"] = healthHandler.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
		log.Info("Redis change feed and session store enabled (addr=%s)", cfg.Redis.Addr)
	} else {
		changes = notify.NewMemoryNotifier()
		sessions = sessionStore.NewMemoryStore()
		log.Warn("Redis disabled: live availability and sessions are local to this instance")
	}

	var eventPublisher bookingEvents = events.NoopPublisher{}
	if cfg.Kafka.Enabled {
		eventPublisher = events.NewKafkaPublisher(
			cfg.Kafka.Brokers,
			cfg.Kafka.Topic,
			time.Duration(cfg.Kafka.WriteTimeout)*time.Second,
		)
		log.Info("Kafka booking events enabled (topic=%s, brokers=%v)", cfg.Kafka.Topic, cfg.Kafka.Brokers)
	}
	defer func() {
		if err := eventPublisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}()

	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	userSvc := usersService.NewService(userRepository, txMgr, log)
	sessionSvc := sessionsService.NewService(
		sessions,
		userRepository,
		catalogRepository,
		time.Duration(cfg.Sessions.TTLMinutes)*time.Minute,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		changes,
		eventPublisher,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		changes,
		metricsCollector,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	watchAvailableSlots := watchAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getGarageBookings := getGarageBookingsHandler.NewHandler(bookingSvc, log)
	catalog := catalogHandler.NewHandler(catalogSvc, log)
	users := usersHandler.NewHandler(userSvc, log)
	sessionsH := sessionsHandler.NewHandler(sessionSvc, log)
	health := healthHandler.NewHandler(healthDeps, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestLogging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	if cfg.RateLimit.Enabled {
		trustedProxies, err := cfg.RateLimit.TrustedProxyPrefixes()
		if err != nil {
			log.Fatal("Invalid rate limit config: %v", err)
		}
		r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst, trustedProxies, log))
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d, trusted proxies=%d)",
			cfg.RateLimit.RPS, cfg.RateLimit.Burst, len(trustedProxies))
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes

	api.HandleFunc("/cities", catalog.Cities).Methods(http.MethodGet)
	api.HandleFunc("/cities/{city}/garages", catalog.Garages).Methods(http.MethodGet)
	api.HandleFunc("/working-hours", catalog.WorkingHours).Methods(http.MethodGet)
	api.HandleFunc("/packages", catalog.Packages).Methods(http.MethodGet)
	api.HandleFunc("/banners", catalog.Banners).Methods(http.MethodGet)

	api.HandleFunc("/users", users.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/{phone}", users.Get).Methods(http.MethodGet)

	api.HandleFunc("/sessions", sessionsH.Login).Methods(http.MethodPost)

	api.HandleFunc("/garages/{garageId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/garages/{garageId}/available-slots/stream", watchAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/garages/{garageId}/bookings", getGarageBookings.Handle).Methods(http.MethodGet)

	// Routes that require "Authorization: Bearer <session token>"

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessionSvc, log))

	protected.HandleFunc("/sessions/current", sessionsH.Current).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/current", sessionsH.Select).Methods(http.MethodPut)
	protected.HandleFunc("/sessions/current", sessionsH.Logout).Methods(http.MethodDelete)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	// Open SSE streams end with their request contexts.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
