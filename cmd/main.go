package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SMC-CourtGateway/internal/api/handlers/cancel_booking"
	checkoutHandler "github.com/m04kA/SMC-CourtGateway/internal/api/handlers/checkout"
	clearCartHandler "github.com/m04kA/SMC-CourtGateway/internal/api/handlers/clear_cart"
	dismissPaymentHandler "github.com/m04kA/SMC-CourtGateway/internal/api/handlers/dismiss_payment"
	getCartHandler "github.com/m04kA/SMC-CourtGateway/internal/api/handlers/get_cart"
	getCourtGridHandler "github.com/m04kA/SMC-CourtGateway/internal/api/handlers/get_court_grid"
	getMyBookingsHandler "github.com/m04kA/SMC-CourtGateway/internal/api/handlers/get_my_bookings"
	removeCartItemHandler "github.com/m04kA/SMC-CourtGateway/internal/api/handlers/remove_cart_item"
	toggleSlotHandler "github.com/m04kA/SMC-CourtGateway/internal/api/handlers/toggle_slot"
	verifyPaymentHandler "github.com/m04kA/SMC-CourtGateway/internal/api/handlers/verify_payment"
	"github.com/m04kA/SMC-CourtGateway/internal/api/middleware"
	"github.com/m04kA/SMC-CourtGateway/internal/config"
	availabilityRepo "github.com/m04kA/SMC-CourtGateway/internal/infra/storage/availability"
	cartRepo "github.com/m04kA/SMC-CourtGateway/internal/infra/storage/cart"
	transactionRepo "github.com/m04kA/SMC-CourtGateway/internal/infra/storage/transaction"
	bookingAPIClient "github.com/m04kA/SMC-CourtGateway/internal/integrations/bookingapi"
	bookingsService "github.com/m04kA/SMC-CourtGateway/internal/service/bookings"
	cartService "github.com/m04kA/SMC-CourtGateway/internal/service/cart"
	checkoutUC "github.com/m04kA/SMC-CourtGateway/internal/usecase/checkout"
	dismissPaymentUC "github.com/m04kA/SMC-CourtGateway/internal/usecase/dismiss_payment"
	getCourtGridUC "github.com/m04kA/SMC-CourtGateway/internal/usecase/get_court_grid"
	verifyPaymentUC "github.com/m04kA/SMC-CourtGateway/internal/usecase/verify_payment"
	"github.com/m04kA/SMC-CourtGateway/pkg/logger"
	"github.com/m04kA/SMC-CourtGateway/pkg/metrics"
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

	log.Info("Starting SMC-CourtGateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping Redis: %v", err)
	}
	pingCancel()
	log.Info("Successfully connected to Redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем клиента внешнего booking API
	apiClient := bookingAPIClient.NewClient(
		cfg.BookingAPI.URL,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		apiClient = apiClient.WithMetrics(metricsCollector)
	}
	log.Info("Booking API client initialized (url=%s, timeout=%ds)", cfg.BookingAPI.URL, cfg.BookingAPI.Timeout)

	// Инициализируем репозитории
	cartRepository := cartRepo.NewRepository(redisClient, time.Duration(cfg.Redis.CartTTL)*time.Second)
	transactionRepository := transactionRepo.NewRepository(redisClient, time.Duration(cfg.Redis.CheckoutTxTTL)*time.Second)
	availabilityRepository := availabilityRepo.NewRepository(redisClient, time.Duration(cfg.Redis.GridCacheTTL)*time.Second)

	// Инициализируем сервисы
	cartSvc := cartService.NewService(cartRepository, &cartService.RealTimeProvider{}, log)
	bookingsSvc := bookingsService.NewService(apiClient, log)

	// Инициализируем use cases
	getCourtGridUseCase := getCourtGridUC.NewUseCase(apiClient, availabilityRepository, cartRepository, log)
	checkoutUseCase := checkoutUC.NewUseCase(cartRepository, transactionRepository, apiClient, log)
	verifyPaymentUseCase := verifyPaymentUC.NewUseCase(
		transactionRepository,
		cartRepository,
		availabilityRepository,
		apiClient,
		log,
	)
	dismissPaymentUseCase := dismissPaymentUC.NewUseCase(transactionRepository, log)

	// Инициализируем handlers
	getCourtGrid := getCourtGridHandler.NewHandler(getCourtGridUseCase, log)
	toggleSlot := toggleSlotHandler.NewHandler(cartSvc, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)
	clearCart := clearCartHandler.NewHandler(cartSvc, log)
	checkout := checkoutHandler.NewHandler(checkoutUseCase, log)
	verifyPayment := verifyPaymentHandler.NewHandler(verifyPaymentUseCase, log)
	dismissPayment := dismissPaymentHandler.NewHandler(dismissPaymentUseCase, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все маршруты шлюза требуют Bearer токен и X-User-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Сетка доступности ---
	api.HandleFunc("/courts/grid", getCourtGrid.Handle).Methods(http.MethodGet)

	// --- Корзина ---
	api.HandleFunc("/cart", getCart.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cart", clearCart.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/cart/toggle", toggleSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{index}", removeCartItem.Handle).Methods(http.MethodDelete)

	// --- Checkout ---
	api.HandleFunc("/checkout", checkout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/checkout/verify", verifyPayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/checkout/dismiss", dismissPayment.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/bookings/my", getMyBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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

	log.Info("Server stopped gracefully")
}
