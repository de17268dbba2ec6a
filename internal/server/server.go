// Package server boots the application: configuration, database,
// cache, storage, queue, scheduler, routes, and the graceful HTTP
// lifecycle.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chitralaya/chitralaya/app/controllers"
	"github.com/chitralaya/chitralaya/app/jobs"
	"github.com/chitralaya/chitralaya/app/repositories"
	"github.com/chitralaya/chitralaya/app/routes"
	"github.com/chitralaya/chitralaya/app/services"
	"github.com/chitralaya/chitralaya/config"
	"github.com/chitralaya/chitralaya/pkg/cache"
	"github.com/chitralaya/chitralaya/pkg/database"
	"github.com/chitralaya/chitralaya/pkg/event"
	"github.com/chitralaya/chitralaya/pkg/logger"
	"github.com/chitralaya/chitralaya/pkg/metrics"
	"github.com/chitralaya/chitralaya/pkg/middleware"
	"github.com/chitralaya/chitralaya/pkg/queue"
	"github.com/chitralaya/chitralaya/pkg/razorpay"
	"github.com/chitralaya/chitralaya/pkg/reqid"
	"github.com/chitralaya/chitralaya/pkg/router"
	"github.com/chitralaya/chitralaya/pkg/schedule"
	"github.com/chitralaya/chitralaya/pkg/storage"
	"github.com/chitralaya/chitralaya/pkg/ws"
)

// App owns the wired application graph.
type App struct {
	Router *router.Router
	Hub    *ws.Hub
}

// Bootstrap connects infrastructure and wires repositories, services,
// controllers and routes.
func Bootstrap(ctx context.Context) (*App, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}

	if uri := config.LogMongoURI(); uri != "" {
		if err := logger.AttachMongoSink(uri, config.LogMongoDatabase()); err != nil {
			logger.Warn("mongo log sink unavailable", "error", err)
		}
	}

	if err := database.Connect(); err != nil {
		return nil, err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
	}

	if err := storage.Init(ctx); err != nil {
		return nil, err
	}

	if err := queue.Init(); err != nil {
		return nil, err
	}

	db := database.DB
	users := repositories.NewUserRepository(db)
	products := repositories.NewProductRepository(db)
	orders := repositories.NewOrderRepository(db)
	addresses := repositories.NewAddressRepository(db)
	notifications := repositories.NewNotificationRepository(db)

	hub := ws.NewHub()
	event.On(services.NotificationCreated, func(_ context.Context, payload any) {
		hub.Broadcast(services.NotificationCreated, payload)
	})

	notificationSvc := services.NewNotificationService(notifications, products)
	authSvc := services.NewAuthService(users)
	catalogSvc := services.NewCatalogService(products)
	orderSvc := services.NewOrderService(orders, products, users, notificationSvc)
	paymentSvc := services.NewPaymentService(orders, razorpay.New())
	addressSvc := services.NewAddressService(addresses)
	adminSvc := services.NewAdminService(users, products, orders)

	jobs.Register(orders)

	schedule.Every(time.Minute).Named("dashboard-stats").Immediately().
		Do(func(ctx context.Context) error {
			_, err := adminSvc.RefreshDashboard(ctx)
			return err
		})

	r := router.New()
	r.Use(
		metrics.Middleware,
		middleware.Recover,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS,
		middleware.NewRateLimiter(20, 60).Middleware,
	)

	staticRoot := ""
	if local, ok := storage.Default().(*storage.LocalDisk); ok {
		staticRoot = local.Root()
	}

	routes.Register(r, routes.Handlers{
		Auth:          controllers.NewAuthController(authSvc),
		Products:      controllers.NewProductController(catalogSvc),
		Orders:        controllers.NewOrderController(orderSvc),
		Payments:      controllers.NewPaymentController(paymentSvc),
		Addresses:     controllers.NewAddressController(addressSvc),
		Notifications: controllers.NewNotificationController(notificationSvc, hub),
		Admin:         controllers.NewAdminController(adminSvc, catalogSvc),
		ResolveUser:   authSvc.Resolve,
		Metrics:       metrics.Handler(),
		StaticRoot:    staticRoot,
	})

	return &App{Router: r, Hub: hub}, nil
}

// Run serves HTTP until SIGINT/SIGTERM, then drains connections, the
// queue worker and the scheduler.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go queue.Work(ctx)
	go schedule.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           a.Router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("shutdown deadline exceeded, closing")
	}

	queue.Close()  //nolint:errcheck
	cache.Close()
	logger.CloseSinks()

	return err
}
