// Package server assembles a running BizDesk process: configuration, the
// collection store and its backend, repositories, services, controllers, the
// HTTP and gRPC servers, background workers and the scheduler.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	grpcserver "google.golang.org/grpc"

	"github.com/shashiranjanraj/bizdesk/app/controllers"
	"github.com/shashiranjanraj/bizdesk/app/graph"
	"github.com/shashiranjanraj/bizdesk/app/jobs"
	"github.com/shashiranjanraj/bizdesk/app/listeners"
	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/app/repositories"
	"github.com/shashiranjanraj/bizdesk/app/routes"
	"github.com/shashiranjanraj/bizdesk/app/services"
	"github.com/shashiranjanraj/bizdesk/config"
	"github.com/shashiranjanraj/bizdesk/database/seeders"
	"github.com/shashiranjanraj/bizdesk/internal/kernel"
	"github.com/shashiranjanraj/bizdesk/pkg/cache"
	"github.com/shashiranjanraj/bizdesk/pkg/database"
	"github.com/shashiranjanraj/bizdesk/pkg/grpc"
	"github.com/shashiranjanraj/bizdesk/pkg/logger"
	"github.com/shashiranjanraj/bizdesk/pkg/notification"
	"github.com/shashiranjanraj/bizdesk/pkg/queue"
	"github.com/shashiranjanraj/bizdesk/pkg/router"
	"github.com/shashiranjanraj/bizdesk/pkg/schedule"
	"github.com/shashiranjanraj/bizdesk/pkg/storage"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
	"github.com/shashiranjanraj/bizdesk/pkg/ws"
)

// App is one fully wired BizDesk process. Build it with Boot, run it with Run.
type App struct {
	Store    *store.Store
	Router   *router.Router
	Hub      *ws.Hub
	Reports  *services.ReportService
	grpcSrv  *grpcserver.Server
	httpSrv  *http.Server
	cancelBg context.CancelFunc
}

// Boot loads configuration and wires every layer. It does not start listening;
// that is Run's job, so tests and CLI commands can Boot without binding ports.
func Boot() (*App, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}

	// Audit logging to Mongo is opt-in on MONGO_URI. A broken audit sink must
	// never keep the dashboard from starting.
	if uri := config.MongoURI(); uri != "" {
		if err := logger.EnableAudit(uri, config.MongoDatabase(), config.MongoCollection()); err != nil {
			logger.Warn("audit log disabled", "error", err)
		}
	}

	st, err := NewStore()
	if err != nil {
		return nil, err
	}

	// Redis cache is best effort: report summaries just recompute on miss.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable", "error", err)
	}

	if config.RepoDriver() == "database" {
		if err := database.Connect(); err != nil {
			return nil, fmt.Errorf("server: repo driver database: %w", err)
		}
		if err := database.DB.AutoMigrate(
			&models.Product{}, &models.Order{}, &models.Invoice{},
			&models.User{}, &models.SalesEntry{}, &models.InventoryAlert{},
			&models.Notification{}, &models.Integration{},
		); err != nil {
			return nil, fmt.Errorf("server: auto migrate: %w", err)
		}
	}

	repos := NewRepos(st)

	// Services.
	inventorySvc := services.NewInventoryService(repos.Products)
	orderSvc := services.NewOrderService(repos.Orders, repos.Products)
	invoiceSvc := services.NewInvoiceService(repos.Invoices)
	userSvc := services.NewUserService(repositories.NewUserRepository(repos.Users))
	authSvc := services.NewAuthService(userSvc)
	reportSvc := NewReports(repos)
	notifSvc := services.NewNotificationService(repos.Notifications)
	integrationSvc := services.NewIntegrationService(repos.Integrations, st)

	// Events feed the notification bell, the websocket hub and webhooks.
	hub := ws.NewHub()
	listeners.Register(notifSvc, hub)
	notification.SetSlackWebhook(config.SlackWebhookURL())
	jobs.Configure(reportSvc)
	jobs.Register()

	schema, err := graph.NewSchema(reportSvc)
	if err != nil {
		return nil, fmt.Errorf("server: graphql schema: %w", err)
	}

	r := kernel.NewRouter()
	routes.RegisterAPI(r, &routes.API{
		Auth:          controllers.NewAuthController(authSvc),
		Inventory:     controllers.NewInventoryController(inventorySvc),
		Orders:        controllers.NewOrderController(orderSvc),
		Invoices:      controllers.NewInvoiceController(invoiceSvc),
		Users:         controllers.NewUserController(userSvc),
		Reports:       controllers.NewReportController(reportSvc),
		Notifications: controllers.NewNotificationController(notifSvc),
		Integrations:  controllers.NewIntegrationController(integrationSvc),
		Hub:           hub,
		GraphQL:       graph.Handler(schema),
	})

	return &App{Store: st, Router: r, Hub: hub, Reports: reportSvc}, nil
}

// Repos holds one repository per collection.
type Repos struct {
	Products      repositories.Repository[*models.Product]
	Orders        repositories.Repository[*models.Order]
	Invoices      repositories.Repository[*models.Invoice]
	Users         repositories.Repository[*models.User]
	Sales         repositories.Repository[*models.SalesEntry]
	Alerts        repositories.Repository[*models.InventoryAlert]
	Notifications repositories.Repository[*models.Notification]
	Integrations  repositories.Repository[*models.Integration]
}

// NewRepos builds every repository on the configured driver. Orders, invoices
// and users carry timestamp ids so records created on different nodes cannot
// collide; the rest use max+1.
func NewRepos(st *store.Store) *Repos {
	return &Repos{
		Products:      repositories.New[*models.Product](st, "inventory"),
		Orders:        repositories.New[*models.Order](st, "orders", store.WithIDPolicy(store.Timestamp)),
		Invoices:      repositories.New[*models.Invoice](st, "invoices", store.WithIDPolicy(store.Timestamp)),
		Users:         repositories.New[*models.User](st, "users", store.WithIDPolicy(store.Timestamp)),
		Sales:         repositories.New[*models.SalesEntry](st, "salesData"),
		Alerts:        repositories.New[*models.InventoryAlert](st, "inventoryAlerts"),
		Notifications: repositories.New[*models.Notification](st, "notifications"),
		Integrations:  repositories.New[*models.Integration](st, "integrations"),
	}
}

// NewReports builds the report service over a repo set. queue:work and
// schedule:run use it to run rollups without an HTTP server.
func NewReports(repos *Repos) *services.ReportService {
	return services.NewReportService(
		repos.Products, repos.Orders, repos.Invoices,
		repos.Users, repos.Sales, repos.Alerts,
	)
}

// RegisterSchedule registers the recurring tasks: the nightly sales rollup
// (through the queue) and the low-stock alert sync.
func RegisterSchedule(reports *services.ReportService) {
	schedule.Daily().Name("sales.rollup").Run(func() {
		if err := queue.Dispatch(&jobs.SalesRollupJob{}); err != nil {
			logger.Error("schedule: dispatch sales rollup", "error", err)
		}
	})
	schedule.Every(15).Minutes().Name("inventory.sync_alerts").WithoutOverlapping().Run(func() {
		if err := reports.SyncAlerts(); err != nil {
			logger.Error("schedule: sync alerts", "error", err)
		}
	})
}

// NewStore opens the collection store on the configured backend with every
// seed attached. CLI commands use it to reach the data without booting the
// whole app.
func NewStore() (*store.Store, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	backend, err := newBackend()
	if err != nil {
		return nil, err
	}
	st := store.New(backend)
	seeders.Attach(st)
	return st, nil
}

// newBackend picks the blob backend from STORE_DRIVER.
func newBackend() (store.Backend, error) {
	switch driver := config.StoreDriver(); driver {
	case "memory":
		return store.NewMemoryBackend(), nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr(),
			Password: config.RedisPassword(),
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("server: store driver redis: %w", err)
		}
		return store.NewRedisBackend(rdb, "bizdesk:collections"), nil
	case "s3":
		storage.Connect()
		return store.NewDiskBackend(storage.Use("s3"), config.DataDir()), nil
	case "disk":
		storage.Connect()
		return store.NewDiskBackend(storage.Use("local"), config.DataDir()), nil
	default:
		return nil, fmt.Errorf("server: unknown STORE_DRIVER %q", driver)
	}
}

// startBackground launches the hub, queue workers and the scheduler. They
// all stop when cancelBg fires during shutdown.
func (a *App) startBackground() {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelBg = cancel

	go a.Hub.Run()

	if cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	} else {
		queue.SetDriver(queue.NewMemoryDriver())
	}
	queue.StartWorkers(ctx, 4)

	RegisterSchedule(a.Reports)
	schedule.Start(ctx)
}

// Run starts the HTTP server (plus gRPC health when GRPC_PORT is set) and
// blocks until SIGINT or SIGTERM, then drains in-flight work.
func (a *App) Run() error {
	a.startBackground()

	if port := config.GRPCPort(); port != "" {
		srv, _, err := grpc.Start(port)
		if err != nil {
			return err
		}
		a.grpcSrv = srv
	}

	addr := ":" + config.AppPort()
	a.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           a.Router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", addr, "env", config.AppEnv())
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		a.shutdown()
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
		a.shutdown()
		return nil
	}
}

func (a *App) shutdown() {
	if a.cancelBg != nil {
		a.cancelBg()
	}
	grpc.Stop(a.grpcSrv)

	if a.httpSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := a.httpSrv.Shutdown(ctx); err != nil {
			logger.Error("http shutdown", "error", err)
		}
	}
	logger.CloseAudit()
}

// Start is the one-call entry point used by cmd/server.
func Start() error {
	app, err := Boot()
	if err != nil {
		return err
	}
	return app.Run()
}
