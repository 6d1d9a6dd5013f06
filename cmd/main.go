package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/consultingshop/checkout-service/internal/app"
	"github.com/consultingshop/checkout-service/internal/config"
	"github.com/consultingshop/checkout-service/internal/handler"
	"github.com/consultingshop/checkout-service/internal/notifier"
	"github.com/consultingshop/checkout-service/internal/postgres"
	"github.com/consultingshop/checkout-service/internal/repo"
	"github.com/consultingshop/checkout-service/internal/service"
	"github.com/consultingshop/checkout-service/internal/viva"
	"github.com/consultingshop/checkout-service/pkg/cache"
	"github.com/consultingshop/checkout-service/pkg/trm"

	_ "github.com/consultingshop/checkout-service/docs"
	"github.com/joho/godotenv"
)

// @title           Checkout Service API
// @version         1.0
// @description     Storefront checkout and payment reconciliation HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	catalogRepo := repo.NewCatalogRepo(db)
	txManager := trm.NewManager(db)
	productCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	gateway, err := viva.New(logger, conf.Viva)
	panicIfErr("failed to init gateway client", err)

	paidNotifier := notifier.NewKafkaNotifier(logger, conf.Kafka)

	pricer := service.NewPricerService(logger, catalogRepo, productCache, conf.Checkout.AllowClientPriceFallback)
	reconciler := service.NewReconcileService(logger, orderRepo, gateway, conf.Viva.SourceCode)
	checkout := service.NewCheckoutService(logger, txManager, pricer, orderRepo, gateway, reconciler, paidNotifier, conf.Viva.SourceCode)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, checkout)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(productCache)
	app.SetClosers(paidNotifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
