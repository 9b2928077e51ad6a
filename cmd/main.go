package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/orinoco-shop/docs"
	"github.com/SergeyBogomolovv/orinoco-shop/internal/app"
	"github.com/SergeyBogomolovv/orinoco-shop/internal/config"
	"github.com/SergeyBogomolovv/orinoco-shop/internal/events"
	"github.com/SergeyBogomolovv/orinoco-shop/internal/handler"
	"github.com/SergeyBogomolovv/orinoco-shop/internal/postgres"
	"github.com/SergeyBogomolovv/orinoco-shop/internal/repo"
	"github.com/SergeyBogomolovv/orinoco-shop/internal/service"
	"github.com/SergeyBogomolovv/orinoco-shop/pkg/cache"
	"github.com/SergeyBogomolovv/orinoco-shop/pkg/trm"
	"github.com/SergeyBogomolovv/orinoco-shop/pkg/utils"

	"github.com/joho/godotenv"
)

// @title           Orinoco Shop API
// @version         1.0
// @description     Каталог, корзина покупателя и оформление заказов
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	if conf.Postgres.Migrate {
		panicIfErr("failed to migrate db", postgres.Migrate(db))
		logger.Info("migrations applied")
	}

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache[int64](conf.Cache.Capacity, conf.Cache.TTL)

	app := app.New(logger, conf)

	var publisher service.OrderPublisher = events.NopPublisher{}
	if conf.Kafka.Enabled {
		kafkaPublisher := events.NewKafkaPublisher(logger, conf.Kafka)
		app.SetClosers(kafkaPublisher)
		publisher = kafkaPublisher
	}

	catalogService := service.NewCatalogService(logger, pgRepo)
	basketService := service.NewBasketService(logger, txManager, pgRepo, catalogService)
	orderService := service.NewOrderService(logger, pgRepo, orderCache)
	checkoutService := service.NewCheckoutService(logger, txManager, basketService, pgRepo, publisher, utils.RetryConfig{
		MaxAttempts:  conf.Checkout.ClearAttempts,
		InitialDelay: conf.Checkout.ClearDelay,
	})

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, catalogService, catalogService, basketService, checkoutService, orderService)

	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

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

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
