package cmd

import (
	"context"
	"time"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/reviewrepo"
	rediscache "fooddelivery/internal/adapters/out/redis"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/jobs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot owns the infrastructure clients and builds every handler from them.
type CompositionRoot struct {
	cfg    Config
	logger *zap.Logger

	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  *kafka.OrderEventPublisher
	redis      *redis.Client
	statsCache *rediscache.ReviewStatsCache
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := kafka.NewOrderEventPublisher(kafka.Config{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		}, logger.With(zap.String("component", "kafka_publisher")))
		if err != nil {
			return nil, err
		}
		c.publisher = publisher
		c.uowFactory = c.uowFactory.WithEventPublisher(publisher, logger.With(zap.String("component", "unit_of_work")))
		logger.Info("order events enabled", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	} else {
		logger.Info("order events disabled")
	}

	c.redis = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.redis.Ping(ctx).Err(); err != nil {
		// statistics are computed from the database until redis is reachable
		logger.Warn("redis is not reachable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	c.statsCache = rediscache.NewReviewStatsCache(c.redis, cfg.ReviewStatsTTL)

	return c, nil
}

// Close releases the Kafka writer and the Redis client.
func (c *CompositionRoot) Close() {
	if c.publisher != nil {
		if err := c.publisher.Close(); err != nil {
			c.logger.Error("close kafka publisher", zap.Error(err))
		}
	}
	if err := c.redis.Close(); err != nil {
		c.logger.Error("close redis client", zap.Error(err))
	}
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory())
}

// CreateHTTPHandlers builds the use cases served by the HTTP adapter.
func (c *CompositionRoot) CreateHTTPHandlers() (httpin.Handlers, error) {
	addCartItem := commands.NewAddCartItemCommandHandler(c.cartUoWFactory())
	updateCartItem := commands.NewUpdateCartItemCommandHandler(c.cartUoWFactory())
	removeCartItem := commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
	clearCart := commands.NewClearCartCommandHandler(c.cartUoWFactory())
	createOrder := commands.NewCreateOrderCommandHandler(c.checkoutUoWFactory())
	cancelOrder := commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
	processPayment := commands.NewProcessPaymentCommandHandler(c.paymentUoWFactory(), services.NewPaymentSimulator())
	submitReview := commands.NewSubmitReviewCommandHandler(
		c.reviewUoWFactory(), c.statsCache, c.logger.With(zap.String("component", "submit_review")))

	restaurantReviews, err := queries.NewGetRestaurantReviewsQueryHandler(
		c.gormDB,
		reviewrepo.NewGormReviewRepository(c.gormDB),
		c.statsCache,
		c.logger.With(zap.String("component", "restaurant_reviews")),
	)
	if err != nil {
		return httpin.Handlers{}, err
	}

	return httpin.Handlers{
		AddCartItem:    &addCartItem,
		UpdateCartItem: &updateCartItem,
		RemoveCartItem: &removeCartItem,
		ClearCart:      &clearCart,
		GetCart:        queries.NewGetCartQueryHandler(c.gormDB),

		CreateOrder:     &createOrder,
		CancelOrder:     &cancelOrder,
		ListOrders:      queries.NewListOrdersQueryHandler(c.gormDB),
		GetOrderDetails: queries.NewGetOrderDetailsQueryHandler(c.gormDB),

		ProcessPayment:    &processPayment,
		GetPaymentHistory: queries.NewGetPaymentHistoryQueryHandler(c.gormDB),

		SubmitReview:         &submitReview,
		GetRestaurantReviews: restaurantReviews,
	}, nil
}

func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	handlers, err := c.CreateHTTPHandlers()
	if err != nil {
		return nil, err
	}
	auth, err := httpin.NewAuthenticator(c.cfg.JWTSecret, c.logger.With(zap.String("component", "auth")))
	if err != nil {
		return nil, err
	}
	return httpin.NewServer(handlers, auth, c.logger.With(zap.String("component", "http"))), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	advancer := c.CreateAdvanceOrderStatusCommandHandler()
	progress := jobs.NewOrderProgressJob(
		c.orderUoWFactory(),
		&advancer,
		jobs.ProgressConfig{Schedule: c.cfg.ProgressSchedule, Delay: c.cfg.ProgressDelay},
		c.logger,
	)
	return jobs.NewJobManager(progress)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
