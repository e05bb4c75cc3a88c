package cmd

import (
	"time"

	"storefront/internal/adapters/out/kafka"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"
	"storefront/internal/pkg/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	producer     *kafka.OrderStatusProducer
	orderMetrics *metrics.OrderMetrics
	logger       *zap.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		producer:     kafka.NewOrderStatusProducer(configs.KafkaHost, configs.KafkaOrderChangedTopic),
		orderMetrics: metrics.NewOrderMetrics(),
		logger:       logger,
	}
}

// Close releases resources held by outbound adapters.
func (c *CompositionRoot) Close() error {
	return c.producer.Close()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})

	var publisher ports.OrderStatusPublisher
	if c.producer.Enabled() {
		publisher = c.producer
	}

	return commands.NewChangeOrderStatusCommandHandler(f, publisher, c.orderMetrics, c.logger)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetOrderForUpdateQueryHandler() queries.GetOrderForUpdateQueryHandler {
	return queries.NewGetOrderForUpdateQueryHandler(c.gormDB, productrepo.NewGormProductRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderWithHistoryQueryHandler() queries.GetOrderWithHistoryQueryHandler {
	return queries.NewGetOrderWithHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(staleOrderTTL time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCancelStaleOrdersCommandHandler(),
		staleOrderTTL,
		c.orderMetrics,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}
