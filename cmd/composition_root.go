package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	httpin "laundry/internal/adapters/in/http"
	kafkaout "laundry/internal/adapters/out/kafka"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/domain/services"
	"laundry/internal/jobs"
	"laundry/internal/pkg/cache"
	"laundry/internal/pkg/errs"
)

const (
	statsCacheTTL          = 30 * time.Second
	unassignedOrderMaxWait = 30 * time.Minute
	serviceName            = "laundry"
)

// CompositionRoot wires adapters into use case handlers. One instance lives
// for the process lifetime; handlers it creates are cheap and safe to build
// per call site.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.AccessPolicy
	publisher  *kafkaout.OrderEventPublisher
	statsCache cache.Cache
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewAccessPolicy(),
		publisher:  kafkaout.NewOrderEventPublisher(config.KafkaHost, config.KafkaOrderChangedTopic),
		logger:     logger,
	}

	if config.RedisAddr != "" {
		root.statsCache = cache.NewRedisCache(config.RedisAddr, serviceName)
	}

	if root.publisher.Enabled() {
		logger.Info("Order event publishing enabled", "topic", config.KafkaOrderChangedTopic)
	} else {
		logger.Info("Order event publishing disabled, no Kafka broker configured")
	}

	return root
}

// Close releases outbound connections.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderCatalogUoWFactory = FuncOrderCatalogUoWFactory(func() commands.OrderCatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, kernel.Money(c.config.DeliveryCharge))
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.policy, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAssignDeliveryPersonCommandHandler() commands.AssignDeliveryPersonCommandHandler {
	var f commands.OrderUserUoWFactory = FuncOrderUserUoWFactory(func() commands.OrderUserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryPersonCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetAssignedOrdersQueryHandler() queries.GetAssignedOrdersQueryHandler {
	return queries.NewGetAssignedOrdersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.gormDB, c.policy)
}

// CreateOrderStatsHandler returns the fleet stats handler, wrapped with the
// Redis cache when one is configured.
func (c *CompositionRoot) CreateOrderStatsHandler() queries.OrderStatsHandler {
	base := queries.NewGetOrderStatsQueryHandler(c.gormDB, c.policy)
	if c.statsCache == nil {
		return base
	}
	return queries.NewCachedOrderStatsQueryHandler(base, c.policy, c.statsCache, statsCacheTTL, c.logger)
}

func (c *CompositionRoot) CreateGetDeliveryStatsQueryHandler() queries.GetDeliveryStatsQueryHandler {
	return queries.NewGetDeliveryStatsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateTokenService() *httpin.TokenService {
	return httpin.NewTokenService(c.config.AuthSecretKey)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateAssignDeliveryPersonCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		c.CreateGetAssignedOrdersQueryHandler(),
		c.CreateGetUnassignedOrdersQueryHandler(),
		c.CreateOrderStatsHandler(),
		c.CreateGetDeliveryStatsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(systemAdmin user.Actor) *jobs.JobManager {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return jobs.NewJobManager(f, c.CreateOrderStatsHandler(), systemAdmin, unassignedOrderMaxWait, c.logger)
}

// SeedSystemAdmin ensures the configured administrator account exists and
// returns its acting identity. The account id is fixed through configuration
// so restarts reuse the same row.
func (c *CompositionRoot) SeedSystemAdmin(ctx context.Context) (user.Actor, error) {
	adminID, err := kernel.UUIDFromString(c.config.AdminUserID)
	if err != nil {
		return user.Actor{}, fmt.Errorf("invalid ADMIN_USER_ID: %w", err)
	}

	uow := c.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return user.Actor{}, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	_, err = uow.UserRepository().Get(ctx, adminID)
	switch {
	case err == nil:
		// Already seeded.
	case errors.Is(err, errs.ErrObjectNotFound):
		admin, userErr := user.NewUser(adminID, "System Administrator", "", user.RoleAdmin)
		if userErr != nil {
			return user.Actor{}, userErr
		}
		if err = uow.UserRepository().Add(ctx, admin); err != nil {
			return user.Actor{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return user.Actor{}, err
		}
		c.logger.InfoContext(ctx, "System administrator seeded", "user_id", adminID.String())
	default:
		return user.Actor{}, err
	}

	return user.NewActor(adminID, user.RoleAdmin)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderCatalogUoWFactory func() commands.OrderCatalogUoW

func (f FuncOrderCatalogUoWFactory) Create() commands.OrderCatalogUoW {
	return f()
}

type FuncOrderUserUoWFactory func() commands.OrderUserUoW

func (f FuncOrderUserUoWFactory) Create() commands.OrderUserUoW {
	return f()
}
