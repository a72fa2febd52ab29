package cmd

import (
	"log/slog"

	"fooddelivery/internal/adapters/out/eventbus"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/outboxrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSendOrderCommandHandler() commands.SendOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateFoodItemCommandHandler() commands.CreateFoodItemCommandHandler {
	var f commands.FoodItemUoWFactory = FuncFoodItemUoWFactory(func() commands.FoodItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateFoodItemCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteFoodItemCommandHandler() commands.DeleteFoodItemCommandHandler {
	var f commands.FoodItemUoWFactory = FuncFoodItemUoWFactory(func() commands.FoodItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteFoodItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewAccountCommandHandler() commands.ReviewAccountCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

// CreateUserRepository returns a repository bound to the main connection, for
// reads outside any unit of work (login, authentication middleware).
func (c *CompositionRoot) CreateUserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(c.gormDB, noopTracker{})
}

// CreateEventDispatcher builds the in-process dispatcher with the default
// subscribers attached.
func (c *CompositionRoot) CreateEventDispatcher() *eventbus.Dispatcher {
	dispatcher := eventbus.NewDispatcher(c.logger)
	eventbus.SubscribeOrderLogging(dispatcher, c.logger)
	return dispatcher
}

// CreateJobManager builds the background jobs: the outbox drain feeding the
// event dispatcher.
func (c *CompositionRoot) CreateJobManager(publisher ports.EventPublisher) *jobs.JobManager {
	outbox := outboxrepo.NewGormOutboxRepository(c.gormDB)
	return jobs.NewJobManager(outbox, publisher, c.logger)
}

// noopTracker satisfies the repositories' tracker dependency for reads that
// happen outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFoodItemUoWFactory func() commands.FoodItemUoW

func (f FuncFoodItemUoWFactory) Create() commands.FoodItemUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
