package cmd

import (
	"log/slog"

	"foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/in/ws"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/userdirectory"
	"foodorder/internal/core/application/eventhandlers"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/eventbus"
	"foodorder/internal/jobs"
	"foodorder/internal/notifier"

	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: persistence, the live-push
// subsystem, the event bus, and the inbound adapters. One instance is
// built at startup and owns the shared singletons (registry, dispatcher,
// bus); handlers are created per call site.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   *notifier.Registry
	dispatcher *notifier.Dispatcher
	bus        *eventbus.Bus
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	registry := notifier.NewRegistry()

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		dispatcher: notifier.NewDispatcher(registry, logger),
		bus:        eventbus.NewBus(logger),
		logger:     logger,
	}
}

// EventBus returns the in-process bus; the caller owns its Start/Stop
// lifecycle.
func (c *CompositionRoot) EventBus() *eventbus.Bus {
	return c.bus
}

// SubscribeEventHandlers registers the notification pipeline on the bus.
// Must be called before the bus starts.
func (c *CompositionRoot) SubscribeEventHandlers() {
	c.bus.Subscribe(eventhandlers.NewOrderCreatedHandler(
		c.createOrderRepository(),
		userdirectory.NewGormUserDirectory(c.gormDB),
		c.dispatcher,
		c.logger,
	))
	c.bus.Subscribe(eventhandlers.NewOrderStatusChangedHandler(
		c.uowFactory,
		services.NewNotificationComposer(),
		c.dispatcher,
		c.logger,
	))
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST adapter over the command and query handlers.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetNotificationsQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
	)
}

// CreateWSServer builds the WebSocket adapter over the shared registry.
func (c *CompositionRoot) CreateWSServer() *ws.Server {
	return ws.NewServer(c.registry, c.logger)
}

// CreateJobManager builds the scheduled jobs over the read-path order
// repository and the dispatcher.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.createOrderRepository(), c.dispatcher, c.logger)
}

// createOrderRepository returns a read-path repository bound to the base
// connection; a unit of work without Begin never opens a transaction.
func (c *CompositionRoot) createOrderRepository() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
