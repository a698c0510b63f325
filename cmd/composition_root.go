package cmd

import (
	"log/slog"
	"os"

	"ironweb/internal/adapters/out/postgres"
	"ironweb/internal/core/application/usecases/commands"
	"ironweb/internal/core/application/usecases/queries"
	"ironweb/internal/core/domain/services"
	"ironweb/internal/core/ports"
	"ironweb/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	planner    services.SlotPlanner
	pricing    services.PricingService
	clock      ports.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		planner:    services.NewSlotPlanner(),
		pricing:    services.NewPricingService(),
		clock:      ports.SystemClock{},
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.planner, c.pricing, c.clock)
}

func (c *CompositionRoot) CreateAdvanceOrderStepCommandHandler() commands.AdvanceOrderStepCommandHandler {
	return commands.NewAdvanceOrderStepCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	return commands.NewAssignAgentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSwapAgentOrdersCommandHandler() commands.SwapAgentOrdersCommandHandler {
	return commands.NewSwapAgentOrdersCommandHandler(c.sequenceUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateLockAgentSequenceCommandHandler() commands.LockAgentSequenceCommandHandler {
	return commands.NewLockAgentSequenceCommandHandler(c.sequenceUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUnlockAgentSequenceCommandHandler() commands.UnlockAgentSequenceCommandHandler {
	return commands.NewUnlockAgentSequenceCommandHandler(c.sequenceUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreatePurgeExpiredSequencesCommandHandler() commands.PurgeExpiredSequencesCommandHandler {
	return commands.NewPurgeExpiredSequencesCommandHandler(c.sequenceUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateListBookableItemsQueryHandler() queries.ListBookableItemsQueryHandler {
	return queries.NewListBookableItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableSlotsQueryHandler() queries.GetAvailableSlotsQueryHandler {
	return queries.NewGetAvailableSlotsQueryHandler(c.planner, c.clock)
}

func (c *CompositionRoot) CreateGetPriceQuoteQueryHandler() queries.GetPriceQuoteQueryHandler {
	return queries.NewGetPriceQuoteQueryHandler(c.gormDB, c.pricing)
}

func (c *CompositionRoot) CreateGetAgentOrdersQueryHandler() queries.GetAgentOrdersQueryHandler {
	return queries.NewGetAgentOrdersQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreatePurgeExpiredSequencesCommandHandler(), c.logger)
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) sequenceUoWFactory() commands.SequenceUoWFactory {
	return FuncSequenceUoWFactory(func() commands.SequenceUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncSequenceUoWFactory func() commands.SequenceUoW

func (f FuncSequenceUoWFactory) Create() commands.SequenceUoW {
	return f()
}
