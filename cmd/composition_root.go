package cmd

import (
	"fieldservice/internal/adapters/out/postgres"
	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into command and query handlers. Each
// service builds only the handlers its server needs.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	directory  ports.TechnicianDirectory
	notifier   ports.ChangeNotifier
	logger     *zap.Logger
}

// NewCompositionRoot builds the root over the shared adapters. The directory
// gateway and notifier may be nil for services that never touch them.
func NewCompositionRoot(
	gormDB *gorm.DB,
	directory ports.TechnicianDirectory,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  directory,
		notifier:   notifier,
		logger:     logger,
	}
}

// CreateWorkOrderUoWFactory exposes the narrow work-order factory, used by
// the background assignment job for its pending-pool reads.
func (c *CompositionRoot) CreateWorkOrderUoWFactory() commands.WorkOrderUoWFactory {
	return FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createTechnicianUoWFactory() commands.TechnicianUoWFactory {
	return FuncTechnicianUoWFactory(func() commands.TechnicianUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	return commands.NewCreateWorkOrderCommandHandler(c.CreateWorkOrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateUpdateWorkOrderCommandHandler() commands.UpdateWorkOrderCommandHandler {
	return commands.NewUpdateWorkOrderCommandHandler(c.CreateWorkOrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateDeleteWorkOrderCommandHandler() commands.DeleteWorkOrderCommandHandler {
	return commands.NewDeleteWorkOrderCommandHandler(c.CreateWorkOrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAssignWorkOrderCommandHandler() commands.AssignWorkOrderCommandHandler {
	return commands.NewAssignWorkOrderCommandHandler(
		c.CreateWorkOrderUoWFactory(), c.directory, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUnassignWorkOrderCommandHandler() commands.UnassignWorkOrderCommandHandler {
	return commands.NewUnassignWorkOrderCommandHandler(
		c.CreateWorkOrderUoWFactory(), c.directory, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateChangeWorkOrderStatusCommandHandler() commands.ChangeWorkOrderStatusCommandHandler {
	return commands.NewChangeWorkOrderStatusCommandHandler(c.CreateWorkOrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateTechnicianCommandHandler() commands.CreateTechnicianCommandHandler {
	return commands.NewCreateTechnicianCommandHandler(c.createTechnicianUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTechnicianCommandHandler() commands.UpdateTechnicianCommandHandler {
	return commands.NewUpdateTechnicianCommandHandler(c.createTechnicianUoWFactory())
}

func (c *CompositionRoot) CreateDeleteTechnicianCommandHandler() commands.DeleteTechnicianCommandHandler {
	return commands.NewDeleteTechnicianCommandHandler(c.createTechnicianUoWFactory())
}

func (c *CompositionRoot) CreateChangeTechnicianStatusCommandHandler() commands.ChangeTechnicianStatusCommandHandler {
	return commands.NewChangeTechnicianStatusCommandHandler(c.createTechnicianUoWFactory())
}

func (c *CompositionRoot) CreateChangeTechnicianLocationCommandHandler() commands.ChangeTechnicianLocationCommandHandler {
	return commands.NewChangeTechnicianLocationCommandHandler(c.createTechnicianUoWFactory())
}

func (c *CompositionRoot) CreateGetWorkOrdersQueryHandler() queries.GetWorkOrdersQueryHandler {
	return queries.NewGetWorkOrdersQueryHandler(c.gormDB, c.directory, c.logger)
}

func (c *CompositionRoot) CreateGetWorkOrderQueryHandler() queries.GetWorkOrderQueryHandler {
	return queries.NewGetWorkOrderQueryHandler(c.gormDB, c.directory, c.logger)
}

func (c *CompositionRoot) CreateGetStatusCountsQueryHandler() queries.GetStatusCountsQueryHandler {
	return queries.NewGetStatusCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTechnicianCountsQueryHandler() queries.GetTechnicianCountsQueryHandler {
	return queries.NewGetTechnicianCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTechniciansQueryHandler() queries.GetTechniciansQueryHandler {
	return queries.NewGetTechniciansQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTechnicianStatusCountsQueryHandler() queries.GetTechnicianStatusCountsQueryHandler {
	return queries.NewGetTechnicianStatusCountsQueryHandler(c.gormDB)
}

// CreateTechnicianRepository returns a repository bound to the root's
// connection, outside any unit of work. The directory server uses it for
// single reads and matching.
func (c *CompositionRoot) CreateTechnicianRepository() ports.TechnicianRepository {
	return c.uowFactory.Create().TechnicianRepository()
}

// FuncWorkOrderUoWFactory adapts a closure to commands.WorkOrderUoWFactory.
type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

// FuncTechnicianUoWFactory adapts a closure to commands.TechnicianUoWFactory.
type FuncTechnicianUoWFactory func() commands.TechnicianUoW

func (f FuncTechnicianUoWFactory) Create() commands.TechnicianUoW {
	return f()
}
