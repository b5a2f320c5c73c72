package cmd

import (
	"log/slog"
	"time"

	"parcel/internal/adapters/out/postgres"
	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/geography"
	"parcel/internal/core/domain/services"
	"parcel/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	directory  *geography.Directory
	calculator *services.TariffCalculator
	draftAge   time.Duration
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, directory *geography.Directory) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  directory,
		calculator: services.NewTariffCalculator(directory),
		draftAge:   config.DraftReminderAge,
	}
}

func (c *CompositionRoot) Directory() *geography.Directory {
	return c.directory
}

func (c *CompositionRoot) TariffCalculator() *services.TariffCalculator {
	return c.calculator
}

func (c *CompositionRoot) CreateStageParcelCommandHandler() commands.StageParcelCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStageParcelCommandHandler(f, c.calculator, c.directory)
}

func (c *CompositionRoot) CreateGetRegionsQueryHandler() queries.GetRegionsQueryHandler {
	return queries.NewGetRegionsQueryHandler(c.directory)
}

func (c *CompositionRoot) CreateGetServiceCentersQueryHandler() queries.GetServiceCentersQueryHandler {
	return queries.NewGetServiceCentersQueryHandler(c.directory)
}

func (c *CompositionRoot) CreateGetStagedParcelsQueryHandler() queries.GetStagedParcelsQueryHandler {
	return queries.NewGetStagedParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStagedParcelsQueryHandler(), c.draftAge, logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
