package cmd

import (
	"log/slog"

	httpin "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires every adapter, handler and job of the application.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) transferUoWFactory() commands.TransferUoWFactory {
	return FuncTransferUoWFactory(func() commands.TransferUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) intakeUoWFactory() commands.IntakeUoWFactory {
	return FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) unitUoWFactory() commands.UnitUoWFactory {
	return FuncUnitUoWFactory(func() commands.UnitUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.intakeUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderParcelsCommandHandler() commands.CreateOrderParcelsCommandHandler {
	return commands.NewCreateOrderParcelsCommandHandler(c.intakeUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.transferUoWFactory())
}

func (c *CompositionRoot) CreateCreateUnitCommandHandler() commands.CreateUnitCommandHandler {
	return commands.NewCreateUnitCommandHandler(c.unitUoWFactory())
}

func (c *CompositionRoot) CreateLoadParcelCommandHandler() commands.LoadParcelCommandHandler {
	return commands.NewLoadParcelCommandHandler(c.transferUoWFactory())
}

func (c *CompositionRoot) CreateUnloadParcelCommandHandler() commands.UnloadParcelCommandHandler {
	return commands.NewUnloadParcelCommandHandler(c.transferUoWFactory())
}

func (c *CompositionRoot) CreateLoadOrderParcelsCommandHandler() commands.LoadOrderParcelsCommandHandler {
	return commands.NewLoadOrderParcelsCommandHandler(c.transferUoWFactory())
}

func (c *CompositionRoot) CreateLoadPalletIntoDispatchCommandHandler() commands.LoadPalletIntoDispatchCommandHandler {
	return commands.NewLoadPalletIntoDispatchCommandHandler(c.transferUoWFactory())
}

func (c *CompositionRoot) CreateSealPalletCommandHandler() commands.SealPalletCommandHandler {
	return commands.NewSealPalletCommandHandler(c.unitUoWFactory())
}

func (c *CompositionRoot) CreateUnsealPalletCommandHandler() commands.UnsealPalletCommandHandler {
	return commands.NewUnsealPalletCommandHandler(c.unitUoWFactory())
}

func (c *CompositionRoot) CreateChangeDispatchStatusCommandHandler() commands.ChangeDispatchStatusCommandHandler {
	return commands.NewChangeDispatchStatusCommandHandler(c.transferUoWFactory())
}

func (c *CompositionRoot) CreateChangeTransportStatusCommandHandler() commands.ChangeTransportStatusCommandHandler {
	return commands.NewChangeTransportStatusCommandHandler(c.transferUoWFactory())
}

func (c *CompositionRoot) CreateReceiveParcelInWarehouseCommandHandler() commands.ReceiveParcelInWarehouseCommandHandler {
	return commands.NewReceiveParcelInWarehouseCommandHandler(c.transferUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateRecordDeliveryAttemptCommandHandler() commands.RecordDeliveryAttemptCommandHandler {
	return commands.NewRecordDeliveryAttemptCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateRetryFailedDeliveriesCommandHandler() commands.RetryFailedDeliveriesCommandHandler {
	return commands.NewRetryFailedDeliveriesCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelHistoryQueryHandler() queries.GetParcelHistoryQueryHandler {
	return queries.NewGetParcelHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnitParcelsQueryHandler() queries.GetUnitParcelsQueryHandler {
	return queries.NewGetUnitParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAggregateDriftQueryHandler() queries.GetAggregateDriftQueryHandler {
	return queries.NewGetAggregateDriftQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the HTTP adapter with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCreateOrderParcelsCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateCreateUnitCommandHandler(),
		c.CreateLoadParcelCommandHandler(),
		c.CreateUnloadParcelCommandHandler(),
		c.CreateLoadOrderParcelsCommandHandler(),
		c.CreateLoadPalletIntoDispatchCommandHandler(),
		c.CreateSealPalletCommandHandler(),
		c.CreateUnsealPalletCommandHandler(),
		c.CreateChangeDispatchStatusCommandHandler(),
		c.CreateChangeTransportStatusCommandHandler(),
		c.CreateReceiveParcelInWarehouseCommandHandler(),
		c.CreateAssignDeliveryCommandHandler(),
		c.CreateRecordDeliveryAttemptCommandHandler(),
		c.CreateTrackParcelQueryHandler(),
		c.CreateGetParcelHistoryQueryHandler(),
		c.CreateGetUnitParcelsQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRetryFailedDeliveriesCommandHandler(),
		c.CreateGetAggregateDriftQueryHandler(),
		logger,
	)
}

type FuncTransferUoWFactory func() commands.TransferUoW

func (f FuncTransferUoWFactory) Create() commands.TransferUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncUnitUoWFactory func() commands.UnitUoW

func (f FuncUnitUoWFactory) Create() commands.UnitUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
