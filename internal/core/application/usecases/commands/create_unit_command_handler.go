package commands

import (
	"context"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/unit"
	"parceltrack/internal/core/domain/services"
)

// CreatedUnit identifies a freshly created containment unit.
type CreatedUnit struct {
	ID     kernel.UUID
	Number string
}

func unitNumberPrefix(kind parcel.ContainmentKind) string {
	switch kind {
	case parcel.ContainmentPallet:
		return "PLT"
	case parcel.ContainmentDispatch:
		return "DSP"
	case parcel.ContainmentContainer:
		return "CNT"
	case parcel.ContainmentFlight:
		return "FLT"
	default:
		return ""
	}
}

// CreateUnitCommandHandler creates a containment unit, drawing its number
// from the owner's daily counter so concurrent creations never collide.
type CreateUnitCommandHandler struct {
	uowFactory UnitUoWFactory
}

// NewCreateUnitCommandHandler creates a handler for unit creation.
func NewCreateUnitCommandHandler(uowFactory UnitUoWFactory) CreateUnitCommandHandler {
	return CreateUnitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the new unit's identity.
func (h CreateUnitCommandHandler) Handle(
	ctx context.Context,
	cmd CreateUnitCommand,
) (CreatedUnit, error) {
	if err := cmd.Validate(); err != nil {
		return CreatedUnit{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreatedUnit{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	reserver := services.NewRetryingReserver(uow.CounterRepository())
	seq, err := reserver.Reserve(ctx, cmd.OwnerID(), now, 1)
	if err != nil {
		return CreatedUnit{}, err
	}
	number := fmt.Sprintf("%s%s%05d", unitNumberPrefix(cmd.Kind()), now.Format("060102"), seq)

	id := kernel.NewUUID()
	unitRepo := uow.UnitRepository()
	switch cmd.Kind() {
	case parcel.ContainmentPallet:
		pallet, palletErr := unit.NewPallet(id, number, cmd.OwnerID())
		if palletErr != nil {
			return CreatedUnit{}, palletErr
		}
		err = unitRepo.AddPallet(ctx, pallet)
	case parcel.ContainmentDispatch:
		dispatch, dispatchErr := unit.NewDispatch(id, number, cmd.OwnerID())
		if dispatchErr != nil {
			return CreatedUnit{}, dispatchErr
		}
		err = unitRepo.AddDispatch(ctx, dispatch)
	default:
		transport, transportErr := unit.NewTransportUnit(id, number, cmd.Kind())
		if transportErr != nil {
			return CreatedUnit{}, transportErr
		}
		err = unitRepo.AddTransportUnit(ctx, transport)
	}
	if err != nil {
		return CreatedUnit{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatedUnit{}, err
	}

	return CreatedUnit{ID: id, Number: number}, nil
}
