package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// LoadPalletIntoDispatchCommandHandler loads a sealed pallet into a dispatch.
// Every parcel on the pallet is re-homed: its containment reference moves to
// the dispatch and the pallet's aggregates drain to zero, keeping both the
// one-unit-per-parcel rule and the aggregate sums intact. The pallet records
// the dispatch, which blocks unsealing from then on.
type LoadPalletIntoDispatchCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewLoadPalletIntoDispatchCommandHandler creates a handler for pallet loads.
func NewLoadPalletIntoDispatchCommandHandler(
	uowFactory TransferUoWFactory,
) LoadPalletIntoDispatchCommandHandler {
	return LoadPalletIntoDispatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pallet-into-dispatch command.
func (h LoadPalletIntoDispatchCommandHandler) Handle(
	ctx context.Context,
	cmd LoadPalletIntoDispatchCommand,
) (BulkResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BulkResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	unitRepo := uow.UnitRepository()
	eventRepo := uow.EventRepository()

	pallet, err := unitRepo.GetPallet(ctx, cmd.PalletID())
	if err != nil {
		return BulkResult{}, err
	}
	dispatch, err := unitRepo.GetDispatch(ctx, cmd.DispatchID())
	if err != nil {
		return BulkResult{}, err
	}
	if !pallet.AgencyID().IsEqual(dispatch.AgencyID()) {
		return BulkResult{}, errs.NewValueIsInvalidErrorWithCause("agency mismatch",
			fmt.Errorf("pallet %s belongs to a different agency than dispatch %s",
				pallet.Number(), dispatch.Number()))
	}

	if err = pallet.AttachToDispatch(dispatch.ID()); err != nil {
		return BulkResult{}, err
	}

	parcels, err := parcelRepo.GetByUnit(ctx, parcel.ContainmentPallet, cmd.PalletID())
	if err != nil {
		return BulkResult{}, err
	}

	var result BulkResult
	affectedOrders := make(map[kernel.UUID]struct{})
	for _, target := range parcels {
		if err = pallet.ReleaseForDispatch(target); err != nil {
			return BulkResult{}, err
		}
		eventType, err := dispatch.Accept(target)
		if err != nil {
			return BulkResult{}, err
		}
		if err = parcelRepo.Update(ctx, target); err != nil {
			return BulkResult{}, err
		}

		dispatchID := dispatch.ID()
		event, err := parcel.NewEvent(
			target.ID(), eventType, target.Status(), cmd.ActorID(),
			fmt.Sprintf("Loaded in Dispatch %s from pallet %s", dispatch.Number(), pallet.Number()),
			parcel.ContainmentDispatch, &dispatchID,
		)
		if err != nil {
			return BulkResult{}, err
		}
		if err = eventRepo.Append(ctx, event); err != nil {
			return BulkResult{}, err
		}

		if target.OrderID() != nil {
			affectedOrders[*target.OrderID()] = struct{}{}
		}
		result.Loaded++
	}

	if err = unitRepo.UpdatePallet(ctx, pallet); err != nil {
		return BulkResult{}, err
	}
	if err = unitRepo.UpdateDispatch(ctx, dispatch); err != nil {
		return BulkResult{}, err
	}
	if err = recomputeOrderStatuses(ctx, parcelRepo, uow.OrderRepository(), affectedOrders); err != nil {
		return BulkResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return BulkResult{}, err
	}

	return result, nil
}
