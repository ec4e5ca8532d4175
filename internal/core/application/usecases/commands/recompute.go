package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/unit"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// recomputeOrderStatus reduces the order's parcel statuses and persists the
// composite onto the order. Parcels without an order are skipped.
func recomputeOrderStatus(
	ctx context.Context,
	parcels ports.ParcelRepository,
	orders ports.OrderRepository,
	orderID *kernel.UUID,
) error {
	if orderID == nil {
		return nil
	}

	aggregate, err := orders.Get(ctx, *orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	statuses, err := parcels.GetOrderStatuses(ctx, *orderID)
	if err != nil {
		return err
	}
	if err = aggregate.SetCompositeStatus(services.ReduceOrderStatus(statuses)); err != nil {
		return err
	}

	return orders.Update(ctx, aggregate)
}

// recomputeOrderStatuses batches the reduction once per distinct order,
// as bulk operations require.
func recomputeOrderStatuses(
	ctx context.Context,
	parcels ports.ParcelRepository,
	orders ports.OrderRepository,
	orderIDs map[kernel.UUID]struct{},
) error {
	for orderID := range orderIDs {
		id := orderID
		if err := recomputeOrderStatus(ctx, parcels, orders, &id); err != nil {
			return err
		}
	}
	return nil
}

// resolveContainment loads the containment unit of the given kind and returns
// it behind the shared Containment interface along with the matching update
// function.
func resolveContainment(
	ctx context.Context,
	units ports.UnitRepository,
	kind parcel.ContainmentKind,
	unitID kernel.UUID,
) (unit.Containment, func(context.Context) error, error) {
	switch kind {
	case parcel.ContainmentPallet:
		p, err := units.GetPallet(ctx, unitID)
		if err != nil {
			return nil, nil, err
		}
		return p, func(ctx context.Context) error { return units.UpdatePallet(ctx, p) }, nil
	case parcel.ContainmentDispatch:
		d, err := units.GetDispatch(ctx, unitID)
		if err != nil {
			return nil, nil, err
		}
		return d, func(ctx context.Context) error { return units.UpdateDispatch(ctx, d) }, nil
	case parcel.ContainmentContainer, parcel.ContainmentFlight:
		t, err := units.GetTransportUnit(ctx, unitID)
		if err != nil {
			return nil, nil, err
		}
		if t.Kind() != kind {
			return nil, nil, errs.NewObjectNotFoundError(kind.String(), unitID)
		}
		return t, func(ctx context.Context) error { return units.UpdateTransportUnit(ctx, t) }, nil
	default:
		return nil, nil, errs.NewValueIsInvalidError("unit kind is invalid")
	}
}
