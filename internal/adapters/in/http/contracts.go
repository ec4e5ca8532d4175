package http

import (
	"fmt"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/unit"
	"parceltrack/internal/pkg/errs"
)

// Error is the uniform problem payload returned on every failure.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest opens an empty order at an agency.
type CreateOrderRequest struct {
	AgencyID     string `json:"agencyId"`
	CustomerName string `json:"customerName"`
	Service      string `json:"service"`
}

// CreatedOrderResponse identifies a freshly opened order.
type CreatedOrderResponse struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

// IntakeItem is one manifest line of an intake request.
type IntakeItem struct {
	Description string `json:"description"`
	Weight      string `json:"weight"`
}

// IntakeRequest adds parcels to an existing order.
type IntakeRequest struct {
	AgencyCode string       `json:"agencyCode"`
	ActorID    string       `json:"actorId"`
	Items      []IntakeItem `json:"items"`
}

// IntakeResponse returns the issued tracking codes in item order.
type IntakeResponse struct {
	TrackingCodes []string `json:"trackingCodes"`
}

// CreateUnitRequest creates a containment unit.
type CreateUnitRequest struct {
	Kind    string `json:"kind"`
	OwnerID string `json:"ownerId"`
}

// CreatedUnitResponse identifies a freshly created unit.
type CreatedUnitResponse struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

// LoadParcelRequest attaches one parcel to a unit.
type LoadParcelRequest struct {
	TrackingCode string `json:"trackingCode"`
	ActorID      string `json:"actorId"`
}

// LoadOrderRequest loads every eligible parcel of an order into a unit.
type LoadOrderRequest struct {
	OrderID string `json:"orderId"`
	ActorID string `json:"actorId"`
}

// LoadPalletRequest loads a sealed pallet's parcels into a dispatch.
type LoadPalletRequest struct {
	PalletID string `json:"palletId"`
	ActorID  string `json:"actorId"`
}

// BulkResponse reports a bulk transfer outcome.
type BulkResponse struct {
	Loaded  int `json:"loaded"`
	Skipped int `json:"skipped"`
}

// ChangeStatusRequest advances a dispatch or transport unit through its
// lifecycle. WarehouseID is required only for the statuses that hand
// parcels into warehouse custody.
type ChangeStatusRequest struct {
	Status      string `json:"status"`
	WarehouseID string `json:"warehouseId,omitempty"`
	ActorID     string `json:"actorId"`
}

// ReceiveParcelRequest takes one parcel into warehouse custody.
type ReceiveParcelRequest struct {
	TrackingCode string `json:"trackingCode"`
	ActorID      string `json:"actorId"`
}

// AssignDeliveryRequest books a parcel for last-mile delivery, either on a
// route or directly to a courier.
type AssignDeliveryRequest struct {
	TrackingCode string `json:"trackingCode"`
	RouteID      string `json:"routeId,omitempty"`
	CourierID    string `json:"courierId,omitempty"`
	ActorID      string `json:"actorId"`
}

// RecordAttemptRequest records the outcome of one delivery attempt.
type RecordAttemptRequest struct {
	TrackingCode  string `json:"trackingCode"`
	Delivered     bool   `json:"delivered"`
	RecipientName string `json:"recipientName,omitempty"`
	Note          string `json:"note,omitempty"`
	ActorID       string `json:"actorId"`
}

// ParcelResponse is the tracking projection of one parcel.
type ParcelResponse struct {
	ID              string  `json:"id"`
	TrackingCode    string  `json:"trackingCode"`
	Description     string  `json:"description"`
	Weight          string  `json:"weight"`
	Service         string  `json:"service"`
	AgencyID        string  `json:"agencyId"`
	OrderID         *string `json:"orderId,omitempty"`
	Status          string  `json:"status"`
	StatusDetail    string  `json:"statusDetail,omitempty"`
	ContainmentKind string  `json:"containmentKind"`
	ContainmentID   *string `json:"containmentId,omitempty"`
}

// HistoryEntryResponse is one event of a parcel's trail.
type HistoryEntryResponse struct {
	EventType       string  `json:"eventType"`
	ResultingStatus string  `json:"resultingStatus"`
	Message         string  `json:"message"`
	UnitKind        string  `json:"unitKind,omitempty"`
	UnitID          *string `json:"unitId,omitempty"`
	OccurredAt      string  `json:"occurredAt"`
}

// UnitParcelResponse is the compact projection of one attached parcel.
type UnitParcelResponse struct {
	ID           string `json:"id"`
	TrackingCode string `json:"trackingCode"`
	Description  string `json:"description"`
	Weight       string `json:"weight"`
	Service      string `json:"service"`
	Status       string `json:"status"`
}

// parseContainmentKind resolves the :kind path segment. Only real unit kinds
// are addressable over the API.
func parseContainmentKind(s string) (parcel.ContainmentKind, error) {
	switch s {
	case "pallets":
		return parcel.ContainmentPallet, nil
	case "dispatches":
		return parcel.ContainmentDispatch, nil
	case "containers":
		return parcel.ContainmentContainer, nil
	case "flights":
		return parcel.ContainmentFlight, nil
	default:
		return parcel.ContainmentNone, errs.NewValueIsInvalidErrorWithCause("unit kind is invalid",
			fmt.Errorf("%q is not a unit kind", s))
	}
}

func parseServiceKind(s string) (parcel.ServiceKind, error) {
	switch s {
	case "Maritime":
		return parcel.ServiceMaritime, nil
	case "Air":
		return parcel.ServiceAir, nil
	default:
		return parcel.ServiceUnknown, errs.NewValueIsInvalidErrorWithCause("service is invalid",
			fmt.Errorf("%q is not a service kind", s))
	}
}

func parseDispatchStatus(s string) (unit.DispatchStatus, error) {
	switch s {
	case "InTransit":
		return unit.DispatchInTransit, nil
	case "Received":
		return unit.DispatchReceived, nil
	default:
		return unit.DispatchUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%q is not a reachable dispatch status", s))
	}
}

func parseTransportStatus(s string) (unit.TransportStatus, error) {
	statuses := map[string]unit.TransportStatus{
		"Departed":       unit.TransportDeparted,
		"InTransit":      unit.TransportInTransit,
		"Arrived":        unit.TransportArrived,
		"CustomsHold":    unit.TransportCustomsHold,
		"CustomsCleared": unit.TransportCustomsCleared,
		"Unloading":      unit.TransportUnloading,
	}
	if status, ok := statuses[s]; ok {
		return status, nil
	}
	return unit.TransportUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a reachable transport status", s))
}
