// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Handlers depend on the narrowest interface that covers the repositories
// they touch.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// UnitRepoFactory provides access to the unit repository within a transaction.
	UnitRepoFactory interface {
		UnitRepository() ports.UnitRepository
	}

	// EventRepoFactory provides access to the event repository within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CounterRepoFactory provides access to the sequence counters within a transaction.
	CounterRepoFactory interface {
		CounterRepository() ports.CounterRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// TransferUoW manages transactions for containment transfers: the parcel,
	// the unit aggregate, the event trail and the order composite move
	// together or not at all.
	TransferUoW interface {
		TxManager
		ParcelRepoFactory
		UnitRepoFactory
		EventRepoFactory
		OrderRepoFactory
	}

	// TransferUoWFactory creates transfer unit of work instances.
	TransferUoWFactory interface {
		Create() TransferUoW
	}

	// IntakeUoW manages transactions for order intake: parcels, their
	// creation events, the order, and the sequence counter behind their
	// tracking codes.
	IntakeUoW interface {
		TxManager
		ParcelRepoFactory
		EventRepoFactory
		OrderRepoFactory
		CounterRepoFactory
	}

	// IntakeUoWFactory creates intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// UnitUoW manages transactions for unit creation, where only the unit
	// and the number counter are touched.
	UnitUoW interface {
		TxManager
		UnitRepoFactory
		CounterRepoFactory
	}

	// UnitUoWFactory creates unit unit of work instances.
	UnitUoWFactory interface {
		Create() UnitUoW
	}

	// DeliveryUoW manages transactions for last-mile operations: the
	// assignment, the parcel, the event trail and the order composite.
	DeliveryUoW interface {
		TxManager
		ParcelRepoFactory
		UnitRepoFactory
		DeliveryRepoFactory
		EventRepoFactory
		OrderRepoFactory
	}

	// DeliveryUoWFactory creates delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
