// Package unit contains the containment unit aggregates: Pallet, Dispatch,
// TransportUnit (sea container or air flight) and Warehouse.
//
// Every exclusive containment unit follows the same transfer protocol,
// exposed through the Containment interface: it checks the parcel against its
// entry allow-list and its own accepting state, attaches the parcel, and
// updates its running aggregates incrementally. Aggregates are never
// recomputed from scratch on the hot path; the invariant that a unit's
// aggregate equals the sum over currently attached parcels is maintained by
// mirrored Accept/Release operations and audited off-line by a background job.
//
// Warehouse is a custody unit, not an exclusive containment. Custody ends
// when a parcel is loaded into a transport unit, delivered, or deleted with
// its order; the warehouse settles its aggregates through ReleaseCustody in
// the same transaction.
package unit
