// Package order provides the Order aggregate: a customer shipment grouping
// parcels booked together by one agency.
//
// The order has no lifecycle of its own. Its status is a composite reduced
// from the statuses of its parcels (see services.ReduceOrderStatus) and is
// recomputed after every parcel mutation, so the Partially* statuses appear
// only here, never on an individual parcel.
package order
