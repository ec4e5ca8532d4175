// Package delivery holds the last-mile aggregates: DeliveryRoute, a courier's
// planned run for a day, and DeliveryAssignment, the one-per-parcel record of
// a delivery attempt chain ending in proof of delivery or failure.
package delivery
