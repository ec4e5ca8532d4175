// Package parcel contains the Parcel aggregate, its status state machine and
// the append-only audit trail.
//
// A parcel is the shippable unit tracked through the pipeline. Its tracking
// code is immutable; every other mutation flows through containment-transfer
// operations that keep the containment reference and the status mutually
// consistent. Events record each transition with actor, resulting status and
// the containment unit that caused it; a fixed visibility table decides which
// events the customer-facing tracking page may show.
package parcel
