package services

import (
	"parceltrack/internal/core/domain/model/parcel"
)

// ReduceOrderStatus folds the statuses of an order's parcels into the one
// composite status stored on the order.
//
// Rules, in order:
//   - an empty set reduces to InAgency, the intake status
//   - non-base (partial) statuses are dropped defensively; parcels never
//     carry them
//   - if every parcel holds the same status, that status wins
//   - otherwise the most advanced status present wins; since some parcels
//     lag behind, its partial counterpart is returned when one is defined
//     (mixed InDispatch/InContainer reduces to PartiallyInContainer), and
//     the status itself when none is (mixed InAgency/InWarehouse reduces
//     to InWarehouse)
//
// The function is pure and idempotent: reducing a singleton {s} returns s,
// and the result never depends on input order. Callers persist the result
// onto the order after every parcel mutation, batching once per distinct
// order in bulk operations.
func ReduceOrderStatus(statuses []parcel.Status) parcel.Status {
	var (
		best     parcel.Status
		bestRank int
		count    int
		uniform  = true
		first    parcel.Status
	)

	for _, s := range statuses {
		rank, ok := s.Priority()
		if !ok {
			continue
		}
		if count == 0 {
			first = s
		} else if s != first {
			uniform = false
		}
		count++
		if rank > bestRank {
			best, bestRank = s, rank
		}
	}

	if count == 0 {
		return parcel.InAgency
	}
	if uniform {
		return first
	}
	if partial, ok := best.PartialCounterpart(); ok {
		return partial
	}
	return best
}
