// Package transfer holds pure domain logic for material transfers.
package transfer

import "github.com/sitestock/sitestock-api/internal/domain/entity"

// transitions is the allowed status graph. DELIVERED, REJECTED and
// CANCELLED are terminal.
var transitions = map[string][]string{
	entity.TransferStatusPending: {
		entity.TransferStatusInTransit,
		entity.TransferStatusRejected,
		entity.TransferStatusCancelled,
	},
	entity.TransferStatusInTransit: {
		entity.TransferStatusDelivered,
		entity.TransferStatusCancelled,
	},
	entity.TransferStatusDelivered: {},
	entity.TransferStatusRejected:  {},
	entity.TransferStatusCancelled: {},
}

// ValidStatus reports whether s is a known transfer status.
func ValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether s admits no further transitions.
func IsTerminal(s string) bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransition reports whether a transfer may move from one status to
// another. Staying on the same status is always allowed (metadata updates
// carry the current status unchanged).
func CanTransition(from, to string) bool {
	if !ValidStatus(from) || !ValidStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
