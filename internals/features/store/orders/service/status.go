package service

import (
	"fmt"

	"tamilmandram_backend/internals/features/store/orders/model"
)

// transitions captures the order-status graph. Terminal states have no
// outgoing edges; metadata edits on terminal orders remain allowed, status
// changes do not.
var transitions = map[string]map[string]struct{}{
	model.StatusPending: {
		model.StatusConfirmed: {},
		model.StatusCancelled: {},
	},
	model.StatusConfirmed: {
		model.StatusProcessing: {},
		model.StatusCancelled:  {},
	},
	model.StatusProcessing: {
		model.StatusShipped:   {},
		model.StatusCancelled: {},
	},
	model.StatusShipped: {
		model.StatusDelivered: {},
	},
	model.StatusDelivered: {
		model.StatusRefunded: {},
	},
}

// IsTerminal reports whether a status permits no further status change
// through the normal flow.
func IsTerminal(status string) bool {
	switch status {
	case model.StatusDelivered, model.StatusCancelled, model.StatusRefunded:
		return true
	}
	return false
}

// CanTransition reports whether current -> next is a legal status move.
// delivered -> refunded is the one edge out of a terminal state.
func CanTransition(current, next string) bool {
	if current == next {
		return false
	}
	nexts, ok := transitions[current]
	if !ok {
		return false
	}
	_, ok = nexts[next]
	return ok
}

// Transition validates and returns the next status, or an error describing
// the rejected move.
func Transition(current, next string) (string, error) {
	if !CanTransition(current, next) {
		return current, fmt.Errorf("cannot move order from %s to %s", current, next)
	}
	return next, nil
}

// CanTransitionPayment guards the independent payment axis:
// pending -> paid|failed, paid -> refunded.
func CanTransitionPayment(current, next string) bool {
	switch current {
	case model.PaymentPending:
		return next == model.PaymentPaid || next == model.PaymentFailed
	case model.PaymentPaid:
		return next == model.PaymentRefunded
	}
	return false
}

// BulkAction names accepted by the bulk endpoint, mapped to target states.
var bulkTargets = map[string]string{
	"confirm": model.StatusConfirmed,
	"ship":    model.StatusShipped,
	"deliver": model.StatusDelivered,
	"cancel":  model.StatusCancelled,
}

// BulkTarget resolves a bulk action name; unknown actions error.
func BulkTarget(action string) (string, error) {
	target, ok := bulkTargets[action]
	if !ok {
		return "", fmt.Errorf("unknown bulk action %q", action)
	}
	return target, nil
}

// BulkResult reports the per-order outcome of a fire-and-collect batch.
type BulkResult struct {
	Updated []string          `json:"updated"`
	Failed  map[string]string `json:"failed"`
}
