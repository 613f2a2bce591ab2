package services

import (
	"github.com/solocoffee/pos-api/apperrors"
	"github.com/solocoffee/pos-api/models"
)

// allowedTransitions is the complete legal edge set of the order lifecycle.
// Any (from, to) pair outside this map is rejected.
var allowedTransitions = map[models.OrderStatus]map[models.OrderStatus]bool{
	models.StatusPendingPayment: {
		models.StatusInProduction: true,
		models.StatusCancelled:    true,
	},
	models.StatusInProduction: {
		models.StatusCompleted: true,
		models.StatusCancelled: true,
	},
	models.StatusCompleted: {
		models.StatusRefunded: true,
	},
	models.StatusCancelled: {},
	models.StatusRefunded:  {},
}

// CanTransition reports whether the order lifecycle permits moving
// from one status to another.
func CanTransition(from, to models.OrderStatus) bool {
	return allowedTransitions[from][to]
}

// TransitionOrder moves the order to the target status after checking edge
// membership. On an illegal edge the order is left unchanged.
func TransitionOrder(order *models.Order, target models.OrderStatus) error {
	if !CanTransition(order.Status, target) {
		return apperrors.Newf(apperrors.CodeInvalidOrderStatus,
			"invalid order status transition: %s -> %s", order.Status, target)
	}
	order.Status = target
	return nil
}

// IsTerminalStatus reports whether no further transition is possible.
func IsTerminalStatus(status models.OrderStatus) bool {
	return len(allowedTransitions[status]) == 0
}
