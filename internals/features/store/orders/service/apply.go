package service

import (
	"fmt"
	"strings"
	"time"

	"tamilmandram_backend/internals/features/store/orders/dto"
	"tamilmandram_backend/internals/features/store/orders/model"
)

// ApplyAdminUpdate copies a partial admin update onto the order. Status and
// payment moves the transition graphs refuse become no-ops, reported in the
// returned map under "status"/"payment_status"; metadata fields land either
// way, so a terminal order still takes tracking numbers and refund notes.
func ApplyAdminUpdate(order *model.OrderModel, req dto.AdminUpdateOrderRequest) map[string]string {
	rejected := map[string]string{}

	if req.Status != nil {
		next := strings.ToLower(*req.Status)
		if next != order.OrderStatus {
			if CanTransition(order.OrderStatus, next) {
				order.OrderStatus = next
				if next == model.StatusDelivered && order.OrderActualDelivery == nil {
					now := time.Now()
					order.OrderActualDelivery = &now
				}
			} else {
				rejected["status"] = fmt.Sprintf("cannot move from %s to %s", order.OrderStatus, next)
			}
		}
	}

	if req.PaymentStatus != nil {
		next := strings.ToLower(*req.PaymentStatus)
		if next != order.OrderPaymentStatus {
			if CanTransitionPayment(order.OrderPaymentStatus, next) {
				order.OrderPaymentStatus = next
			} else {
				rejected["payment_status"] = fmt.Sprintf("cannot move from %s to %s", order.OrderPaymentStatus, next)
			}
		}
	}

	if req.TrackingNumber != nil {
		order.OrderTrackingNumber = req.TrackingNumber
	}
	if req.ShippingCarrier != nil {
		order.OrderShippingCarrier = req.ShippingCarrier
	}
	if req.EstimatedDelivery != nil {
		order.OrderEstimatedDelivery = req.EstimatedDelivery
	}
	if req.ActualDelivery != nil {
		order.OrderActualDelivery = req.ActualDelivery
	}
	if req.Notes != nil {
		order.OrderNotes = req.Notes
	}
	if req.RefundAmount != nil {
		order.OrderRefundAmount = req.RefundAmount
	}
	if req.RefundReason != nil {
		order.OrderRefundReason = req.RefundReason
	}

	return rejected
}
