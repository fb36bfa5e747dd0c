package service

import (
	"testing"

	"tamilmandram_backend/internals/features/store/orders/dto"
	"tamilmandram_backend/internals/features/store/orders/model"
)

func strPtr(s string) *string { return &s }

func TestApplyAdminUpdateLegalTransition(t *testing.T) {
	o := model.OrderModel{OrderStatus: model.StatusPending, OrderPaymentStatus: model.PaymentPending}

	rejected := ApplyAdminUpdate(&o, dto.AdminUpdateOrderRequest{
		Status:        strPtr(model.StatusConfirmed),
		PaymentStatus: strPtr(model.PaymentPaid),
	})
	if len(rejected) != 0 {
		t.Fatalf("legal transitions should not be rejected: %v", rejected)
	}
	if o.OrderStatus != model.StatusConfirmed || o.OrderPaymentStatus != model.PaymentPaid {
		t.Fatalf("transitions not applied: %s / %s", o.OrderStatus, o.OrderPaymentStatus)
	}
}

func TestApplyAdminUpdateTerminalKeepsMetadata(t *testing.T) {
	o := model.OrderModel{OrderStatus: model.StatusCancelled, OrderPaymentStatus: model.PaymentPending}

	rejected := ApplyAdminUpdate(&o, dto.AdminUpdateOrderRequest{
		Status: strPtr(model.StatusShipped),
		Notes:  strPtr("customer called, order stays cancelled"),
	})
	if o.OrderStatus != model.StatusCancelled {
		t.Fatalf("terminal order must not change status, got %s", o.OrderStatus)
	}
	if _, ok := rejected["status"]; !ok {
		t.Fatal("refused transition must be reported")
	}
	if o.OrderNotes == nil || *o.OrderNotes != "customer called, order stays cancelled" {
		t.Fatal("metadata must still land when the status move is refused")
	}
}

func TestApplyAdminUpdateDeliveredStampsActualDelivery(t *testing.T) {
	o := model.OrderModel{OrderStatus: model.StatusShipped, OrderPaymentStatus: model.PaymentPaid}

	rejected := ApplyAdminUpdate(&o, dto.AdminUpdateOrderRequest{Status: strPtr(model.StatusDelivered)})
	if len(rejected) != 0 {
		t.Fatalf("shipped -> delivered should be legal: %v", rejected)
	}
	if o.OrderActualDelivery == nil {
		t.Fatal("delivery should stamp the actual delivery time")
	}
}

func TestApplyAdminUpdateIllegalPaymentMove(t *testing.T) {
	o := model.OrderModel{OrderStatus: model.StatusPending, OrderPaymentStatus: model.PaymentPending}

	tracking := "TM-99"
	rejected := ApplyAdminUpdate(&o, dto.AdminUpdateOrderRequest{
		PaymentStatus:  strPtr(model.PaymentRefunded),
		TrackingNumber: &tracking,
	})
	if o.OrderPaymentStatus != model.PaymentPending {
		t.Fatalf("pending payment cannot refund, got %s", o.OrderPaymentStatus)
	}
	if _, ok := rejected["payment_status"]; !ok {
		t.Fatal("refused payment move must be reported")
	}
	if o.OrderTrackingNumber == nil || *o.OrderTrackingNumber != "TM-99" {
		t.Fatal("metadata must still land")
	}
}
