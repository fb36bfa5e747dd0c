package service

import (
	"testing"

	"tamilmandram_backend/internals/features/store/orders/model"
)

func TestTransitionGraph(t *testing.T) {
	allowed := []struct{ from, to string }{
		{model.StatusPending, model.StatusConfirmed},
		{model.StatusPending, model.StatusCancelled},
		{model.StatusConfirmed, model.StatusProcessing},
		{model.StatusConfirmed, model.StatusCancelled},
		{model.StatusProcessing, model.StatusShipped},
		{model.StatusProcessing, model.StatusCancelled},
		{model.StatusShipped, model.StatusDelivered},
		{model.StatusDelivered, model.StatusRefunded},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	forbidden := []struct{ from, to string }{
		{model.StatusPending, model.StatusShipped},
		{model.StatusPending, model.StatusDelivered},
		{model.StatusShipped, model.StatusCancelled},
		{model.StatusCancelled, model.StatusConfirmed},
		{model.StatusRefunded, model.StatusPending},
		{model.StatusDelivered, model.StatusShipped},
		{model.StatusPending, model.StatusPending},
	}
	for _, tc := range forbidden {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be rejected", tc.from, tc.to)
		}
	}
}

func TestTerminalStatesStayTerminal(t *testing.T) {
	for _, terminal := range []string{model.StatusCancelled, model.StatusRefunded} {
		for _, next := range []string{
			model.StatusPending, model.StatusConfirmed, model.StatusProcessing,
			model.StatusShipped, model.StatusDelivered,
		} {
			if CanTransition(terminal, next) {
				t.Errorf("terminal %s must not move to %s", terminal, next)
			}
		}
	}
	// delivered is terminal except for the refund edge
	if !IsTerminal(model.StatusDelivered) {
		t.Error("delivered should count as terminal")
	}
	if !CanTransition(model.StatusDelivered, model.StatusRefunded) {
		t.Error("delivered -> refunded is the one permitted exit")
	}
}

func TestTransitionReturnsCurrentOnFailure(t *testing.T) {
	got, err := Transition(model.StatusCancelled, model.StatusShipped)
	if err == nil {
		t.Fatal("expected error")
	}
	if got != model.StatusCancelled {
		t.Fatalf("failed transition must keep current status, got %s", got)
	}
}

func TestPaymentAxis(t *testing.T) {
	if !CanTransitionPayment(model.PaymentPending, model.PaymentPaid) {
		t.Error("pending -> paid should be allowed")
	}
	if !CanTransitionPayment(model.PaymentPending, model.PaymentFailed) {
		t.Error("pending -> failed should be allowed")
	}
	if !CanTransitionPayment(model.PaymentPaid, model.PaymentRefunded) {
		t.Error("paid -> refunded should be allowed")
	}
	if CanTransitionPayment(model.PaymentFailed, model.PaymentPaid) {
		t.Error("failed is terminal on the payment axis")
	}
	if CanTransitionPayment(model.PaymentRefunded, model.PaymentPaid) {
		t.Error("refunded is terminal on the payment axis")
	}
}

func TestBulkTarget(t *testing.T) {
	for action, want := range map[string]string{
		"confirm": model.StatusConfirmed,
		"ship":    model.StatusShipped,
		"deliver": model.StatusDelivered,
		"cancel":  model.StatusCancelled,
	} {
		got, err := BulkTarget(action)
		if err != nil || got != want {
			t.Errorf("BulkTarget(%q) = %q, %v", action, got, err)
		}
	}
	if _, err := BulkTarget("explode"); err == nil {
		t.Error("unknown action must error")
	}
}
