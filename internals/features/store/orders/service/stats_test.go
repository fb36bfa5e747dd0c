package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"tamilmandram_backend/internals/features/store/orders/model"
)

func order(status, payment string, total string, items ...model.OrderItemModel) model.OrderModel {
	amount, _ := decimal.NewFromString(total)
	return model.OrderModel{
		OrderStatus:        status,
		OrderPaymentStatus: payment,
		OrderFinalAmount:   amount,
		Items:              items,
	}
}

func item(bookID string, qty int) model.OrderItemModel {
	return model.OrderItemModel{
		OrderItemBookID: bookID,
		OrderItemQty:    qty,
		OrderItemTitle:  datatypes.JSON([]byte(`{"en":"` + bookID + `","ta":""}`)),
	}
}

func TestRevenueExcludesUnpaid(t *testing.T) {
	orders := []model.OrderModel{
		order(model.StatusDelivered, model.PaymentPaid, "100"),
		order(model.StatusPending, model.PaymentPending, "50"),
	}

	s := ComputeStats(orders, "en")

	if !s.TotalRevenue.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("revenue = %s, want 100", s.TotalRevenue)
	}
	if s.TotalOrders != 2 {
		t.Fatalf("total orders = %d", s.TotalOrders)
	}
	// averaged over ALL orders, revenue only from paid
	if !s.AverageOrderValue.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("average = %s, want 50", s.AverageOrderValue)
	}
}

func TestStatsEmpty(t *testing.T) {
	s := ComputeStats(nil, "en")
	if s.TotalOrders != 0 || !s.AverageOrderValue.IsZero() || !s.TotalRevenue.IsZero() {
		t.Fatalf("empty stats wrong: %+v", s)
	}
	if len(s.TopBooks) != 0 {
		t.Fatalf("top books should be empty: %+v", s.TopBooks)
	}
}

func TestStatusCounts(t *testing.T) {
	orders := []model.OrderModel{
		order(model.StatusPending, model.PaymentPending, "1"),
		order(model.StatusPending, model.PaymentPending, "1"),
		order(model.StatusShipped, model.PaymentPaid, "1"),
		order(model.StatusDelivered, model.PaymentPaid, "1"),
		order(model.StatusCancelled, model.PaymentFailed, "1"),
	}
	s := ComputeStats(orders, "en")
	if s.PendingCount != 2 || s.ShippedCount != 1 || s.DeliveredCount != 1 || s.CancelledCount != 1 {
		t.Fatalf("counts wrong: %+v", s)
	}
}

func TestTopBooksPaidOnlySortedCapped(t *testing.T) {
	orders := []model.OrderModel{
		order(model.StatusDelivered, model.PaymentPaid, "10",
			item("b1", 5), item("b2", 2)),
		order(model.StatusDelivered, model.PaymentPaid, "10",
			item("b2", 4), item("b3", 1), item("b4", 1), item("b5", 1), item("b6", 1)),
		// unpaid quantities must not count
		order(model.StatusPending, model.PaymentPending, "10", item("b9", 100)),
	}

	s := ComputeStats(orders, "en")

	if len(s.TopBooks) != 5 {
		t.Fatalf("expected cap of 5, got %d", len(s.TopBooks))
	}
	if s.TopBooks[0].BookID != "b2" || s.TopBooks[0].Quantity != 6 {
		t.Fatalf("b2 should lead with 6: %+v", s.TopBooks[0])
	}
	if s.TopBooks[1].BookID != "b1" || s.TopBooks[1].Quantity != 5 {
		t.Fatalf("b1 should be second with 5: %+v", s.TopBooks[1])
	}
	for _, tb := range s.TopBooks {
		if tb.BookID == "b9" {
			t.Fatal("unpaid order leaked into top books")
		}
	}
}
