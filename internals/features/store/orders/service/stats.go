package service

import (
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"

	"tamilmandram_backend/internals/features/store/orders/model"
	helper "tamilmandram_backend/internals/helpers"
)

type TopBook struct {
	BookID   string `json:"book_id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

type Stats struct {
	TotalOrders       int             `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	PendingCount      int             `json:"pending_count"`
	ShippedCount      int             `json:"shipped_count"`
	DeliveredCount    int             `json:"delivered_count"`
	CancelledCount    int             `json:"cancelled_count"`
	TopBooks          []TopBook       `json:"top_books"`
}

// ComputeStats aggregates the admin dashboard numbers. Revenue and the
// top-seller ranking count paid orders only - an unpaid order must never
// inflate revenue. Average order value divides revenue by ALL orders.
func ComputeStats(orders []model.OrderModel, lang string) Stats {
	s := Stats{
		TotalOrders:       len(orders),
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		TopBooks:          []TopBook{},
	}

	qtyByBook := map[string]int{}
	titleByBook := map[string]string{}

	for _, o := range orders {
		switch o.OrderStatus {
		case model.StatusPending:
			s.PendingCount++
		case model.StatusShipped:
			s.ShippedCount++
		case model.StatusDelivered:
			s.DeliveredCount++
		case model.StatusCancelled:
			s.CancelledCount++
		}

		if o.OrderPaymentStatus != model.PaymentPaid {
			continue
		}
		s.TotalRevenue = s.TotalRevenue.Add(o.OrderFinalAmount)
		for _, it := range o.Items {
			qtyByBook[it.OrderItemBookID] += it.OrderItemQty
			if _, seen := titleByBook[it.OrderItemBookID]; !seen {
				var title helper.Bilingual
				_ = json.Unmarshal(it.OrderItemTitle, &title)
				titleByBook[it.OrderItemBookID] = title.Resolve(lang)
			}
		}
	}

	if s.TotalOrders > 0 {
		s.AverageOrderValue = s.TotalRevenue.Div(decimal.NewFromInt(int64(s.TotalOrders)))
	}

	for id, qty := range qtyByBook {
		s.TopBooks = append(s.TopBooks, TopBook{BookID: id, Title: titleByBook[id], Quantity: qty})
	}
	sort.Slice(s.TopBooks, func(i, j int) bool {
		if s.TopBooks[i].Quantity != s.TopBooks[j].Quantity {
			return s.TopBooks[i].Quantity > s.TopBooks[j].Quantity
		}
		return s.TopBooks[i].BookID < s.TopBooks[j].BookID
	})
	if len(s.TopBooks) > 5 {
		s.TopBooks = s.TopBooks[:5]
	}

	return s
}
