package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"

	"tamilmandram_backend/internals/features/store/orders/model"
	helper "tamilmandram_backend/internals/helpers"
)

var exportHeader = []string{
	"order_id", "title", "customer_name", "customer_email",
	"qty", "total", "status", "payment_status", "date", "tracking_number",
}

// ExportCSV renders the given (already filtered/sorted) orders as a flat
// CSV snapshot with the fixed admin column set. Multi-item orders join
// titles and sum quantities into the one row the back-office expects.
func ExportCSV(orders []model.OrderModel, lang string) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, o := range orders {
		titles := make([]string, 0, len(o.Items))
		qty := 0
		for _, it := range o.Items {
			var title helper.Bilingual
			_ = json.Unmarshal(it.OrderItemTitle, &title)
			titles = append(titles, title.Resolve(lang))
			qty += it.OrderItemQty
		}

		tracking := ""
		if o.OrderTrackingNumber != nil {
			tracking = *o.OrderTrackingNumber
		}

		row := []string{
			o.OrderID,
			strings.Join(titles, "; "),
			o.OrderCustomerName,
			o.OrderCustomerEmail,
			strconv.Itoa(qty),
			o.OrderFinalAmount.Round(2).StringFixed(2),
			o.OrderStatus,
			o.OrderPaymentStatus,
			o.OrderCreatedAt.Format("2006-01-02 15:04"),
			tracking,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
