package service

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"tamilmandram_backend/internals/features/store/orders/model"
)

func TestExportCSVHeaderAndRows(t *testing.T) {
	tracking := "TM-12345"
	o := model.OrderModel{
		OrderID:             "ord-1",
		OrderCustomerName:   "Mala",
		OrderCustomerEmail:  "mala@example.org",
		OrderStatus:         model.StatusShipped,
		OrderPaymentStatus:  model.PaymentPaid,
		OrderFinalAmount:    decimal.RequireFromString("212.00"),
		OrderTrackingNumber: &tracking,
		OrderCreatedAt:      time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC),
		Items: []model.OrderItemModel{
			{OrderItemTitle: datatypes.JSON([]byte(`{"en":"Silappathikaram","ta":""}`)), OrderItemQty: 2},
			{OrderItemTitle: datatypes.JSON([]byte(`{"en":"Thirukkural","ta":""}`)), OrderItemQty: 1},
		},
	}

	data, err := ExportCSV([]model.OrderModel{o}, "en")
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}

	wantHeader := "order_id,title,customer_name,customer_email,qty,total,status,payment_status,date,tracking_number"
	if got := strings.Join(records[0], ","); got != wantHeader {
		t.Fatalf("header mismatch:\n got %s\nwant %s", got, wantHeader)
	}

	row := records[1]
	if row[1] != "Silappathikaram; Thirukkural" {
		t.Fatalf("titles should join with '; ', got %q", row[1])
	}
	if row[4] != "3" {
		t.Fatalf("qty should sum items, got %q", row[4])
	}
	if row[5] != "212.00" || row[9] != "TM-12345" {
		t.Fatalf("unexpected total/tracking: %q %q", row[5], row[9])
	}
}

func TestExportCSVEmpty(t *testing.T) {
	data, err := ExportCSV(nil, "en")
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("empty export should still carry the header, got %d records", len(records))
	}
}
