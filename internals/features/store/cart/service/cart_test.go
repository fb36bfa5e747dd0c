package service

import (
	"testing"

	"github.com/shopspring/decimal"

	helper "tamilmandram_backend/internals/helpers"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestAddLineMergesRepeatedBook(t *testing.T) {
	var lines []Line
	title := helper.Bilingual{En: "Silappatikaram"}
	for i := 0; i < 3; i++ {
		lines = AddLine(lines, "book42", title, d("45.00"))
	}
	lines = AddLine(lines, "book7", helper.Bilingual{En: "Thirukkural"}, d("30.00"))

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].BookID != "book42" || lines[0].Quantity != 3 {
		t.Fatalf("repeated adds must merge: %+v", lines[0])
	}
	if lines[1].Quantity != 1 {
		t.Fatalf("new book starts at quantity 1: %+v", lines[1])
	}
}

func TestSetQuantityFloorsAtOne(t *testing.T) {
	lines := []Line{{BookID: "b", UnitPrice: d("10"), Quantity: 4}}
	for _, qty := range []int{0, -5, -1} {
		lines = SetQuantity(lines, 0, qty)
		if lines[0].Quantity != 1 {
			t.Fatalf("SetQuantity(%d) stored %d, want 1", qty, lines[0].Quantity)
		}
	}
	lines = SetQuantity(lines, 0, 7)
	if lines[0].Quantity != 7 {
		t.Fatalf("valid quantity not applied: %d", lines[0].Quantity)
	}
	// out-of-range index is a no-op
	if got := SetQuantity(lines, 9, 2); got[0].Quantity != 7 {
		t.Fatal("out-of-range index mutated the cart")
	}
}

func TestRemoveLineKeepsOrder(t *testing.T) {
	lines := []Line{
		{BookID: "a", Quantity: 1},
		{BookID: "b", Quantity: 1},
		{BookID: "c", Quantity: 1},
	}
	lines = RemoveLine(lines, 1)
	if len(lines) != 2 || lines[0].BookID != "a" || lines[1].BookID != "c" {
		t.Fatalf("remove broke ordering: %+v", lines)
	}
	if got := RemoveLine(lines, -1); len(got) != 2 {
		t.Fatal("negative index must be a no-op")
	}
}

func TestComputeTotals(t *testing.T) {
	shipping := ShippingConfig{Fee: d("10"), FreeShippingThreshold: d("150")}

	cases := []struct {
		name                              string
		lines                             []Line
		taxRate                           string
		subtotal, tax, shippingFee, total string
	}{
		{
			name:    "below free shipping threshold",
			lines:   []Line{{UnitPrice: d("50"), Quantity: 2}},
			taxRate: "6", subtotal: "100", tax: "6", shippingFee: "10", total: "116",
		},
		{
			name:    "at threshold shipping is free",
			lines:   []Line{{UnitPrice: d("100"), Quantity: 2}},
			taxRate: "6", subtotal: "200", tax: "12", shippingFee: "0", total: "212",
		},
		{
			name:    "empty cart",
			lines:   nil,
			taxRate: "6", subtotal: "0", tax: "0", shippingFee: "10", total: "10",
		},
		{
			name: "fractional prices stay exact",
			lines: []Line{
				{UnitPrice: d("19.99"), Quantity: 3},
				{UnitPrice: d("0.01"), Quantity: 1},
			},
			taxRate: "5", subtotal: "59.98", tax: "2.999", shippingFee: "10", total: "72.979",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotals(tc.lines, d(tc.taxRate), shipping)
			check := func(field string, have decimal.Decimal, want string) {
				if !have.Equal(d(want)) {
					t.Errorf("%s = %s, want %s", field, have, want)
				}
			}
			check("subtotal", got.Subtotal, tc.subtotal)
			check("tax", got.Tax, tc.tax)
			check("shipping", got.ShippingFee, tc.shippingFee)
			check("total", got.Total, tc.total)
		})
	}
}
