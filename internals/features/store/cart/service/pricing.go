package service

import (
	"github.com/shopspring/decimal"
)

// ShippingConfig mirrors the shipping block of the payment settings.
type ShippingConfig struct {
	Fee                   decimal.Decimal
	FreeShippingThreshold decimal.Decimal
}

// Totals carries the derived pricing of a cart. All values stay unrounded
// decimals; rounding happens only when a DTO formats them for display.
type Totals struct {
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
}

// ComputeTotals derives subtotal, tax, shipping and total:
//
//	subtotal = Σ unitPrice×quantity
//	tax      = subtotal × taxRate/100
//	shipping = 0 when subtotal ≥ freeShippingThreshold, else the flat fee
//	total    = subtotal + tax + shipping
func ComputeTotals(lines []Line, taxRate decimal.Decimal, shipping ShippingConfig) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	tax := subtotal.Mul(taxRate).Div(decimal.NewFromInt(100))

	fee := shipping.Fee
	if subtotal.GreaterThanOrEqual(shipping.FreeShippingThreshold) {
		fee = decimal.Zero
	}

	return Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		ShippingFee: fee,
		Total:       subtotal.Add(tax).Add(fee),
	}
}
