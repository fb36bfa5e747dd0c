package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"tamilmandram_backend/internals/features/store/cart/model"
	"tamilmandram_backend/internals/features/store/cart/service"
	helper "tamilmandram_backend/internals/helpers"
)

// ====================
// Response DTO
// ====================

type CartItemDTO struct {
	CartItemID   string           `json:"cart_item_id"`
	BookID       string           `json:"book_id"`
	Title        helper.Bilingual `json:"title"`
	DisplayTitle string           `json:"display_title"`
	UnitPrice    string           `json:"unit_price"`
	Quantity     int              `json:"quantity"`
	LineTotal    string           `json:"line_total"`
}

type CartDTO struct {
	Items       []CartItemDTO `json:"items"`
	Subtotal    string        `json:"subtotal"`
	Tax         string        `json:"tax"`
	ShippingFee string        `json:"shipping_fee"`
	Total       string        `json:"total"`
}

// ====================
// Request DTO
// ====================

type AddCartItemRequest struct {
	BookID string `json:"book_id" validate:"required,uuid"`
}

type SetCartQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// ====================
// Converter
// ====================

// ToLine converts a stored row into the pricing-facing line shape.
func ToLine(m model.CartItemModel) service.Line {
	var title helper.Bilingual
	if m.Book != nil {
		_ = json.Unmarshal(m.Book.BookTitle, &title)
	}
	return service.Line{
		BookID:    m.CartItemBookID,
		Title:     title,
		UnitPrice: m.CartItemPrice,
		Quantity:  m.CartItemQuantity,
	}
}

func ToCartDTO(items []model.CartItemModel, totals service.Totals, lang string) CartDTO {
	out := CartDTO{
		Items:       make([]CartItemDTO, 0, len(items)),
		Subtotal:    totals.Subtotal.Round(2).StringFixed(2),
		Tax:         totals.Tax.Round(2).StringFixed(2),
		ShippingFee: totals.ShippingFee.Round(2).StringFixed(2),
		Total:       totals.Total.Round(2).StringFixed(2),
	}
	for _, m := range items {
		line := ToLine(m)
		out.Items = append(out.Items, CartItemDTO{
			CartItemID:   m.CartItemID,
			BookID:       m.CartItemBookID,
			Title:        line.Title,
			DisplayTitle: line.Title.Resolve(lang),
			UnitPrice:    m.CartItemPrice.Round(2).StringFixed(2),
			Quantity:     m.CartItemQuantity,
			LineTotal:    line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2).StringFixed(2),
		})
	}
	return out
}
