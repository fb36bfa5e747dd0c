package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"tamilmandram_backend/internals/features/store/orders/model"
	helper "tamilmandram_backend/internals/helpers"
)

// ====================
// Shared shapes
// ====================

// ShippingAddress: everything except the second address line is mandatory
// at submission.
type ShippingAddress struct {
	FullName     string `json:"full_name" validate:"required,min=2,max=120"`
	AddressLine1 string `json:"address_line1" validate:"required,min=3,max=200"`
	AddressLine2 string `json:"address_line2,omitempty" validate:"omitempty,max=200"`
	City         string `json:"city" validate:"required,max=80"`
	State        string `json:"state" validate:"required,max=80"`
	PostalCode   string `json:"postal_code" validate:"required,max=20"`
	Country      string `json:"country" validate:"required,max=80"`
	Phone        string `json:"phone" validate:"required,min=6,max=30"`
}

// ====================
// Request DTO
// ====================

type CheckoutItem struct {
	BookID   string `json:"book_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

type CheckoutRequest struct {
	Method          string          `json:"method" validate:"required,oneof=epayum fpx"`
	Items           []CheckoutItem  `json:"items" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddress `json:"shipping_address" validate:"required"`
	ReceiptPath     string          `json:"receipt_path,omitempty"`
}

type AdminUpdateOrderRequest struct {
	Status            *string          `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed processing shipped delivered cancelled refunded"`
	PaymentStatus     *string          `json:"payment_status,omitempty" validate:"omitempty,oneof=pending paid failed refunded"`
	TrackingNumber    *string          `json:"tracking_number,omitempty" validate:"omitempty,max=60"`
	ShippingCarrier   *string          `json:"shipping_carrier,omitempty" validate:"omitempty,max=60"`
	EstimatedDelivery *time.Time       `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time       `json:"actual_delivery,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
	RefundAmount      *decimal.Decimal `json:"refund_amount,omitempty"`
	RefundReason      *string          `json:"refund_reason,omitempty"`
}

type BulkOrderRequest struct {
	OrderIDs []string `json:"order_ids" validate:"required,min=1,dive,uuid"`
	Action   string   `json:"action" validate:"required,oneof=confirm ship deliver cancel"`
}

// ====================
// Response DTO
// ====================

type OrderItemDTO struct {
	BookID       string           `json:"book_id"`
	Title        helper.Bilingual `json:"title"`
	DisplayTitle string           `json:"display_title"`
	UnitPrice    string           `json:"unit_price"`
	Quantity     int              `json:"quantity"`
	LineTotal    string           `json:"line_total"`
}

type OrderDTO struct {
	OrderID           string          `json:"order_id"`
	CustomerName      string          `json:"customer_name"`
	CustomerEmail     string          `json:"customer_email"`
	Items             []OrderItemDTO  `json:"items"`
	ShippingAddress   ShippingAddress `json:"shipping_address"`
	PaymentMethod     string          `json:"payment_method"`
	PaymentStatus     string          `json:"payment_status"`
	ReceiptPath       *string         `json:"receipt_path,omitempty"`
	Status            string          `json:"status"`
	Subtotal          string          `json:"subtotal"`
	Tax               string          `json:"tax"`
	ShippingFee       string          `json:"shipping_fee"`
	FinalAmount       string          `json:"final_amount"`
	TrackingNumber    *string         `json:"tracking_number,omitempty"`
	ShippingCarrier   *string         `json:"shipping_carrier,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time      `json:"actual_delivery,omitempty"`
	Notes             *string         `json:"notes,omitempty"`
	RefundAmount      *string         `json:"refund_amount,omitempty"`
	RefundReason      *string         `json:"refund_reason,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ====================
// Converter
// ====================

func ToOrderDTO(m model.OrderModel, lang string) OrderDTO {
	var addr ShippingAddress
	_ = json.Unmarshal(m.OrderShippingAddress, &addr)

	items := make([]OrderItemDTO, 0, len(m.Items))
	for _, it := range m.Items {
		var title helper.Bilingual
		_ = json.Unmarshal(it.OrderItemTitle, &title)
		items = append(items, OrderItemDTO{
			BookID:       it.OrderItemBookID,
			Title:        title,
			DisplayTitle: title.Resolve(lang),
			UnitPrice:    it.OrderItemPrice.Round(2).StringFixed(2),
			Quantity:     it.OrderItemQty,
			LineTotal:    it.OrderItemTotal.Round(2).StringFixed(2),
		})
	}

	out := OrderDTO{
		OrderID:           m.OrderID,
		CustomerName:      m.OrderCustomerName,
		CustomerEmail:     m.OrderCustomerEmail,
		Items:             items,
		ShippingAddress:   addr,
		PaymentMethod:     m.OrderPaymentMethod,
		PaymentStatus:     m.OrderPaymentStatus,
		ReceiptPath:       m.OrderReceiptPath,
		Status:            m.OrderStatus,
		Subtotal:          m.OrderSubtotal.Round(2).StringFixed(2),
		Tax:               m.OrderTax.Round(2).StringFixed(2),
		ShippingFee:       m.OrderShippingFee.Round(2).StringFixed(2),
		FinalAmount:       m.OrderFinalAmount.Round(2).StringFixed(2),
		TrackingNumber:    m.OrderTrackingNumber,
		ShippingCarrier:   m.OrderShippingCarrier,
		EstimatedDelivery: m.OrderEstimatedDelivery,
		ActualDelivery:    m.OrderActualDelivery,
		Notes:             m.OrderNotes,
		RefundReason:      m.OrderRefundReason,
		CreatedAt:         m.OrderCreatedAt,
		UpdatedAt:         m.OrderUpdatedAt,
	}
	if m.OrderRefundAmount != nil {
		v := m.OrderRefundAmount.Round(2).StringFixed(2)
		out.RefundAmount = &v
	}
	return out
}

func ToOrderDTOs(ms []model.OrderModel, lang string) []OrderDTO {
	out := make([]OrderDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToOrderDTO(m, lang))
	}
	return out
}
