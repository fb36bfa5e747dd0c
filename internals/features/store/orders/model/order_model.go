package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	BookModel "tamilmandram_backend/internals/features/store/books/model"
)

// Order status values. The normal flow walks the chain left to right;
// cancellation branches off before shipping, refunds only after delivery
// or payment.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
	StatusRefunded   = "refunded"
)

// Payment status is an independent axis from order status.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

type OrderModel struct {
	OrderID     string `gorm:"column:order_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"order_id"`
	OrderUserID string `gorm:"column:order_user_id;type:uuid;not null;index" json:"order_user_id"`

	// Customer snapshot at submission time; admin search runs over these.
	OrderCustomerName  string `gorm:"column:order_customer_name;type:varchar(120);not null" json:"order_customer_name"`
	OrderCustomerEmail string `gorm:"column:order_customer_email;type:varchar(120);not null" json:"order_customer_email"`

	OrderShippingAddress datatypes.JSON `gorm:"column:order_shipping_address;type:jsonb;not null" json:"order_shipping_address"`

	OrderPaymentMethod string  `gorm:"column:order_payment_method;type:varchar(20);not null" json:"order_payment_method"`
	OrderPaymentStatus string  `gorm:"column:order_payment_status;type:varchar(20);not null;default:'pending';index" json:"order_payment_status"`
	OrderReceiptPath   *string `gorm:"column:order_receipt_path;type:text" json:"order_receipt_path,omitempty"`

	OrderStatus string `gorm:"column:order_status;type:varchar(20);not null;default:'pending';index" json:"order_status"`

	OrderSubtotal    decimal.Decimal `gorm:"column:order_subtotal;type:numeric(12,2);not null" json:"order_subtotal"`
	OrderTax         decimal.Decimal `gorm:"column:order_tax;type:numeric(12,2);not null" json:"order_tax"`
	OrderShippingFee decimal.Decimal `gorm:"column:order_shipping_fee;type:numeric(12,2);not null" json:"order_shipping_fee"`
	OrderFinalAmount decimal.Decimal `gorm:"column:order_final_amount;type:numeric(12,2);not null" json:"order_final_amount"`

	OrderTrackingNumber    *string    `gorm:"column:order_tracking_number;type:varchar(60)" json:"order_tracking_number,omitempty"`
	OrderShippingCarrier   *string    `gorm:"column:order_shipping_carrier;type:varchar(60)" json:"order_shipping_carrier,omitempty"`
	OrderEstimatedDelivery *time.Time `gorm:"column:order_estimated_delivery" json:"order_estimated_delivery,omitempty"`
	OrderActualDelivery    *time.Time `gorm:"column:order_actual_delivery" json:"order_actual_delivery,omitempty"`
	OrderNotes             *string    `gorm:"column:order_notes;type:text" json:"order_notes,omitempty"`

	OrderRefundAmount *decimal.Decimal `gorm:"column:order_refund_amount;type:numeric(12,2)" json:"order_refund_amount,omitempty"`
	OrderRefundReason *string          `gorm:"column:order_refund_reason;type:text" json:"order_refund_reason,omitempty"`

	OrderCreatedAt time.Time `gorm:"column:order_created_at;autoCreateTime;index" json:"order_created_at"`
	OrderUpdatedAt time.Time `gorm:"column:order_updated_at;autoUpdateTime" json:"order_updated_at"`

	Items []OrderItemModel `gorm:"foreignKey:OrderItemOrderID" json:"items"`
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderItemModel struct {
	OrderItemID      string          `gorm:"column:order_item_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"order_item_id"`
	OrderItemOrderID string          `gorm:"column:order_item_order_id;type:uuid;not null;index" json:"order_item_order_id"`
	OrderItemBookID  string          `gorm:"column:order_item_book_id;type:uuid;not null" json:"order_item_book_id"`
	OrderItemTitle   datatypes.JSON  `gorm:"column:order_item_title;type:jsonb;not null" json:"order_item_title"` // bilingual snapshot
	OrderItemPrice   decimal.Decimal `gorm:"column:order_item_price;type:numeric(12,2);not null" json:"order_item_price"`
	OrderItemQty     int             `gorm:"column:order_item_qty;not null" json:"order_item_qty"`
	OrderItemTotal   decimal.Decimal `gorm:"column:order_item_total;type:numeric(12,2);not null" json:"order_item_total"`

	Book *BookModel.BookModel `gorm:"foreignKey:OrderItemBookID" json:"book,omitempty"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
