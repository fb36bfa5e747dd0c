package model

import (
	"time"

	"github.com/shopspring/decimal"

	BookModel "tamilmandram_backend/internals/features/store/books/model"
)

// CartItemModel is one line of a user's open cart. The server owns the cart
// so totals shown at checkout always match what the order will be created
// from. (book_id, user_id) is unique - merging happens in service.AddLine,
// the constraint is the backstop.
type CartItemModel struct {
	CartItemID       string          `gorm:"column:cart_item_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"cart_item_id"`
	CartItemUserID   string          `gorm:"column:cart_item_user_id;type:uuid;not null;uniqueIndex:idx_cart_user_book,priority:1" json:"cart_item_user_id"`
	CartItemBookID   string          `gorm:"column:cart_item_book_id;type:uuid;not null;uniqueIndex:idx_cart_user_book,priority:2" json:"cart_item_book_id"`
	CartItemPrice    decimal.Decimal `gorm:"column:cart_item_price;type:numeric(12,2);not null" json:"cart_item_price"`
	CartItemQuantity int             `gorm:"column:cart_item_quantity;not null;default:1" json:"cart_item_quantity"`

	CartItemCreatedAt time.Time `gorm:"column:cart_item_created_at;autoCreateTime" json:"cart_item_created_at"`
	CartItemUpdatedAt time.Time `gorm:"column:cart_item_updated_at;autoUpdateTime" json:"cart_item_updated_at"`

	Book *BookModel.BookModel `gorm:"foreignKey:CartItemBookID" json:"book,omitempty"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}
