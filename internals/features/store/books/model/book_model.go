package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type BookModel struct {
	BookID          string          `gorm:"column:book_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"book_id"`
	BookTitle       datatypes.JSON  `gorm:"column:book_title;type:jsonb;not null" json:"book_title"` // bilingual {en,ta}
	BookDescription datatypes.JSON  `gorm:"column:book_description;type:jsonb" json:"book_description,omitempty"`
	BookAuthor      *string         `gorm:"column:book_author;type:varchar(120)" json:"book_author,omitempty"`
	BookPrice       decimal.Decimal `gorm:"column:book_price;type:numeric(12,2);not null" json:"book_price"`
	BookCoverURL    *string         `gorm:"column:book_cover_url;type:text" json:"book_cover_url,omitempty"`
	BookIsEbook     bool            `gorm:"column:book_is_ebook;not null;default:false" json:"book_is_ebook"`
	BookFileURL     *string         `gorm:"column:book_file_url;type:text" json:"book_file_url,omitempty"` // ebook download, admin-managed
	BookStock       int             `gorm:"column:book_stock;not null;default:0" json:"book_stock"`
	BookIsActive    bool            `gorm:"column:book_is_active;not null;default:true" json:"book_is_active"`

	BookCreatedAt time.Time `gorm:"column:book_created_at;autoCreateTime" json:"book_created_at"`
	BookUpdatedAt time.Time `gorm:"column:book_updated_at;autoUpdateTime" json:"book_updated_at"`
}

func (BookModel) TableName() string {
	return "books"
}
