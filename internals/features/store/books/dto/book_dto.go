package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"tamilmandram_backend/internals/features/store/books/model"
	helper "tamilmandram_backend/internals/helpers"
)

// ====================
// Response DTO
// ====================

type BookDTO struct {
	BookID       string           `json:"book_id"`
	Title        helper.Bilingual `json:"title"`
	DisplayTitle string           `json:"display_title"`
	Description  helper.Bilingual `json:"description"`
	Author       *string          `json:"author,omitempty"`
	Price        string           `json:"price"` // rounded for display only
	CoverURL     *string          `json:"cover_url,omitempty"`
	IsEbook      bool             `json:"is_ebook"`
	Stock        int              `json:"stock"`
	IsActive     bool             `json:"is_active"`
}

// ====================
// Request DTO
// ====================

type CreateBookRequest struct {
	Title       helper.Bilingual `json:"title" validate:"required"`
	Description helper.Bilingual `json:"description"`
	Author      *string          `json:"author,omitempty" validate:"omitempty,max=120"`
	Price       decimal.Decimal  `json:"price"`
	IsEbook     bool             `json:"is_ebook"`
	Stock       int              `json:"stock" validate:"gte=0"`
}

type UpdateBookRequest struct {
	Title       *helper.Bilingual `json:"title,omitempty"`
	Description *helper.Bilingual `json:"description,omitempty"`
	Author      *string           `json:"author,omitempty" validate:"omitempty,max=120"`
	Price       *decimal.Decimal  `json:"price,omitempty"`
	IsEbook     *bool             `json:"is_ebook,omitempty"`
	Stock       *int              `json:"stock,omitempty" validate:"omitempty,gte=0"`
	IsActive    *bool             `json:"is_active,omitempty"`
}

// ====================
// Converter
// ====================

func ToBookDTO(m model.BookModel, lang string) BookDTO {
	var title, desc helper.Bilingual
	_ = json.Unmarshal(m.BookTitle, &title)
	if len(m.BookDescription) > 0 {
		_ = json.Unmarshal(m.BookDescription, &desc)
	}
	return BookDTO{
		BookID:       m.BookID,
		Title:        title,
		DisplayTitle: title.Resolve(lang),
		Description:  desc,
		Author:       m.BookAuthor,
		Price:        m.BookPrice.Round(2).StringFixed(2),
		CoverURL:     m.BookCoverURL,
		IsEbook:      m.BookIsEbook,
		Stock:        m.BookStock,
		IsActive:     m.BookIsActive,
	}
}

func ToBookDTOs(ms []model.BookModel, lang string) []BookDTO {
	out := make([]BookDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToBookDTO(m, lang))
	}
	return out
}

func (r CreateBookRequest) ToModel() model.BookModel {
	titleJSON, _ := json.Marshal(r.Title)
	descJSON, _ := json.Marshal(r.Description)
	return model.BookModel{
		BookTitle:       datatypes.JSON(titleJSON),
		BookDescription: datatypes.JSON(descJSON),
		BookAuthor:      r.Author,
		BookPrice:       r.Price,
		BookIsEbook:     r.IsEbook,
		BookStock:       r.Stock,
		BookIsActive:    true,
	}
}

func (r UpdateBookRequest) Apply(m *model.BookModel) {
	if r.Title != nil {
		titleJSON, _ := json.Marshal(*r.Title)
		m.BookTitle = datatypes.JSON(titleJSON)
	}
	if r.Description != nil {
		descJSON, _ := json.Marshal(*r.Description)
		m.BookDescription = datatypes.JSON(descJSON)
	}
	if r.Author != nil {
		m.BookAuthor = r.Author
	}
	if r.Price != nil {
		m.BookPrice = *r.Price
	}
	if r.IsEbook != nil {
		m.BookIsEbook = *r.IsEbook
	}
	if r.Stock != nil {
		m.BookStock = *r.Stock
	}
	if r.IsActive != nil {
		m.BookIsActive = *r.IsActive
	}
}
