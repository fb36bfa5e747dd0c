package service

import (
	"github.com/shopspring/decimal"

	helper "tamilmandram_backend/internals/helpers"
)

// Line is a cart line detached from persistence; the same shape serves the
// stored cart and one-item "buy now" checkouts.
type Line struct {
	BookID    string
	Title     helper.Bilingual
	UnitPrice decimal.Decimal
	Quantity  int
}

// AddLine merges by book id: an existing line gains quantity+1, a new book
// appends with quantity 1. The cart never holds two lines for one book.
func AddLine(lines []Line, bookID string, title helper.Bilingual, unitPrice decimal.Decimal) []Line {
	for i := range lines {
		if lines[i].BookID == bookID {
			lines[i].Quantity++
			return lines
		}
	}
	return append(lines, Line{
		BookID:    bookID,
		Title:     title,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// SetQuantity clamps to a floor of 1; a line is removed explicitly, never
// by zeroing it out.
func SetQuantity(lines []Line, index, qty int) []Line {
	if index < 0 || index >= len(lines) {
		return lines
	}
	if qty < 1 {
		qty = 1
	}
	lines[index].Quantity = qty
	return lines
}

// RemoveLine drops one line, keeping the others in order.
func RemoveLine(lines []Line, index int) []Line {
	if index < 0 || index >= len(lines) {
		return lines
	}
	return append(lines[:index], lines[index+1:]...)
}
