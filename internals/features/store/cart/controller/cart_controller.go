package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	BookModel "tamilmandram_backend/internals/features/store/books/model"
	"tamilmandram_backend/internals/features/store/cart/dto"
	"tamilmandram_backend/internals/features/store/cart/model"
	"tamilmandram_backend/internals/features/store/cart/service"
	paymentService "tamilmandram_backend/internals/features/store/payments/service"
	helper "tamilmandram_backend/internals/helpers"
)

type CartController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Settings *paymentService.Store
}

func NewCartController(db *gorm.DB, settings *paymentService.Store) *CartController {
	return &CartController{DB: db, Validate: validator.New(), Settings: settings}
}

// ======================
// GET /cart?lang=
// ======================
func (ctrl *CartController) GetCart(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	lang := c.Query("lang", helper.LangEnglish)

	items, err := ctrl.loadCart(userID.String())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load cart")
	}

	return helper.Success(c, "OK", dto.ToCartDTO(items, ctrl.totals(items), lang))
}

// ======================
// POST /cart/items - add one copy, merging by book.
// ======================
func (ctrl *CartController) AddItem(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.AddCartItemRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var book BookModel.BookModel
	if err := ctrl.DB.First(&book, "book_id = ? AND book_is_active = ?", body.BookID, true).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Book not found")
	}

	// Read-then-write under one transaction so rapid add taps cannot
	// produce duplicate lines.
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.CartItemModel
		findErr := tx.Where("cart_item_user_id = ? AND cart_item_book_id = ?", userID.String(), body.BookID).
			First(&existing).Error
		if findErr == nil {
			existing.CartItemQuantity++
			return tx.Save(&existing).Error
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}
		return tx.Create(&model.CartItemModel{
			CartItemUserID:   userID.String(),
			CartItemBookID:   body.BookID,
			CartItemPrice:    book.BookPrice,
			CartItemQuantity: 1,
		}).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to add to cart")
	}

	return ctrl.respondCart(c, userID.String(), fiber.StatusCreated, "Added to cart")
}

// ======================
// PUT /cart/items/:id - quantity floor is 1.
// ======================
func (ctrl *CartController) SetQuantity(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.SetCartQuantityRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	qty := body.Quantity
	if qty < 1 {
		qty = 1
	}

	res := ctrl.DB.Model(&model.CartItemModel{}).
		Where("cart_item_id = ? AND cart_item_user_id = ?", c.Params("id"), userID.String()).
		Update("cart_item_quantity", qty)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update quantity")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Cart item not found")
	}

	return ctrl.respondCart(c, userID.String(), fiber.StatusOK, "Quantity updated")
}

// ======================
// DELETE /cart/items/:id
// ======================
func (ctrl *CartController) RemoveItem(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Delete(&model.CartItemModel{},
		"cart_item_id = ? AND cart_item_user_id = ?", c.Params("id"), userID.String())
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to remove item")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Cart item not found")
	}

	return ctrl.respondCart(c, userID.String(), fiber.StatusOK, "Item removed")
}

// ======================
// internals
// ======================

func (ctrl *CartController) loadCart(userID string) ([]model.CartItemModel, error) {
	var items []model.CartItemModel
	err := ctrl.DB.Preload("Book").
		Where("cart_item_user_id = ?", userID).
		Order("cart_item_created_at ASC").
		Find(&items).Error
	return items, err
}

func (ctrl *CartController) totals(items []model.CartItemModel) service.Totals {
	lines := make([]service.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, dto.ToLine(it))
	}

	settings, err := ctrl.Settings.Get()
	if err != nil {
		// No settings yet: totals reduce to the raw subtotal.
		return service.ComputeTotals(lines, decimal.Zero, service.ShippingConfig{})
	}
	return service.ComputeTotals(lines, settings.TaxRate, service.ShippingConfig{
		Fee:                   settings.ShippingFee,
		FreeShippingThreshold: settings.FreeShippingThreshold,
	})
}

func (ctrl *CartController) respondCart(c *fiber.Ctx, userID string, code int, message string) error {
	lang := c.Query("lang", helper.LangEnglish)
	items, err := ctrl.loadCart(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load cart")
	}
	return helper.SuccessWithCode(c, code, message, dto.ToCartDTO(items, ctrl.totals(items), lang))
}
