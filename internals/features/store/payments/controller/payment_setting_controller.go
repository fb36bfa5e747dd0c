package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/store/payments/dto"
	"tamilmandram_backend/internals/features/store/payments/model"
	"tamilmandram_backend/internals/features/store/payments/service"
	helper "tamilmandram_backend/internals/helpers"
)

type PaymentSettingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Store    *service.Store
}

func NewPaymentSettingController(db *gorm.DB, store *service.Store) *PaymentSettingController {
	return &PaymentSettingController{DB: db, Validate: validator.New(), Store: store}
}

// ======================
// GET /payment-settings
// ======================
func (ctrl *PaymentSettingController) GetPaymentSettings(c *fiber.Ctx) error {
	var row model.PaymentSettingModel
	err := ctrl.DB.Order("payment_setting_created_at DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Payment settings are not configured")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load payment settings")
	}

	return helper.Success(c, "OK", fiber.Map{
		"settings": dto.ToPaymentSettingsDTO(row),
	})
}

// ======================
// PUT /payment-settings (admin)
// ======================
func (ctrl *PaymentSettingController) UpdatePaymentSettings(c *fiber.Ctx) error {
	var body dto.UpdatePaymentSettingsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.TaxRate.IsNegative() || body.ShippingFee.IsNegative() || body.FreeShippingThresh.IsNegative() {
		return helper.Error(c, fiber.StatusBadRequest, "Monetary values must not be negative")
	}

	row := body.ToModel()
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save payment settings")
	}

	// Checkout reads go through the cache; drop it so the new row wins now,
	// not at the next background refresh.
	if ctrl.Store != nil {
		ctrl.Store.Invalidate()
	}

	return helper.Success(c, "Payment settings updated", dto.ToPaymentSettingsDTO(row))
}
