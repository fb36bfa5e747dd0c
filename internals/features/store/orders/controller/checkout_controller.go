package controller

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	BookModel "tamilmandram_backend/internals/features/store/books/model"
	CartModel "tamilmandram_backend/internals/features/store/cart/model"
	cartService "tamilmandram_backend/internals/features/store/cart/service"
	"tamilmandram_backend/internals/features/store/orders/dto"
	"tamilmandram_backend/internals/features/store/orders/model"
	paymentService "tamilmandram_backend/internals/features/store/payments/service"
	UserModel "tamilmandram_backend/internals/features/users/user/model"
	helper "tamilmandram_backend/internals/helpers"
)

type CheckoutController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Settings *paymentService.Store
}

func NewCheckoutController(db *gorm.DB, settings *paymentService.Store) *CheckoutController {
	return &CheckoutController{DB: db, Validate: validator.New(), Settings: settings}
}

// ======================
// POST /purchases - checkout submission.
//
// Preconditions checked in order: auth, body shape, active payment method,
// receipt proof (when the method requires one), purchasable items. Only
// then is the order created, in one transaction that also clears the cart.
// ======================
func (ctrl *CheckoutController) SubmitOrder(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CheckoutRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	settings, err := ctrl.Settings.Get()
	if err != nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Payment settings are not configured")
	}
	if !settings.MethodActive(body.Method) {
		return helper.Error(c, fiber.StatusBadRequest, "Selected payment method is not available")
	}
	if settings.RequiresReceipt(body.Method) && strings.TrimSpace(body.ReceiptPath) == "" {
		return helper.Error(c, fiber.StatusBadRequest, "A payment receipt is required for this method")
	}

	var user UserModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID.String()).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User account not found")
	}

	// Snapshot current book data; prices on the order are the prices at
	// submission time.
	lines := make([]cartService.Line, 0, len(body.Items))
	books := make(map[string]BookModel.BookModel, len(body.Items))
	for _, item := range body.Items {
		book, ok := books[item.BookID]
		if !ok {
			if err := ctrl.DB.First(&book, "book_id = ? AND book_is_active = ?", item.BookID, true).Error; err != nil {
				return helper.Error(c, fiber.StatusBadRequest, "One of the selected books is not available")
			}
			books[item.BookID] = book
		}

		var title helper.Bilingual
		_ = json.Unmarshal(book.BookTitle, &title)
		for i := 0; i < item.Quantity; i++ {
			lines = cartService.AddLine(lines, item.BookID, title, book.BookPrice)
		}
	}

	totals := cartService.ComputeTotals(lines, settings.TaxRate, cartService.ShippingConfig{
		Fee:                   settings.ShippingFee,
		FreeShippingThreshold: settings.FreeShippingThreshold,
	})

	addrJSON, err := json.Marshal(body.ShippingAddress)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid shipping address")
	}

	order := model.OrderModel{
		OrderUserID:          userID.String(),
		OrderCustomerName:    user.UserName,
		OrderCustomerEmail:   user.UserEmail,
		OrderShippingAddress: datatypes.JSON(addrJSON),
		OrderPaymentMethod:   strings.ToLower(body.Method),
		OrderPaymentStatus:   model.PaymentPending,
		OrderStatus:          model.StatusPending,
		OrderSubtotal:        totals.Subtotal,
		OrderTax:             totals.Tax,
		OrderShippingFee:     totals.ShippingFee,
		OrderFinalAmount:     totals.Total,
	}
	if rp := strings.TrimSpace(body.ReceiptPath); rp != "" {
		order.OrderReceiptPath = &rp
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, line := range lines {
			titleJSON, _ := json.Marshal(line.Title)
			item := model.OrderItemModel{
				OrderItemOrderID: order.OrderID,
				OrderItemBookID:  line.BookID,
				OrderItemTitle:   datatypes.JSON(titleJSON),
				OrderItemPrice:   line.UnitPrice,
				OrderItemQty:     line.Quantity,
				OrderItemTotal:   line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}
		// A submitted cart is a consumed cart.
		return tx.Delete(&CartModel.CartItemModel{}, "cart_item_user_id = ?", userID.String()).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Order submission failed; no order was created")
	}

	lang := c.Query("lang", helper.LangEnglish)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Order submitted", fiber.Map{
		"order": dto.ToOrderDTO(order, lang),
	})
}

// ======================
// GET /purchases - the caller's own orders, newest first.
// ======================
func (ctrl *CheckoutController) GetMyOrders(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	lang := c.Query("lang", helper.LangEnglish)

	var orders []model.OrderModel
	if err := ctrl.DB.Preload("Items").
		Where("order_user_id = ?", userID.String()).
		Order("order_created_at DESC").
		Find(&orders).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load orders")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": dto.ToOrderDTOs(orders, lang),
	})
}
