package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/store/orders/controller"
	paymentService "tamilmandram_backend/internals/features/store/payments/service"
	"tamilmandram_backend/internals/middlewares"
)

func UserOrderRoutes(user fiber.Router, db *gorm.DB, settings *paymentService.Store) {
	ctrl := controller.NewCheckoutController(db, settings)

	purchases := user.Group("/purchases")
	purchases.Post("/", middlewares.CheckoutRateLimiter(), ctrl.SubmitOrder)
	purchases.Get("/", ctrl.GetMyOrders)
}
