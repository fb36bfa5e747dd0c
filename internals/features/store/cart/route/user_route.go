package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/store/cart/controller"
	paymentService "tamilmandram_backend/internals/features/store/payments/service"
)

func UserCartRoutes(user fiber.Router, db *gorm.DB, settings *paymentService.Store) {
	ctrl := controller.NewCartController(db, settings)

	cart := user.Group("/cart")
	cart.Get("/", ctrl.GetCart)
	cart.Post("/items", ctrl.AddItem)
	cart.Put("/items/:id", ctrl.SetQuantity)
	cart.Delete("/items/:id", ctrl.RemoveItem)
}
