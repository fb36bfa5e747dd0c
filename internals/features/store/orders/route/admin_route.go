package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/store/orders/controller"
)

func AdminOrderRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminOrderController(db)

	orders := admin.Group("/purchases")
	orders.Get("/", ctrl.GetOrders)
	orders.Get("/stats", ctrl.GetOrderStats)
	orders.Get("/export", ctrl.ExportOrders)
	orders.Post("/bulk", ctrl.BulkUpdateOrders)
	orders.Get("/:id", ctrl.GetOrderByID)
	orders.Put("/:id", ctrl.UpdateOrder)
	orders.Delete("/:id", ctrl.DeleteOrder)
}
