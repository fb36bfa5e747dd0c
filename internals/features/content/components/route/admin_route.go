package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/content/components/controller"
)

// AdminComponentRoutes exposes the content-management CRUD.
func AdminComponentRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewComponentController(db)

	components := admin.Group("/components")
	components.Post("/", ctrl.CreateComponent)
	components.Put("/:id", ctrl.UpdateComponent)
	components.Delete("/:id", ctrl.DeleteComponent)
}
