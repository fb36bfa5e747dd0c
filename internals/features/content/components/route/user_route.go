package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/content/components/controller"
)

// PublicComponentRoutes exposes read-only CMS content.
func PublicComponentRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewComponentController(db)

	public.Get("/components", ctrl.GetComponents)
	public.Get("/pages/:page", ctrl.GetRenderedPage)
}
