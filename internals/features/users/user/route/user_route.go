package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/users/user/controller"
)

func UserAuthRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	auth := user.Group("/auth")
	auth.Get("/me", ctrl.GetMe)
}
