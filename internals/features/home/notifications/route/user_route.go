package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/home/notifications/controller"
)

func PublicNotificationRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notifs := public.Group("/notifications")
	notifs.Get("/", ctrl.GetNotifications)
}

func AdminNotificationRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notifs := admin.Group("/notifications")
	notifs.Post("/", ctrl.CreateNotification)
	notifs.Delete("/:id", ctrl.DeleteNotification)
}
