package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/store/payments/controller"
	"tamilmandram_backend/internals/features/store/payments/service"
)

func PublicPaymentSettingRoutes(public fiber.Router, db *gorm.DB, store *service.Store) {
	ctrl := controller.NewPaymentSettingController(db, store)

	public.Get("/payment-settings", ctrl.GetPaymentSettings)
}

func AdminPaymentSettingRoutes(admin fiber.Router, db *gorm.DB, store *service.Store) {
	ctrl := controller.NewPaymentSettingController(db, store)

	admin.Put("/payment-settings", ctrl.UpdatePaymentSettings)
}
