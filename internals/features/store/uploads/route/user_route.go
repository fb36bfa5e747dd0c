package route

import (
	"github.com/gofiber/fiber/v2"

	"tamilmandram_backend/internals/features/store/uploads/controller"
	ossHelper "tamilmandram_backend/internals/helpers/oss"
	"tamilmandram_backend/internals/middlewares"
)

func UserUploadRoutes(user fiber.Router, blob *ossHelper.Service) {
	ctrl := controller.NewUploadController(blob)

	user.Post("/upload/:context", middlewares.UploadRateLimiter(), ctrl.Upload)
}
