package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/store/books/controller"
	ossHelper "tamilmandram_backend/internals/helpers/oss"
)

func PublicBookRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBookController(db, nil)

	books := public.Group("/books")
	books.Get("/", ctrl.GetBooks)
	books.Get("/:id", ctrl.GetBookByID)
}

func AdminBookRoutes(admin fiber.Router, db *gorm.DB, blob *ossHelper.Service) {
	ctrl := controller.NewBookController(db, blob)

	books := admin.Group("/books")
	books.Post("/", ctrl.CreateBook)
	books.Put("/:id", ctrl.UpdateBook)
	books.Post("/:id/cover", ctrl.UploadBookCover)
	books.Delete("/:id", ctrl.DeleteBook)
}
