package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/store/books/dto"
	"tamilmandram_backend/internals/features/store/books/model"
	helper "tamilmandram_backend/internals/helpers"
	ossHelper "tamilmandram_backend/internals/helpers/oss"
)

type BookController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Blob     *ossHelper.Service
}

func NewBookController(db *gorm.DB, blob *ossHelper.Service) *BookController {
	return &BookController{DB: db, Validate: validator.New(), Blob: blob}
}

// Sortable columns by query-string name; everything else falls back to the
// creation date.
var bookSortColumns = map[string]string{
	"created_at": "book_created_at",
	"price":      "book_price",
	"stock":      "book_stock",
	"author":     "book_author",
}

// ======================
// GET /books?lang=&search=&page=&per_page=
// ======================
func (ctrl *BookController) GetBooks(c *fiber.Ctx) error {
	lang := c.Query("lang", helper.LangEnglish)
	p := helper.ParsePagination(c, "created_at", "desc")
	column := helper.SortColumn(bookSortColumns, p.SortBy, "book_created_at")

	q := ctrl.DB.Model(&model.BookModel{}).Where("book_is_active = ?", true)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(book_title->>'en') LIKE ? OR LOWER(book_title->>'ta') LIKE ? OR LOWER(COALESCE(book_author,'')) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count books")
	}

	var books []model.BookModel
	if err := q.Order(column + " " + p.SortOrder).
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&books).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load books")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":       dto.ToBookDTOs(books, lang),
		"total_pages": helper.TotalPages(total, p.PerPage),
	})
}

// ======================
// GET /books/:id?lang=
// ======================
func (ctrl *BookController) GetBookByID(c *fiber.Ctx) error {
	lang := c.Query("lang", helper.LangEnglish)

	var book model.BookModel
	if err := ctrl.DB.First(&book, "book_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Book not found")
	}

	return helper.Success(c, "OK", dto.ToBookDTO(book, lang))
}

// ======================
// Admin CRUD
// ======================

func (ctrl *BookController) CreateBook(c *fiber.Ctx) error {
	var body dto.CreateBookRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.Title.IsZero() {
		return helper.Error(c, fiber.StatusBadRequest, "Title requires at least one language")
	}
	if body.Price.IsNegative() {
		return helper.Error(c, fiber.StatusBadRequest, "Price must not be negative")
	}

	book := body.ToModel()
	if err := ctrl.DB.Create(&book).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create book")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Book created", dto.ToBookDTO(book, helper.LangEnglish))
}

func (ctrl *BookController) UpdateBook(c *fiber.Ctx) error {
	var body dto.UpdateBookRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.Price != nil && body.Price.IsNegative() {
		return helper.Error(c, fiber.StatusBadRequest, "Price must not be negative")
	}

	var book model.BookModel
	if err := ctrl.DB.First(&book, "book_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Book not found")
	}

	body.Apply(&book)
	if err := ctrl.DB.Save(&book).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update book")
	}

	return helper.Success(c, "Book updated", dto.ToBookDTO(book, helper.LangEnglish))
}

// UploadBookCover stores the cover image as WebP.
func (ctrl *BookController) UploadBookCover(c *fiber.Ctx) error {
	var book model.BookModel
	if err := ctrl.DB.First(&book, "book_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Book not found")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "file field is required")
	}
	if ctrl.Blob == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Object storage is not configured")
	}

	key, err := ctrl.Blob.UploadImage(c.UserContext(), "covers", fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Failed to store cover")
	}

	url := ctrl.Blob.PublicURL(key)
	book.BookCoverURL = &url
	if err := ctrl.DB.Save(&book).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save cover reference")
	}

	return helper.Success(c, "Cover uploaded", fiber.Map{"cover_url": url})
}

func (ctrl *BookController) DeleteBook(c *fiber.Ctx) error {
	res := ctrl.DB.Delete(&model.BookModel{}, "book_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete book")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Book not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
