package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/content/components/dto"
	"tamilmandram_backend/internals/features/content/components/model"
	"tamilmandram_backend/internals/features/content/components/render"
	"tamilmandram_backend/internals/features/content/components/service"
	helper "tamilmandram_backend/internals/helpers"
)

type ComponentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewComponentController(db *gorm.DB) *ComponentController {
	return &ComponentController{DB: db, Validate: validator.New()}
}

// ======================
// GET /components?page=&type=&slug=
// ======================
func (ctrl *ComponentController) GetComponents(c *fiber.Ctx) error {
	page := c.Query("page")
	if page == "" {
		return helper.Error(c, fiber.StatusBadRequest, "page query parameter is required")
	}

	records, err := service.Resolve(ctrl.DB, page, c.Query("type"), c.Query("slug"))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load components")
	}

	// An empty page is a valid, renderable state.
	return helper.Success(c, "OK", fiber.Map{
		"components": dto.ToComponentDTOs(records),
	})
}

// ======================
// GET /pages/:page?lang=&bureau=
// Assembled view: resolve, dispatch, skip unknown types.
// ======================
func (ctrl *ComponentController) GetRenderedPage(c *fiber.Ctx) error {
	page := c.Params("page")
	lang := c.Query("lang", helper.LangEnglish)

	records, err := service.Resolve(ctrl.DB, page, "", "")
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load page")
	}

	if bureau := c.Query("bureau"); bureau != "" {
		filtered := records[:0]
		for _, r := range records {
			if r.ComponentBureau == nil || *r.ComponentBureau == bureau {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	return helper.Success(c, "OK", fiber.Map{
		"page":  page,
		"lang":  lang,
		"nodes": render.RenderPage(records, lang),
	})
}

// ======================
// Admin CRUD
// ======================

func (ctrl *ComponentController) CreateComponent(c *fiber.Ctx) error {
	var body dto.CreateComponentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	rec := body.ToModel()
	if err := ctrl.DB.Create(&rec).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create component")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Component created", dto.ToComponentDTO(rec))
}

func (ctrl *ComponentController) UpdateComponent(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateComponentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var rec model.ComponentModel
	if err := ctrl.DB.First(&rec, "component_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Component not found")
	}

	body.Apply(&rec)
	if err := ctrl.DB.Save(&rec).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update component")
	}

	return helper.Success(c, "Component updated", dto.ToComponentDTO(rec))
}

func (ctrl *ComponentController) DeleteComponent(c *fiber.Ctx) error {
	id := c.Params("id")
	res := ctrl.DB.Delete(&model.ComponentModel{}, "component_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete component")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Component not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
