package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/content/team/dto"
	"tamilmandram_backend/internals/features/content/team/model"
	"tamilmandram_backend/internals/features/content/team/service"
	helper "tamilmandram_backend/internals/helpers"
	ossHelper "tamilmandram_backend/internals/helpers/oss"
)

type TeamController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Blob     *ossHelper.Service
}

func NewTeamController(db *gorm.DB, blob *ossHelper.Service) *TeamController {
	return &TeamController{DB: db, Validate: validator.New(), Blob: blob}
}

// ======================
// GET /team?lang=
// ======================
func (ctrl *TeamController) GetTeamHierarchy(c *fiber.Ctx) error {
	lang := c.Query("lang", helper.LangEnglish)

	var members []model.TeamMemberModel
	if err := ctrl.DB.Find(&members).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load team")
	}

	return helper.Success(c, "OK", service.BuildHierarchy(members, lang))
}

// ======================
// Admin CRUD
// ======================

func (ctrl *TeamController) CreateTeamMember(c *fiber.Ctx) error {
	var body dto.CreateTeamMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.Name.IsZero() {
		return helper.Error(c, fiber.StatusBadRequest, "Name requires at least one language")
	}

	member := body.ToModel()
	if err := ctrl.DB.Create(&member).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create team member")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Team member created",
		dto.ToTeamMemberDTO(member, helper.LangEnglish))
}

func (ctrl *TeamController) UpdateTeamMember(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateTeamMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var member model.TeamMemberModel
	if err := ctrl.DB.First(&member, "team_member_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Team member not found")
	}

	body.Apply(&member)
	if err := ctrl.DB.Save(&member).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update team member")
	}

	return helper.Success(c, "Team member updated", dto.ToTeamMemberDTO(member, helper.LangEnglish))
}

// UploadTeamMemberPhoto converts the portrait to WebP and stores it.
func (ctrl *TeamController) UploadTeamMemberPhoto(c *fiber.Ctx) error {
	id := c.Params("id")

	var member model.TeamMemberModel
	if err := ctrl.DB.First(&member, "team_member_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Team member not found")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "file field is required")
	}
	if ctrl.Blob == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Object storage is not configured")
	}

	key, err := ctrl.Blob.UploadImage(c.UserContext(), "team", fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Failed to store photo")
	}

	url := ctrl.Blob.PublicURL(key)
	member.TeamMemberImageURL = &url
	if err := ctrl.DB.Save(&member).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save photo reference")
	}

	return helper.Success(c, "Photo uploaded", fiber.Map{"image_url": url})
}

func (ctrl *TeamController) DeleteTeamMember(c *fiber.Ctx) error {
	id := c.Params("id")
	res := ctrl.DB.Delete(&model.TeamMemberModel{}, "team_member_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete team member")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Team member not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
