package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/home/notifications/dto"
	"tamilmandram_backend/internals/features/home/notifications/model"
	helper "tamilmandram_backend/internals/helpers"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Validate: validator.New()}
}

// ======================
// GET / - public announcement feed: pinned first, then newest.
// ======================
func (ctrl *NotificationController) GetNotifications(c *fiber.Ctx) error {
	lang := c.Query("lang", helper.LangEnglish)
	p := helper.ParsePagination(c, "created_at", "desc")

	var total int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count announcements")
	}

	var notifs []model.NotificationModel
	if err := ctrl.DB.
		Order("notification_is_pinned DESC, notification_created_at DESC").
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&notifs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load announcements")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": dto.ToNotificationDTOs(notifs, lang),
		"pagination": fiber.Map{
			"page":        p.Page,
			"per_page":    p.PerPage,
			"total":       total,
			"total_pages": helper.TotalPages(total, p.PerPage),
		},
	})
}

// ======================
// POST / - admin publishes an announcement.
// ======================
func (ctrl *NotificationController) CreateNotification(c *fiber.Ctx) error {
	var body dto.NotificationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.Title.IsZero() {
		return helper.Error(c, fiber.StatusBadRequest, "Announcement title is required")
	}

	notif := body.ToModel()
	if err := ctrl.DB.Create(&notif).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to publish announcement")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Announcement published",
		dto.ToNotificationDTO(notif, helper.LangEnglish))
}

// ======================
// DELETE /:id
// ======================
func (ctrl *NotificationController) DeleteNotification(c *fiber.Ctx) error {
	var notif model.NotificationModel
	if err := ctrl.DB.First(&notif, "notification_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Announcement not found")
	}
	if err := ctrl.DB.Delete(&notif).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	return helper.Success(c, "Announcement deleted", fiber.Map{"id": notif.NotificationID})
}
