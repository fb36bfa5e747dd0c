package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/users/user/dto"
	"tamilmandram_backend/internals/features/users/user/model"
	helper "tamilmandram_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// ======================
// GET /auth/me - the bearer's own account, or 401.
// ======================
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID.String()).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User account not found")
	}
	return helper.Success(c, "OK", dto.ToUserDTO(user))
}
