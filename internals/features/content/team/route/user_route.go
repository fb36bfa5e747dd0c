package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/content/team/controller"
	ossHelper "tamilmandram_backend/internals/helpers/oss"
)

func PublicTeamRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeamController(db, nil)

	public.Get("/team", ctrl.GetTeamHierarchy)
}

func AdminTeamRoutes(admin fiber.Router, db *gorm.DB, blob *ossHelper.Service) {
	ctrl := controller.NewTeamController(db, blob)

	team := admin.Group("/team")
	team.Post("/", ctrl.CreateTeamMember)
	team.Put("/:id", ctrl.UpdateTeamMember)
	team.Post("/:id/photo", ctrl.UploadTeamMemberPhoto)
	team.Delete("/:id", ctrl.DeleteTeamMember)
}
