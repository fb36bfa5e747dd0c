package controller

import (
	"github.com/gofiber/fiber/v2"

	"tamilmandram_backend/internals/features/store/uploads/service"
	helper "tamilmandram_backend/internals/helpers"
	ossHelper "tamilmandram_backend/internals/helpers/oss"
)

// Upload contexts map to storage directories; anything else is rejected so
// clients cannot write into arbitrary prefixes.
var allowedContexts = map[string]string{
	"receipts": "receipts",
}

type UploadController struct {
	Blob *ossHelper.Service
}

func NewUploadController(blob *ossHelper.Service) *UploadController {
	return &UploadController{Blob: blob}
}

// ======================
// POST /upload/:context (multipart: file, order_id?)
// ======================
func (ctrl *UploadController) Upload(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	dir, ok := allowedContexts[c.Params("context")]
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Unknown upload context")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "file field is required")
	}

	// Fast-fail before any bytes go to storage.
	if err := service.ValidateReceipt(fh); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if ctrl.Blob == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Object storage is not configured")
	}

	key, _, err := ctrl.Blob.UploadFile(c.UserContext(), dir+"/"+userID.String(), fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Failed to store file")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "File uploaded", fiber.Map{
		"file_path": ctrl.Blob.PublicURL(key),
	})
}
