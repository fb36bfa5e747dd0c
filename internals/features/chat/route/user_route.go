package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/chat/controller"
	"tamilmandram_backend/internals/features/chat/service"
)

func UserChatRoutes(user fiber.Router, db *gorm.DB, hub *service.Hub) {
	ctrl := controller.NewChatController(db, hub)

	chat := user.Group("/chat")
	chat.Get("/", ctrl.GetMessages)
	chat.Post("/", ctrl.SendMessage)
	chat.Post("/delivered", ctrl.MarkDelivered)
	chat.Post("/read", ctrl.MarkRead)
	chat.Post("/sync", ctrl.SyncTimeline)
	chat.Get("/ws", controller.RequireWebSocketUpgrade, ctrl.WebSocketHandler())
}

func AdminChatRoutes(admin fiber.Router, db *gorm.DB, hub *service.Hub) {
	ctrl := controller.NewChatController(db, hub)

	chat := admin.Group("/chat")
	chat.Get("/", ctrl.GetConversations)
	chat.Get("/:userId", ctrl.GetConversation)
	chat.Post("/:userId", ctrl.SendAsAdmin)
	chat.Post("/:userId/read", ctrl.MarkReadAsAdmin)
}
