package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/configs"
	"tamilmandram_backend/internals/features/chat/dto"
	"tamilmandram_backend/internals/features/chat/model"
	"tamilmandram_backend/internals/features/chat/service"
	UserModel "tamilmandram_backend/internals/features/users/user/model"
	helper "tamilmandram_backend/internals/helpers"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type ChatController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Hub      *service.Hub
}

func NewChatController(db *gorm.DB, hub *service.Hub) *ChatController {
	return &ChatController{DB: db, Validate: validator.New(), Hub: hub}
}

func historyLimit(c *fiber.Ctx) int {
	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return limit
}

// conversation loads the newest limit messages of the member<->admin
// history and hands them back timestamp ascending. The window anchors at
// the recent end: long conversations drop the oldest messages, never the
// latest ones.
func (ctrl *ChatController) conversation(memberID string, limit int) ([]model.ChatMessageModel, error) {
	var messages []model.ChatMessageModel
	err := ctrl.DB.
		Where("(chat_message_sender_id = ? AND chat_message_recipient_id = ?) OR (chat_message_sender_id = ? AND chat_message_recipient_id = ?)",
			memberID, configs.AdminUserID, configs.AdminUserID, memberID).
		Order("chat_message_created_at DESC").
		Limit(limit).
		Find(&messages).Error
	return service.Chronological(messages), err
}

func (ctrl *ChatController) adminIdentity() dto.AdminIdentityDTO {
	identity := dto.AdminIdentityDTO{ID: configs.AdminUserID, Name: "Admin"}
	var admin UserModel.UserModel
	if err := ctrl.DB.First(&admin, "user_id = ?", configs.AdminUserID).Error; err == nil {
		identity.Name = admin.UserName
	}
	return identity
}

// markArrived progresses sent -> delivered for one conversation direction.
// Status only moves forward; the sender's records stay theirs.
func (ctrl *ChatController) markArrived(senderID, recipientID string) {
	cond, args := service.DeliveredCondition(senderID, recipientID)
	ctrl.DB.Model(&model.ChatMessageModel{}).
		Where(cond, args...).
		Update("chat_message_status", model.StatusDelivered)
}

// ======================
// GET / - history plus the admin identity header for the chat widget.
// ======================
func (ctrl *ChatController) GetMessages(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	ctrl.markArrived(configs.AdminUserID, userID.String())

	messages, err := ctrl.conversation(userID.String(), historyLimit(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load messages")
	}

	return helper.Success(c, "OK", fiber.Map{
		"admin":    ctrl.adminIdentity(),
		"messages": dto.ToChatMessageDTOs(messages, userID.String(), configs.AdminUserID),
	})
}

// ======================
// POST / - member sends to the admin; echoed back and pushed to the room.
// ======================
func (ctrl *ChatController) SendMessage(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.send(c, userID.String(), configs.AdminUserID, userID.String())
}

func (ctrl *ChatController) send(c *fiber.Ctx, senderID, recipientID, roomID string) error {
	var body dto.SendMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.MessageType == model.TypeImage && strings.TrimSpace(body.ImageURL) == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Image messages require an image URL")
	}

	msg := model.ChatMessageModel{
		ChatMessageSenderID:    senderID,
		ChatMessageRecipientID: recipientID,
		ChatMessageBody:        body.Message,
		ChatMessageType:        body.MessageType,
		ChatMessageStatus:      model.StatusSent,
	}
	if url := strings.TrimSpace(body.ImageURL); url != "" {
		msg.ChatMessageImageURL = &url
	}

	if err := ctrl.DB.Create(&msg).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to send message")
	}

	ctrl.Hub.Broadcast(roomID, dto.ToChatMessageDTO(msg, "", configs.AdminUserID))

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Message sent",
		dto.ToChatMessageDTO(msg, senderID, configs.AdminUserID))
}

// ======================
// POST /delivered - explicit delivery ack for clients that keep history
// cached and skip the GET.
// ======================
func (ctrl *ChatController) MarkDelivered(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	ctrl.markArrived(configs.AdminUserID, userID.String())
	return helper.Success(c, "Messages marked delivered", nil)
}

// ======================
// POST /read - everything addressed to the caller becomes read.
// ======================
func (ctrl *ChatController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Model(&model.ChatMessageModel{}).
		Where("chat_message_recipient_id = ? AND chat_message_status <> ?", userID.String(), model.StatusRead).
		Update("chat_message_status", model.StatusRead)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update messages")
	}
	return helper.Success(c, "Messages marked read", fiber.Map{"updated": res.RowsAffected})
}

// ======================
// POST /sync - reconcile the client's optimistic entries with history.
// ======================
func (ctrl *ChatController) SyncTimeline(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.SyncRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	messages, err := ctrl.conversation(userID.String(), maxHistoryLimit)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load messages")
	}

	confirmed := make([]service.Entry, 0, len(messages))
	for _, m := range messages {
		confirmed = append(confirmed, dto.ToEntry(m))
	}

	return helper.Success(c, "OK", fiber.Map{
		"timeline": service.MergeTimeline(confirmed, body.Pending),
	})
}

// ======================
// WebSocket /ws - live push. Members join their own room; admins may join
// any room with ?room=<user_id>.
// ======================

// RequireWebSocketUpgrade rejects plain HTTP requests to the socket path.
func RequireWebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (ctrl *ChatController) WebSocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals("user_id").(string)
		if userID == "" {
			_ = conn.Close()
			return
		}

		roomID := userID
		if requested := strings.TrimSpace(conn.Query("room")); requested != "" && requested != userID {
			role, _ := conn.Locals("user_role").(string)
			if role != "admin" {
				_ = conn.Close()
				return
			}
			roomID = requested
		}

		room := ctrl.Hub.Room(roomID)
		room.Join(conn)
		defer func() {
			room.Leave(conn)
			_ = conn.Close()
		}()

		// Read loop: the socket is push-only, but reading drains control
		// frames and detects the close.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
