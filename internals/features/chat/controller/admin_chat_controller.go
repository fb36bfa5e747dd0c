package controller

import (
	"github.com/gofiber/fiber/v2"

	"tamilmandram_backend/internals/configs"
	"tamilmandram_backend/internals/features/chat/dto"
	"tamilmandram_backend/internals/features/chat/model"
	UserModel "tamilmandram_backend/internals/features/users/user/model"
	helper "tamilmandram_backend/internals/helpers"
)

// ======================
// GET / - one row per member conversation, last message first.
// ======================
func (ctrl *ChatController) GetConversations(c *fiber.Ctx) error {
	// The member side of each row is whichever party is not the admin.
	var rows []struct {
		MemberID  string `gorm:"column:member_id"`
		LastBody  string `gorm:"column:last_body"`
		LastAt    string `gorm:"column:last_at"`
		Unread    int    `gorm:"column:unread"`
		UserName  string `gorm:"column:user_name"`
		UserEmail string `gorm:"column:user_email"`
	}

	err := ctrl.DB.Raw(`
		SELECT t.member_id,
		       t.last_body,
		       t.last_at,
		       t.unread,
		       COALESCE(u.user_name, '') AS user_name,
		       COALESCE(u.user_email, '') AS user_email
		FROM (
			SELECT CASE WHEN chat_message_sender_id = @admin
			            THEN chat_message_recipient_id
			            ELSE chat_message_sender_id END AS member_id,
			       MAX(chat_message_created_at) AS last_at,
			       (ARRAY_AGG(chat_message_body ORDER BY chat_message_created_at DESC))[1] AS last_body,
			       COUNT(*) FILTER (WHERE chat_message_recipient_id = @admin
			                          AND chat_message_status <> 'read') AS unread
			FROM chat_messages
			GROUP BY 1
		) t
		LEFT JOIN users u ON u.user_id::text = t.member_id
		WHERE t.member_id <> @admin
		ORDER BY t.last_at DESC`,
		map[string]any{"admin": configs.AdminUserID},
	).Scan(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load conversations")
	}

	return helper.Success(c, "OK", fiber.Map{"items": rows})
}

// ======================
// GET /:userId - the admin's view of one member conversation.
// ======================
func (ctrl *ChatController) GetConversation(c *fiber.Ctx) error {
	memberID := c.Params("userId")

	var member UserModel.UserModel
	if err := ctrl.DB.First(&member, "user_id = ?", memberID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Member not found")
	}

	ctrl.markArrived(memberID, configs.AdminUserID)

	messages, err := ctrl.conversation(memberID, historyLimit(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load messages")
	}

	// From the admin chair, "mine" means sent under the admin identity.
	items := dto.ToChatMessageDTOs(messages, memberID, configs.AdminUserID)
	for i := range items {
		items[i].Mine = items[i].SenderID == configs.AdminUserID
	}

	return helper.Success(c, "OK", fiber.Map{
		"member": fiber.Map{
			"id":    member.UserID,
			"name":  member.UserName,
			"email": member.UserEmail,
		},
		"messages": items,
	})
}

// ======================
// POST /:userId - admin replies into the member's room.
// ======================
func (ctrl *ChatController) SendAsAdmin(c *fiber.Ctx) error {
	memberID := c.Params("userId")

	var member UserModel.UserModel
	if err := ctrl.DB.First(&member, "user_id = ?", memberID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Member not found")
	}

	return ctrl.send(c, configs.AdminUserID, memberID, memberID)
}

// ======================
// POST /:userId/read - admin has read the member's messages.
// ======================
func (ctrl *ChatController) MarkReadAsAdmin(c *fiber.Ctx) error {
	memberID := c.Params("userId")

	res := ctrl.DB.Model(&model.ChatMessageModel{}).
		Where("chat_message_sender_id = ? AND chat_message_recipient_id = ? AND chat_message_status <> ?",
			memberID, configs.AdminUserID, model.StatusRead).
		Update("chat_message_status", model.StatusRead)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update messages")
	}
	return helper.Success(c, "Messages marked read", fiber.Map{"updated": res.RowsAffected})
}
