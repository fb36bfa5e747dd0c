package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"tamilmandram_backend/internals/features/home/notifications/model"
	helper "tamilmandram_backend/internals/helpers"
)

type NotificationRequest struct {
	Title    helper.Bilingual `json:"title" validate:"required"`
	Body     helper.Bilingual `json:"body"`
	IsPinned bool             `json:"is_pinned"`
}

func (r NotificationRequest) ToModel() model.NotificationModel {
	title, _ := json.Marshal(r.Title)
	body, _ := json.Marshal(r.Body)
	return model.NotificationModel{
		NotificationTitle:    datatypes.JSON(title),
		NotificationBody:     datatypes.JSON(body),
		NotificationIsPinned: r.IsPinned,
	}
}

type NotificationDTO struct {
	ID           string           `json:"id"`
	Title        helper.Bilingual `json:"title"`
	Body         helper.Bilingual `json:"body"`
	DisplayTitle string           `json:"display_title"`
	DisplayBody  string           `json:"display_body"`
	IsPinned     bool             `json:"is_pinned"`
	CreatedAt    time.Time        `json:"created_at"`
}

func ToNotificationDTO(m model.NotificationModel, lang string) NotificationDTO {
	var title, body helper.Bilingual
	_ = json.Unmarshal(m.NotificationTitle, &title)
	_ = json.Unmarshal(m.NotificationBody, &body)
	return NotificationDTO{
		ID:           m.NotificationID,
		Title:        title,
		Body:         body,
		DisplayTitle: title.Resolve(lang),
		DisplayBody:  body.Resolve(lang),
		IsPinned:     m.NotificationIsPinned,
		CreatedAt:    m.NotificationCreatedAt,
	}
}

func ToNotificationDTOs(ms []model.NotificationModel, lang string) []NotificationDTO {
	out := make([]NotificationDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToNotificationDTO(m, lang))
	}
	return out
}
