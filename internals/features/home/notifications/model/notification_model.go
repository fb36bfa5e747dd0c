package model

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationModel struct {
	NotificationID    string         `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationTitle datatypes.JSON `gorm:"column:notification_title;type:jsonb;not null" json:"notification_title"` // bilingual {en,ta}
	NotificationBody  datatypes.JSON `gorm:"column:notification_body;type:jsonb" json:"notification_body"`            // bilingual {en,ta}

	NotificationIsPinned bool `gorm:"column:notification_is_pinned;not null;default:false" json:"notification_is_pinned"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;autoCreateTime;index" json:"notification_created_at"`
	NotificationUpdatedAt time.Time `gorm:"column:notification_updated_at;autoUpdateTime" json:"notification_updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
