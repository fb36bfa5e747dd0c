package model

import (
	"time"

	"gorm.io/datatypes"
)

// Fixed role titles; the presentation tiers in service.BuildHierarchy are
// derived from these values.
const (
	RolePresident     = "president"
	RoleVicePresident = "vice_president"
	RoleSecretary     = "secretary"
	RoleTreasurer     = "treasurer"
	RoleExecutive     = "executive"
	RoleAuditor       = "auditor"
)

type TeamMemberModel struct {
	TeamMemberID       string         `gorm:"column:team_member_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"team_member_id"`
	TeamMemberName     datatypes.JSON `gorm:"column:team_member_name;type:jsonb;not null" json:"team_member_name"` // bilingual {en,ta}
	TeamMemberRole     string         `gorm:"column:team_member_role;type:varchar(30);not null;index" json:"team_member_role"`
	TeamMemberBio      *string        `gorm:"column:team_member_bio;type:text" json:"team_member_bio,omitempty"`
	TeamMemberEmail    *string        `gorm:"column:team_member_email;type:varchar(120)" json:"team_member_email,omitempty"`
	TeamMemberPhone    *string        `gorm:"column:team_member_phone;type:varchar(30)" json:"team_member_phone,omitempty"`
	TeamMemberImageURL *string        `gorm:"column:team_member_image_url;type:text" json:"team_member_image_url,omitempty"`
	TeamMemberOrderNum int            `gorm:"column:team_member_order_num;not null;default:0" json:"team_member_order_num"`

	TeamMemberCreatedAt time.Time `gorm:"column:team_member_created_at;autoCreateTime" json:"team_member_created_at"`
	TeamMemberUpdatedAt time.Time `gorm:"column:team_member_updated_at;autoUpdateTime" json:"team_member_updated_at"`
}

func (TeamMemberModel) TableName() string {
	return "team_members"
}
