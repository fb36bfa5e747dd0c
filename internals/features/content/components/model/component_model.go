package model

import (
	"time"

	"gorm.io/datatypes"
)

// ComponentModel is one CMS content unit. A page is assembled from the
// ordered set of components whose component_page matches the logical page
// key; content is a type-specific JSON payload whose user-facing strings
// are bilingual {en, ta} objects.
type ComponentModel struct {
	ComponentID      string         `gorm:"column:component_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"component_id"`
	ComponentType    string         `gorm:"column:component_type;type:varchar(50);not null;index:idx_components_page_type,priority:2" json:"component_type"`
	ComponentPage    string         `gorm:"column:component_page;type:varchar(50);not null;index:idx_components_page_type,priority:1" json:"component_page"`
	ComponentSlug    *string        `gorm:"column:component_slug;type:varchar(100)" json:"component_slug,omitempty"`
	ComponentBureau  *string        `gorm:"column:component_bureau;type:varchar(50)" json:"component_bureau,omitempty"`
	ComponentOrder   int            `gorm:"column:component_order;not null;default:0" json:"component_order"`
	ComponentContent datatypes.JSON `gorm:"column:component_content;type:jsonb;not null" json:"component_content"`

	ComponentCreatedAt time.Time `gorm:"column:component_created_at;autoCreateTime" json:"component_created_at"`
	ComponentUpdatedAt time.Time `gorm:"column:component_updated_at;autoUpdateTime" json:"component_updated_at"`
}

func (ComponentModel) TableName() string {
	return "site_components"
}
