package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"tamilmandram_backend/internals/features/content/components/model"
)

// ====================
// Response DTO
// ====================

type ComponentDTO struct {
	ComponentID      string          `json:"component_id"`
	ComponentType    string          `json:"component_type"`
	ComponentPage    string          `json:"component_page"`
	ComponentSlug    *string         `json:"component_slug,omitempty"`
	ComponentBureau  *string         `json:"component_bureau,omitempty"`
	ComponentOrder   int             `json:"component_order"`
	ComponentContent json.RawMessage `json:"component_content"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ====================
// Request DTO
// ====================

type CreateComponentRequest struct {
	ComponentType    string          `json:"component_type" validate:"required,min=2,max=50"`
	ComponentPage    string          `json:"component_page" validate:"required,min=2,max=50"`
	ComponentSlug    *string         `json:"component_slug,omitempty" validate:"omitempty,max=100"`
	ComponentBureau  *string         `json:"component_bureau,omitempty" validate:"omitempty,max=50"`
	ComponentOrder   int             `json:"component_order"`
	ComponentContent json.RawMessage `json:"component_content" validate:"required"`
}

type UpdateComponentRequest struct {
	ComponentType    *string         `json:"component_type,omitempty" validate:"omitempty,min=2,max=50"`
	ComponentPage    *string         `json:"component_page,omitempty" validate:"omitempty,min=2,max=50"`
	ComponentSlug    *string         `json:"component_slug,omitempty" validate:"omitempty,max=100"`
	ComponentBureau  *string         `json:"component_bureau,omitempty" validate:"omitempty,max=50"`
	ComponentOrder   *int            `json:"component_order,omitempty"`
	ComponentContent json.RawMessage `json:"component_content,omitempty"`
}

// ====================
// Converter
// ====================

func ToComponentDTO(m model.ComponentModel) ComponentDTO {
	return ComponentDTO{
		ComponentID:      m.ComponentID,
		ComponentType:    m.ComponentType,
		ComponentPage:    m.ComponentPage,
		ComponentSlug:    m.ComponentSlug,
		ComponentBureau:  m.ComponentBureau,
		ComponentOrder:   m.ComponentOrder,
		ComponentContent: json.RawMessage(m.ComponentContent),
		CreatedAt:        m.ComponentCreatedAt,
		UpdatedAt:        m.ComponentUpdatedAt,
	}
}

func ToComponentDTOs(ms []model.ComponentModel) []ComponentDTO {
	out := make([]ComponentDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToComponentDTO(m))
	}
	return out
}

func (r CreateComponentRequest) ToModel() model.ComponentModel {
	return model.ComponentModel{
		ComponentType:    r.ComponentType,
		ComponentPage:    r.ComponentPage,
		ComponentSlug:    r.ComponentSlug,
		ComponentBureau:  r.ComponentBureau,
		ComponentOrder:   r.ComponentOrder,
		ComponentContent: datatypes.JSON(r.ComponentContent),
	}
}

func (r UpdateComponentRequest) Apply(m *model.ComponentModel) {
	if r.ComponentType != nil {
		m.ComponentType = *r.ComponentType
	}
	if r.ComponentPage != nil {
		m.ComponentPage = *r.ComponentPage
	}
	if r.ComponentSlug != nil {
		m.ComponentSlug = r.ComponentSlug
	}
	if r.ComponentBureau != nil {
		m.ComponentBureau = r.ComponentBureau
	}
	if r.ComponentOrder != nil {
		m.ComponentOrder = *r.ComponentOrder
	}
	if len(r.ComponentContent) > 0 {
		m.ComponentContent = datatypes.JSON(r.ComponentContent)
	}
}
