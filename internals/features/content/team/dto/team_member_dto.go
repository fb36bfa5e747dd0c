package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"tamilmandram_backend/internals/features/content/team/model"
	helper "tamilmandram_backend/internals/helpers"
)

// ====================
// Response DTO
// ====================

type TeamMemberDTO struct {
	TeamMemberID string           `json:"team_member_id"`
	Name         helper.Bilingual `json:"name"`
	DisplayName  string           `json:"display_name"`
	Role         string           `json:"role"`
	Bio          *string          `json:"bio,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	ImageURL     *string          `json:"image_url,omitempty"`
	OrderNum     int              `json:"order_num"`
}

// HierarchyDTO is the partitioned presentation of the committee.
type HierarchyDTO struct {
	President  *TeamMemberDTO  `json:"president,omitempty"`
	Leadership []TeamMemberDTO `json:"leadership"`
	Executives []TeamMemberDTO `json:"executives"`
	Auditors   []TeamMemberDTO `json:"auditors"`
}

// ====================
// Request DTO
// ====================

type CreateTeamMemberRequest struct {
	Name     helper.Bilingual `json:"name" validate:"required"`
	Role     string           `json:"role" validate:"required,oneof=president vice_president secretary treasurer executive auditor"`
	Bio      *string          `json:"bio,omitempty"`
	Email    *string          `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string          `json:"phone,omitempty" validate:"omitempty,max=30"`
	OrderNum int              `json:"order_num"`
}

type UpdateTeamMemberRequest struct {
	Name     *helper.Bilingual `json:"name,omitempty"`
	Role     *string           `json:"role,omitempty" validate:"omitempty,oneof=president vice_president secretary treasurer executive auditor"`
	Bio      *string           `json:"bio,omitempty"`
	Email    *string           `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string           `json:"phone,omitempty" validate:"omitempty,max=30"`
	OrderNum *int              `json:"order_num,omitempty"`
}

// ====================
// Converter
// ====================

func ToTeamMemberDTO(m model.TeamMemberModel, lang string) TeamMemberDTO {
	var name helper.Bilingual
	_ = json.Unmarshal(m.TeamMemberName, &name)
	return TeamMemberDTO{
		TeamMemberID: m.TeamMemberID,
		Name:         name,
		DisplayName:  name.Resolve(lang),
		Role:         m.TeamMemberRole,
		Bio:          m.TeamMemberBio,
		Email:        m.TeamMemberEmail,
		Phone:        m.TeamMemberPhone,
		ImageURL:     m.TeamMemberImageURL,
		OrderNum:     m.TeamMemberOrderNum,
	}
}

func (r CreateTeamMemberRequest) ToModel() model.TeamMemberModel {
	nameJSON, _ := json.Marshal(r.Name)
	return model.TeamMemberModel{
		TeamMemberName:     datatypes.JSON(nameJSON),
		TeamMemberRole:     r.Role,
		TeamMemberBio:      r.Bio,
		TeamMemberEmail:    r.Email,
		TeamMemberPhone:    r.Phone,
		TeamMemberOrderNum: r.OrderNum,
	}
}

func (r UpdateTeamMemberRequest) Apply(m *model.TeamMemberModel) {
	if r.Name != nil {
		nameJSON, _ := json.Marshal(*r.Name)
		m.TeamMemberName = datatypes.JSON(nameJSON)
	}
	if r.Role != nil {
		m.TeamMemberRole = *r.Role
	}
	if r.Bio != nil {
		m.TeamMemberBio = r.Bio
	}
	if r.Email != nil {
		m.TeamMemberEmail = r.Email
	}
	if r.Phone != nil {
		m.TeamMemberPhone = r.Phone
	}
	if r.OrderNum != nil {
		m.TeamMemberOrderNum = *r.OrderNum
	}
}
