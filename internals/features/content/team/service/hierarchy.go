package service

import (
	"sort"

	"tamilmandram_backend/internals/features/content/team/dto"
	"tamilmandram_backend/internals/features/content/team/model"
)

// BuildHierarchy partitions committee members into presentation tiers:
// president, leadership (vice president / secretary / treasurer),
// executives, auditors. Each tier is sorted by order_num. When several
// members carry the president role, the lowest order_num wins and the rest
// fall back to the leadership tier.
func BuildHierarchy(members []model.TeamMemberModel, lang string) dto.HierarchyDTO {
	h := dto.HierarchyDTO{
		Leadership: []dto.TeamMemberDTO{},
		Executives: []dto.TeamMemberDTO{},
		Auditors:   []dto.TeamMemberDTO{},
	}

	sorted := make([]model.TeamMemberModel, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TeamMemberOrderNum < sorted[j].TeamMemberOrderNum
	})

	for _, m := range sorted {
		d := dto.ToTeamMemberDTO(m, lang)
		switch m.TeamMemberRole {
		case model.RolePresident:
			if h.President == nil {
				h.President = &d
			} else {
				h.Leadership = append(h.Leadership, d)
			}
		case model.RoleVicePresident, model.RoleSecretary, model.RoleTreasurer:
			h.Leadership = append(h.Leadership, d)
		case model.RoleAuditor:
			h.Auditors = append(h.Auditors, d)
		default:
			h.Executives = append(h.Executives, d)
		}
	}
	return h
}
