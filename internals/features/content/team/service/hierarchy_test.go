package service

import (
	"testing"

	"gorm.io/datatypes"

	"tamilmandram_backend/internals/features/content/team/model"
)

func member(role string, orderNum int, en string) model.TeamMemberModel {
	return model.TeamMemberModel{
		TeamMemberName:     datatypes.JSON([]byte(`{"en":"` + en + `","ta":""}`)),
		TeamMemberRole:     role,
		TeamMemberOrderNum: orderNum,
	}
}

func TestBuildHierarchyPartitionsAndSorts(t *testing.T) {
	members := []model.TeamMemberModel{
		member(model.RoleExecutive, 3, "Exec B"),
		member(model.RolePresident, 1, "President"),
		member(model.RoleAuditor, 2, "Auditor"),
		member(model.RoleSecretary, 2, "Secretary"),
		member(model.RoleExecutive, 1, "Exec A"),
		member(model.RoleVicePresident, 1, "VP"),
	}

	h := BuildHierarchy(members, "en")

	if h.President == nil || h.President.DisplayName != "President" {
		t.Fatalf("president tier wrong: %+v", h.President)
	}
	if len(h.Leadership) != 2 || h.Leadership[0].DisplayName != "VP" || h.Leadership[1].DisplayName != "Secretary" {
		t.Fatalf("leadership tier wrong: %+v", h.Leadership)
	}
	if len(h.Executives) != 2 || h.Executives[0].DisplayName != "Exec A" || h.Executives[1].DisplayName != "Exec B" {
		t.Fatalf("executives not sorted by order_num: %+v", h.Executives)
	}
	if len(h.Auditors) != 1 || h.Auditors[0].DisplayName != "Auditor" {
		t.Fatalf("auditors tier wrong: %+v", h.Auditors)
	}
}

func TestBuildHierarchyDuplicatePresident(t *testing.T) {
	members := []model.TeamMemberModel{
		member(model.RolePresident, 2, "Second"),
		member(model.RolePresident, 1, "First"),
	}
	h := BuildHierarchy(members, "en")
	if h.President == nil || h.President.DisplayName != "First" {
		t.Fatalf("lowest order_num should be president, got %+v", h.President)
	}
	if len(h.Leadership) != 1 || h.Leadership[0].DisplayName != "Second" {
		t.Fatalf("extra president should land in leadership: %+v", h.Leadership)
	}
}

func TestBuildHierarchyEmpty(t *testing.T) {
	h := BuildHierarchy(nil, "ta")
	if h.President != nil || len(h.Leadership) != 0 || len(h.Executives) != 0 || len(h.Auditors) != 0 {
		t.Fatalf("empty input should give empty tiers: %+v", h)
	}
}
