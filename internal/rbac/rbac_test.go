package rbac

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Role
		ok   bool
	}{
		{"SuperAdmin", RoleSuperAdmin, true},
		{"Admin", RoleAdmin, true},
		{"Creator", RoleCreator, true},
		{"Viewer", RoleViewer, true},
		{"superadmin", "", false},
		{"Root", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		got, ok := Parse(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCan(t *testing.T) {
	tests := []struct {
		role   Role
		action Action
		want   bool
	}{
		{RoleSuperAdmin, ActionManageRoles, true},
		{RoleSuperAdmin, ActionDeleteCandidates, true},
		{RoleAdmin, ActionManageUsers, true},
		{RoleAdmin, ActionCreateTests, true},
		{RoleAdmin, ActionDeleteCandidates, true},
		{RoleCreator, ActionCreateTests, true},
		{RoleCreator, ActionViewResults, true},
		{RoleCreator, ActionManageQuestions, false},
		{RoleCreator, ActionDeleteCandidates, false},
		{RoleViewer, ActionViewTests, true},
		{RoleViewer, ActionCreateTests, false},
		{RoleViewer, ActionViewResults, false},
		{Role("unknown"), ActionViewTests, false},
	}

	for _, tc := range tests {
		if got := Can(tc.role, tc.action); got != tc.want {
			t.Errorf("Can(%q, %q) = %v, want %v", tc.role, tc.action, got, tc.want)
		}
	}
}
