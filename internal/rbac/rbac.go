// Package rbac replaces scattered role-name string comparisons with a closed
// role set and a single capability check.
package rbac

type Role string

const (
	RoleSuperAdmin Role = "SuperAdmin"
	RoleAdmin      Role = "Admin"
	RoleCreator    Role = "Creator"
	RoleViewer     Role = "Viewer"
)

type Action string

const (
	ActionManageRoles      Action = "roles:manage"
	ActionManageUsers      Action = "users:manage"
	ActionManageCategories Action = "categories:manage"
	ActionManageQuestions  Action = "questions:manage"
	ActionCreateTests      Action = "tests:create"
	ActionViewTests        Action = "tests:view"
	ActionViewResults      Action = "results:view"
	ActionDeleteCandidates Action = "candidates:delete"
)

// rolePermissions is the whole policy. "*" grants everything.
var rolePermissions = map[Role][]Action{
	RoleSuperAdmin: {"*"},
	RoleAdmin: {
		ActionManageRoles,
		ActionManageUsers,
		ActionManageCategories,
		ActionManageQuestions,
		ActionCreateTests,
		ActionViewTests,
		ActionViewResults,
		ActionDeleteCandidates,
	},
	RoleCreator: {
		ActionCreateTests,
		ActionViewTests,
		ActionViewResults,
	},
	RoleViewer: {
		ActionViewTests,
	},
}

// Parse maps a stored role name onto the closed role set.
func Parse(name string) (Role, bool) {
	switch Role(name) {
	case RoleSuperAdmin, RoleAdmin, RoleCreator, RoleViewer:
		return Role(name), true
	}
	return "", false
}

// Can reports whether role is allowed to perform action.
func Can(role Role, action Action) bool {
	for _, a := range rolePermissions[role] {
		if a == "*" || a == action {
			return true
		}
	}
	return false
}
