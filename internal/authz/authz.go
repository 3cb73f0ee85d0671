// Package authz holds the single role capability table. Services consult it
// through Can instead of scattering per-view role checks; "own entity"
// scopes are not table entries and are re-derived by each operation from the
// acting user's id.
package authz

import "github.com/brucekarangwamanzi/tuma-tr/internal/models"

// Action is a capability a role may hold.
type Action string

const (
	ActionCreateOrder          Action = "create_order"
	ActionViewAllOrders        Action = "view_all_orders"
	ActionChangeOrderStatus    Action = "change_order_status"
	ActionViewAllConversations Action = "view_all_conversations"
	ActionListUsers            Action = "list_users"
	ActionChangeUserRole       Action = "change_user_role"
	ActionReviewVerification   Action = "review_verification"
	ActionEditSiteContent      Action = "edit_site_content"
)

var capabilities = map[models.Role]map[Action]bool{
	models.RoleUser: {
		ActionCreateOrder: true,
	},
	models.RoleOrderProcessor: {
		ActionViewAllOrders:        true,
		ActionChangeOrderStatus:    true,
		ActionViewAllConversations: true,
	},
	models.RoleAdmin: {
		ActionViewAllOrders:        true,
		ActionChangeOrderStatus:    true,
		ActionViewAllConversations: true,
		ActionListUsers:            true,
		ActionChangeUserRole:       true,
		ActionReviewVerification:   true,
	},
	models.RoleSuperAdmin: {
		ActionViewAllOrders:        true,
		ActionChangeOrderStatus:    true,
		ActionViewAllConversations: true,
		ActionListUsers:            true,
		ActionChangeUserRole:       true,
		ActionReviewVerification:   true,
		ActionEditSiteContent:      true,
	},
}

// Can reports whether the role holds the capability.
func Can(role models.Role, action Action) bool {
	return capabilities[role][action]
}
