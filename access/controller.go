// Package access implements the RBAC model: a registry of users and a flat
// action-to-allowed-roles table evaluated on every authorization check.
package access

import (
	"sync"

	"github.com/fleetwatch/fleetrisk-backend/model"
	"go.uber.org/zap"
)

// Actions understood by the controller. Any other action string is denied.
const (
	ActionViewReport            = "view_report"
	ActionModifyReport          = "modify_report"
	ActionAddDevice             = "add_device"
	ActionApproveRecommendation = "approve_recommendation"
)

// actionRoles is the single source of authorization truth. The table is
// deliberately non-hierarchical: approve_recommendation is manager-only and
// admin does NOT qualify, even though admin alone may add devices. Do not
// refactor this into a role inheritance scheme.
var actionRoles = map[string][]model.Role{
	ActionViewReport:            {model.RoleViewer, model.RoleManager, model.RoleAdmin},
	ActionModifyReport:          {model.RoleManager, model.RoleAdmin},
	ActionAddDevice:             {model.RoleAdmin},
	ActionApproveRecommendation: {model.RoleManager},
}

// Controller owns the user registry and evaluates permission checks
type Controller struct {
	mu     sync.RWMutex
	users  map[string]*model.User
	logger *zap.Logger
}

// NewController creates an empty access controller
func NewController(logger *zap.Logger) *Controller {
	return &Controller{
		users:  make(map[string]*model.User),
		logger: logger,
	}
}

// AddUser inserts or overwrites the user keyed by username. A duplicate
// username is not an error; the newer entry wins.
func (c *Controller) AddUser(username string, role model.Role, isActive bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[username] = &model.User{
		Username: username,
		Role:     role,
		IsActive: isActive,
	}
}

// GetUser returns the registered user or nil
func (c *Controller) GetUser(username string) *model.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.users[username]
}

// ListUsers returns a snapshot of all registered users
func (c *Controller) ListUsers() []*model.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	users := make([]*model.User, 0, len(c.users))
	for _, u := range c.users {
		users = append(users, u)
	}
	return users
}

// CheckAccess reports whether the named user may perform the action.
// Unknown users and unknown actions are denied. An inactive user is denied
// unconditionally, with a notice, regardless of role.
func (c *Controller) CheckAccess(username, action string) bool {
	user := c.GetUser(username)
	if user == nil {
		return false
	}

	if !user.IsActive {
		c.logger.Warn("Access denied: user is inactive",
			zap.String("username", user.Username),
			zap.String("action", action))
		return false
	}

	for _, role := range actionRoles[action] {
		if user.Role == role {
			return true
		}
	}
	return false
}
