package Models

import "gorm.io/gorm"

// Roles known to the service. Caregivers write, parents read.
const (
	RoleNounou = "nounou"
	RoleParent = "parent"
)

// User is a local account. Identity and role are all the core logic ever
// reads from it; parents additionally carry the child they may view.
type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex"`
	Name     string `json:"name"`
	Password []byte `json:"-"`
	Role     string `json:"role"`
	// ChildName links a parent account to the one child whose records it can
	// see. Empty for caregivers.
	ChildName string `json:"child_name"`
}

// DeviceToken is an FCM registration token for one of a user's devices,
// used to push caregiver need-notes to parents.
type DeviceToken struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"index"`
	Value  string `json:"value"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateTokenRequest struct {
	Value string `json:"value" validate:"required"`
}
