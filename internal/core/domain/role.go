package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Role is an organization member's authority level. Ranks are explicit so that
// comparisons never depend on declaration order.
type Role int

const (
	RoleViewer     Role = 10
	RoleSubmitter  Role = 20
	RoleApprover   Role = 30
	RoleAccountant Role = 40
	RoleAdmin      Role = 50
	RoleOwner      Role = 60
)

var roleNames = map[Role]string{
	RoleViewer:     "VIEWER",
	RoleSubmitter:  "SUBMITTER",
	RoleApprover:   "APPROVER",
	RoleAccountant: "ACCOUNTANT",
	RoleAdmin:      "ADMIN",
	RoleOwner:      "OWNER",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ROLE(%d)", int(r))
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// AtLeast reports whether r ranks at or above required.
func (r Role) AtLeast(required Role) bool {
	return r >= required
}

// ParseRole converts a role name such as "APPROVER" into a Role.
func ParseRole(s string) (Role, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for role, n := range roleNames {
		if n == name {
			return role, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("cannot marshal unknown role %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a role name.
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Actor is a user acting within an organization.
type Actor struct {
	UserID string `json:"userID"`
	Role   Role   `json:"role"`
	// ApprovalLimit only applies to RoleApprover. Nil means unlimited.
	ApprovalLimit *decimal.Decimal `json:"approvalLimit,omitempty"`
}
