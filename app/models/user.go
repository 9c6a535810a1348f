package models

// User roles. The original app only distinguishes admins from everyone else.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// User is an account record. Ids are timestamp-derived. Email uniqueness is
// not enforced, matching the original pages.
type User struct {
	Base
	Name  string `json:"name"  gorm:"size:255;not null" validate:"required,max=255"`
	Email string `json:"email" gorm:"size:255;not null" validate:"required,email"`
	Role  string `json:"role"  gorm:"size:50;default:User" validate:"required,in=User,Admin"`

	// PasswordHash is a bcrypt hash, set only for accounts created through
	// register. It is persisted in the blob but stripped by the user
	// resource before any response leaves the API.
	PasswordHash string `json:"passwordHash,omitempty" gorm:"size:255" validate:"nullable"`
}

// IsAdmin reports whether the user holds the Admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
