package model

import "net/url"

const (
	UserTypeDonor         = "donor"
	UserTypeNGO           = "ngo"
	UserTypeVolunteer     = "volunteer"
	UserTypePlatformAdmin = "platform_admin"
)

// User is the client-facing projection returned by the auth endpoints.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
	Avatar   string `json:"avatar"`
	Verified bool   `json:"verified"`
}

// PrivateUserFields never leave the server.
var PrivateUserFields = []string{"password", "resetCode", "resetCodeExpiry"}

func UserFromRecord(r Record) User {
	return User{
		ID:       r.ID(),
		Name:     r.String("name"),
		Email:    r.String("email"),
		UserType: r.String("userType"),
		Avatar:   r.String("avatar"),
		Verified: r.Bool("verified"),
	}
}

// PublicUser strips credentials and reset state from a stored user.
func PublicUser(r Record) Record {
	return r.Without(PrivateUserFields...)
}

// ValidUserType reports whether t is a known account type.
func ValidUserType(t string) bool {
	switch t {
	case UserTypeDonor, UserTypeNGO, UserTypeVolunteer, UserTypePlatformAdmin:
		return true
	}
	return false
}

// DefaultAvatar builds the generated initials avatar used when none is supplied.
func DefaultAvatar(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=0ea5e9&color=fff"
}
