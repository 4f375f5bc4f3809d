package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	// StarterGold is the balance every freshly provisioned account starts with.
	StarterGold = 500
	// MinPasswordLen is the minimum accepted raw password length.
	MinPasswordLen = 8
)

// User models an account that owns hamsters and holds a gold balance.
type User struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Roles        []string `json:"roles"`
	Gold         int      `json:"gold"`
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// CanAct reports whether actor may operate on a resource owned by ownerID.
// Owners act on their own resources; admins override the ownership check.
// Evaluated before every mutating or single-resource-read operation.
func CanAct(actor *User, ownerID string) bool {
	if actor == nil {
		return false
	}
	return actor.ID == ownerID || actor.IsAdmin()
}
