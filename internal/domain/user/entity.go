package user

// User is an account in the reservation system. The id doubles as the
// login name and as the owner key on reservations.
type User struct {
	id           UserID
	passwordHash string
	role         Role
}

func NewUser(id UserID, passwordHash string, role Role) *User {
	return &User{
		id:           id,
		passwordHash: passwordHash,
		role:         role,
	}
}

func (u *User) ID() UserID           { return u.id }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}
