package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
	RoleWaiter  = "waiter"
)

// User is a back-office account. Authentication here is a thin mock login:
// seeded users, bcrypt hashes, a role string used only for route-level
// filtering.
type User struct {
	BaseModel
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Password string `json:"-"` // bcrypt hash
	IsActive bool   `json:"is_active"`
}

// SetPassword hashes and sets the user's password.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword verifies the provided password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// UserResponse is used for API responses (without the password hash).
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
