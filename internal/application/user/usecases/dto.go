package usecases

import (
	"time"

	"datadesk/internal/domain/user"
)

// UserDTO is the wire representation of a user, without credentials.
type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CompanyID string    `json:"company_id"`
	BranchID  string    `json:"branch_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		Username:  u.Username(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      string(u.Role()),
		CompanyID: u.CompanyID(),
		BranchID:  u.BranchID(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}
