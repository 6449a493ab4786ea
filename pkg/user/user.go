package user

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is an account known to the auth provider. ID is the provider's
// subject; Handle is the public user id chosen by the user.
type User struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Handle    string          `json:"userID,omitempty"`
	Name      string          `json:"name,omitempty"`
	Image     string          `json:"image,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
}

// UpdateProfileRequest is the body of PATCH /api/me. Nil fields are left untouched.
type UpdateProfileRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=100"`
	Image  *string `json:"image" validate:"omitempty,url,max=2048"`
	Handle *string `json:"userID" validate:"omitempty,min=3,max=32,alphanum"`
}

// Empty reports whether the request changes nothing.
func (r *UpdateProfileRequest) Empty() bool {
	return r.Name == nil && r.Image == nil && r.Handle == nil
}
