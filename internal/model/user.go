package model

import (
	"encoding/json"
	"time"
)

const (
	RoleDefault = "default"
	RoleAdmin   = "admin"
)

// User represents a registered customer or staff member
type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Photo        string    `json:"photo,omitempty"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"` // Never exposed
	CreatedAt    time.Time `json:"createdAt"`
	Extra        Extra     `json:"-"`
}

type userJSON User

func (u User) MarshalJSON() ([]byte, error) {
	return mergeExtra(userJSON(u), u.Extra)
}

// IsAdmin reports whether the stored role grants admin access
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// RegisterUserRequest is the sign-in payload sent by the client on first login.
// Any other profile fields land in Extra and are stored with the user.
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Photo    string `json:"photo"`
	Password string `json:"password"`
	Extra    Extra  `json:"-"`
}

type registerUserJSON RegisterUserRequest

// registerReserved holds every key a client may not set through Extra, so a
// registration cannot carry its own id or role.
var registerReserved = func() map[string]bool {
	names := jsonNames(registerUserJSON{})
	for name := range jsonNames(userJSON{}) {
		names[name] = true
	}
	names["passwordHash"] = true
	return names
}()

func (r *RegisterUserRequest) UnmarshalJSON(data []byte) error {
	var typed registerUserJSON
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}
	extra, err := splitExtra(data, registerReserved)
	if err != nil {
		return err
	}
	*r = RegisterUserRequest(typed)
	r.Extra = extra
	return nil
}

// TokenRequest is the payload accepted by the token issuing endpoint
type TokenRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}
