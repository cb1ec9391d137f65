package schema

import "time"

type (
	// User represents a backend account
	User struct {
		ID        string    `json:"_id"`
		Email     string    `json:"email"`
		FullName  string    `json:"fullName"`
		Avatar    string    `json:"avatar,omitempty"`
		IsAdmin   bool      `json:"isAdmin"`
		IsBlocked bool      `json:"isBlocked"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}

	// AccountUpdate represents profile fields a user can change
	AccountUpdate struct {
		FullName string `json:"fullName,omitempty"`
		Email    string `json:"email,omitempty"`
	}
)
