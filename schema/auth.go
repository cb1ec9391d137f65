package schema

type (
	// Credentials represents login form input
	Credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// Registration represents sign-up input; Image is an optional avatar upload.
	Registration struct {
		Email    string `json:"email"`
		FullName string `json:"fullName"`
		Password string `json:"password"`
		Image    *File  `json:"-"`
	}

	// TokenPair represents the access/refresh token pair issued by login and refresh endpoints.
	TokenPair struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}

	// RefreshRequest is the token-exchange request body.
	RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	// LoginResult is returned by a successful login.
	LoginResult struct {
		User *User `json:"user,omitempty"`
		TokenPair
	}

	// PasswordChange represents a change password request
	PasswordChange struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
)
