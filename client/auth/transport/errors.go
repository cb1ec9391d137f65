package transport

import "errors"

// ErrCredentialsCleared is reported when the pair was removed while a request waited for refresh.
var ErrCredentialsCleared = errors.New("credentials were cleared")

// RefreshError reports a failed token exchange. The store has been cleared
// by the time it is returned; callers should re-authenticate.
type RefreshError struct {
	Err error
}

func (e *RefreshError) Error() string {
	return "token refresh failed: " + e.Err.Error()
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}
