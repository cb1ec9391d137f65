package client

import (
	"errors"
	"net/http"

	"github.com/viant/taskmgr/client/auth/transport"
	"github.com/viant/taskmgr/schema"
)

// Failure classifies an error returned by Client
type Failure int

const (
	FailureNone Failure = iota
	// FailureAuthorization means the backend rejected the credentials and no refresh could recover it.
	FailureAuthorization
	// FailureRefresh means the token exchange failed; stored credentials were cleared.
	FailureRefresh
	// FailureTransport covers network and encoding errors.
	FailureTransport
	// FailureStatus is any other non-2xx response.
	FailureStatus
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureAuthorization:
		return "authorization"
	case FailureRefresh:
		return "refresh"
	case FailureTransport:
		return "transport"
	case FailureStatus:
		return "status"
	}
	return "unknown"
}

// Classify maps err to a Failure
func Classify(err error) Failure {
	if err == nil {
		return FailureNone
	}
	var refreshErr *transport.RefreshError
	if errors.As(err, &refreshErr) {
		return FailureRefresh
	}
	var statusErr *schema.Error
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == http.StatusUnauthorized {
			return FailureAuthorization
		}
		return FailureStatus
	}
	return FailureTransport
}

// IsReauthenticationRequired reports whether the caller should log in again
func IsReauthenticationRequired(err error) bool {
	switch Classify(err) {
	case FailureAuthorization, FailureRefresh:
		return true
	}
	return false
}
