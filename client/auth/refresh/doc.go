// Package refresh exchanges a refresh token for a new credential pair at the
// backend's token endpoint. It always uses its own plain http.Client so a
// refresh call is never itself intercepted by the authenticating transport.
package refresh
