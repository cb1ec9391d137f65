// Package transport implements an http.RoundTripper that attaches the stored
// bearer token to every outgoing request and, when the backend answers
// `401 Unauthorized`, exchanges the stored refresh token for a new pair and
// replays the request once.
//
// Concurrent requests failing with the same token share a single refresh call.
// A refresh failure clears the credential store and surfaces as *RefreshError.
package transport
