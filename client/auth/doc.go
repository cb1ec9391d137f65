// Package auth groups the client side authentication building blocks.
//
// The store sub-package keeps the access/refresh token pair, refresh exchanges
// a refresh token for a new pair, and transport ties both into an
// http.RoundTripper that attaches the bearer token and transparently
// re-authenticates on `401 Unauthorized`. The mock sub-package serves an
// in-memory backend for tests.
package auth
