// Package mock provides an in-memory task backend that facilitates testing of
// the authenticated client without a real server.
//
// The backend issues HS256 signed access and refresh tokens, rotates the
// refresh token on every exchange and counts exchange calls. Tests can expire
// all issued access tokens or make the exchange endpoint fail to drive the
// client through its refresh paths.
package mock
