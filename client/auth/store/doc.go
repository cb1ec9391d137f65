// Package store defines the credential store used by the authenticating transport.
//
// A store owns exactly one access/refresh token pair. The transport reads it before
// every request and rewrites it after a token exchange; callers clear it on logout.
// The in-memory store is sufficient for tests and short-lived processes, the other
// backends persist the pair so a session survives restarts:
//   - FileStore: JSON document on any afs URL (local file, mem://, cloud storage);
//   - SecureStore: the same document encrypted with a scy key;
//   - RedisStore: a hash shared by several processes;
//   - SSMStore: an AWS SSM SecureString parameter.
//
// Tokens are opaque to every backend; nothing here validates their contents.
package store
