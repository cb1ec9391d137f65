// Package schema defines the wire types exchanged with the task-manager REST backend:
// the response envelope, users, tasks, token pairs and the error body.
package schema
