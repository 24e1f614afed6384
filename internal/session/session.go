// Package session generates opaque context keys for adapters that have no
// natural conversation identifier of their own, such as the evalbrokerctl
// eval command's --context flag default.
package session

import "github.com/google/uuid"

// NewContextKey returns a fresh "demo-<uuid>" context key. The broker never
// interprets context keys; this is only a convenient example value for
// one-shot CLI invocations that want a unique persistent-backend session.
func NewContextKey() string {
	return "demo-" + uuid.New().String()
}
