// Package entity contains the core business objects of the project.
package entity

// AuthState is an immutable snapshot of the authentication machine.
// Consumers read it after every notification instead of holding references
// into the machine's internals.
type AuthState struct {
	User      *Session // The active session, or nil when logged out.
	IsLoading bool     // True while initialize/login/register/update is in flight.
	Err       string   // User-facing error message; empty when clear.
}

// IsAuthenticated reports whether a session is active. It is derived from
// User so the "authenticated iff user present" invariant cannot drift.
func (s AuthState) IsAuthenticated() bool {
	return s.User != nil
}
