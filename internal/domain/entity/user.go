// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// UserAccount is a locally registered account. Accounts live in a single
// persisted table; no two accounts share the same case-insensitive email.
type UserAccount struct {
	ID           string    `json:"id"`           // Opaque unique id, generated at registration.
	Email        string    `json:"email"`        // Login identifier, stored lowercased and trimmed.
	Name         string    `json:"name"`         // Display name.
	PasswordHash string    `json:"passwordHash"` // Bcrypt hash of the password; the plaintext is never persisted.
	CreatedAt    time.Time `json:"createdAt"`    // Timestamp of when this account was created.
}

// Session is the non-secret projection of a UserAccount representing
// "who is currently logged in". At most one session is active at a time.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
