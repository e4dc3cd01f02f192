package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims is the subset of the backend-issued token the console reads
type JWTClaims struct {
	UserID   string `json:"user_id,omitempty"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`

	jwt.RegisteredClaims
}

// Actor is the current user as far as the console core is concerned
type Actor struct {
	ID        string     `json:"id"`
	Name      string     `json:"name,omitempty"`
	Role      string     `json:"role,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// ActorFromClaims builds the actor facts from token claims
func ActorFromClaims(c *JWTClaims) Actor {
	id := c.UserID
	if id == "" {
		id = c.Subject
	}
	name := c.Username
	if name == "" {
		name = c.Email
	}
	a := Actor{ID: id, Name: name, Role: c.Role}
	if c.ExpiresAt != nil {
		t := c.ExpiresAt.Time
		a.ExpiresAt = &t
	}
	return a
}
