// Package models defines the DTOs mirrored from the JobPilot API.
// The server owns the canonical lifecycle of every entity; the client only
// holds transient in-memory copies of whatever the last response returned.
package models

import "time"

// Subscription tiers known to the API.
const (
	SubscriptionFree = "free"
	SubscriptionPro  = "pro"
)

// User is the account profile as returned by the auth endpoints.
// It is replaced wholesale on every successful auth or profile-update
// response, never merged field by field.
type User struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	FirstName             string     `json:"first_name"`
	LastName              string     `json:"last_name"`
	SubscriptionType      string     `json:"subscription_type"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at,omitempty"`
	IsActive              bool       `json:"is_active"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// AuthResponse is the shape of successful login/register responses.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileUpdate carries the editable profile fields for PUT /api/auth/profile.
// Only non-empty fields are sent.
type ProfileUpdate struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}
