package response_models

import "time"

type AccountLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      string    `json:"role"`
}

type ProfileResponse struct {
	ID          string    `json:"id"`
	FamilyName  string    `json:"family_name"`
	GivenName   string    `json:"given_name"`
	Phone       string    `json:"phone"`
	Initials    string    `json:"initials"`
	Role        string    `json:"role,omitempty"`
	IsActive    bool      `json:"is_active"`
	MemberSince time.Time `json:"member_since"`
}
