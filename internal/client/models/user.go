// Package models defines client-side data models used by the VidTube client.
package models

// User is the identity record issued by the identity backend.
// The client never edits it in place; a successful response replaces it whole.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Clone returns a copy of u, or nil for a nil receiver.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// LoginRequest carries sign-in credentials. It is never persisted.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest carries sign-up data. It is never persisted.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Registration is the identity backend's answer to a successful sign-up.
type Registration struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// UsernameAvailability is returned by the username check endpoint.
type UsernameAvailability struct {
	Exists    bool `json:"exists"`
	Available bool `json:"available"`
}

// Profile is the public (and, for the owner, private) view of a user.
// Email is only filled for the owner's own profile.
type Profile struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email,omitempty"`
	DisplayName     string `json:"displayName"`
	ProfileImageURL string `json:"profileImageUrl"`
	CreatedAt       string `json:"createdAt,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}

// ProfileUpdate lists the editable profile fields. Nil fields are left untouched
// by the backend and are not sent.
type ProfileUpdate struct {
	DisplayName     *string `json:"displayName,omitempty"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`
}

// Empty reports whether the update carries no fields.
func (p ProfileUpdate) Empty() bool {
	return p.DisplayName == nil && p.ProfileImageURL == nil
}
