package auth

import "encoding/json"

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=255"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// LoginRequest represents the request to open a session
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents the request to update profile fields
type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Birthdate *string `json:"birthdate,omitempty" validate:"omitempty,max=20"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
}

// SavePreferencesRequest carries an opaque preferences document
type SavePreferencesRequest struct {
	Preferences json.RawMessage `json:"preferences" validate:"required"`
}

// SavePrivacyRequest carries an opaque privacy-settings document
type SavePrivacyRequest struct {
	PrivacySettings json.RawMessage `json:"privacy_settings" validate:"required"`
}

// DeleteAccountRequest requires the account email typed back as
// confirmation before anything is removed
type DeleteAccountRequest struct {
	ConfirmEmail string `json:"confirm_email" validate:"required,email"`
}

// ChangePasswordRequest represents the request to change the password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}
