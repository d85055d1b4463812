package dto

import "time"

// LoginRequest is the login form. Both fields must be filled in but
// neither is checked against anything.
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required" example:"maria.gonzalez@university.edu"`
	Password string `json:"password" form:"password" binding:"required" example:"demo123"`
}

// LanguageRequest switches the UI language.
type LanguageRequest struct {
	Language string `json:"language" form:"language" binding:"required,oneof=en id" example:"id"`
}

// TokenResponse carries the session token issued at login.
type TokenResponse struct {
	AccessToken string      `json:"accessToken"`
	TokenType   string      `json:"tokenType" example:"Bearer"`
	ExpiresAt   time.Time   `json:"expiresAt"`
	Session     interface{} `json:"session"`
}

// NavigateRequest asks for a view. Views the role cannot reach fall back
// to its dashboard.
type NavigateRequest struct {
	View string `json:"view" form:"view" binding:"required" example:"documents"`
}
