package model

import "github.com/golang-jwt/jwt/v5"

// CoachClaims are JWT claims for coach authentication
type CoachClaims struct {
	CoachID string `json:"coachId"`
	jwt.RegisteredClaims
}

// ClientClaims are JWT claims for client-scoped tokens
type ClientClaims struct {
	CoachID  string `json:"coachId"`
	ClientID string `json:"clientId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for coach login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token   string `json:"token"`
	CoachID string `json:"coachId"`
}
