package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"coachpulse/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles coach and client authentication
type AuthService struct {
	coachUsername string
	coachPassword string
	jwtSecret     []byte
}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	username := os.Getenv("COACH_USERNAME")
	if username == "" {
		username = "coach"
	}
	password := os.Getenv("COACH_PASSWORD")
	if password == "" {
		password = "password123"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}

	return &AuthService{
		coachUsername: username,
		coachPassword: password,
		jwtSecret:     []byte(secret),
	}
}

// Login validates credentials and returns a coach token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.coachUsername || password != s.coachPassword {
		return nil, ErrInvalidCredentials
	}

	coachID := "coach_" + uuid.New().String()[:8]

	claims := &model.CoachClaims{
		CoachID: coachID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:   tokenString,
		CoachID: coachID,
	}, nil
}

// ValidateCoachToken validates a coach JWT and returns claims
func (s *AuthService) ValidateCoachToken(tokenString string) (*model.CoachClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.CoachClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.CoachClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GenerateClientToken creates a client-scoped token for check-in submission
func (s *AuthService) GenerateClientToken(coachID, clientID string) (string, error) {
	claims := &model.ClientClaims{
		CoachID:  coachID,
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateClientToken validates a client JWT and returns claims
func (s *AuthService) ValidateClientToken(tokenString string) (*model.ClientClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.ClientClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.ClientClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
