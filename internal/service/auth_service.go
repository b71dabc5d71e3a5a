package service

import (
	"errors"

	"github.com/abidnoul/portfolio/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the single site operator. Credentials come from
// configuration (email plus a bcrypt hash); there is no user table.
type AuthService interface {
	Login(req LoginRequest) (*LoginResponse, error)
}

type authService struct {
	adminEmail        string
	adminPasswordHash string
	jwtSecret         string
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

var errInvalidCredentials = errors.New("invalid email or password")

func NewAuthService(adminEmail, adminPasswordHash, jwtSecret string) AuthService {
	return &authService{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		jwtSecret:         jwtSecret,
	}
}

// Login verifies the operator credential and issues a token. The same error
// is returned for a wrong email and a wrong password.
func (s *authService) Login(req LoginRequest) (*LoginResponse, error) {
	if s.adminEmail == "" || s.adminPasswordHash == "" {
		return nil, errors.New("admin access not configured")
	}

	if req.Email != s.adminEmail {
		return nil, errInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(req.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	token, err := util.GenerateToken(s.adminEmail, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token}, nil
}
