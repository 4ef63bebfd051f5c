package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/store"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/validation"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidSignup      = errors.New("valid email, first name and last name required and password must be at least 8 characters")
)

type AuthService struct {
	analysts store.AnalystStore
	cfg      *config.Config
	now      func() time.Time
}

func NewAuthService(analysts store.AnalystStore, cfg *config.Config) *AuthService {
	return &AuthService{analysts: analysts, cfg: cfg, now: time.Now}
}

// Signup registers an analyst. New accounts are plain users pending approval.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AnalystResponse, error) {
	email := normalizeEmail(req.Email)
	if !validation.IsValidEmail(email) || len(req.Password) < 8 ||
		strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, ErrInvalidSignup
	}

	if _, err := s.analysts.FindAnalystByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	analyst := models.Analyst{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  string(hash),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Role:      models.RoleUser,
		Status:    models.AnalystPending,
	}
	if err := s.analysts.CreateAnalyst(ctx, &analyst); err != nil {
		// Lost a race with a concurrent signup.
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create analyst: %w", err)
	}

	resp := toAnalystResponse(&analyst)
	return &resp, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	analyst, err := s.analysts.FindAnalystByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(analyst.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.generateAccessToken(analyst)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Analyst:     toAnalystResponse(analyst),
	}, nil
}

func (s *AuthService) generateAccessToken(analyst *models.Analyst) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.cfg.JWTAccessExpiry)
	claims := jwt.MapClaims{
		"sub":   analyst.ID,
		"email": analyst.Email,
		"role":  analyst.Role,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, exp, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toAnalystResponse(a *models.Analyst) dto.AnalystResponse {
	return dto.AnalystResponse{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Role:      a.Role,
		Status:    a.Status,
	}
}
