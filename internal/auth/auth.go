package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/gymflow/gymflow/internal/config"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

// TokenKind distinguishes staff sessions from member portal sessions.
type TokenKind string

const (
	TokenKindUser   TokenKind = "user"
	TokenKindPortal TokenKind = "portal"
)

// Claims is the JWT payload for both staff and portal sessions.
type Claims struct {
	Kind     TokenKind      `json:"kind"`
	UserID   string         `json:"user_id,omitempty"`
	Role     types.UserRole `json:"role,omitempty"`
	MemberID string         `json:"member_id,omitempty"`
	jwt.RegisteredClaims
}

// Service issues and verifies session tokens and handles password hashing.
type Service struct {
	secret       []byte
	tokenExpiry  time.Duration
	portalExpiry time.Duration
}

func NewService(cfg *config.Configuration) *Service {
	return &Service{
		secret:       []byte(cfg.Auth.Secret),
		tokenExpiry:  time.Duration(cfg.Auth.TokenExpiryHours) * time.Hour,
		portalExpiry: time.Duration(cfg.Auth.PortalTokenExpiryHours) * time.Hour,
	}
}

func (s *Service) HashPassword(password string) (string, error) {
	if password == "" {
		return "", ierr.NewError("password cannot be empty").
			WithHint("Please provide a password").
			Mark(ierr.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to hash password").
			Mark(ierr.ErrSystem)
	}
	return string(hash), nil
}

func (s *Service) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ierr.NewError("invalid credentials").
			WithHint("Email or password is incorrect").
			Mark(ierr.ErrPermissionDenied)
	}
	return nil
}

// GenerateUserToken issues a staff session token.
func (s *Service) GenerateUserToken(userID string, role types.UserRole) (string, time.Time, error) {
	expiresAt := time.Now().UTC().Add(s.tokenExpiry)
	return s.sign(&Claims{
		Kind:   TokenKindUser,
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		},
	}, expiresAt)
}

// GeneratePortalToken issues a short-lived member portal session token.
func (s *Service) GeneratePortalToken(memberID string) (string, time.Time, error) {
	expiresAt := time.Now().UTC().Add(s.portalExpiry)
	return s.sign(&Claims{
		Kind:     TokenKindPortal,
		MemberID: memberID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   memberID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		},
	}, expiresAt)
}

func (s *Service) sign(claims *Claims, expiresAt time.Time) (string, time.Time, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, ierr.WithError(err).
			WithHint("Failed to sign session token").
			Mark(ierr.ErrSystem)
	}
	return signed, expiresAt, nil
}

// VerifyToken parses and validates a session token.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewErrorf("unexpected signing method: %v", t.Header["alg"]).
				Mark(ierr.ErrPermissionDenied)
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ierr.NewError("invalid or expired session token").
			WithHint("Please sign in again").
			Mark(ierr.ErrPermissionDenied)
	}
	return claims, nil
}
