package services

import (
	"errors"
	"fmt"
	"time"

	"movieapi/internal/credentials"
	"movieapi/internal/logging"
	"movieapi/internal/models"
	"movieapi/internal/repositories"

	"github.com/dgrijalva/jwt-go"
)

// DefaultTokenTTL is how long an issued session token stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims is the signed session payload.
type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// AuthService handles login and session token validation.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
}

// NewAuthService creates a new AuthService. A non-positive ttl selects DefaultTokenTTL.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   ttl,
	}
}

// LoginUser checks the credentials and returns a signed token plus the user.
// Unknown usernames and wrong passwords fail with the same ErrInvalidCredentials.
func (s *AuthService) LoginUser(username, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	ok, err := credentials.Verify(password, user.Password)
	if err != nil {
		// A stored value that is not a digest never matches.
		logging.Warn().Err(err).Str("username", username).Msg("Stored password is not a bcrypt digest")
		return "", nil, ErrInvalidCredentials
	}
	if !ok {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.Username)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// IssueToken signs a session token for username.
func (s *AuthService) IssueToken(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			Subject:   username,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.tokenTTL).Unix(),
		},
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a token. Every failure wraps ErrUnauthenticated.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %v: %w", err, ErrUnauthenticated)
	}
	if !token.Valid || claims.Username == "" {
		return nil, fmt.Errorf("invalid token: %w", ErrUnauthenticated)
	}
	if claims.ExpiresAt == 0 {
		return nil, fmt.Errorf("invalid token: missing expiry: %w", ErrUnauthenticated)
	}
	return claims, nil
}
