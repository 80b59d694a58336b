package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWT errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidFormat = errors.New("invalid token format")
)

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	// AdminSecret signs the admin tokens issued by this service
	AdminSecret   string
	AdminTokenExp time.Duration
	TokenIssuer   string
	// MemberSecret verifies member tokens minted by the identity provider
	MemberSecret string
}

// JWTService handles JWT operations
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
	}
}

// AdminClaims is the content of an admin token
type AdminClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// MemberClaims is the content of a member session token
type MemberClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// MemberID returns the member UUID carried in the subject claim
func (c *MemberClaims) MemberID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// GenerateAdminToken issues a short-lived admin token
func (s *JWTService) GenerateAdminToken() (token string, expiresIn int, err error) {
	now := time.Now()
	claims := &AdminClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AdminTokenExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   "admin",
			ID:        uuid.New().String(),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.AdminSecret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create admin token: %w", err)
	}
	return token, int(s.config.AdminTokenExp.Seconds()), nil
}

// GenerateMemberToken signs a member token the way the identity provider does.
// Used by local tooling and tests.
func (s *JWTService) GenerateMemberToken(memberID uuid.UUID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &MemberClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   memberID.String(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.MemberSecret))
	if err != nil {
		return "", fmt.Errorf("failed to create member token: %w", err)
	}
	return token, nil
}

func hmacKey(secret string) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}
}

func mapParseError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}

// ValidateAdminToken validates an admin token
func (s *JWTService) ValidateAdminToken(tokenString string) (*AdminClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, hmacKey(s.config.AdminSecret),
		jwt.WithIssuer(s.config.TokenIssuer))
	if err != nil {
		return nil, mapParseError(err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid || !claims.Admin {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateMemberToken validates a member session token. The subject must be a UUID.
func (s *JWTService) ValidateMemberToken(tokenString string) (*MemberClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &MemberClaims{}, hmacKey(s.config.MemberSecret))
	if err != nil {
		return nil, mapParseError(err)
	}

	claims, ok := token.Claims.(*MemberClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if _, err := claims.MemberID(); err != nil {
		return nil, fmt.Errorf("%w: subject is not a member id", ErrInvalidToken)
	}
	return claims, nil
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", ErrInvalidFormat
	}

	scheme, rest, _ := strings.Cut(authHeader, " ")
	if strings.EqualFold(scheme, "Bearer") {
		token := strings.TrimSpace(rest)
		if token == "" {
			return "", ErrInvalidFormat
		}
		return token, nil
	}

	// Otherwise just return the entire header value as the token
	return authHeader, nil
}
