package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TokenExpiry is the duration for which session tokens are valid. Expiry
// is the only termination path; tokens are never revoked server-side.
const TokenExpiry = time.Hour

// Claims binds a user identifier and role into a signed token.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies session tokens. Verification is a pure
// function of the token and the secret; no storage lookup is involved.
type JWTService struct {
	secret   []byte
	timeFunc func() time.Time
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret:   []byte(secret),
		timeFunc: time.Now,
	}
}

// GenerateToken signs a token carrying the user's identifier and role,
// expiring one hour from issuance.
func (s *JWTService) GenerateToken(userID uuid.UUID, role string) (string, error) {
	now := s.timeFunc()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies a token's signature and expiry and returns its
// claims. Malformed, wrong-key, wrong-method and expired tokens all fail.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
