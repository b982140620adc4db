package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"sciport/internal/platform/middleware"
	dErrors "sciport/pkg/domain-errors"
)

// Claims are the access token claims. The subject is the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and validates access tokens with a shared HS256 secret.
type Service struct {
	signingKey []byte
	expiresIn  time.Duration
}

func New(signingKey string, expiresIn time.Duration) *Service {
	return &Service{signingKey: []byte(signingKey), expiresIn: expiresIn}
}

// GenerateAccessToken issues a signed token for a user. The returned token id
// (jti) is what revocation is keyed on.
func (s *Service) GenerateAccessToken(userID, role string) (token string, tokenID string, err error) {
	tokenID = uuid.NewString()
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        tokenID,
		},
	})

	token, err = newToken.SignedString(s.signingKey)
	if err != nil {
		return "", "", err
	}
	return token, tokenID, nil
}

// ValidateToken implements middleware.TokenValidator.
func (s *Service) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	if !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}

	return &middleware.TokenClaims{
		UserID:  claims.Subject,
		Role:    claims.Role,
		TokenID: claims.ID,
	}, nil
}

// ExpiresIn reports the configured token lifetime.
func (s *Service) ExpiresIn() time.Duration { return s.expiresIn }
