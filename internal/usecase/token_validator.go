package usecase

import (
	"compras-service/internal/pkg/jwt"
)

// Claim is the verified identity derived from a caller's credential.
type Claim struct {
	TenantID string
	Username string
}

// TokenValidator provides credential verification for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Claim, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Claim, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Claim{}, err
	}

	return Claim{
		TenantID: claims.TenantID,
		Username: claims.Username,
	}, nil
}
