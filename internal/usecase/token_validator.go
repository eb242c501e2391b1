package usecase

import (
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/pkg/jwt"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/mock_token_validator.go -package=usecase

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Principal{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Principal{}, err
	}
	if role == user.RoleClient && claims.ClientID == "" {
		return user.Principal{}, jwt.ErrInvalidToken
	}

	return user.Principal{UserID: claims.Subject, Role: role, ClientID: claims.ClientID}, nil
}
