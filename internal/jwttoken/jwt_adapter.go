package jwttoken

import (
	"motorvault/internal/platform/middleware"
)

// Adapter bridges the token service to the auth middleware's verifier
// interface without the middleware importing JWT internals.
type Adapter struct {
	service *Service
}

func NewAdapter(service *Service) *Adapter {
	return &Adapter{service: service}
}

func (a *Adapter) Verify(tokenString string) (*middleware.TokenClaims, error) {
	claims, err := a.service.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.TokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}
