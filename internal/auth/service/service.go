package service

import (
	"context"
	"errors"
	"time"

	"motorvault/internal/auth/credentials"
	"motorvault/internal/auth/models"
	"motorvault/internal/jwttoken"
	"motorvault/internal/storage"
	dErrors "motorvault/pkg/domain-errors"
)

// UserStore is the slice of the store the service needs.
type UserStore interface {
	Insert(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) error
}

// Service implements registration, both login paths, and profile management.
// It keeps transport concerns out of business logic.
type Service struct {
	users  UserStore
	tokens *jwttoken.Service
}

func NewService(users UserStore, tokens *jwttoken.Service) *Service {
	return &Service{users: users, tokens: tokens}
}

// errInvalidCredentials merges "user not found" and "credential mismatch"
// into one failure so responses never confirm whether an email is registered.
var errInvalidCredentials = dErrors.New(dErrors.CodeInvalidCredentials, "invalid credentials")

// Register creates a user and issues a first token. Duplicate email is
// checked up front for a clean Conflict, but the store's unique index is the
// real guarantee: a racing insert also comes back as Conflict.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (models.TokenResponse, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return models.TokenResponse{}, dErrors.New(dErrors.CodeConflict, "email already registered")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return models.TokenResponse{}, err
	}

	hash, err := credentials.HashPassword(req.Password)
	if err != nil {
		return models.TokenResponse{}, err
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Phone:        req.Phone,
		MemberID:     credentials.GenerateMemberID(),
		PIN:          credentials.GeneratePIN(),
		CreatedAt:    time.Now().UTC(),
	}

	saved, err := s.users.Insert(ctx, user)
	if errors.Is(err, storage.ErrDuplicate) {
		return models.TokenResponse{}, dErrors.New(dErrors.CodeConflict, "email already registered")
	}
	if err != nil {
		return models.TokenResponse{}, err
	}

	return s.issueFor(saved)
}

// LoginPassword authenticates with email + password.
func (s *Service) LoginPassword(ctx context.Context, req models.PasswordLoginRequest) (models.TokenResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return models.TokenResponse{}, errInvalidCredentials
	}
	if !credentials.VerifyPassword(req.Password, user.PasswordHash) {
		return models.TokenResponse{}, errInvalidCredentials
	}
	return s.issueFor(user)
}

// LoginPIN authenticates with email + PIN. The PIN is compared as an exact
// string against the stored value; it is a low-entropy convenience
// credential, not a security boundary.
func (s *Service) LoginPIN(ctx context.Context, req models.PINLoginRequest) (models.TokenResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return models.TokenResponse{}, errInvalidCredentials
	}
	if req.PIN == "" || user.PIN != req.PIN {
		return models.TokenResponse{}, errInvalidCredentials
	}
	return s.issueFor(user)
}

// CurrentUser resolves the token-derived user ID to a fresh record.
func (s *Service) CurrentUser(ctx context.Context, userID string) (models.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return models.UserResponse{}, dErrors.New(dErrors.CodeNotFound, "user not found")
	}
	if err != nil {
		return models.UserResponse{}, err
	}
	return user.Public(), nil
}

// UpdateProfile applies only the fields present in the request. A new
// password is re-hashed; everything else passes through untouched.
func (s *Service) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.UserResponse, error) {
	patch := models.UserPatch{
		FullName: req.FullName,
		Phone:    req.Phone,
	}
	if req.Password != nil {
		hash, err := credentials.HashPassword(*req.Password)
		if err != nil {
			return models.UserResponse{}, err
		}
		patch.PasswordHash = &hash
	}

	if err := s.users.Update(ctx, userID, patch); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.UserResponse{}, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return models.UserResponse{}, err
	}
	return s.CurrentUser(ctx, userID)
}

func (s *Service) issueFor(user models.User) (models.TokenResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Email, 0)
	if err != nil {
		return models.TokenResponse{}, err
	}
	return models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Public(),
	}, nil
}
