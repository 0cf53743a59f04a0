package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

const (
	passwordMinLength = 8
	tokenTTLSeconds   = 3600
	timestampLayout   = "2006-01-02 15:04:05"
)

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// dummyHash keeps the bcrypt cost on the unknown-email path so response timing
// does not reveal whether an address exists.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type authService struct {
	provider repository.Provider
	validate *validator.Validate
	log      zerolog.Logger
}

var _ AuthService = (*authService)(nil)

func NewAuthService(provider repository.Provider, log zerolog.Logger) AuthService {
	return &authService{
		provider: provider,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log.With().Str("module", "service").Str("component", "auth").Logger(),
	}
}

func (s *authService) Login(ctx context.Context, creds repository.Credentials, email, password string) (model.LoginResult, error) {
	if email == "" || password == "" {
		return model.LoginResult{}, NewStatusError(http.StatusBadRequest, "Email and password are required fields.")
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return model.LoginResult{}, NewStatusError(http.StatusBadRequest, "Invalid email format.")
	}

	sess, err := s.provider.Acquire(ctx, creds)
	if err != nil {
		return model.LoginResult{}, err
	}
	defer sess.Close()

	account, err := sess.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// burn the same work as a real comparison
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return model.LoginResult{}, NewStatusError(http.StatusUnauthorized, "Invalid email or password.")
		}
		return model.LoginResult{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		s.log.Debug().Int64("user_id", account.ID).Msg("password mismatch")
		return model.LoginResult{}, NewStatusError(http.StatusUnauthorized, "Invalid email or password.")
	}

	token, err := sessionToken()
	if err != nil {
		return model.LoginResult{}, err
	}

	return model.LoginResult{
		User: toAuthUser(account),
		Session: model.SessionInfo{
			Token:     token,
			ExpiresIn: tokenTTLSeconds,
			Timestamp: time.Now().Format(timestampLayout),
		},
	}, nil
}

func (s *authService) UpdatePassword(ctx context.Context, creds repository.Credentials, in PasswordUpdate) (model.PasswordChange, error) {
	if in.UserID <= 0 {
		return model.PasswordChange{}, NewStatusError(http.StatusBadRequest, "User ID is required for password update")
	}
	switch {
	case in.CurrentPassword == "":
		return model.PasswordChange{}, NewStatusError(http.StatusBadRequest, "Current password is required")
	case in.NewPassword == "":
		return model.PasswordChange{}, NewStatusError(http.StatusBadRequest, "New password is required")
	case in.RetypeNewPassword == "":
		return model.PasswordChange{}, NewStatusError(http.StatusBadRequest, "Retype new password is required")
	}
	if err := checkPasswordPolicy(in); err != nil {
		return model.PasswordChange{}, err
	}

	sess, err := s.provider.Acquire(ctx, creds)
	if err != nil {
		return model.PasswordChange{}, err
	}
	defer sess.Close()

	account, err := sess.Users().GetByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.PasswordChange{}, NewStatusError(http.StatusNotFound, "User not found")
		}
		return model.PasswordChange{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.CurrentPassword)) != nil {
		return model.PasswordChange{}, NewStatusError(http.StatusUnauthorized, "Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return model.PasswordChange{}, err
	}
	if err := sess.Users().UpdatePassword(ctx, in.UserID, string(hash)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.PasswordChange{}, NewStatusError(http.StatusNotFound, "User not found")
		}
		return model.PasswordChange{}, err
	}

	s.log.Info().Int64("user_id", in.UserID).Msg("password updated")
	return model.PasswordChange{
		PasswordUpdated:   true,
		PasswordChangedAt: time.Now().Format(timestampLayout),
		RequirementsMet: model.PasswordRequirements{
			MinLength:      passwordMinLength,
			HasUppercase:   true,
			HasLowercase:   true,
			HasNumber:      true,
			HasSpecialChar: true,
		},
	}, nil
}

// checkPasswordPolicy applies rules in a fixed order so clients always see the
// first unmet requirement.
func checkPasswordPolicy(in PasswordUpdate) error {
	switch {
	case in.NewPassword != in.RetypeNewPassword:
		return NewStatusError(http.StatusBadRequest, "New password and retype password do not match")
	case in.NewPassword == in.CurrentPassword:
		return NewStatusError(http.StatusBadRequest, "New password must be different from current password")
	case len(in.NewPassword) < passwordMinLength:
		return NewStatusError(http.StatusBadRequest, "New password must be at least 8 characters long")
	case !upperRe.MatchString(in.NewPassword):
		return NewStatusError(http.StatusBadRequest, "New password must contain at least one uppercase letter")
	case !lowerRe.MatchString(in.NewPassword):
		return NewStatusError(http.StatusBadRequest, "New password must contain at least one lowercase letter")
	case !digitRe.MatchString(in.NewPassword):
		return NewStatusError(http.StatusBadRequest, "New password must contain at least one number")
	case !specialRe.MatchString(in.NewPassword):
		return NewStatusError(http.StatusBadRequest, "New password must contain at least one special character")
	}
	return nil
}

func (s *authService) UpdateProfile(ctx context.Context, creds repository.Credentials, in ProfileUpdate) (model.AuthUser, error) {
	if in.UserID <= 0 {
		return model.AuthUser{}, NewStatusError(http.StatusBadRequest, "User ID is required for profile update")
	}
	if in.Name == "" && in.Email == "" {
		return model.AuthUser{}, NewStatusError(http.StatusBadRequest, "At least one field (name or email) is required for update")
	}
	if in.Email != "" {
		if err := s.validate.Var(in.Email, "email"); err != nil {
			return model.AuthUser{}, NewStatusError(http.StatusBadRequest, "Invalid email format")
		}
	}

	sess, err := s.provider.Acquire(ctx, creds)
	if err != nil {
		return model.AuthUser{}, err
	}
	defer sess.Close()

	if _, err := sess.Users().GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.AuthUser{}, NewStatusError(http.StatusNotFound, "User not found")
		}
		return model.AuthUser{}, err
	}

	if in.Email != "" {
		taken, err := sess.Users().EmailTaken(ctx, in.Email, in.UserID)
		if err != nil {
			return model.AuthUser{}, err
		}
		if taken {
			return model.AuthUser{}, NewStatusError(http.StatusConflict, "Email already exists. Please use a different email.")
		}
	}

	var name, email *string
	if in.Name != "" {
		name = &in.Name
	}
	if in.Email != "" {
		email = &in.Email
	}
	if err := sess.Users().UpdateProfile(ctx, in.UserID, name, email); err != nil {
		return model.AuthUser{}, err
	}

	updated, err := sess.Users().GetByID(ctx, in.UserID)
	if err != nil {
		return model.AuthUser{}, err
	}
	s.log.Info().Int64("user_id", in.UserID).Msg("profile updated")
	return toAuthUser(updated), nil
}

func toAuthUser(a model.UserAccount) model.AuthUser {
	return model.AuthUser{
		ID:              a.ID,
		Name:            a.Name,
		Email:           a.Email,
		Role:            model.Role{ID: a.Role, Name: model.RoleName(a.Role)},
		EmailVerified:   a.EmailVerifiedAt != nil,
		EmailVerifiedAt: a.EmailVerifiedAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func sessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
