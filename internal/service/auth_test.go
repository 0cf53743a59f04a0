package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/service"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func statusOf(t *testing.T, err error) (int, string) {
	t.Helper()
	var se *service.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	return se.Status, se.Message
}

func authFixture(t *testing.T) (*fakeProvider, *fakeSession, service.AuthService) {
	t.Helper()
	verified := "2024-01-01 10:00:00"
	users := newFakeUserRepo(model.UserAccount{
		ID:              1,
		Name:            "Admin User",
		Email:           "admin@pos.local",
		PasswordHash:    mustHash(t, "Secret#123"),
		Role:            0,
		EmailVerifiedAt: &verified,
		CreatedAt:       "2023-06-01 09:00:00",
	})
	sess := &fakeSession{users: users}
	provider := &fakeProvider{sess: sess}
	svc := service.NewAuthService(provider, zerolog.New(io.Discard))
	return provider, sess, svc
}

func TestAuthService_Login_OK(t *testing.T) {
	_, sess, svc := authFixture(t)

	res, err := svc.Login(context.Background(), testCreds(), "admin@pos.local", "Secret#123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.User.ID != 1 || res.User.Role.Name != "Admin" || !res.User.EmailVerified {
		t.Fatalf("unexpected user: %+v", res.User)
	}
	// 32 random bytes, hex encoded
	if len(res.Session.Token) != 64 {
		t.Fatalf("token length %d, want 64", len(res.Session.Token))
	}
	if res.Session.ExpiresIn != 3600 {
		t.Fatalf("expires_in %d, want 3600", res.Session.ExpiresIn)
	}
	if !sess.closed {
		t.Fatalf("session must be closed after the request")
	}
}

func TestAuthService_Login_BadCredentialsAreIndistinguishable(t *testing.T) {
	_, _, svc := authFixture(t)

	_, errUnknown := svc.Login(context.Background(), testCreds(), "nobody@pos.local", "Secret#123")
	_, errWrongPass := svc.Login(context.Background(), testCreds(), "admin@pos.local", "wrong")

	codeA, msgA := statusOf(t, errUnknown)
	codeB, msgB := statusOf(t, errWrongPass)
	if codeA != 401 || codeB != 401 {
		t.Fatalf("want 401 for both, got %d and %d", codeA, codeB)
	}
	if msgA != msgB {
		t.Fatalf("messages must not reveal which part failed: %q vs %q", msgA, msgB)
	}
}

func TestAuthService_Login_Validation(t *testing.T) {
	_, _, svc := authFixture(t)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"missing email", "", "x"},
		{"missing password", "admin@pos.local", ""},
		{"bad email format", "not-an-email", "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), testCreds(), tc.email, tc.password)
			if code, _ := statusOf(t, err); code != 400 {
				t.Fatalf("want 400, got %d", code)
			}
		})
	}
}

func TestAuthService_UpdatePassword_Policy(t *testing.T) {
	_, _, svc := authFixture(t)

	base := service.PasswordUpdate{UserID: 1, CurrentPassword: "Secret#123"}
	cases := []struct {
		name    string
		new     string
		retype  string
		wantMsg string
	}{
		{"mismatch", "NewSecret#1", "Other#1", "New password and retype password do not match"},
		{"same as current", "Secret#123", "Secret#123", "New password must be different from current password"},
		{"too short", "Ab#1", "Ab#1", "New password must be at least 8 characters long"},
		{"no uppercase", "secret#123", "secret#123", "New password must contain at least one uppercase letter"},
		{"no lowercase", "SECRET#123", "SECRET#123", "New password must contain at least one lowercase letter"},
		{"no digit", "Secret#abc", "Secret#abc", "New password must contain at least one number"},
		{"no special", "Secret1234", "Secret1234", "New password must contain at least one special character"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			in.NewPassword, in.RetypeNewPassword = tc.new, tc.retype
			_, err := svc.UpdatePassword(context.Background(), testCreds(), in)
			code, msg := statusOf(t, err)
			if code != 400 || msg != tc.wantMsg {
				t.Fatalf("got (%d,%q) want (400,%q)", code, msg, tc.wantMsg)
			}
		})
	}
}

func TestAuthService_UpdatePassword_OK(t *testing.T) {
	_, sess, svc := authFixture(t)

	in := service.PasswordUpdate{
		UserID:            1,
		CurrentPassword:   "Secret#123",
		NewPassword:       "Fresh#Pass9",
		RetypeNewPassword: "Fresh#Pass9",
	}
	res, err := svc.UpdatePassword(context.Background(), testCreds(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.PasswordUpdated || res.RequirementsMet.MinLength != 8 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if sess.users.updatedHash == "" {
		t.Fatalf("expected a stored hash")
	}
	if bcrypt.CompareHashAndPassword([]byte(sess.users.updatedHash), []byte("Fresh#Pass9")) != nil {
		t.Fatalf("stored hash does not verify the new password")
	}
}

func TestAuthService_UpdatePassword_WrongCurrent(t *testing.T) {
	_, _, svc := authFixture(t)

	in := service.PasswordUpdate{
		UserID:            1,
		CurrentPassword:   "nope",
		NewPassword:       "Fresh#Pass9",
		RetypeNewPassword: "Fresh#Pass9",
	}
	_, err := svc.UpdatePassword(context.Background(), testCreds(), in)
	code, msg := statusOf(t, err)
	if code != 401 || msg != "Current password is incorrect" {
		t.Fatalf("got (%d,%q)", code, msg)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	t.Run("email conflict", func(t *testing.T) {
		_, sess, svc := authFixture(t)
		sess.users.accounts[2] = model.UserAccount{ID: 2, Name: "Other", Email: "other@pos.local"}

		_, err := svc.UpdateProfile(context.Background(), testCreds(), service.ProfileUpdate{UserID: 1, Email: "other@pos.local"})
		code, _ := statusOf(t, err)
		if code != 409 {
			t.Fatalf("want 409, got %d", code)
		}
	})

	t.Run("keeping own email is allowed", func(t *testing.T) {
		_, _, svc := authFixture(t)
		user, err := svc.UpdateProfile(context.Background(), testCreds(), service.ProfileUpdate{UserID: 1, Name: "Renamed", Email: "admin@pos.local"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Name != "Renamed" {
			t.Fatalf("name not applied: %+v", user)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, svc := authFixture(t)
		_, err := svc.UpdateProfile(context.Background(), testCreds(), service.ProfileUpdate{UserID: 99, Name: "X"})
		code, msg := statusOf(t, err)
		if code != 404 || msg != "User not found" {
			t.Fatalf("got (%d,%q)", code, msg)
		}
	})

	t.Run("no fields", func(t *testing.T) {
		_, _, svc := authFixture(t)
		_, err := svc.UpdateProfile(context.Background(), testCreds(), service.ProfileUpdate{UserID: 1})
		if code, _ := statusOf(t, err); code != 400 {
			t.Fatalf("want 400, got %d", code)
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, _, svc := authFixture(t)
		_, err := svc.UpdateProfile(context.Background(), repository.Credentials{}, service.ProfileUpdate{UserID: 1, Name: "X"})
		if !errors.Is(err, repository.ErrMissingCredentials) {
			t.Fatalf("want ErrMissingCredentials, got %v", err)
		}
	})
}
