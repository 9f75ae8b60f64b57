package service

import (
	"testing"

	"Nova_Community/internal/pkg"

	"github.com/stretchr/testify/require"
)

func TestSignup_TokenResolvesToUser(t *testing.T) {
	initTestJWT(t)
	db := newTestDB(t)
	svc := NewUserService(db, pkg.SMTPConfig{})

	user, token, err := svc.Signup("Alice", "alice@example.com", "password")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)

	claims, err := pkg.ParseAccess(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
}

func TestSignup_Validation(t *testing.T) {
	initTestJWT(t)
	db := newTestDB(t)
	svc := NewUserService(db, pkg.SMTPConfig{})

	_, _, err := svc.Signup("A", "alice@example.com", "password")
	requireAppCode(t, err, pkg.CodeInvalidInput)

	_, _, err = svc.Signup("Alice", "not-an-email", "password")
	requireAppCode(t, err, pkg.CodeInvalidEmail)

	_, _, err = svc.Signup("Alice", "alice@example.com", "short")
	requireAppCode(t, err, pkg.CodeInvalidInput)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	initTestJWT(t)
	db := newTestDB(t)
	svc := NewUserService(db, pkg.SMTPConfig{})

	_, _, err := svc.Signup("Alice", "alice@example.com", "password")
	require.NoError(t, err)

	_, _, err = svc.Signup("Alice Again", "alice@example.com", "password")
	requireAppCode(t, err, pkg.CodeResourceExists)
}

func TestSignin(t *testing.T) {
	initTestJWT(t)
	db := newTestDB(t)
	svc := NewUserService(db, pkg.SMTPConfig{})

	created, _, err := svc.Signup("Alice", "alice@example.com", "password")
	require.NoError(t, err)

	user, token, err := svc.Signin("alice@example.com", "password")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)

	claims, err := pkg.ParseAccess(token)
	require.NoError(t, err)
	require.Equal(t, created.ID, claims.UserID)
}

func TestSignin_WrongPassword(t *testing.T) {
	initTestJWT(t)
	db := newTestDB(t)
	svc := NewUserService(db, pkg.SMTPConfig{})

	_, _, err := svc.Signup("Alice", "alice@example.com", "password")
	require.NoError(t, err)

	_, _, err = svc.Signin("alice@example.com", "wrong-password")
	requireAppCode(t, err, pkg.CodeInvalidCredentials)
}

func TestSignin_UnknownEmail(t *testing.T) {
	initTestJWT(t)
	db := newTestDB(t)
	svc := NewUserService(db, pkg.SMTPConfig{})

	_, _, err := svc.Signin("nobody@example.com", "password")
	requireAppCode(t, err, pkg.CodeInvalidEmail)
}

func TestMe(t *testing.T) {
	initTestJWT(t)
	db := newTestDB(t)
	svc := NewUserService(db, pkg.SMTPConfig{})

	created, _, err := svc.Signup("Alice", "alice@example.com", "password")
	require.NoError(t, err)

	user, err := svc.Me(created.ID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)

	_, err = svc.Me("missing-id")
	requireAppCode(t, err, pkg.CodeNotSignedIn)
}
