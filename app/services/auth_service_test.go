package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/repositories"
	"github.com/chitralaya/chitralaya/app/services/apperr"
	"github.com/chitralaya/chitralaya/pkg/auth"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db))

	result, err := svc.Register(RegisterInput{
		FirstName: "Asha",
		Email:     "asha@example.com",
		Password:  "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, models.RoleUser, result.User.Role)

	claims, err := auth.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)

	login, err := svc.Login(LoginInput{Email: "asha@example.com", Password: "correct horse battery"})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db))

	_, err := svc.Register(RegisterInput{
		FirstName: "Asha",
		Email:     "asha@example.com",
		Password:  "correct horse battery",
	})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{
		FirstName: "Another",
		Email:     "asha@example.com",
		Password:  "different password",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestLoginRejectsWrongPasswordAndInactive(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db))

	result, err := svc.Register(RegisterInput{
		FirstName: "Asha",
		Email:     "asha@example.com",
		Password:  "correct horse battery",
	})
	require.NoError(t, err)

	_, err = svc.Login(LoginInput{Email: "asha@example.com", Password: "wrong"})
	assert.True(t, apperr.IsKind(err, apperr.KindAuth))

	_, err = svc.Login(LoginInput{Email: "nobody@example.com", Password: "whatever"})
	assert.True(t, apperr.IsKind(err, apperr.KindAuth))

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", result.User.ID).
		Update("is_active", false).Error)

	_, err = svc.Login(LoginInput{Email: "asha@example.com", Password: "correct horse battery"})
	assert.True(t, apperr.IsKind(err, apperr.KindAuth))
}

func TestResolveReflectsLiveAccountState(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db))
	user := seedUser(t, db, "asha@example.com")

	role, active, err := svc.Resolve(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)
	assert.True(t, active)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("is_active", false).Error)

	_, active, err = svc.Resolve(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, active, "revoked accounts must fail the middleware check")

	_, _, err = svc.Resolve(context.Background(), 999)
	assert.Error(t, err)
}
