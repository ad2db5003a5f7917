package services

import (
	"strings"
	"testing"

	"github.com/mbelda/fridgechef-be/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.Register("a@x.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Empty(t, user.PasswordHash)

	got, err := svc.Authenticate("a@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Empty(t, got.PasswordHash)
}

func TestRegister_StoresHashNotPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("a@x.com", "secret123")
	require.NoError(t, err)

	var hash string
	require.NoError(t, db.QueryRow("SELECT password_hash FROM users WHERE id = ?", user.ID).Scan(&hash))
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash, got %q", hash)
}

func TestRegister_EmptyFields(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	for _, tc := range []struct{ email, password string }{
		{"", "secret123"},
		{"a@x.com", ""},
		{"", ""},
	} {
		_, err := svc.Register(tc.email, tc.password)
		assert.True(t, apperror.IsType(err, apperror.Validation), "email=%q password=%q: %v", tc.email, tc.password, err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("a@x.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register("a@x.com", "other-password")
	assert.True(t, apperror.IsType(err, apperror.Conflict), "expected conflict, got %v", err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", "a@x.com").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestAuthenticate_FailuresAreIndistinguishable(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.Register("a@x.com", "secret123")
	require.NoError(t, err)

	_, wrongPassErr := svc.Authenticate("a@x.com", "wrong-password")
	_, unknownEmailErr := svc.Authenticate("missing@x.com", "whatever")

	require.Error(t, wrongPassErr)
	require.Error(t, unknownEmailErr)
	assert.True(t, apperror.IsType(wrongPassErr, apperror.Auth))
	assert.True(t, apperror.IsType(unknownEmailErr, apperror.Auth))

	// Same message either way, so callers cannot enumerate accounts.
	assert.Equal(t, wrongPassErr.Error(), unknownEmailErr.Error())
	assert.False(t, apperror.IsType(unknownEmailErr, apperror.NotFound))
}

func TestGetUserByID_NotFound(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.GetUserByID("nope")
	assert.True(t, apperror.IsType(err, apperror.NotFound), "got %v", err)
}
