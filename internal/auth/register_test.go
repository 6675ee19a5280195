package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-backend/internal/users"
	pkgAuth "github.com/stitchline/stitchline-backend/pkg/auth"
	"github.com/stitchline/stitchline-backend/pkg/db"
	pkgerrors "github.com/stitchline/stitchline-backend/pkg/errors"
	"github.com/stitchline/stitchline-backend/pkg/security"
)

func setupRegisterTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ddl := []string{`
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS user_profiles (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL UNIQUE,
  avatar_url TEXT,
  is_archived INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`}
	for _, stmt := range ddl {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func newRegisterTestService(t *testing.T) (RegisterService, *gorm.DB) {
	t.Helper()
	conn := setupRegisterTestDB(t)
	svc, err := NewRegisterService(RegisterServiceParams{
		DB:             db.NewFromGorm(conn),
		SessionManager: newStubSessionManager(),
		PasswordConfig: servicePasswordConfig(),
		JWTConfig:      serviceJWTConfig(),
	})
	require.NoError(t, err)
	return svc, conn
}

func TestRegisterCreatesUserWithProfile(t *testing.T) {
	svc, conn := newRegisterTestService(t)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		FirstName: "Lena",
		LastName:  "Kovalenko",
		Email:     "Lena@Example.com",
		Password:  "a strong password",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "lena@example.com", resp.User.Email)
	assert.False(t, resp.User.IsArchived)

	// Registration signs the account in: the response carries a usable pair.
	require.NotEmpty(t, resp.RefreshToken)
	claims, err := pkgAuth.ParseAccessToken(serviceJWTConfig(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "lena@example.com", claims.Email)

	repo := users.NewRepository(conn)
	user, err := repo.FindByEmail(context.Background(), "lena@example.com")
	require.NoError(t, err)
	require.NotNil(t, user.Profile, "profile must exist in the same transaction")

	ok, err := security.VerifyPassword("a strong password", user.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok, "stored hash must verify, plaintext must not be stored")
	assert.NotEqual(t, "a strong password", user.PasswordHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newRegisterTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		FirstName: "First",
		LastName:  "User",
		Email:     "taken@example.com",
		Password:  "a strong password",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{
		FirstName: "Second",
		LastName:  "User",
		Email:     "TAKEN@example.com",
		Password:  "another password 1",
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}
