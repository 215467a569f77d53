package services

import (
	"context"
	"testing"

	"oneearth/models"
	"oneearth/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t, repository.Options{})
	registered := e.register(t, "ana", models.RoleUser)
	require.NoError(t, e.auth.Logout(ctx))

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"matching pair", "ana@x.com", "pw", nil},
		{"wrong password", "ana@x.com", "nope", ErrInvalidCredentials},
		{"unknown email", "bob@x.com", "pw", ErrInvalidCredentials},
		{"email case differs", "ANA@x.com", "pw", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, e.auth.Logout(ctx))

			u, err := e.auth.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, err = e.auth.Current(ctx)
				assert.ErrorIs(t, err, ErrNoSession)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.ID, u.ID)

			cur, err := e.auth.Current(ctx)
			require.NoError(t, err)
			assert.Equal(t, registered.ID, cur.ID)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t, repository.Options{})

	u := e.register(t, "h", models.RoleHost)
	assert.Equal(t, 0, u.XP)
	assert.Equal(t, models.RoleHost, u.Role)

	cur, err := e.auth.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, u.ID, cur.ID)

	_, err = e.auth.Register(ctx, RegisterInput{Username: "other", Email: "h@x.com", Password: "pw2", Role: models.RoleUser})
	assert.ErrorIs(t, err, ErrEmailTaken)

	users, err := e.repos.Users.List(ctx)
	require.NoError(t, err)
	count := 0
	for _, x := range users {
		if x.Email == "h@x.com" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Len(t, users, 1)

	// session still belongs to the first registrant
	cur, err = e.auth.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, u.ID, cur.ID)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t, repository.Options{})

	_, err := e.auth.Register(ctx, RegisterInput{Username: "a", Email: "a@x.com", Role: models.RoleUser})
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Contains(t, err.Error(), "password")
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, map[string]string{"password": "required"}, fe.Fields)

	_, err = e.auth.Register(ctx, RegisterInput{Username: "a", Email: "a@x.com", Password: "pw", Role: "admin"})
	assert.ErrorIs(t, err, ErrInvalidRole)

	users, err := e.repos.Users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestAuthService_LogoutAndState(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t, repository.Options{})
	u := e.register(t, "ana", models.RoleUser)

	state, err := e.auth.State(ctx)
	require.NoError(t, err)
	assert.True(t, state.Established)
	require.NotNil(t, state.User)
	assert.Equal(t, u.ID, state.User.ID)

	require.NoError(t, e.auth.Logout(ctx))
	require.NoError(t, e.auth.Logout(ctx), "logging out twice is fine")

	state, err = e.auth.State(ctx)
	require.NoError(t, err)
	assert.True(t, state.Established)
	assert.Nil(t, state.User)
}

func TestAuthService_CorruptSession(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t, repository.Options{})
	require.NoError(t, e.store.Put(ctx, e.auth.SessionKey, []byte("{not json")))

	_, err := e.auth.Current(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSession)

	state, err := e.auth.State(ctx)
	require.Error(t, err)
	assert.False(t, state.Established)
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t, repository.Options{})
	u := e.register(t, "ana", models.RoleUser)

	_, err := e.repos.Users.AddXP(ctx, u.ID, 25)
	require.NoError(t, err)

	fresh, err := e.auth.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, fresh.XP)

	cur, err := e.auth.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, cur.XP)
}
