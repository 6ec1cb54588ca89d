package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundline/storefront/internal/models"
	"github.com/soundline/storefront/internal/transport"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &AuthService{Repo: r}

	user, err := svc.Register(context.Background(), transport.RegisterRequest{
		Username: "alex@example.com",
		Password: "secret",
		Name:     "Alex",
		Email:    "alex@example.com",
		Phone:    "01700000000",
		Address:  "12 Baker Street",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEqual(t, "secret", user.PasswordHash, "password must be stored hashed")

	got, err := svc.Login(context.Background(), transport.LoginRequest{
		Username: "alex@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &AuthService{Repo: r}

	tests := []struct {
		name  string
		req   transport.RegisterRequest
		field string
	}{
		{name: "empty username", req: transport.RegisterRequest{Password: "secret"}, field: "username"},
		{name: "empty password", req: transport.RegisterRequest{Username: "user"}, field: "password"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var fe *transport.FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &AuthService{Repo: r}

	req := transport.RegisterRequest{Username: "taken", Password: "secret"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &AuthService{Repo: r}

	_, err := svc.Register(context.Background(), transport.RegisterRequest{
		Username: "user", Password: "secret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), transport.LoginRequest{Username: "user", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Login(context.Background(), transport.LoginRequest{Username: "nobody", Password: "secret"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
