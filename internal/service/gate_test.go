package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/agency-portal/internal/mock"
	"github.com/MKhiriev/agency-portal/internal/service"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/internal/utils"
	"github.com/MKhiriev/agency-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Caller / CurrentUser ─────────────────────────────────────────────────────

func TestGate_Caller_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := newGate(mock.NewMockUserRepository(ctrl))

	_, err := gate.Caller(context.Background())
	assert.ErrorIs(t, err, service.ErrUnauthorized)

	_, err = gate.CurrentUser(context.Background())
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestGate_Caller_ZeroUserIDIsAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := newGate(mock.NewMockUserRepository(ctrl))

	ctx := utils.WithSession(context.Background(), models.Session{Email: "x@example.com"})
	_, err := gate.Caller(ctx)

	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestGate_CurrentUser_DeletedUserIsUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	gate := newGate(users)

	users.EXPECT().FindUserByID(gomock.Any(), client.ID).Return(models.User{}, store.ErrNotFound)

	_, err := gate.CurrentUser(asUser(client))
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestGate_CurrentUser_StorageErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	gate := newGate(users)

	users.EXPECT().FindUserByID(gomock.Any(), client.ID).Return(models.User{}, store.ErrExecutingQuery)

	_, err := gate.CurrentUser(asUser(client))
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── RequireAdmin ─────────────────────────────────────────────────────────────

func TestGate_RequireAdmin(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		stored  models.User
		lookErr error
		lookup  bool
		wantErr error
	}{
		{name: "anonymous", ctx: context.Background(), wantErr: service.ErrUnauthorized},
		{name: "admin", ctx: asUser(admin), stored: admin, lookup: true},
		{name: "not admin", ctx: asUser(client), stored: client, lookup: true, wantErr: service.ErrForbidden},
		{name: "lookup fails closed", ctx: asUser(admin), lookErr: errors.New("connection reset"), lookup: true, wantErr: service.ErrForbidden},
		{name: "deleted admin", ctx: asUser(admin), lookErr: store.ErrNotFound, lookup: true, wantErr: service.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := mock.NewMockUserRepository(ctrl)
			gate := newGate(users)

			if tt.lookup {
				session, _ := utils.SessionFromContext(tt.ctx)
				users.EXPECT().FindUserByID(gomock.Any(), session.UserID).Return(tt.stored, tt.lookErr)
			}

			user, err := gate.RequireAdmin(tt.ctx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, admin.ID, user.ID)
		})
	}
}

func TestGate_RequireAdmin_IgnoresSessionClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	gate := newGate(users)

	// the session names the admin's email but storage says the user is not an admin
	ctx := utils.WithSession(context.Background(), models.Session{UserID: client.ID, Email: admin.Email, Name: admin.Name})
	expectLookup(users, client)

	_, err := gate.RequireAdmin(ctx)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestGate_RequireAdmin_ReloadsOnEveryCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	gate := newGate(users)

	demoted := admin
	demoted.IsAdmin = false
	gomock.InOrder(
		expectLookup(users, admin),
		expectLookup(users, demoted),
	)

	_, err := gate.RequireAdmin(asUser(admin))
	require.NoError(t, err)

	_, err = gate.RequireAdmin(asUser(admin))
	assert.ErrorIs(t, err, service.ErrForbidden)
}

// ── Scope / IsAdmin ──────────────────────────────────────────────────────────

func TestGate_Scope(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	gate := newGate(users)

	expectLookup(users, client)
	scope, err := gate.Scope(asUser(client))
	require.NoError(t, err)
	assert.Equal(t, service.Scope{UserID: client.ID}, scope)
	require.NotNil(t, scope.OwnerFilter())
	assert.Equal(t, client.ID, *scope.OwnerFilter())

	expectLookup(users, admin)
	scope, err = gate.Scope(asUser(admin))
	require.NoError(t, err)
	assert.True(t, scope.IsAdmin)
	assert.Nil(t, scope.OwnerFilter())
}

func TestGate_IsAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	gate := newGate(users)

	// no storage call for anonymous callers
	assert.False(t, gate.IsAdmin(context.Background()))

	expectLookup(users, admin)
	assert.True(t, gate.IsAdmin(asUser(admin)))

	expectLookup(users, client)
	assert.False(t, gate.IsAdmin(asUser(client)))
}
