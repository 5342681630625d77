package service_test

import (
	"context"
	"testing"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/mock"
	"github.com/MKhiriev/agency-portal/internal/service"
	"github.com/MKhiriev/agency-portal/internal/utils"
	"github.com/MKhiriev/agency-portal/internal/validators"
	"github.com/MKhiriev/agency-portal/models"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var (
	client = models.User{ID: 7, Name: "Client", Email: "client@example.com"}
	other  = models.User{ID: 8, Name: "Other", Email: "other@example.com"}
	admin  = models.User{ID: 1, Name: "Admin", Email: "admin@example.com", IsAdmin: true}
)

// asUser returns a context carrying a verified session of user.
func asUser(user models.User) context.Context {
	return utils.WithSession(context.Background(), models.Session{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
}

// expectLookup makes the gate find user in storage, once per call.
func expectLookup(users *mock.MockUserRepository, user models.User) *gomock.Call {
	return users.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(user, nil)
}

func newValidator() validators.Validator {
	return validators.NewInputValidator()
}

func nop() *logger.Logger {
	return logger.Nop()
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing %q: %v", password, err)
	}
	return string(hash)
}

func ptr[T any](v T) *T {
	return &v
}

func newGate(users *mock.MockUserRepository) service.Gate {
	return service.NewGate(users)
}
