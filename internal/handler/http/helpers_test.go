package http

import (
	"testing"

	"github.com/MKhiriev/agency-portal/internal/graph"
	"github.com/MKhiriev/agency-portal/internal/limiter"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/mock"
	"github.com/MKhiriev/agency-portal/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockServices is a Services value whose every member is a gomock double.
type mockServices struct {
	auth    *mock.MockAuthService
	users   *mock.MockUserService
	upload  *mock.MockUploadService
	lookup  *mock.MockLookupService
	appInfo *mock.MockAppInfoService

	services *service.Services
}

func newMockServices(t *testing.T) *mockServices {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &mockServices{
		auth:    mock.NewMockAuthService(ctrl),
		users:   mock.NewMockUserService(ctrl),
		upload:  mock.NewMockUploadService(ctrl),
		lookup:  mock.NewMockLookupService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	m.services = &service.Services{
		Gate:                 mock.NewMockGate(ctrl),
		AuthService:          m.auth,
		UserService:          m.users,
		ClientProfileService: mock.NewMockClientProfileService(ctrl),
		ProjectService:       mock.NewMockProjectService(ctrl),
		TaskService:          mock.NewMockTaskService(ctrl),
		MilestoneService:     mock.NewMockMilestoneService(ctrl),
		ProjectFileService:   mock.NewMockProjectFileService(ctrl),
		CaseService:          mock.NewMockCaseService(ctrl),
		ContactService:       mock.NewMockContactService(ctrl),
		UploadService:        m.upload,
		LookupService:        m.lookup,
		AppInfoService:       m.appInfo,
	}
	return m
}

// newTestHandler builds a Handler over services with no rate limit.
func newTestHandler(t *testing.T, services *service.Services, lim limiter.Limiter, settings Settings) *Handler {
	t.Helper()
	schemas, err := graph.NewSchemas(services, logger.Nop())
	require.NoError(t, err)
	return NewHandler(services, schemas, lim, settings, logger.Nop())
}
