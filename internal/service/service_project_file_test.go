package service_test

import (
	"errors"
	"testing"

	"github.com/MKhiriev/agency-portal/internal/mock"
	"github.com/MKhiriev/agency-portal/internal/service"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProjectFileService(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	files := mock.NewMockProjectFileRepository(ctrl)
	projects := mock.NewMockProjectRepository(ctrl)
	objects := mock.NewMockObjectStore(ctrl)
	svc := service.NewProjectFileService(newGate(users), files, projects, objects, nop())
	ctx := asUser(client)
	filter := models.ProjectFileFilter{ID: ptr(int64(5)), OwnerID: ptr(client.ID)}

	t.Run("list", func(t *testing.T) {
		gomock.InOrder(
			expectLookup(users, client),
			projects.EXPECT().Get(ctx, models.ProjectFilter{ID: ptr(int64(3)), OwnerID: ptr(client.ID)}).Return(models.Project{ID: 3}, nil),
			files.EXPECT().List(ctx, models.ProjectFileFilter{ProjectID: ptr(int64(3)), OwnerID: ptr(client.ID)}).
				Return([]models.ProjectFile{{ID: 5}}, nil),
		)

		got, err := svc.List(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("delete removes the stored object", func(t *testing.T) {
		gomock.InOrder(
			expectLookup(users, client),
			files.EXPECT().Get(ctx, filter).Return(models.ProjectFile{ID: 5, URL: "/uploads/abc.pdf"}, nil),
			files.EXPECT().Delete(ctx, filter).Return(nil),
			objects.EXPECT().Delete(ctx, "abc.pdf").Return(nil),
		)

		require.NoError(t, svc.Delete(ctx, 5))
	})

	t.Run("object removal failure is not fatal", func(t *testing.T) {
		gomock.InOrder(
			expectLookup(users, client),
			files.EXPECT().Get(ctx, filter).Return(models.ProjectFile{ID: 5, URL: "https://cdn.example.com/bucket/abc.pdf"}, nil),
			files.EXPECT().Delete(ctx, filter).Return(nil),
			objects.EXPECT().Delete(ctx, "abc.pdf").Return(errors.New("bucket unavailable")),
		)

		require.NoError(t, svc.Delete(ctx, 5))
	})

	t.Run("delete foreign", func(t *testing.T) {
		gomock.InOrder(
			expectLookup(users, client),
			files.EXPECT().Get(ctx, filter).Return(models.ProjectFile{}, store.ErrNotFound),
		)

		assert.ErrorIs(t, svc.Delete(ctx, 5), service.ErrFileNotFound)
	})
}
