package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// ── projects ─────────────────────────────────────────────────────────────────

func projectRow(id, ownerID int64, status string) *sqlmock.Rows {
	return sqlmock.NewRows(projectColumns).
		AddRow(id, ownerID, "Website", "", status, nil, testNow, testNow)
}

func TestProjectRepository_CreateDefaultsToPlanning(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProjectRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO projects").
		WithArgs(int64(3), "Website", "", "PLANNING", nil).
		WillReturnRows(projectRow(1, 3, "PLANNING"))

	project, err := repo.Create(context.Background(), models.Project{UserID: 3, Name: "Website"})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectPlanning, project.Status)
	assert.Nil(t, project.Deadline)
}

func TestProjectRepository_CreateUnknownOwner(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProjectRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO projects").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.Create(context.Background(), models.Project{UserID: 99, Name: "Website"})
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestProjectRepository_GetForeignProjectIsNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProjectRepository(db, logger.Nop())

	mock.ExpectQuery("FROM projects WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows(projectColumns))

	_, err := repo.Get(context.Background(), models.ProjectFilter{ID: ptr(int64(1)), OwnerID: ptr(int64(2))})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepository_GetWithoutIDIsNotFound(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewProjectRepository(db, logger.Nop())

	_, err := repo.Get(context.Background(), models.ProjectFilter{OwnerID: ptr(int64(2))})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepository_List(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProjectRepository(db, logger.Nop())

	rows := projectRow(2, 5, "COMPLETED").AddRow(int64(1), int64(5), "Logo", "", "PLANNING", testNow, testNow, testNow)
	mock.ExpectQuery("FROM projects WHERE user_id = \\$1").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	projects, err := repo.List(context.Background(), models.ProjectFilter{OwnerID: ptr(int64(5))})
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, models.ProjectCompleted, projects[0].Status)
	require.NotNil(t, projects[1].Deadline)
	assert.True(t, projects[1].Deadline.Equal(testNow))
}

func TestProjectRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProjectRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM projects WHERE id = \\$1").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 4), ErrNotFound)
}

// ── tasks ────────────────────────────────────────────────────────────────────

func TestTaskRepository_CreateDefaults(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTaskRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO tasks").
		WithArgs(int64(1), "Draft copy", "", "TODO", "MEDIUM", nil).
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow(int64(10), int64(1), "Draft copy", "", "TODO", "MEDIUM", nil, testNow, testNow))

	task, err := repo.Create(context.Background(), models.Task{ProjectID: 1, Title: "Draft copy"})
	require.NoError(t, err)
	assert.Equal(t, models.TaskTodo, task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)
}

func TestTaskRepository_UpdateForeignTaskIsNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTaskRepository(db, logger.Nop())

	status := models.TaskDone
	mock.ExpectQuery("UPDATE tasks SET status = \\$1").
		WithArgs("DONE", int64(10), int64(2)).
		WillReturnRows(sqlmock.NewRows(taskColumns))

	_, err := repo.Update(context.Background(),
		models.TaskFilter{ID: ptr(int64(10)), OwnerID: ptr(int64(2))},
		models.TaskInput{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepository_DeleteScoped(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTaskRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM tasks WHERE id = \\$1 AND project_id IN \\(SELECT id FROM projects WHERE user_id = \\$2\\)").
		WithArgs(int64(10), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), models.TaskFilter{ID: ptr(int64(10)), OwnerID: ptr(int64(2))}))
	assert.ErrorIs(t, repo.Delete(context.Background(), models.TaskFilter{}), ErrNotFound)
}

// ── milestones ───────────────────────────────────────────────────────────────

func TestMilestoneRepository_CreateAndList(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMilestoneRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO milestones").
		WithArgs(int64(1), "Beta", "", nil, false).
		WillReturnRows(sqlmock.NewRows(milestoneColumns).
			AddRow(int64(4), int64(1), "Beta", "", nil, false, testNow))
	mock.ExpectQuery("FROM milestones WHERE project_id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(milestoneColumns).
			AddRow(int64(4), int64(1), "Beta", "", nil, true, testNow))

	created, err := repo.Create(context.Background(), models.Milestone{ProjectID: 1, Title: "Beta"})
	require.NoError(t, err)
	assert.False(t, created.Completed)

	listed, err := repo.List(context.Background(), models.MilestoneFilter{ProjectID: ptr(int64(1))})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Completed)
}

// ── files ────────────────────────────────────────────────────────────────────

func TestProjectFileRepository_CreateGetDelete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProjectFileRepository(db, logger.Nop())

	row := func() *sqlmock.Rows {
		return sqlmock.NewRows(projectFileColumns).
			AddRow(int64(6), int64(1), "brief.pdf", "/uploads/a.pdf", int64(2048), "application/pdf", testNow)
	}

	mock.ExpectQuery("INSERT INTO project_files").
		WithArgs(int64(1), "brief.pdf", "/uploads/a.pdf", int64(2048), "application/pdf").
		WillReturnRows(row())
	mock.ExpectQuery("FROM project_files WHERE id = \\$1").
		WithArgs(int64(6)).
		WillReturnRows(row())
	mock.ExpectExec("DELETE FROM project_files").
		WithArgs(int64(6), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	created, err := repo.Create(ctx, models.ProjectFile{
		ProjectID: 1, Name: "brief.pdf", URL: "/uploads/a.pdf", Size: 2048, MimeType: "application/pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), created.ID)

	got, err := repo.Get(ctx, models.ProjectFileFilter{ID: ptr(int64(6))})
	require.NoError(t, err)
	assert.Equal(t, "brief.pdf", got.Name)

	err = repo.Delete(ctx, models.ProjectFileFilter{ID: ptr(int64(6)), OwnerID: ptr(int64(3))})
	assert.ErrorIs(t, err, ErrNotFound)
}
