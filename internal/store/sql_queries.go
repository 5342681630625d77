package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/agency-portal/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"id", "name", "email", "password_hash", "is_admin", "avatar_url", "created_at", "updated_at"}

	clientProfileColumns = []string{
		"id", "user_id", "type", "last_name", "first_name", "middle_name",
		"inn", "company_name", "legal_address", "bik", "bank_name", "account_number",
		"created_at", "updated_at",
	}

	projectColumns     = []string{"id", "user_id", "name", "description", "status", "deadline", "created_at", "updated_at"}
	taskColumns        = []string{"id", "project_id", "title", "description", "status", "priority", "due_date", "created_at", "updated_at"}
	milestoneColumns   = []string{"id", "project_id", "title", "description", "due_date", "completed", "created_at"}
	projectFileColumns = []string{"id", "project_id", "name", "url", "size", "mime_type", "created_at"}
	caseColumns        = []string{"id", "slug", "title", "client", "summary", "content", "cover_url", "tags", "published", "created_at", "updated_at"}
	caseMediaColumns   = []string{"id", "case_id", "url", "kind", "caption", `"order"`}
	contactColumns     = []string{"id", "name", "email", "phone", "company", "message", "reason", "created_at"}
)

// returning renders a RETURNING clause for columns.
func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// qualified prefixes every column with a table alias.
func qualified(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

// ownedProjects restricts a child table row to projects of ownerID.
func ownedProjects(ownerID int64) sq.Sqlizer {
	return sq.Expr("project_id IN (SELECT id FROM projects WHERE user_id = ?)", ownerID)
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ────────────────────────────────────────────────────────────────────

func buildListUsersQuery(filter models.UserFilter) (string, []any, error) {
	q := psql.Select(userColumns...).From("users").OrderBy("created_at DESC", "id DESC")

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		q = q.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
		})
	}

	return toSQL(q)
}

func buildUpdateProfileQuery(userID int64, update models.ProfileUpdate) (string, []any, error) {
	set := map[string]any{"updated_at": sq.Expr("NOW()")}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.AvatarURL != nil {
		set["avatar_url"] = nullIfEmpty(*update.AvatarURL)
	}

	return toSQL(psql.Update("users").
		SetMap(set).
		Where(sq.Eq{"id": userID}).
		Suffix(returning(userColumns)))
}

// ── projects ─────────────────────────────────────────────────────────────────

func buildSelectProjectsQuery(filter models.ProjectFilter) (string, []any, error) {
	q := psql.Select(projectColumns...).From("projects").OrderBy("created_at DESC", "id DESC")

	if filter.ID != nil {
		q = q.Where(sq.Eq{"id": *filter.ID})
	}
	if filter.OwnerID != nil {
		q = q.Where(sq.Eq{"user_id": *filter.OwnerID})
	}

	return toSQL(q)
}

func buildUpdateProjectQuery(filter models.ProjectFilter, input models.ProjectInput) (string, []any, error) {
	if filter.ID == nil {
		return "", nil, fmt.Errorf("%w: project id is required", ErrBuildingSQLQuery)
	}

	set := map[string]any{"updated_at": sq.Expr("NOW()")}
	if input.UserID != nil {
		set["user_id"] = *input.UserID
	}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Status != nil {
		set["status"] = string(*input.Status)
	}
	if input.Deadline != nil {
		set["deadline"] = *input.Deadline
	}

	q := psql.Update("projects").SetMap(set).Where(sq.Eq{"id": *filter.ID})
	if filter.OwnerID != nil {
		q = q.Where(sq.Eq{"user_id": *filter.OwnerID})
	}

	return toSQL(q.Suffix(returning(projectColumns)))
}

// ── tasks ────────────────────────────────────────────────────────────────────

func buildSelectTasksQuery(filter models.TaskFilter) (string, []any, error) {
	q := psql.Select(taskColumns...).From("tasks").OrderBy("created_at ASC", "id ASC")

	if filter.ID != nil {
		q = q.Where(sq.Eq{"id": *filter.ID})
	}
	if filter.ProjectID != nil {
		q = q.Where(sq.Eq{"project_id": *filter.ProjectID})
	}
	if filter.Status != nil {
		q = q.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.OwnerID != nil {
		q = q.Where(ownedProjects(*filter.OwnerID))
	}

	return toSQL(q)
}

func buildUpdateTaskQuery(filter models.TaskFilter, input models.TaskInput) (string, []any, error) {
	if filter.ID == nil {
		return "", nil, fmt.Errorf("%w: task id is required", ErrBuildingSQLQuery)
	}

	set := map[string]any{"updated_at": sq.Expr("NOW()")}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Status != nil {
		set["status"] = string(*input.Status)
	}
	if input.Priority != nil {
		set["priority"] = string(*input.Priority)
	}
	if input.DueDate != nil {
		set["due_date"] = *input.DueDate
	}

	q := psql.Update("tasks").SetMap(set).Where(sq.Eq{"id": *filter.ID})
	// Status guards the update: the row only changes if it still has the
	// status the caller saw.
	if filter.Status != nil {
		q = q.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.OwnerID != nil {
		q = q.Where(ownedProjects(*filter.OwnerID))
	}

	return toSQL(q.Suffix(returning(taskColumns)))
}

// ── milestones ───────────────────────────────────────────────────────────────

func buildSelectMilestonesQuery(filter models.MilestoneFilter) (string, []any, error) {
	q := psql.Select(milestoneColumns...).From("milestones").
		OrderBy("due_date ASC NULLS LAST", "id ASC")

	if filter.ID != nil {
		q = q.Where(sq.Eq{"id": *filter.ID})
	}
	if filter.ProjectID != nil {
		q = q.Where(sq.Eq{"project_id": *filter.ProjectID})
	}
	if filter.OwnerID != nil {
		q = q.Where(ownedProjects(*filter.OwnerID))
	}

	return toSQL(q)
}

func buildUpdateMilestoneQuery(filter models.MilestoneFilter, input models.MilestoneInput) (string, []any, error) {
	if filter.ID == nil {
		return "", nil, fmt.Errorf("%w: milestone id is required", ErrBuildingSQLQuery)
	}

	// milestones carry no updated_at; an empty input rewrites the title in place
	set := map[string]any{"title": sq.Expr("title")}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.DueDate != nil {
		set["due_date"] = *input.DueDate
	}
	if input.Completed != nil {
		set["completed"] = *input.Completed
	}

	q := psql.Update("milestones").SetMap(set).Where(sq.Eq{"id": *filter.ID})
	if filter.OwnerID != nil {
		q = q.Where(ownedProjects(*filter.OwnerID))
	}

	return toSQL(q.Suffix(returning(milestoneColumns)))
}

// ── project files ────────────────────────────────────────────────────────────

func buildSelectProjectFilesQuery(filter models.ProjectFileFilter) (string, []any, error) {
	q := psql.Select(projectFileColumns...).From("project_files").OrderBy("created_at DESC", "id DESC")

	if filter.ID != nil {
		q = q.Where(sq.Eq{"id": *filter.ID})
	}
	if filter.ProjectID != nil {
		q = q.Where(sq.Eq{"project_id": *filter.ProjectID})
	}
	if filter.OwnerID != nil {
		q = q.Where(ownedProjects(*filter.OwnerID))
	}

	return toSQL(q)
}

// ── cases ────────────────────────────────────────────────────────────────────

func buildSelectCasesQuery(filter models.CaseFilter) (string, []any, error) {
	q := psql.Select(caseColumns...).From("cases").OrderBy("created_at DESC", "id DESC")

	if filter.ID != nil {
		q = q.Where(sq.Eq{"id": *filter.ID})
	}
	if filter.Slug != nil {
		q = q.Where(sq.Eq{"slug": *filter.Slug})
	}
	if filter.PublishedOnly {
		q = q.Where(sq.Eq{"published": true})
	}

	return toSQL(q)
}

func buildUpdateCaseQuery(id int64, input models.CaseInput) (string, []any, error) {
	set := map[string]any{"updated_at": sq.Expr("NOW()")}
	if input.Slug != nil {
		set["slug"] = *input.Slug
	}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Client != nil {
		set["client"] = *input.Client
	}
	if input.Summary != nil {
		set["summary"] = *input.Summary
	}
	if input.Content != nil {
		set["content"] = *input.Content
	}
	if input.CoverURL != nil {
		set["cover_url"] = nullIfEmpty(*input.CoverURL)
	}
	if input.Tags != nil {
		set["tags"] = normalizeTags(*input.Tags)
	}
	if input.Published != nil {
		set["published"] = *input.Published
	}

	return toSQL(psql.Update("cases").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(returning(caseColumns)))
}

func buildSelectCaseMediaQuery(caseIDs []int64) (string, []any, error) {
	return toSQL(psql.Select(caseMediaColumns...).
		From("case_media").
		Where(sq.Eq{"case_id": caseIDs}).
		OrderBy("case_id", `"order" ASC`, "id ASC"))
}

// ── contacts ─────────────────────────────────────────────────────────────────

func buildSelectContactsQuery(filter models.ContactFilter) (string, []any, error) {
	q := psql.Select(contactColumns...).From("contacts").OrderBy("created_at DESC", "id DESC")

	if filter.Reason != nil {
		q = q.Where(sq.Eq{"reason": *filter.Reason})
	}

	return toSQL(q)
}

// ── helpers ──────────────────────────────────────────────────────────────────

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// nullIfEmpty stores an empty optional string as NULL.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// optionalString stores a nil or empty optional string as NULL.
func optionalString(s *string) any {
	if s == nil {
		return nil
	}
	return nullIfEmpty(*s)
}

// normalizeTags never returns nil so the NOT NULL tags column stays an array.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
