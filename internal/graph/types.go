package graph

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/agency-portal/internal/service"
	"github.com/MKhiriev/agency-portal/models"
	graphql "github.com/graph-gophers/graphql-go"
)

func toID(id int64) graphql.ID {
	return graphql.ID(strconv.FormatInt(id, 10))
}

func toTime(t time.Time) graphql.Time {
	return graphql.Time{Time: t}
}

func toTimePtr(t *time.Time) *graphql.Time {
	if t == nil {
		return nil
	}
	return &graphql.Time{Time: *t}
}

func fromTimePtr(t *graphql.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

type authPayloadResolver struct {
	result models.AuthResult
}

func (r *authPayloadResolver) OK() bool {
	return r.result.OK
}

func (r *authPayloadResolver) Token() *string {
	if !r.result.OK {
		return nil
	}
	token := r.result.Token.SignedString
	return &token
}

func (r *authPayloadResolver) User() *userResolver {
	if !r.result.OK {
		return nil
	}
	return &userResolver{u: r.result.User}
}

type userResolver struct {
	u models.User
}

func usersOf(users []models.User) []*userResolver {
	out := make([]*userResolver, 0, len(users))
	for _, u := range users {
		out = append(out, &userResolver{u: u})
	}
	return out
}

func (r *userResolver) ID() graphql.ID          { return toID(r.u.ID) }
func (r *userResolver) Name() string            { return r.u.Name }
func (r *userResolver) Email() string           { return r.u.Email }
func (r *userResolver) IsAdmin() bool           { return r.u.IsAdmin }
func (r *userResolver) AvatarURL() *string      { return r.u.AvatarURL }
func (r *userResolver) CreatedAt() graphql.Time { return toTime(r.u.CreatedAt) }
func (r *userResolver) UpdatedAt() graphql.Time { return toTime(r.u.UpdatedAt) }

type clientProfileResolver struct {
	p models.ClientProfile
}

func (r *clientProfileResolver) ID() graphql.ID          { return toID(r.p.ID) }
func (r *clientProfileResolver) UserID() graphql.ID      { return toID(r.p.UserID) }
func (r *clientProfileResolver) Type() string            { return string(r.p.Type) }
func (r *clientProfileResolver) LastName() *string       { return r.p.LastName }
func (r *clientProfileResolver) FirstName() *string      { return r.p.FirstName }
func (r *clientProfileResolver) MiddleName() *string     { return r.p.MiddleName }
func (r *clientProfileResolver) INN() *string            { return r.p.INN }
func (r *clientProfileResolver) CompanyName() *string    { return r.p.CompanyName }
func (r *clientProfileResolver) LegalAddress() *string   { return r.p.LegalAddress }
func (r *clientProfileResolver) BIK() *string            { return r.p.BIK }
func (r *clientProfileResolver) BankName() *string       { return r.p.BankName }
func (r *clientProfileResolver) AccountNumber() *string  { return r.p.AccountNumber }
func (r *clientProfileResolver) CreatedAt() graphql.Time { return toTime(r.p.CreatedAt) }
func (r *clientProfileResolver) UpdatedAt() graphql.Time { return toTime(r.p.UpdatedAt) }

// projectResolver loads nested collections lazily through the services, so
// the same access checks apply as for the top-level queries.
type projectResolver struct {
	p        models.Project
	services *service.Services
}

func (r *Resolver) projectsOf(projects []models.Project) []*projectResolver {
	out := make([]*projectResolver, 0, len(projects))
	for _, p := range projects {
		out = append(out, &projectResolver{p: p, services: r.services})
	}
	return out
}

func (r *projectResolver) ID() graphql.ID          { return toID(r.p.ID) }
func (r *projectResolver) UserID() graphql.ID      { return toID(r.p.UserID) }
func (r *projectResolver) Name() string            { return r.p.Name }
func (r *projectResolver) Description() string     { return r.p.Description }
func (r *projectResolver) Status() string          { return string(r.p.Status) }
func (r *projectResolver) Deadline() *graphql.Time { return toTimePtr(r.p.Deadline) }
func (r *projectResolver) CreatedAt() graphql.Time { return toTime(r.p.CreatedAt) }
func (r *projectResolver) UpdatedAt() graphql.Time { return toTime(r.p.UpdatedAt) }

type projectTasksArgs struct {
	Status *string
}

func (r *projectResolver) Tasks(ctx context.Context, args projectTasksArgs) ([]*taskResolver, error) {
	tasks, err := r.services.TaskService.List(ctx, r.p.ID, taskStatusPtr(args.Status))
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return tasksOf(tasks), nil
}

func (r *projectResolver) Milestones(ctx context.Context) ([]*milestoneResolver, error) {
	milestones, err := r.services.MilestoneService.List(ctx, r.p.ID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return milestonesOf(milestones), nil
}

func (r *projectResolver) Files(ctx context.Context) ([]*projectFileResolver, error) {
	files, err := r.services.ProjectFileService.List(ctx, r.p.ID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return filesOf(files), nil
}

type taskResolver struct {
	t models.Task
}

func tasksOf(tasks []models.Task) []*taskResolver {
	out := make([]*taskResolver, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, &taskResolver{t: t})
	}
	return out
}

func (r *taskResolver) ID() graphql.ID          { return toID(r.t.ID) }
func (r *taskResolver) ProjectID() graphql.ID   { return toID(r.t.ProjectID) }
func (r *taskResolver) Title() string           { return r.t.Title }
func (r *taskResolver) Description() string     { return r.t.Description }
func (r *taskResolver) Status() string          { return string(r.t.Status) }
func (r *taskResolver) Priority() string        { return string(r.t.Priority) }
func (r *taskResolver) DueDate() *graphql.Time  { return toTimePtr(r.t.DueDate) }
func (r *taskResolver) CreatedAt() graphql.Time { return toTime(r.t.CreatedAt) }
func (r *taskResolver) UpdatedAt() graphql.Time { return toTime(r.t.UpdatedAt) }

type milestoneResolver struct {
	m models.Milestone
}

func milestonesOf(milestones []models.Milestone) []*milestoneResolver {
	out := make([]*milestoneResolver, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, &milestoneResolver{m: m})
	}
	return out
}

func (r *milestoneResolver) ID() graphql.ID          { return toID(r.m.ID) }
func (r *milestoneResolver) ProjectID() graphql.ID   { return toID(r.m.ProjectID) }
func (r *milestoneResolver) Title() string           { return r.m.Title }
func (r *milestoneResolver) Description() string     { return r.m.Description }
func (r *milestoneResolver) DueDate() *graphql.Time  { return toTimePtr(r.m.DueDate) }
func (r *milestoneResolver) Completed() bool         { return r.m.Completed }
func (r *milestoneResolver) CreatedAt() graphql.Time { return toTime(r.m.CreatedAt) }

type projectFileResolver struct {
	f models.ProjectFile
}

func filesOf(files []models.ProjectFile) []*projectFileResolver {
	out := make([]*projectFileResolver, 0, len(files))
	for _, f := range files {
		out = append(out, &projectFileResolver{f: f})
	}
	return out
}

func (r *projectFileResolver) ID() graphql.ID          { return toID(r.f.ID) }
func (r *projectFileResolver) ProjectID() graphql.ID   { return toID(r.f.ProjectID) }
func (r *projectFileResolver) Name() string            { return r.f.Name }
func (r *projectFileResolver) URL() string             { return r.f.URL }
func (r *projectFileResolver) Size() float64           { return float64(r.f.Size) }
func (r *projectFileResolver) MimeType() string        { return r.f.MimeType }
func (r *projectFileResolver) CreatedAt() graphql.Time { return toTime(r.f.CreatedAt) }

type caseResolver struct {
	c models.Case
}

func casesOf(cases []models.Case) []*caseResolver {
	out := make([]*caseResolver, 0, len(cases))
	for _, c := range cases {
		out = append(out, &caseResolver{c: c})
	}
	return out
}

func (r *caseResolver) ID() graphql.ID          { return toID(r.c.ID) }
func (r *caseResolver) Slug() string            { return r.c.Slug }
func (r *caseResolver) Title() string           { return r.c.Title }
func (r *caseResolver) Client() string          { return r.c.Client }
func (r *caseResolver) Summary() string         { return r.c.Summary }
func (r *caseResolver) Content() string         { return r.c.Content }
func (r *caseResolver) CoverURL() *string       { return r.c.CoverURL }
func (r *caseResolver) Published() bool         { return r.c.Published }
func (r *caseResolver) CreatedAt() graphql.Time { return toTime(r.c.CreatedAt) }
func (r *caseResolver) UpdatedAt() graphql.Time { return toTime(r.c.UpdatedAt) }

func (r *caseResolver) Tags() []string {
	if r.c.Tags == nil {
		return []string{}
	}
	return r.c.Tags
}

func (r *caseResolver) Media() []*caseMediaResolver {
	out := make([]*caseMediaResolver, 0, len(r.c.Media))
	for _, m := range r.c.Media {
		out = append(out, &caseMediaResolver{m: m})
	}
	return out
}

type caseMediaResolver struct {
	m models.CaseMedia
}

func (r *caseMediaResolver) ID() graphql.ID  { return toID(r.m.ID) }
func (r *caseMediaResolver) URL() string     { return r.m.URL }
func (r *caseMediaResolver) Kind() string    { return string(r.m.Kind) }
func (r *caseMediaResolver) Caption() string { return r.m.Caption }
func (r *caseMediaResolver) Order() int32    { return int32(r.m.Order) }

type contactResolver struct {
	c models.Contact
}

func contactsOf(contacts []models.Contact) []*contactResolver {
	out := make([]*contactResolver, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, &contactResolver{c: c})
	}
	return out
}

func (r *contactResolver) ID() graphql.ID          { return toID(r.c.ID) }
func (r *contactResolver) Name() string            { return r.c.Name }
func (r *contactResolver) Email() string           { return r.c.Email }
func (r *contactResolver) Phone() *string          { return r.c.Phone }
func (r *contactResolver) Company() *string        { return r.c.Company }
func (r *contactResolver) Message() string         { return r.c.Message }
func (r *contactResolver) Reason() *string         { return r.c.Reason }
func (r *contactResolver) CreatedAt() graphql.Time { return toTime(r.c.CreatedAt) }
