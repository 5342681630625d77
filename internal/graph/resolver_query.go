package graph

import (
	"context"
	"errors"

	"github.com/MKhiriev/agency-portal/internal/service"
	"github.com/MKhiriev/agency-portal/models"
	graphql "github.com/graph-gophers/graphql-go"
)

type idArgs struct {
	ID graphql.ID
}

type projectIDArgs struct {
	ProjectID graphql.ID
}

// Me returns null for anonymous callers instead of an error.
func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	user, err := r.services.UserService.Me(ctx)
	if errors.Is(err, service.ErrUnauthorized) {
		return nil, nil
	}
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) MyClientProfile(ctx context.Context) (*clientProfileResolver, error) {
	profile, err := r.services.ClientProfileService.Mine(ctx)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	if profile == nil {
		return nil, nil
	}
	return &clientProfileResolver{p: *profile}, nil
}

func (r *Resolver) Users(ctx context.Context, args struct{ Search *string }) ([]*userResolver, error) {
	var filter models.UserFilter
	if args.Search != nil {
		filter.Search = *args.Search
	}
	users, err := r.services.UserService.List(ctx, filter)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return usersOf(users), nil
}

func (r *Resolver) User(ctx context.Context, args idArgs) (*userResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	user, err := r.services.UserService.Get(ctx, id)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) MyProjects(ctx context.Context) ([]*projectResolver, error) {
	projects, err := r.services.ProjectService.Mine(ctx)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return r.projectsOf(projects), nil
}

func (r *Resolver) Project(ctx context.Context, args idArgs) (*projectResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	project, err := r.services.ProjectService.Get(ctx, id)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &projectResolver{p: project, services: r.services}, nil
}

func (r *Resolver) AllProjects(ctx context.Context, args struct{ UserID *graphql.ID }) ([]*projectResolver, error) {
	userID, err := parseIDPtr(args.UserID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	projects, err := r.services.ProjectService.ListAll(ctx, userID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return r.projectsOf(projects), nil
}

type tasksArgs struct {
	ProjectID graphql.ID
	Status    *string
}

func (r *Resolver) Tasks(ctx context.Context, args tasksArgs) ([]*taskResolver, error) {
	projectID, err := parseID(args.ProjectID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	tasks, err := r.services.TaskService.List(ctx, projectID, taskStatusPtr(args.Status))
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return tasksOf(tasks), nil
}

func (r *Resolver) Task(ctx context.Context, args idArgs) (*taskResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	task, err := r.services.TaskService.Get(ctx, id)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &taskResolver{t: task}, nil
}

func (r *Resolver) Milestones(ctx context.Context, args projectIDArgs) ([]*milestoneResolver, error) {
	projectID, err := parseID(args.ProjectID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	milestones, err := r.services.MilestoneService.List(ctx, projectID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return milestonesOf(milestones), nil
}

func (r *Resolver) ProjectFiles(ctx context.Context, args projectIDArgs) ([]*projectFileResolver, error) {
	projectID, err := parseID(args.ProjectID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	files, err := r.services.ProjectFileService.List(ctx, projectID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return filesOf(files), nil
}

func (r *Resolver) Cases(ctx context.Context, args struct{ IncludeUnpublished bool }) ([]*caseResolver, error) {
	cases, err := r.services.CaseService.List(ctx, args.IncludeUnpublished)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return casesOf(cases), nil
}

func (r *Resolver) CaseBySlug(ctx context.Context, args struct{ Slug string }) (*caseResolver, error) {
	c, err := r.services.CaseService.BySlug(ctx, args.Slug)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &caseResolver{c: c}, nil
}

func (r *Resolver) Contacts(ctx context.Context, args struct{ Reason *string }) ([]*contactResolver, error) {
	contacts, err := r.services.ContactService.List(ctx, models.ContactFilter{Reason: args.Reason})
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return contactsOf(contacts), nil
}

func (r *Resolver) Version(ctx context.Context) string {
	return r.services.AppInfoService.GetAppVersion(ctx)
}
