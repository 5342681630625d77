package graph

import (
	"context"

	"github.com/MKhiriev/agency-portal/models"
	graphql "github.com/graph-gophers/graphql-go"
)

type registerArgs struct {
	Name     *string
	Email    string
	Password string
}

func (r *Resolver) Register(ctx context.Context, args registerArgs) (*authPayloadResolver, error) {
	credentials := models.Credentials{Email: args.Email, Password: args.Password}
	if args.Name != nil {
		credentials.Name = *args.Name
	}
	result, err := r.services.AuthService.Register(ctx, credentials)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	setSession(ctx, result)
	return &authPayloadResolver{result: result}, nil
}

type loginArgs struct {
	Email    string
	Password string
}

// Login reports bad credentials as ok=false rather than an error.
func (r *Resolver) Login(ctx context.Context, args loginArgs) (*authPayloadResolver, error) {
	result, err := r.services.AuthService.Login(ctx, models.Credentials{Email: args.Email, Password: args.Password})
	if err != nil {
		return nil, publicError(ctx, err)
	}
	setSession(ctx, result)
	return &authPayloadResolver{result: result}, nil
}

func (r *Resolver) Logout(ctx context.Context) bool {
	clearSession(ctx)
	return true
}

func (r *Resolver) UpdateProfile(ctx context.Context, args struct{ Input profileInput }) (*userResolver, error) {
	user, err := r.services.UserService.UpdateProfile(ctx, args.Input.toModel())
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &userResolver{u: user}, nil
}

type changePasswordArgs struct {
	CurrentPassword string
	NewPassword     string
}

func (r *Resolver) ChangePassword(ctx context.Context, args changePasswordArgs) (bool, error) {
	err := r.services.UserService.ChangePassword(ctx, models.PasswordChange{
		CurrentPassword: args.CurrentPassword,
		NewPassword:     args.NewPassword,
	})
	if err != nil {
		return false, publicError(ctx, err)
	}
	return true, nil
}

func (r *Resolver) SaveClientProfile(ctx context.Context, args struct{ Input clientProfileInput }) (*clientProfileResolver, error) {
	profile, err := r.services.ClientProfileService.Save(ctx, args.Input.toModel())
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &clientProfileResolver{p: profile}, nil
}

type setUserAdminArgs struct {
	ID      graphql.ID
	IsAdmin bool
}

func (r *Resolver) SetUserAdmin(ctx context.Context, args setUserAdminArgs) (*userResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	user, err := r.services.UserService.SetAdmin(ctx, id, args.IsAdmin)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) DeleteUser(ctx context.Context, args idArgs) (bool, error) {
	return r.deleteByID(ctx, args.ID, r.services.UserService.Delete)
}

// deleteByID runs one of the Delete(ctx, id) service methods.
func (r *Resolver) deleteByID(ctx context.Context, rawID graphql.ID, del func(context.Context, int64) error) (bool, error) {
	id, err := parseID(rawID)
	if err != nil {
		return false, publicError(ctx, err)
	}
	if err = del(ctx, id); err != nil {
		return false, publicError(ctx, err)
	}
	return true, nil
}

func (r *Resolver) CreateProject(ctx context.Context, args struct{ Input projectInput }) (*projectResolver, error) {
	input, err := args.Input.toModel()
	if err != nil {
		return nil, publicError(ctx, err)
	}
	project, err := r.services.ProjectService.Create(ctx, input)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &projectResolver{p: project, services: r.services}, nil
}

type updateProjectArgs struct {
	ID    graphql.ID
	Input projectInput
}

func (r *Resolver) UpdateProject(ctx context.Context, args updateProjectArgs) (*projectResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	input, err := args.Input.toModel()
	if err != nil {
		return nil, publicError(ctx, err)
	}
	project, err := r.services.ProjectService.Update(ctx, id, input)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &projectResolver{p: project, services: r.services}, nil
}

func (r *Resolver) DeleteProject(ctx context.Context, args idArgs) (bool, error) {
	return r.deleteByID(ctx, args.ID, r.services.ProjectService.Delete)
}

func (r *Resolver) CreateTask(ctx context.Context, args struct{ Input taskInput }) (*taskResolver, error) {
	input, err := args.Input.toModel()
	if err != nil {
		return nil, publicError(ctx, err)
	}
	task, err := r.services.TaskService.Create(ctx, input)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &taskResolver{t: task}, nil
}

type updateTaskArgs struct {
	ID    graphql.ID
	Input taskInput
}

func (r *Resolver) UpdateTask(ctx context.Context, args updateTaskArgs) (*taskResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	input, err := args.Input.toModel()
	if err != nil {
		return nil, publicError(ctx, err)
	}
	task, err := r.services.TaskService.Update(ctx, id, input)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &taskResolver{t: task}, nil
}

type updateTaskStatusArgs struct {
	ID     graphql.ID
	Status string
}

func (r *Resolver) UpdateTaskStatus(ctx context.Context, args updateTaskStatusArgs) (*taskResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	task, err := r.services.TaskService.UpdateStatus(ctx, id, models.TaskStatus(args.Status))
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &taskResolver{t: task}, nil
}

func (r *Resolver) DeleteTask(ctx context.Context, args idArgs) (bool, error) {
	return r.deleteByID(ctx, args.ID, r.services.TaskService.Delete)
}

func (r *Resolver) CreateMilestone(ctx context.Context, args struct{ Input milestoneInput }) (*milestoneResolver, error) {
	input, err := args.Input.toModel()
	if err != nil {
		return nil, publicError(ctx, err)
	}
	milestone, err := r.services.MilestoneService.Create(ctx, input)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &milestoneResolver{m: milestone}, nil
}

type updateMilestoneArgs struct {
	ID    graphql.ID
	Input milestoneInput
}

func (r *Resolver) UpdateMilestone(ctx context.Context, args updateMilestoneArgs) (*milestoneResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	input, err := args.Input.toModel()
	if err != nil {
		return nil, publicError(ctx, err)
	}
	milestone, err := r.services.MilestoneService.Update(ctx, id, input)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &milestoneResolver{m: milestone}, nil
}

func (r *Resolver) DeleteMilestone(ctx context.Context, args idArgs) (bool, error) {
	return r.deleteByID(ctx, args.ID, r.services.MilestoneService.Delete)
}

func (r *Resolver) DeleteProjectFile(ctx context.Context, args idArgs) (bool, error) {
	return r.deleteByID(ctx, args.ID, r.services.ProjectFileService.Delete)
}

func (r *Resolver) CreateCase(ctx context.Context, args struct{ Input caseInput }) (*caseResolver, error) {
	c, err := r.services.CaseService.Create(ctx, args.Input.toModel())
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &caseResolver{c: c}, nil
}

type updateCaseArgs struct {
	ID    graphql.ID
	Input caseInput
}

func (r *Resolver) UpdateCase(ctx context.Context, args updateCaseArgs) (*caseResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	c, err := r.services.CaseService.Update(ctx, id, args.Input.toModel())
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &caseResolver{c: c}, nil
}

func (r *Resolver) DeleteCase(ctx context.Context, args idArgs) (bool, error) {
	return r.deleteByID(ctx, args.ID, r.services.CaseService.Delete)
}

type setCaseMediaArgs struct {
	CaseID graphql.ID
	Media  []caseMediaInput
}

// SetCaseMedia replaces the whole gallery. Items without an explicit order
// keep their position in the list.
func (r *Resolver) SetCaseMedia(ctx context.Context, args setCaseMediaArgs) (*caseResolver, error) {
	caseID, err := parseID(args.CaseID)
	if err != nil {
		return nil, publicError(ctx, err)
	}

	media := make([]models.CaseMedia, 0, len(args.Media))
	for i, in := range args.Media {
		item := in.toModel()
		if in.Order == nil {
			item.Order = i
		}
		media = append(media, item)
	}

	c, err := r.services.CaseService.SetMedia(ctx, caseID, media)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &caseResolver{c: c}, nil
}

func (r *Resolver) SubmitContact(ctx context.Context, args struct{ Input contactInput }) (*contactResolver, error) {
	contact, err := r.services.ContactService.Submit(ctx, args.Input.toModel())
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return &contactResolver{c: contact}, nil
}
