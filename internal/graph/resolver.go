package graph

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/agency-portal/internal/service"
	"github.com/MKhiriev/agency-portal/internal/utils"
	"github.com/MKhiriev/agency-portal/internal/validators"
	"github.com/MKhiriev/agency-portal/models"
	graphql "github.com/graph-gophers/graphql-go"
)

// Resolver is the root resolver serving both Query and Mutation.
type Resolver struct {
	services *service.Services
}

// parseID converts a GraphQL ID into a database key.
func parseID(id graphql.ID) (int64, error) {
	v, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: malformed id %q", validators.ErrInvalidInput, string(id))
	}
	return v, nil
}

func parseIDPtr(id *graphql.ID) (*int64, error) {
	if id == nil {
		return nil, nil
	}
	v, err := parseID(*id)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func taskStatusPtr(s *string) *models.TaskStatus {
	if s == nil {
		return nil
	}
	status := models.TaskStatus(*s)
	return &status
}

// setSession asks the HTTP layer to issue the session cookie. Outside an
// HTTP request there is no jar and the token is only returned in the payload.
func setSession(ctx context.Context, result models.AuthResult) {
	if !result.OK {
		return
	}
	if jar, ok := utils.CookieJarFromContext(ctx); ok {
		jar.SetSession(result.Token.SignedString)
	}
}

func clearSession(ctx context.Context) {
	if jar, ok := utils.CookieJarFromContext(ctx); ok {
		jar.ClearSession()
	}
}

type profileInput struct {
	Name      *string
	AvatarURL *string
}

func (in profileInput) toModel() models.ProfileUpdate {
	return models.ProfileUpdate{Name: in.Name, AvatarURL: in.AvatarURL}
}

type clientProfileInput struct {
	Type          string
	LastName      *string
	FirstName     *string
	MiddleName    *string
	INN           *string
	CompanyName   *string
	LegalAddress  *string
	BIK           *string
	BankName      *string
	AccountNumber *string
}

func (in clientProfileInput) toModel() models.ClientProfile {
	return models.ClientProfile{
		Type:          models.ClientType(in.Type),
		LastName:      in.LastName,
		FirstName:     in.FirstName,
		MiddleName:    in.MiddleName,
		INN:           in.INN,
		CompanyName:   in.CompanyName,
		LegalAddress:  in.LegalAddress,
		BIK:           in.BIK,
		BankName:      in.BankName,
		AccountNumber: in.AccountNumber,
	}
}

type projectInput struct {
	UserID      *graphql.ID
	Name        *string
	Description *string
	Status      *string
	Deadline    *graphql.Time
}

func (in projectInput) toModel() (models.ProjectInput, error) {
	userID, err := parseIDPtr(in.UserID)
	if err != nil {
		return models.ProjectInput{}, err
	}
	out := models.ProjectInput{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Deadline:    fromTimePtr(in.Deadline),
	}
	if in.Status != nil {
		status := models.ProjectStatus(*in.Status)
		out.Status = &status
	}
	return out, nil
}

type taskInput struct {
	ProjectID   *graphql.ID
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *graphql.Time
}

func (in taskInput) toModel() (models.TaskInput, error) {
	out := models.TaskInput{
		Title:       in.Title,
		Description: in.Description,
		Status:      taskStatusPtr(in.Status),
		DueDate:     fromTimePtr(in.DueDate),
	}
	if in.ProjectID != nil {
		projectID, err := parseID(*in.ProjectID)
		if err != nil {
			return models.TaskInput{}, err
		}
		out.ProjectID = projectID
	}
	if in.Priority != nil {
		priority := models.TaskPriority(*in.Priority)
		out.Priority = &priority
	}
	return out, nil
}

type milestoneInput struct {
	ProjectID   *graphql.ID
	Title       *string
	Description *string
	DueDate     *graphql.Time
	Completed   *bool
}

func (in milestoneInput) toModel() (models.MilestoneInput, error) {
	out := models.MilestoneInput{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     fromTimePtr(in.DueDate),
		Completed:   in.Completed,
	}
	if in.ProjectID != nil {
		projectID, err := parseID(*in.ProjectID)
		if err != nil {
			return models.MilestoneInput{}, err
		}
		out.ProjectID = projectID
	}
	return out, nil
}

type caseInput struct {
	Slug      *string
	Title     *string
	Client    *string
	Summary   *string
	Content   *string
	CoverURL  *string
	Tags      *[]string
	Published *bool
}

func (in caseInput) toModel() models.CaseInput {
	return models.CaseInput{
		Slug:      in.Slug,
		Title:     in.Title,
		Client:    in.Client,
		Summary:   in.Summary,
		Content:   in.Content,
		CoverURL:  in.CoverURL,
		Tags:      in.Tags,
		Published: in.Published,
	}
}

type caseMediaInput struct {
	URL     string
	Kind    string
	Caption *string
	Order   *int32
}

func (in caseMediaInput) toModel() models.CaseMedia {
	media := models.CaseMedia{URL: in.URL, Kind: models.MediaKind(in.Kind)}
	if in.Caption != nil {
		media.Caption = *in.Caption
	}
	if in.Order != nil {
		media.Order = int(*in.Order)
	}
	return media
}

type contactInput struct {
	Name    string
	Email   string
	Phone   *string
	Company *string
	Message string
	Reason  *string
}

func (in contactInput) toModel() models.Contact {
	return models.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Company: in.Company,
		Message: in.Message,
		Reason:  in.Reason,
	}
}
