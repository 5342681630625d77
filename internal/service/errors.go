package service

import "errors"

// Errors whose text is returned to API clients verbatim.
var (
	ErrUnauthorized            = errors.New("unauthorized")
	ErrForbidden               = errors.New("forbidden")
	ErrForbiddenSelfDelete     = errors.New("forbidden_self_delete")
	ErrEmailTaken              = errors.New("email_taken")
	ErrSlugTaken               = errors.New("slug_taken")
	ErrUserNotFound            = errors.New("user_not_found")
	ErrProjectNotFound         = errors.New("project_not_found")
	ErrTaskNotFound            = errors.New("task_not_found")
	ErrMilestoneNotFound       = errors.New("milestone_not_found")
	ErrFileNotFound            = errors.New("file_not_found")
	ErrCaseNotFound            = errors.New("case_not_found")
	ErrInvalidStatusTransition = errors.New("invalid_status_transition")
	ErrWrongPassword           = errors.New("wrong_password")
	ErrInternal                = errors.New("internal_error")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenCreationFailed   = errors.New("session token creation failed")
)
