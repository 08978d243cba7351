package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// InvalidTransitionError represents a state-machine move the domain rejects:
// changing a status to its current value, or a capacity counter change that
// has nowhere to go. Reason, when set, overrides the same-status message.
type InvalidTransitionError struct {
	Entity string
	Status string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("%s is already in status %s", e.Entity, e.Status)
}

// Is enables errors.Is() comparison for InvalidTransitionError
func (e *InvalidTransitionError) Is(target error) bool {
	_, ok := target.(*InvalidTransitionError)
	return ok
}

// CapacityExceededError is returned when an approval would push a project
// beyond its target team size.
type CapacityExceededError struct {
	TeamSize int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("project team is full (%d members), no more applications can be approved", e.TeamSize)
}

// Is enables errors.Is() comparison for CapacityExceededError
func (e *CapacityExceededError) Is(target error) bool {
	_, ok := target.(*CapacityExceededError)
	return ok
}

// TeamNotFullError is returned when role assignment is requested before the
// approved roster matches the project's team size. Both counts are carried
// for diagnosability.
type TeamNotFullError struct {
	Expected int
	Actual   int
}

func (e *TeamNotFullError) Error() string {
	return fmt.Sprintf("approved applicants do not fill the team: team size %d, approved %d", e.Expected, e.Actual)
}

// Is enables errors.Is() comparison for TeamNotFullError
func (e *TeamNotFullError) Is(target error) bool {
	_, ok := target.(*TeamNotFullError)
	return ok
}

// MalformedModelResponseError is returned when the LLM output cannot be
// parsed: missing separator, non-numeric score or empty reason.
type MalformedModelResponseError struct {
	Response string
	Detail   string
}

func (e *MalformedModelResponseError) Error() string {
	return fmt.Sprintf("malformed model response (%s): %q", e.Detail, e.Response)
}

// Is enables errors.Is() comparison for MalformedModelResponseError
func (e *MalformedModelResponseError) Is(target error) bool {
	_, ok := target.(*MalformedModelResponseError)
	return ok
}

// InvalidScoreError is returned when the model produced a well-formed but
// out-of-range compatibility score.
type InvalidScoreError struct {
	Score float64
}

func (e *InvalidScoreError) Error() string {
	return fmt.Sprintf("compatibility score must be between 0 and 100, got %.2f", e.Score)
}

// Is enables errors.Is() comparison for InvalidScoreError
func (e *InvalidScoreError) Is(target error) bool {
	_, ok := target.(*InvalidScoreError)
	return ok
}

// DuplicateAnalysisError is returned when a second analysis result is
// attached to an application that already has one.
type DuplicateAnalysisError struct {
	ApplicationID int64
}

func (e *DuplicateAnalysisError) Error() string {
	return fmt.Sprintf("application %d already has an analysis result", e.ApplicationID)
}

// Is enables errors.Is() comparison for DuplicateAnalysisError
func (e *DuplicateAnalysisError) Is(target error) bool {
	_, ok := target.(*DuplicateAnalysisError)
	return ok
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound           = &NotFoundError{Entity: "user"}
	ErrProjectNotFound        = &NotFoundError{Entity: "project"}
	ErrApplicationNotFound    = &NotFoundError{Entity: "application"}
	ErrAnalysisResultNotFound = &NotFoundError{Entity: "analysis result"}
)

// Business Logic Errors
var (
	ErrTeamSizeUnderflow = &InvalidTransitionError{Reason: "project current team size cannot go below zero"}
	ErrTechStackFormat   = errors.New(`tech stack must be ", "-separated tokens of word characters, spaces, '.', '+', '#' or '-'`)
	ErrSkillScoreCount   = errors.New("tech stack and score lists must have the same length")
)

// Authentication Errors
var (
	ErrUserIDNotFound = &AuthenticationError{Message: "user id not found in request context"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsCapacityExceeded checks if an error is a CapacityExceededError
func IsCapacityExceeded(err error) bool {
	var capacityErr *CapacityExceededError
	return errors.As(err, &capacityErr)
}

// IsTeamNotFull checks if an error is a TeamNotFullError
func IsTeamNotFull(err error) bool {
	var teamErr *TeamNotFullError
	return errors.As(err, &teamErr)
}

// IsMalformedModelResponse checks if an error is a MalformedModelResponseError
func IsMalformedModelResponse(err error) bool {
	var malformedErr *MalformedModelResponseError
	return errors.As(err, &malformedErr)
}

// IsInvalidScore checks if an error is an InvalidScoreError
func IsInvalidScore(err error) bool {
	var scoreErr *InvalidScoreError
	return errors.As(err, &scoreErr)
}

// IsDuplicateAnalysis checks if an error is a DuplicateAnalysisError
func IsDuplicateAnalysis(err error) bool {
	var duplicateErr *DuplicateAnalysisError
	return errors.As(err, &duplicateErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(entity, status string) error {
	return &InvalidTransitionError{Entity: entity, Status: status}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
