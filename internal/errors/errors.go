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

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
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

// ConflictError represents a write that lost against the current state of a record
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrOneOnOneNotFound     = &NotFoundError{Entity: "one-on-one"}
	ErrQuestionNotFound     = &NotFoundError{Entity: "question"}
	ErrActionItemNotFound   = &NotFoundError{Entity: "action item"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
	ErrMetricsNotFound      = &NotFoundError{Entity: "metrics snapshot"}
)

// Already Exists Errors
var (
	ErrUserExists = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrTeamExists = &AlreadyExistsError{Entity: "team", Context: "with this name"}
)

// Business Logic Errors
var (
	ErrTeamHasMembers        = &ValidationError{Field: "team", Message: "team still has members"}
	ErrInvalidMonth          = &ValidationError{Field: "month", Message: "must be formatted as YYYY-MM"}
	ErrInvalidStatus         = &ValidationError{Field: "status", Message: "invalid status"}
	ErrInvalidTransition     = &ValidationError{Field: "status", Message: "transition not allowed from current status"}
	ErrDeveloperIDsRequired  = &ValidationError{Field: "developer_ids", Message: "developer_ids is required"}
	ErrInvalidAnswer         = &ValidationError{Field: "answer", Message: "answer does not match question type"}
	ErrQuestionNotApplicable = &ValidationError{Field: "question_id", Message: "question does not apply to this one-on-one"}
	ErrManagerRoleRequired   = &ValidationError{Field: "manager_id", Message: "user must have the manager or admin role"}
	ErrDeveloperNotInTeam    = &ValidationError{Field: "developer_id", Message: "developer is not a member of a team you manage"}
	ErrOnlyDraftDeletable    = &ValidationError{Field: "status", Message: "only draft one-on-ones can be deleted"}
	ErrInvalidDueDate        = &ValidationError{Field: "due_date", Message: "must be formatted as YYYY-MM-DD"}
)

// Conflict Errors
var (
	ErrStaleStatus       = &ConflictError{Message: "one-on-one status changed concurrently, reload and retry"}
	ErrOneOnOneLocked    = &ConflictError{Message: "one-on-one is completed and can no longer be edited"}
	ErrSessionNumberRace = &ConflictError{Message: "could not allocate a session number, retry the request"}
)

// Authentication Errors
var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrUserIDNotFound      = &AuthenticationError{Message: "user id not found in context"}
)

// Authorization Errors
var (
	ErrNotParticipant      = &AuthorizationError{Message: "you are not a participant of this one-on-one"}
	ErrNotAuthor           = &AuthorizationError{Message: "you cannot write on behalf of the other participant"}
	ErrAdminRequired       = &AuthorizationError{Message: "admin role required"}
	ErrManagerRequired     = &AuthorizationError{Message: "manager or admin role required"}
	ErrOwnRoleChange       = &AuthorizationError{Message: "admins cannot change their own role"}
	ErrTransitionForbidden = &AuthorizationError{Message: "your role may not perform this status change"}
	ErrNotTeamManager      = &AuthorizationError{Message: "you do not manage this team"}
	ErrNotificationOwner   = &AuthorizationError{Message: "notification belongs to another user"}
)

// Configuration Errors
var (
	ErrProviderNotConfigured  = &ConfigurationError{Message: "provider is not configured"}
	ErrDirectoryNotConfigured = &ConfigurationError{Message: "LDAP directory is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
