package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	directory DirectoryServiceInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, directory DirectoryServiceInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		teamRepo:  teamRepo,
		directory: directory,
		validator: validator,
	}
}

// ListUsersRequest filters the admin user listing
type ListUsersRequest struct {
	Query    string
	Role     models.UserRole
	Page     int
	PageSize int
}

// UpdateUserRequest represents an admin update of a user. TeamIDs, when present, replaces
// the whole membership set.
type UpdateUserRequest struct {
	Role     *models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=admin manager developer"`
	TeamIDs  *[]uuid.UUID     `json:"team_ids,omitempty"`
	FullName *string          `json:"full_name,omitempty" validate:"omitempty,max=200"`
}

// ProvisionUserRequest pre-creates a user who is matched by email on first sign-in
type ProvisionUserRequest struct {
	Email    string          `json:"email" validate:"required,email,max=255"`
	FullName string          `json:"full_name" validate:"max=200"`
	Role     models.UserRole `json:"role" validate:"omitempty,oneof=admin manager developer"`
}

// TeamRef is a team reference embedded in user responses
type TeamRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID          uuid.UUID       `json:"id"`
	Email       string          `json:"email"`
	FullName    string          `json:"full_name"`
	AvatarURL   string          `json:"avatar_url,omitempty"`
	Role        models.UserRole `json:"role"`
	LastLoginAt *time.Time      `json:"last_login_at,omitempty"`
	Teams       []TeamRef       `json:"teams"`
	CreatedAt   string          `json:"created_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// DirectoryResult is a directory entry flagged New when no user with its email exists yet
type DirectoryResult struct {
	DirectoryPerson
	New bool `json:"new"`
}

func (s *UserService) getWithTeams(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetWithTeams(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// List lists users for admins, optionally searching name and email and filtering by role
func (s *UserService) List(actor *models.User, req *ListUsersRequest) (*UserListResponse, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	if req.Role != "" && !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "invalid role")
	}

	page, pageSize, limit, offset := normalizePage(req.Page, req.PageSize)
	users, total, err := s.repo.List(repository.UserFilter{Query: strings.TrimSpace(req.Query), Role: req.Role}, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return &UserListResponse{Users: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetMe returns the actor with their team memberships
func (s *UserService) GetMe(actor *models.User) (*UserResponse, error) {
	user, err := s.getWithTeams(actor.ID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update changes a user's role, name or team memberships. Admins cannot change their own role.
func (s *UserService) Update(actor *models.User, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Reject before writing anything
	roleChanged := req.Role != nil && *req.Role != user.Role
	if roleChanged && user.ID == actor.ID {
		return nil, apperrors.ErrOwnRoleChange
	}

	var teamIDs []uuid.UUID
	if req.TeamIDs != nil {
		teamIDs = uniqueIDs(*req.TeamIDs)
		if len(teamIDs) > 0 {
			teams, err := s.teamRepo.GetByIDs(teamIDs)
			if err != nil {
				return nil, fmt.Errorf("failed to verify teams: %w", err)
			}
			if len(teams) != len(teamIDs) {
				return nil, apperrors.ErrTeamNotFound
			}
		}
	}

	if roleChanged {
		if err := s.repo.UpdateRole(id, *req.Role); err != nil {
			return nil, fmt.Errorf("failed to update role: %w", err)
		}
	}

	if req.FullName != nil && *req.FullName != user.FullName {
		user.FullName = *req.FullName
		if err := s.repo.Update(user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	if req.TeamIDs != nil {
		if err := s.repo.ReplaceTeams(id, teamIDs); err != nil {
			return nil, fmt.Errorf("failed to update team memberships: %w", err)
		}
	}

	updated, err := s.getWithTeams(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(updated), nil
}

// Provision creates a user ahead of their first sign-in
func (s *UserService) Provision(actor *models.User, req *ProvisionUserRequest) (*UserResponse, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := req.Email
	existing, err := s.repo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleDeveloper
	}
	user := &models.User{Email: email, FullName: req.FullName, Role: role}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toUserResponse(user), nil
}

// SearchDirectory looks people up in the directory and flags the ones without an account
func (s *UserService) SearchDirectory(actor *models.User, query string) ([]DirectoryResult, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	if s.directory == nil {
		return nil, apperrors.ErrDirectoryNotConfigured
	}

	people, err := s.directory.Search(query)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(people))
	for _, p := range people {
		emails = append(emails, p.Email)
	}
	existing, err := s.repo.GetExistingEmails(emails)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, e := range existing {
		known[strings.ToLower(e)] = true
	}

	results := make([]DirectoryResult, len(people))
	for i, p := range people {
		results[i] = DirectoryResult{DirectoryPerson: p, New: !known[strings.ToLower(p.Email)]}
	}
	return results, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func toUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		AvatarURL:   user.AvatarURL,
		Role:        user.Role,
		LastLoginAt: user.LastLoginAt,
		Teams:       []TeamRef{},
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
	for _, m := range user.Memberships {
		if m.Team != nil {
			resp.Teams = append(resp.Teams, TeamRef{ID: m.Team.ID, Name: m.Team.Name, Slug: m.Team.Slug})
		}
	}
	return resp
}
