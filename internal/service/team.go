package service

import (
	"errors"
	"fmt"
	"time"

	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=100"`
	Description string     `json:"description" validate:"max=500"`
	ManagerID   *uuid.UUID `json:"manager_id,omitempty"`
}

// UpdateTeamRequest represents the request to update a team. RemoveManager unassigns the
// current manager; ManagerID replaces it.
type UpdateTeamRequest struct {
	Name          *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	ManagerID     *uuid.UUID `json:"manager_id,omitempty"`
	RemoveManager bool       `json:"remove_manager,omitempty"`
}

// UserSummary is the compact form of a user embedded in other responses
type UserSummary struct {
	ID       uuid.UUID       `json:"id"`
	Email    string          `json:"email"`
	FullName string          `json:"full_name"`
	Role     models.UserRole `json:"role"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	ManagerID   *uuid.UUID    `json:"manager_id,omitempty"`
	Manager     *UserSummary  `json:"manager,omitempty"`
	Members     []UserSummary `json:"members,omitempty"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

func summarize(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role}
}

func (s *TeamService) getTeam(id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// checkManager verifies the user exists and may manage a team
func (s *TeamService) checkManager(id uuid.UUID) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get manager: %w", err)
	}
	if !user.CanManage() {
		return apperrors.ErrManagerRoleRequired
	}
	return nil
}

// checkNameFree fails when another team already uses the name
func (s *TeamService) checkNameFree(name string, self uuid.UUID) error {
	existing, err := s.repo.GetByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if existing != nil && existing.ID != self {
		return apperrors.ErrTeamExists
	}
	return nil
}

// Create creates a new team
func (s *TeamService) Create(actor *models.User, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.checkNameFree(req.Name, uuid.Nil); err != nil {
		return nil, err
	}
	if req.ManagerID != nil {
		if err := s.checkManager(*req.ManagerID); err != nil {
			return nil, err
		}
	}

	team := &models.Team{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		ManagerID:   req.ManagerID,
	}
	if err := s.repo.Create(team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return s.GetByID(actor, team.ID)
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(actor *models.User, id uuid.UUID) (*TeamResponse, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	team, err := s.getTeam(id)
	if err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// GetWithMembers retrieves a team with its members
func (s *TeamService) GetWithMembers(actor *models.User, id uuid.UUID) (*TeamResponse, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team with members: %w", err)
	}
	return toTeamResponse(team), nil
}

// GetAll lists teams with pagination
func (s *TeamService) GetAll(actor *models.User, page, pageSize int) (*TeamListResponse, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	page, pageSize, limit, offset := normalizePage(page, pageSize)
	teams, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}
	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetManagedTeams returns the teams the actor manages
func (s *TeamService) GetManagedTeams(actor *models.User) ([]TeamResponse, error) {
	teams, err := s.repo.GetByManagerID(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get managed teams: %w", err)
	}
	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}
	return responses, nil
}

// Update updates a team
func (s *TeamService) Update(actor *models.User, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	team, err := s.getTeam(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != team.Name {
		if err := s.checkNameFree(*req.Name, team.ID); err != nil {
			return nil, err
		}
		team.Name = *req.Name
		team.Slug = slug.Make(*req.Name)
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	switch {
	case req.ManagerID != nil:
		if err := s.checkManager(*req.ManagerID); err != nil {
			return nil, err
		}
		team.ManagerID = req.ManagerID
	case req.RemoveManager:
		team.ManagerID = nil
	}
	team.Manager = nil

	if err := s.repo.Update(team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return s.GetByID(actor, id)
}

// Delete deletes a team that has no members left
func (s *TeamService) Delete(actor *models.User, id uuid.UUID) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}
	if _, err := s.getTeam(id); err != nil {
		return err
	}

	count, err := s.repo.GetMemberCount(id)
	if err != nil {
		return fmt.Errorf("failed to count team members: %w", err)
	}
	if count > 0 {
		return apperrors.ErrTeamHasMembers
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// toTeamResponse converts a team model to response
func toTeamResponse(team *models.Team) *TeamResponse {
	resp := &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Slug:        team.Slug,
		Description: team.Description,
		ManagerID:   team.ManagerID,
		Manager:     summarize(team.Manager),
		CreatedAt:   team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   team.UpdatedAt.Format(time.RFC3339),
	}
	for _, m := range team.Members {
		if m.User != nil {
			resp.Members = append(resp.Members, *summarize(m.User))
		}
	}
	return resp
}
