package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// AnalyticsService aggregates metrics snapshots and dashboard counters
type AnalyticsService struct {
	metricsRepo      repository.MetricsRepositoryInterface
	sessionRepo      repository.OneOnOneRepositoryInterface
	teamRepo         repository.TeamRepositoryInterface
	userRepo         repository.UserRepositoryInterface
	actionItemRepo   repository.ActionItemRepositoryInterface
	notificationRepo repository.NotificationRepositoryInterface
	now              func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	metricsRepo repository.MetricsRepositoryInterface,
	sessionRepo repository.OneOnOneRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	actionItemRepo repository.ActionItemRepositoryInterface,
	notificationRepo repository.NotificationRepositoryInterface,
) *AnalyticsService {
	return &AnalyticsService{
		metricsRepo:      metricsRepo,
		sessionRepo:      sessionRepo,
		teamRepo:         teamRepo,
		userRepo:         userRepo,
		actionItemRepo:   actionItemRepo,
		notificationRepo: notificationRepo,
		now:              time.Now,
	}
}

// TrendPoint is one session's metrics in a developer trend
type TrendPoint struct {
	OneOnOneID         uuid.UUID `json:"one_on_one_id"`
	Month              string    `json:"month"`
	AverageScore       *float64  `json:"average_score"`
	DeveloperAvgRating *float64  `json:"developer_avg_rating"`
	ManagerAvgRating   *float64  `json:"manager_avg_rating"`
	RatingAlignment    *float64  `json:"rating_alignment"`
}

// DeveloperTrendResponse is the month-ordered metrics history of a developer
type DeveloperTrendResponse struct {
	DeveloperID uuid.UUID    `json:"developer_id"`
	From        string       `json:"from,omitempty"`
	To          string       `json:"to,omitempty"`
	Points      []TrendPoint `json:"points"`
}

// TeamSummaryResponse averages the completed sessions of a team's developers in one month
type TeamSummaryResponse struct {
	TeamID             uuid.UUID `json:"team_id"`
	Month              string    `json:"month"`
	DeveloperCount     int       `json:"developer_count"`
	CompletedSessions  int       `json:"completed_sessions"`
	AvgScore           *float64  `json:"avg_score"`
	AvgDeveloperRating *float64  `json:"avg_developer_rating"`
	AvgManagerRating   *float64  `json:"avg_manager_rating"`
	AvgRatingAlignment *float64  `json:"avg_rating_alignment"`
}

// DashboardResponse holds role-specific counters; sections not relevant to the role are omitted
type DashboardResponse struct {
	Role                models.UserRole                 `json:"role"`
	Month               string                          `json:"month"`
	MySessions          map[models.OneOnOneStatus]int64 `json:"my_sessions"`
	OpenActionItems     int64                           `json:"open_action_items"`
	UnreadNotifications int64                           `json:"unread_notifications"`
	ManagedSessions     map[models.OneOnOneStatus]int64 `json:"managed_sessions,omitempty"`
	ManagedTeams        *int                            `json:"managed_teams,omitempty"`
	OverdueActionItems  *int64                          `json:"overdue_action_items,omitempty"`
	AllSessions         map[models.OneOnOneStatus]int64 `json:"all_sessions,omitempty"`
	UsersByRole         map[models.UserRole]int64       `json:"users_by_role,omitempty"`
}

// canViewDeveloper allows the developer, any manager of one of their teams, and admins
func (s *AnalyticsService) canViewDeveloper(actor *models.User, developerID uuid.UUID) (bool, error) {
	if actor.IsAdmin() || actor.ID == developerID {
		return true, nil
	}
	if !actor.CanManage() {
		return false, nil
	}
	return s.teamRepo.IsManagerOf(actor.ID, developerID)
}

// DeveloperTrend returns a developer's snapshots between two months, inclusive
func (s *AnalyticsService) DeveloperTrend(actor *models.User, developerID uuid.UUID, from, to string) (*DeveloperTrendResponse, error) {
	for _, m := range []string{from, to} {
		if m != "" && !models.IsValidMonth(m) {
			return nil, apperrors.ErrInvalidMonth
		}
	}
	if from != "" && to != "" && from > to {
		return nil, apperrors.NewValidationError("from", "must not be after to")
	}

	if _, err := s.userRepo.GetByID(developerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get developer: %w", err)
	}
	ok, err := s.canViewDeveloper(actor, developerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check access: %w", err)
	}
	if !ok {
		return nil, apperrors.NewAuthorizationError("you cannot view this developer's metrics")
	}

	snapshots, err := s.metricsRepo.ListForDeveloper(developerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics: %w", err)
	}

	points := make([]TrendPoint, len(snapshots))
	for i, snap := range snapshots {
		b := snap.Breakdown.Data()
		points[i] = TrendPoint{
			OneOnOneID:         snap.OneOnOneID,
			Month:              snap.Month,
			AverageScore:       snap.AverageScore,
			DeveloperAvgRating: b.DeveloperAvgRating,
			ManagerAvgRating:   b.ManagerAvgRating,
			RatingAlignment:    b.RatingAlignment,
		}
	}
	return &DeveloperTrendResponse{DeveloperID: developerID, From: from, To: to, Points: points}, nil
}

// TeamSummary averages the month's snapshots of a team's developers with the team's manager.
// Sessions the developers held with other managers are left out. Averages skip snapshots where
// the value is missing.
func (s *AnalyticsService) TeamSummary(actor *models.User, teamID uuid.UUID, month string) (*TeamSummaryResponse, error) {
	if !models.IsValidMonth(month) {
		return nil, apperrors.ErrInvalidMonth
	}
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if !actor.IsAdmin() && (team.ManagerID == nil || *team.ManagerID != actor.ID) {
		return nil, apperrors.ErrNotTeamManager
	}

	developerIDs, err := s.teamRepo.GetDeveloperIDs(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team developers: %w", err)
	}
	summary := &TeamSummaryResponse{TeamID: teamID, Month: month, DeveloperCount: len(developerIDs)}
	if len(developerIDs) == 0 {
		return summary, nil
	}

	snapshots, err := s.metricsRepo.ListForDevelopersInMonth(developerIDs, team.ManagerID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics: %w", err)
	}

	var scores, dev, mgr, align []float64
	collect := func(dst *[]float64, v *float64) {
		if v != nil {
			*dst = append(*dst, *v)
		}
	}
	for _, snap := range snapshots {
		b := snap.Breakdown.Data()
		collect(&scores, snap.AverageScore)
		collect(&dev, b.DeveloperAvgRating)
		collect(&mgr, b.ManagerAvgRating)
		collect(&align, b.RatingAlignment)
	}

	summary.CompletedSessions = len(snapshots)
	summary.AvgScore = mean(scores)
	summary.AvgDeveloperRating = mean(dev)
	summary.AvgManagerRating = mean(mgr)
	summary.AvgRatingAlignment = mean(align)
	return summary, nil
}

// Dashboard gathers the actor's counters concurrently
func (s *AnalyticsService) Dashboard(ctx context.Context, actor *models.User) (*DashboardResponse, error) {
	now := s.now()
	month := models.MonthOf(now)
	resp := &DashboardResponse{Role: actor.Role, Month: month}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.sessionRepo.CountByStatus(repository.OneOnOneFilter{DeveloperID: &actor.ID})
		if err != nil {
			return fmt.Errorf("failed to count sessions: %w", err)
		}
		resp.MySessions = counts
		return nil
	})
	g.Go(func() error {
		count, err := s.actionItemRepo.CountOpenAssignedTo(actor.ID)
		if err != nil {
			return fmt.Errorf("failed to count action items: %w", err)
		}
		resp.OpenActionItems = count
		return nil
	})
	g.Go(func() error {
		count, err := s.notificationRepo.CountUnread(actor.ID)
		if err != nil {
			return fmt.Errorf("failed to count notifications: %w", err)
		}
		resp.UnreadNotifications = count
		return nil
	})

	if actor.CanManage() {
		g.Go(func() error {
			counts, err := s.sessionRepo.CountByStatus(repository.OneOnOneFilter{ManagerID: &actor.ID, Month: month})
			if err != nil {
				return fmt.Errorf("failed to count managed sessions: %w", err)
			}
			resp.ManagedSessions = counts
			return nil
		})
		g.Go(func() error {
			teams, err := s.teamRepo.GetByManagerID(actor.ID)
			if err != nil {
				return fmt.Errorf("failed to get managed teams: %w", err)
			}
			n := len(teams)
			resp.ManagedTeams = &n
			return nil
		})
		g.Go(func() error {
			count, err := s.actionItemRepo.CountOverdueForManager(actor.ID, startOfDay(now))
			if err != nil {
				return fmt.Errorf("failed to count overdue action items: %w", err)
			}
			resp.OverdueActionItems = &count
			return nil
		})
	}

	if actor.IsAdmin() {
		g.Go(func() error {
			counts, err := s.sessionRepo.CountByStatus(repository.OneOnOneFilter{Month: month})
			if err != nil {
				return fmt.Errorf("failed to count sessions: %w", err)
			}
			resp.AllSessions = counts
			return nil
		})
		g.Go(func() error {
			counts, err := s.userRepo.CountByRole()
			if err != nil {
				return fmt.Errorf("failed to count users: %w", err)
			}
			resp.UsersByRole = counts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}
