package repository

import (
	"strings"
	"time"

	"one-on-one-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "LOWER(email) = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDs retrieves the users with the given ids; missing ids are ignored
func (r *UserRepository) GetByIDs(ids []uuid.UUID) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("id IN ?", ids).Order("full_name ASC").Find(&users).Error
	return users, err
}

// GetWithTeams retrieves a user with their team memberships
func (r *UserRepository) GetWithTeams(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Memberships").Preload("Memberships.Team").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves users matching the filter with pagination
func (r *UserRepository) List(filter UserFilter, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.Model(&models.User{})
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", like, like)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Preload("Memberships").Preload("Memberships.Team").
		Order("full_name ASC").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Omit("Memberships").Save(user).Error
}

// UpdateRole sets the role of a user
func (r *UserRepository) UpdateRole(id uuid.UUID, role models.UserRole) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TouchLastLogin records a successful sign-in
func (r *UserRepository) TouchLastLogin(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_login_at", at).Error
}

// ReplaceTeams replaces the full membership set of a user in one transaction
func (r *UserRepository) ReplaceTeams(userID uuid.UUID, teamIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		if len(teamIDs) == 0 {
			return nil
		}
		members := make([]models.TeamMember, 0, len(teamIDs))
		seen := make(map[uuid.UUID]bool, len(teamIDs))
		for _, teamID := range teamIDs {
			if seen[teamID] {
				continue
			}
			seen[teamID] = true
			members = append(members, models.TeamMember{TeamID: teamID, UserID: userID})
		}
		return tx.Create(&members).Error
	})
}

// GetTeamIDs returns the ids of the teams a user belongs to
func (r *UserRepository) GetTeamIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.TeamMember{}).Where("user_id = ?", userID).Pluck("team_id", &ids).Error
	return ids, err
}

// GetExistingEmails returns the subset of emails that already belong to a user, lower-cased
func (r *UserRepository) GetExistingEmails(emails []string) ([]string, error) {
	var existing []string
	if len(emails) == 0 {
		return existing, nil
	}
	lowered := make([]string, len(emails))
	for i, e := range emails {
		lowered[i] = strings.ToLower(e)
	}
	err := r.db.Model(&models.User{}).Where("LOWER(email) IN ?", lowered).Pluck("LOWER(email)", &existing).Error
	return existing, err
}

// CountByRole returns the number of users per role
func (r *UserRepository) CountByRole() (map[models.UserRole]int64, error) {
	var rows []struct {
		Role  models.UserRole
		Count int64
	}
	err := r.db.Model(&models.User{}).Select("role, COUNT(*) AS count").Group("role").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[models.UserRole]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}
