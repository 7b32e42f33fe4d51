package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"one-on-one-backend/internal/config"
	"one-on-one-backend/internal/database"
	"one-on-one-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed structures; they mirror the YAML files under scripts/data
type UserData struct {
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
}

type TeamData struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	ManagerEmail string   `yaml:"manager_email"`
	Members      []string `yaml:"members"`
}

type QuestionData struct {
	Text      string `yaml:"text"`
	Type      string `yaml:"type"`
	Team      string `yaml:"team,omitempty"`
	Category  string `yaml:"category"`
	SortOrder int    `yaml:"sort_order"`
	Inactive  bool   `yaml:"inactive,omitempty"`
}

// SeedFile is the shape of every YAML file; each file may fill any of the sections
type SeedFile struct {
	Users     []UserData     `yaml:"users"`
	Teams     []TeamData     `yaml:"teams"`
	Questions []QuestionData `yaml:"questions"`
}

type seedStats struct {
	created  int
	existing int
}

func (s seedStats) String() string {
	return fmt.Sprintf("%d created, %d existing", s.created, s.existing)
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seed, err := loadSeedFiles("scripts/data")
	if err != nil {
		log.Fatalf("Failed to read seed files: %v", err)
	}
	if err := validateSeed(seed); err != nil {
		log.Fatalf("Invalid seed data: %v", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return applySeed(tx, seed)
	}); err != nil {
		log.Fatalf("Failed to load initial data: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadSeedFiles merges every .yaml file below dataDir
func loadSeedFiles(dataDir string) (*SeedFile, error) {
	merged := &SeedFile{}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		merged.Users = append(merged.Users, file.Users...)
		merged.Teams = append(merged.Teams, file.Teams...)
		merged.Questions = append(merged.Questions, file.Questions...)
		return nil
	})

	return merged, err
}

// validateSeed checks enum values and cross references before anything is written
func validateSeed(seed *SeedFile) error {
	var errs []error

	emails := make(map[string]bool)
	for _, u := range seed.Users {
		email := normalizeEmail(u.Email)
		if email == "" {
			errs = append(errs, errors.New("user without email"))
			continue
		}
		if u.Role != "" && !models.UserRole(u.Role).IsValid() {
			errs = append(errs, fmt.Errorf("user %s: invalid role %q", email, u.Role))
		}
		emails[email] = true
	}

	teams := make(map[string]bool)
	for _, t := range seed.Teams {
		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, errors.New("team without name"))
			continue
		}
		teams[t.Name] = true
		if t.ManagerEmail != "" && !emails[normalizeEmail(t.ManagerEmail)] {
			errs = append(errs, fmt.Errorf("team %s: unknown manager %s", t.Name, t.ManagerEmail))
		}
		for _, m := range t.Members {
			if !emails[normalizeEmail(m)] {
				errs = append(errs, fmt.Errorf("team %s: unknown member %s", t.Name, m))
			}
		}
	}

	for _, q := range seed.Questions {
		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, errors.New("question without text"))
			continue
		}
		if !models.QuestionType(q.Type).IsValid() {
			errs = append(errs, fmt.Errorf("question %q: invalid type %q", q.Text, q.Type))
		}
		if q.Team != "" && !teams[q.Team] {
			errs = append(errs, fmt.Errorf("question %q: unknown team %s", q.Text, q.Team))
		}
	}

	return errors.Join(errs...)
}

// applySeed creates missing rows; existing rows are left untouched so the loader can be rerun
func applySeed(db *gorm.DB, seed *SeedFile) error {
	users := make(map[string]*models.User)
	var userStats seedStats
	for _, u := range seed.Users {
		user, created, err := createUser(db, u)
		if err != nil {
			return err
		}
		users[user.Email] = user
		userStats.count(created)
	}
	log.Printf("👤 Users: %s", userStats)

	teams := make(map[string]*models.Team)
	var teamStats, memberStats seedStats
	for _, t := range seed.Teams {
		team, created, err := createTeam(db, t, users)
		if err != nil {
			return err
		}
		teams[team.Name] = team
		teamStats.count(created)

		for _, email := range t.Members {
			created, err := addMember(db, team, users[normalizeEmail(email)])
			if err != nil {
				return err
			}
			memberStats.count(created)
		}
	}
	log.Printf("👥 Teams: %s; memberships: %s", teamStats, memberStats)

	var questionStats seedStats
	for _, q := range seed.Questions {
		created, err := createQuestion(db, q, teams)
		if err != nil {
			return err
		}
		questionStats.count(created)
	}
	log.Printf("❓ Questions: %s", questionStats)

	return nil
}

func (s *seedStats) count(created bool) {
	if created {
		s.created++
	} else {
		s.existing++
	}
}

func createUser(db *gorm.DB, data UserData) (*models.User, bool, error) {
	email := normalizeEmail(data.Email)

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user %s: %w", email, err)
	}

	role := models.UserRoleDeveloper
	if data.Role != "" {
		role = models.UserRole(data.Role)
	}
	user = models.User{Email: email, FullName: data.FullName, Role: role}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user %s: %w", email, err)
	}
	return &user, true, nil
}

func createTeam(db *gorm.DB, data TeamData, users map[string]*models.User) (*models.Team, bool, error) {
	var team models.Team
	err := db.Where("name = ?", data.Name).First(&team).Error
	if err == nil {
		return &team, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query team %s: %w", data.Name, err)
	}

	team = models.Team{
		Name:        data.Name,
		Slug:        slug.Make(data.Name),
		Description: data.Description,
	}
	if manager := users[normalizeEmail(data.ManagerEmail)]; manager != nil {
		if !manager.CanManage() {
			return nil, false, fmt.Errorf("team %s: %s does not have the manager role", data.Name, manager.Email)
		}
		team.ManagerID = &manager.ID
	}
	if err := db.Create(&team).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create team %s: %w", data.Name, err)
	}
	return &team, true, nil
}

func addMember(db *gorm.DB, team *models.Team, user *models.User) (bool, error) {
	membership := models.TeamMember{TeamID: team.ID, UserID: user.ID}
	result := db.Where("team_id = ? AND user_id = ?", team.ID, user.ID).FirstOrCreate(&membership)
	if result.Error != nil {
		return false, fmt.Errorf("failed to add %s to team %s: %w", user.Email, team.Name, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func createQuestion(db *gorm.DB, data QuestionData, teams map[string]*models.Team) (bool, error) {
	scope := models.QuestionScopeCompany
	var teamID *uuid.UUID
	query := db.Where("text = ?", data.Text)
	if data.Team != "" {
		scope = models.QuestionScopeTeam
		teamID = &teams[data.Team].ID
		query = query.Where("team_id = ?", *teamID)
	} else {
		query = query.Where("team_id IS NULL")
	}

	var question models.Question
	err := query.First(&question).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query question %q: %w", data.Text, err)
	}

	question = models.Question{
		Text:         data.Text,
		QuestionType: models.QuestionType(data.Type),
		Scope:        scope,
		TeamID:       teamID,
		Category:     data.Category,
		IsActive:     !data.Inactive,
		SortOrder:    data.SortOrder,
	}
	if err := db.Create(&question).Error; err != nil {
		return false, fmt.Errorf("failed to create question %q: %w", data.Text, err)
	}
	return true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
