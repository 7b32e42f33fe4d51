package service_test

import (
	"one-on-one-backend/internal/database/models"

	"github.com/google/uuid"
)

func newUser(role models.UserRole) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     uuid.NewString()[:8] + "@example.com",
		FullName:  "Test " + string(role),
		Role:      role,
	}
}

func newSession(dev, mgr *models.User, status models.OneOnOneStatus) *models.OneOnOne {
	return &models.OneOnOne{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		DeveloperID:   dev.ID,
		ManagerID:     mgr.ID,
		Month:         "2024-03",
		SessionNumber: 1,
		Status:        status,
	}
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
