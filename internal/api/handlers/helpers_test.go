package handlers_test

import (
	"fmt"

	"one-on-one-backend/internal/auth"
	"one-on-one-backend/internal/database/models"
	"one-on-one-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func newUser(role models.UserRole) *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Email:     fmt.Sprintf("%s-%s@example.com", role, id.String()[:8]),
		FullName:  "Test " + string(role),
		Role:      role,
	}
}

// setupHTTPAs returns a router whose requests are made as user; nil means unauthenticated
func setupHTTPAs(user *models.User) *testutils.HTTPTestSuite {
	return testutils.SetupHTTPTest(func(c *gin.Context) {
		if user != nil {
			auth.SetActor(c, user)
		}
		c.Next()
	})
}

// validationFailure mimics a service rejecting a request through the validator
func validationFailure(req interface{}) error {
	return fmt.Errorf("validation failed: %w", validator.New().Struct(req))
}
