package service

import (
	"one-on-one-backend/internal/database/models"

	"github.com/go-playground/validator/v10"
)

// Pagination bounds shared by list operations
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NewValidator returns a validator with the custom "month" tag (YYYY-MM) registered
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		return models.IsValidMonth(fl.Field().String())
	})
	return v
}

// normalizePage clamps page and page size and returns the matching limit and offset
func normalizePage(page, pageSize int) (int, int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize, pageSize, (page - 1) * pageSize
}

// FanOutSummary reports the outcome of an operation applied to many items
type FanOutSummary struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

func newFanOutSummary() *FanOutSummary {
	return &FanOutSummary{Errors: []string{}}
}

func (s *FanOutSummary) fail(key string, err error) {
	s.Failed++
	s.Errors = append(s.Errors, key+": "+err.Error())
}
