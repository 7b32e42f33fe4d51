package service_test

import (
	"testing"

	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestCheckTransition(t *testing.T) {
	dev := newUser(models.UserRoleDeveloper)
	mgr := newUser(models.UserRoleManager)
	admin := newUser(models.UserRoleAdmin)
	outsider := newUser(models.UserRoleManager)

	testCases := []struct {
		name    string
		actor   *models.User
		from    models.OneOnOneStatus
		to      models.OneOnOneStatus
		wantErr error
	}{
		{"developer submits draft", dev, models.OneOnOneStatusDraft, models.OneOnOneStatusSubmitted, nil},
		{"manager cannot submit for developer", mgr, models.OneOnOneStatusDraft, models.OneOnOneStatusSubmitted, apperrors.ErrTransitionForbidden},
		{"admin cannot submit for developer", admin, models.OneOnOneStatusDraft, models.OneOnOneStatusSubmitted, apperrors.ErrTransitionForbidden},
		{"manager reviews submitted", mgr, models.OneOnOneStatusSubmitted, models.OneOnOneStatusReviewed, nil},
		{"manager completes submitted", mgr, models.OneOnOneStatusSubmitted, models.OneOnOneStatusCompleted, nil},
		{"manager reviews again", mgr, models.OneOnOneStatusReviewed, models.OneOnOneStatusReviewed, nil},
		{"admin reviews again", admin, models.OneOnOneStatusReviewed, models.OneOnOneStatusReviewed, nil},
		{"developer cannot review again", dev, models.OneOnOneStatusReviewed, models.OneOnOneStatusReviewed, apperrors.ErrTransitionForbidden},
		{"admin completes reviewed", admin, models.OneOnOneStatusReviewed, models.OneOnOneStatusCompleted, nil},
		{"developer cannot review", dev, models.OneOnOneStatusSubmitted, models.OneOnOneStatusReviewed, apperrors.ErrTransitionForbidden},
		{"developer cannot complete", dev, models.OneOnOneStatusReviewed, models.OneOnOneStatusCompleted, apperrors.ErrTransitionForbidden},
		{"draft cannot be completed", mgr, models.OneOnOneStatusDraft, models.OneOnOneStatusCompleted, apperrors.ErrInvalidTransition},
		{"completed is terminal", mgr, models.OneOnOneStatusCompleted, models.OneOnOneStatusReviewed, apperrors.ErrInvalidTransition},
		{"no going back to draft", admin, models.OneOnOneStatusSubmitted, models.OneOnOneStatusDraft, apperrors.ErrInvalidTransition},
		{"unknown status", mgr, models.OneOnOneStatusSubmitted, models.OneOnOneStatus("archived"), apperrors.ErrInvalidStatus},
		{"outsider is rejected first", outsider, models.OneOnOneStatusSubmitted, models.OneOnOneStatusReviewed, apperrors.ErrNotParticipant},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			session := newSession(dev, mgr, tc.from)
			err := service.CheckTransition(tc.actor, session, tc.to)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCheckTransition_ErrorClasses(t *testing.T) {
	dev := newUser(models.UserRoleDeveloper)
	mgr := newUser(models.UserRoleManager)
	session := newSession(dev, mgr, models.OneOnOneStatusDraft)

	assert.True(t, apperrors.IsAuthorization(service.CheckTransition(mgr, session, models.OneOnOneStatusSubmitted)))
	assert.True(t, apperrors.IsValidation(service.CheckTransition(dev, session, models.OneOnOneStatusCompleted)))
}

func TestAllowedTransitions_UnionOfRoles(t *testing.T) {
	// a manager who is also admin and reviews their own report
	admin := newUser(models.UserRoleAdmin)
	dev := newUser(models.UserRoleDeveloper)
	session := newSession(dev, admin, models.OneOnOneStatusSubmitted)

	roles := service.SessionRolesOf(admin, session)
	assert.ElementsMatch(t, []service.SessionRole{service.SessionRoleManager, service.SessionRoleAdmin}, roles)
	assert.Equal(t, []models.OneOnOneStatus{models.OneOnOneStatusReviewed, models.OneOnOneStatusCompleted},
		service.AllowedTransitions(admin, session))
}

func TestAllowedTransitions_Reviewed(t *testing.T) {
	dev := newUser(models.UserRoleDeveloper)
	mgr := newUser(models.UserRoleManager)
	session := newSession(dev, mgr, models.OneOnOneStatusReviewed)

	assert.Equal(t, []models.OneOnOneStatus{models.OneOnOneStatusReviewed, models.OneOnOneStatusCompleted},
		service.AllowedTransitions(mgr, session))
	assert.Empty(t, service.AllowedTransitions(dev, session))
}

func TestAllowedTransitions_Completed(t *testing.T) {
	dev := newUser(models.UserRoleDeveloper)
	mgr := newUser(models.UserRoleManager)
	session := newSession(dev, mgr, models.OneOnOneStatusCompleted)

	assert.Empty(t, service.AllowedTransitions(mgr, session))
	assert.Empty(t, service.AllowedTransitions(dev, session))
}

func TestAccessGuards(t *testing.T) {
	dev := newUser(models.UserRoleDeveloper)
	mgr := newUser(models.UserRoleManager)
	admin := newUser(models.UserRoleAdmin)
	other := newUser(models.UserRoleDeveloper)
	session := newSession(dev, mgr, models.OneOnOneStatusDraft)

	assert.True(t, service.CanAccessSession(dev, session))
	assert.True(t, service.CanAccessSession(mgr, session))
	assert.True(t, service.CanAccessSession(admin, session))
	assert.False(t, service.CanAccessSession(other, session))
	assert.False(t, service.CanAccessSession(nil, session))

	assert.NoError(t, service.RequireAuthorOf(dev, session, models.ParticipantDeveloper))
	assert.ErrorIs(t, service.RequireAuthorOf(mgr, session, models.ParticipantDeveloper), apperrors.ErrNotAuthor)
	assert.ErrorIs(t, service.RequireAuthorOf(admin, session, models.ParticipantManager), apperrors.ErrNotAuthor)
	assert.ErrorIs(t, service.RequireAuthorOf(other, session, models.ParticipantDeveloper), apperrors.ErrNotParticipant)

	assert.ErrorIs(t, service.RequireAdmin(mgr), apperrors.ErrAdminRequired)
	assert.NoError(t, service.RequireAdmin(admin))
	assert.ErrorIs(t, service.RequireManagerOrAdmin(dev), apperrors.ErrManagerRequired)
	assert.NoError(t, service.RequireManagerOrAdmin(mgr))
	assert.NoError(t, service.RequireManagerOrAdmin(admin))
}
