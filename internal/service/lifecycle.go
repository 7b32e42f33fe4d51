package service

import (
	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
)

// SessionRole is a relationship between a caller and a one-on-one
type SessionRole string

const (
	SessionRoleDeveloper SessionRole = "developer"
	SessionRoleManager   SessionRole = "manager"
	SessionRoleAdmin     SessionRole = "admin"
)

// transitions maps from-status and caller role to the statuses that role may move to.
// reviewed is optional and may be repeated; completed is terminal.
var transitions = map[models.OneOnOneStatus]map[SessionRole][]models.OneOnOneStatus{
	models.OneOnOneStatusDraft: {
		SessionRoleDeveloper: {models.OneOnOneStatusSubmitted},
	},
	models.OneOnOneStatusSubmitted: {
		SessionRoleManager: {models.OneOnOneStatusReviewed, models.OneOnOneStatusCompleted},
		SessionRoleAdmin:   {models.OneOnOneStatusReviewed, models.OneOnOneStatusCompleted},
	},
	models.OneOnOneStatusReviewed: {
		SessionRoleManager: {models.OneOnOneStatusReviewed, models.OneOnOneStatusCompleted},
		SessionRoleAdmin:   {models.OneOnOneStatusReviewed, models.OneOnOneStatusCompleted},
	},
	models.OneOnOneStatusCompleted: {},
}

// SessionRolesOf returns every role actor holds on the session
func SessionRolesOf(actor *models.User, session *models.OneOnOne) []SessionRole {
	var roles []SessionRole
	if actor == nil || session == nil {
		return roles
	}
	if actor.ID == session.DeveloperID {
		roles = append(roles, SessionRoleDeveloper)
	}
	if actor.ID == session.ManagerID {
		roles = append(roles, SessionRoleManager)
	}
	if actor.IsAdmin() {
		roles = append(roles, SessionRoleAdmin)
	}
	return roles
}

// AllowedTransitions returns the statuses actor may move the session to, without duplicates
func AllowedTransitions(actor *models.User, session *models.OneOnOne) []models.OneOnOneStatus {
	byRole := transitions[session.Status]
	seen := make(map[models.OneOnOneStatus]bool)
	out := []models.OneOnOneStatus{}
	for _, role := range SessionRolesOf(actor, session) {
		for _, next := range byRole[role] {
			if !seen[next] {
				seen[next] = true
				out = append(out, next)
			}
		}
	}
	return out
}

func reachableByAnyone(from, to models.OneOnOneStatus) bool {
	for _, nexts := range transitions[from] {
		for _, next := range nexts {
			if next == to {
				return true
			}
		}
	}
	return false
}

// CheckTransition validates a status change requested by actor. It returns an authorization
// error when actor is not related to the session or their roles do not grant the change, and
// a validation error when the target status is unknown or unreachable from the current one.
func CheckTransition(actor *models.User, session *models.OneOnOne, to models.OneOnOneStatus) error {
	if err := RequireSessionParticipant(actor, session); err != nil {
		return err
	}
	if !to.IsValid() {
		return apperrors.ErrInvalidStatus
	}
	if !reachableByAnyone(session.Status, to) {
		return apperrors.ErrInvalidTransition
	}
	for _, next := range AllowedTransitions(actor, session) {
		if next == to {
			return nil
		}
	}
	return apperrors.ErrTransitionForbidden
}
