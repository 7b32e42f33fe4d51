package service

import (
	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
)

// CanAccessSession reports whether actor may read or write the session:
// its developer, its manager, or any admin.
func CanAccessSession(actor *models.User, session *models.OneOnOne) bool {
	if actor == nil || session == nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	_, ok := session.ParticipantOf(actor.ID)
	return ok
}

// RequireSessionParticipant fails with an authorization error unless CanAccessSession holds
func RequireSessionParticipant(actor *models.User, session *models.OneOnOne) error {
	if !CanAccessSession(actor, session) {
		return apperrors.ErrNotParticipant
	}
	return nil
}

// RequireAuthorOf checks that actor stands on the given side of the session.
// Admins do not write answers or notes on behalf of participants.
func RequireAuthorOf(actor *models.User, session *models.OneOnOne, side models.Participant) error {
	if err := RequireSessionParticipant(actor, session); err != nil {
		return err
	}
	if actor.ID != session.UserFor(side) {
		return apperrors.ErrNotAuthor
	}
	return nil
}

// RequireAdmin fails unless actor is an admin
func RequireAdmin(actor *models.User) error {
	if !actor.IsAdmin() {
		return apperrors.ErrAdminRequired
	}
	return nil
}

// RequireManagerOrAdmin fails unless actor is a manager or an admin
func RequireManagerOrAdmin(actor *models.User) error {
	if !actor.CanManage() {
		return apperrors.ErrManagerRequired
	}
	return nil
}
