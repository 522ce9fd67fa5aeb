// Package authz evaluates whether an authenticated identity may perform an
// action, optionally scoped to a resource owner. Authentication itself is
// enforced earlier, by the bearer-token middleware; every caller reaching
// the guard is already a resolved identity.
package authz

import (
	"github.com/kaifmomin2004/EHR-Project/internal/apperrors"
	"github.com/kaifmomin2004/EHR-Project/internal/models"
)

// Action identifies a guarded operation.
type Action string

const (
	ActionProfileCreate     Action = "profile:create"
	ActionProfileReadSelf   Action = "profile:read-self"
	ActionProfileUpdateSelf Action = "profile:update-self"
	ActionProfileRead       Action = "profile:read"
	ActionPatientList       Action = "patient:list"
	ActionRecordCreate      Action = "record:create"
	ActionRecordRead        Action = "record:read"
	ActionRecordList        Action = "record:list"
	ActionUserList          Action = "user:list"
)

// roleSets declares the required role set per action. An action absent from
// the table is denied for everyone.
var roleSets = map[Action]map[models.Role]bool{
	ActionProfileCreate:     {models.RolePatient: true},
	ActionProfileReadSelf:   {models.RolePatient: true},
	ActionProfileUpdateSelf: {models.RolePatient: true},
	ActionProfileRead:       {models.RolePatient: true, models.RoleDoctor: true, models.RoleAdmin: true},
	ActionPatientList:       {models.RoleDoctor: true, models.RoleAdmin: true},
	ActionRecordCreate:      {models.RoleDoctor: true, models.RoleAdmin: true},
	ActionRecordRead:        {models.RolePatient: true, models.RoleDoctor: true, models.RoleAdmin: true},
	ActionRecordList:        {models.RolePatient: true, models.RoleDoctor: true, models.RoleAdmin: true},
	ActionUserList:          {models.RoleDoctor: true, models.RoleAdmin: true},
}

// Authorize applies the role gate: the caller's role must be in the
// action's required set, otherwise ErrForbidden.
func Authorize(caller *models.User, action Action) error {
	if caller == nil {
		return apperrors.ErrUnauthenticated
	}
	if !roleSets[action][caller.Role] {
		return apperrors.ErrForbidden
	}
	return nil
}

// AuthorizeOwned applies the role gate and then the ownership gate:
// a patient caller must own the target resource (ownerUserID equals the
// caller's id). Doctors and admins bypass the ownership gate entirely.
func AuthorizeOwned(caller *models.User, action Action, ownerUserID string) error {
	if err := Authorize(caller, action); err != nil {
		return err
	}
	if caller.Role.Privileged() {
		return nil
	}
	if caller.ID != ownerUserID {
		return apperrors.ErrForbidden
	}
	return nil
}
