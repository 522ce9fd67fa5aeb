package authz

import (
	"errors"
	"testing"

	"github.com/kaifmomin2004/EHR-Project/internal/apperrors"
	"github.com/kaifmomin2004/EHR-Project/internal/models"
)

func user(id string, role models.Role) *models.User {
	return &models.User{ID: id, Role: role}
}

func TestAuthorize_RoleGate(t *testing.T) {
	tests := []struct {
		name   string
		caller *models.User
		action Action
		want   error
	}{
		{name: "patient creates own profile", caller: user("p1", models.RolePatient), action: ActionProfileCreate, want: nil},
		{name: "doctor cannot create profile", caller: user("d1", models.RoleDoctor), action: ActionProfileCreate, want: apperrors.ErrForbidden},
		{name: "admin cannot create profile", caller: user("a1", models.RoleAdmin), action: ActionProfileCreate, want: apperrors.ErrForbidden},

		{name: "doctor lists patients", caller: user("d1", models.RoleDoctor), action: ActionPatientList, want: nil},
		{name: "admin lists patients", caller: user("a1", models.RoleAdmin), action: ActionPatientList, want: nil},
		{name: "patient cannot list patients", caller: user("p1", models.RolePatient), action: ActionPatientList, want: apperrors.ErrForbidden},

		{name: "doctor creates record", caller: user("d1", models.RoleDoctor), action: ActionRecordCreate, want: nil},
		{name: "admin creates record", caller: user("a1", models.RoleAdmin), action: ActionRecordCreate, want: nil},
		{name: "patient cannot create record", caller: user("p1", models.RolePatient), action: ActionRecordCreate, want: apperrors.ErrForbidden},

		{name: "doctor lists users", caller: user("d1", models.RoleDoctor), action: ActionUserList, want: nil},
		{name: "patient cannot list users", caller: user("p1", models.RolePatient), action: ActionUserList, want: apperrors.ErrForbidden},

		{name: "unknown action denied", caller: user("a1", models.RoleAdmin), action: Action("nope"), want: apperrors.ErrForbidden},
		{name: "nil caller unauthenticated", caller: nil, action: ActionUserList, want: apperrors.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.caller, tt.action)
			if !errors.Is(err, tt.want) && !(err == nil && tt.want == nil) {
				t.Errorf("Authorize() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAuthorizeOwned_OwnershipGate(t *testing.T) {
	tests := []struct {
		name        string
		caller      *models.User
		action      Action
		ownerUserID string
		want        error
	}{
		{name: "patient reads own profile", caller: user("p1", models.RolePatient), action: ActionProfileRead, ownerUserID: "p1", want: nil},
		{name: "patient denied other profile", caller: user("p1", models.RolePatient), action: ActionProfileRead, ownerUserID: "p2", want: apperrors.ErrForbidden},
		{name: "patient reads own record", caller: user("p1", models.RolePatient), action: ActionRecordRead, ownerUserID: "p1", want: nil},
		{name: "patient denied other record", caller: user("p1", models.RolePatient), action: ActionRecordRead, ownerUserID: "p2", want: apperrors.ErrForbidden},

		{name: "doctor bypasses ownership", caller: user("d1", models.RoleDoctor), action: ActionProfileRead, ownerUserID: "p2", want: nil},
		{name: "admin bypasses ownership", caller: user("a1", models.RoleAdmin), action: ActionRecordRead, ownerUserID: "p2", want: nil},

		{name: "role gate wins first", caller: user("p1", models.RolePatient), action: ActionPatientList, ownerUserID: "p1", want: apperrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeOwned(tt.caller, tt.action, tt.ownerUserID)
			if !errors.Is(err, tt.want) && !(err == nil && tt.want == nil) {
				t.Errorf("AuthorizeOwned() = %v, want %v", err, tt.want)
			}
		})
	}
}
