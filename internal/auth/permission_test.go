package auth

import (
	"testing"

	"github.com/lshigami/Moorhen/internal/model"
)

func TestTeacherOrReadOnly(t *testing.T) {
	perm := TeacherOrReadOnly{}

	cases := []struct {
		name       string
		identity   Identity
		capability Capability
		want       bool
	}{
		{"anonymous read", Identity{}, CapabilityRead, false},
		{"anonymous write", Identity{}, CapabilityWrite, false},
		{"student read", Identity{UserID: 1, Role: model.RoleStudent}, CapabilityRead, true},
		{"student write", Identity{UserID: 1, Role: model.RoleStudent}, CapabilityWrite, false},
		{"teacher read", Identity{UserID: 2, Role: model.RoleTeacher}, CapabilityRead, true},
		{"teacher write", Identity{UserID: 2, Role: model.RoleTeacher}, CapabilityWrite, true},
		{"superuser write", Identity{UserID: 3, Role: model.RoleStudent, IsSuperuser: true}, CapabilityWrite, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := perm.Allows(tc.identity, tc.capability); got != tc.want {
				t.Fatalf("Allows(%+v, %v) = %v, want %v", tc.identity, tc.capability, got, tc.want)
			}
		})
	}
}
