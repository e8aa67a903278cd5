package auth

import "github.com/lshigami/Moorhen/internal/model"

// Capability is an access class over quiz content.
type Capability int

const (
	CapabilityRead Capability = iota
	CapabilityWrite
)

// Identity is the authenticated caller as seen by permission checks and
// controllers. A zero UserID means "not authenticated".
type Identity struct {
	UserID      uint
	Username    string
	Role        string
	IsSuperuser bool
}

func (i Identity) Authenticated() bool {
	return i.UserID != 0
}

// Permission decides whether an identity holds a capability.
type Permission interface {
	Allows(identity Identity, capability Capability) bool
}

// TeacherOrReadOnly grants read to any authenticated identity and write only
// to superusers or identities with the teacher role.
type TeacherOrReadOnly struct{}

func (TeacherOrReadOnly) Allows(identity Identity, capability Capability) bool {
	if !identity.Authenticated() {
		return false
	}
	if capability == CapabilityRead {
		return true
	}
	return identity.IsSuperuser || identity.Role == model.RoleTeacher
}
