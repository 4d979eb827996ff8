// Copyright (c) 2026 CineVault. All rights reserved.

package sec

// # User Roles

// UserRole represents the authorization tier granted to an account.
type UserRole string

const (
	// Full read/write plus user administration
	RoleAdmin UserRole = "admin"

	// Full read/write on domain entities, no user administration
	RoleManager UserRole = "manager"

	// Read-only access to every surface
	RoleViewer UserRole = "viewer"
)

// Valid reports whether the role is one of the three known tiers.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleViewer:
		return true
	}
	return false
}

// # Capabilities

// Capability is a single permitted action class.
type Capability string

const (
	CapRead       Capability = "read"
	CapWrite      Capability = "write"
	CapAdminister Capability = "administer"
)

// capabilitySets is the fixed, closed mapping from role tier to capability set.
// It is resolved in code rather than constructed at runtime, so the privilege
// model is statically auditable.
var capabilitySets = map[UserRole][]Capability{
	RoleAdmin:   {CapRead, CapWrite, CapAdminister},
	RoleManager: {CapRead, CapWrite},
	RoleViewer:  {CapRead},
}

// Capabilities returns the capability set for the role.
// Unknown roles hold no capabilities at all.
func (r UserRole) Capabilities() []Capability {
	caps, ok := capabilitySets[r]
	if !ok {
		return nil
	}

	// Copy to keep the closed mapping immutable.
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// Can reports whether the role's capability set includes the given capability.
func (r UserRole) Can(capability Capability) bool {
	for _, c := range capabilitySets[r] {
		if c == capability {
			return true
		}
	}
	return false
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleManager:
		return 20
	case RoleViewer:
		return 10
	default:
		return 0
	}
}
