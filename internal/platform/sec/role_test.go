// Copyright (c) 2026 CineVault. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danghoanh/cinevault/internal/platform/sec"
)

/*
TestUserRole_Valid checks the closed role set.
*/
func TestUserRole_Valid(t *testing.T) {
	assert.True(t, sec.RoleAdmin.Valid())
	assert.True(t, sec.RoleManager.Valid())
	assert.True(t, sec.RoleViewer.Valid())

	assert.False(t, sec.UserRole("superuser").Valid())
	assert.False(t, sec.UserRole("").Valid())
}

/*
TestUserRole_Capabilities verifies the fixed capability tiers.
*/
func TestUserRole_Capabilities(t *testing.T) {
	tests := []struct {
		name string
		role sec.UserRole
		caps []sec.Capability
	}{
		{"admin_full", sec.RoleAdmin, []sec.Capability{sec.CapRead, sec.CapWrite, sec.CapAdminister}},
		{"manager_no_administer", sec.RoleManager, []sec.Capability{sec.CapRead, sec.CapWrite}},
		{"viewer_read_only", sec.RoleViewer, []sec.Capability{sec.CapRead}},
		{"unknown_none", sec.UserRole("ghost"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.caps, tt.role.Capabilities())
		})
	}
}

/*
TestUserRole_Can checks capability membership per tier.
*/
func TestUserRole_Can(t *testing.T) {
	assert.True(t, sec.RoleAdmin.Can(sec.CapAdminister))
	assert.True(t, sec.RoleManager.Can(sec.CapWrite))
	assert.False(t, sec.RoleManager.Can(sec.CapAdminister))
	assert.True(t, sec.RoleViewer.Can(sec.CapRead))
	assert.False(t, sec.RoleViewer.Can(sec.CapWrite))
}

/*
TestUserRole_AtLeast verifies the role hierarchy comparison.
*/
func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleManager))
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleAdmin))
	assert.True(t, sec.RoleManager.AtLeast(sec.RoleViewer))

	assert.False(t, sec.RoleViewer.AtLeast(sec.RoleManager))
	assert.False(t, sec.RoleManager.AtLeast(sec.RoleAdmin))
	assert.False(t, sec.UserRole("ghost").AtLeast(sec.RoleViewer))
}
