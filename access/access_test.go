package access_test

import (
	"testing"

	"github.com/FieldPulse/go-incentives/access"
	"github.com/stretchr/testify/assert"
)

func TestMemberAndLeaderRolesGetUserScopeOnly(t *testing.T) {
	roles := []access.Role{
		access.RoleCSRMember, access.RoleSalesMember, access.RoleTechMember,
		access.RoleTeamCaptain,
		access.RoleCSRUnitLeader, access.RoleSalesUnitLeader, access.RoleTechUnitLeader,
	}
	for _, role := range roles {
		assert.Equal(t, []access.Scope{access.ScopeUser}, access.ResolveScopes(role), string(role))
	}
}

func TestBranchManagerVariantsGetBranchFirst(t *testing.T) {
	roles := []access.Role{
		access.RoleBranchManager,
		access.RoleRegionalBranchManager,
		access.RoleDistrictBranchManager,
	}
	for _, role := range roles {
		scopes := access.ResolveScopes(role)
		assert.Equal(t, []access.Scope{access.ScopeBranch, access.ScopeUser}, scopes, string(role))
		assert.Equal(t, access.ScopeBranch, access.DefaultScope(role))
	}
}

func TestOwnerAndAdminGetEverything(t *testing.T) {
	all := []access.Scope{access.ScopeUser, access.ScopeBranch, access.ScopeOrganization}
	assert.Equal(t, all, access.ResolveScopes(access.RoleOwner))
	assert.Equal(t, all, access.ResolveScopes(access.RoleAdmin))
}

func TestUnrecognizedRoleFailsOpen(t *testing.T) {
	// shipped behavior: unknown roles fall through to full access
	all := []access.Scope{access.ScopeUser, access.ScopeBranch, access.ScopeOrganization}
	assert.Equal(t, all, access.ResolveScopes(access.Role("INTERN")))
	assert.Equal(t, all, access.ResolveScopes(access.RoleGuest))
}

func TestResolveScopesNeverEmpty(t *testing.T) {
	roles := []access.Role{
		access.RoleOwner, access.RoleAdmin, access.RoleGuest,
		access.RoleBranchManager, access.RoleTeamCaptain,
		access.RoleTechMember, access.Role(""),
	}
	for _, role := range roles {
		scopes := access.ResolveScopes(role)
		assert.NotEmpty(t, scopes, string(role))
		assert.Equal(t, scopes[0], access.DefaultScope(role))
	}
}

func TestReconcileScope(t *testing.T) {
	// an owner browsing organization settings demoted to tech member must
	// land on the member default, not keep the stale scope
	assert.Equal(t, access.ScopeUser,
		access.ReconcileScope(access.ScopeOrganization, access.RoleTechMember))

	// still-valid scopes survive role changes
	assert.Equal(t, access.ScopeUser,
		access.ReconcileScope(access.ScopeUser, access.RoleBranchManager))
	assert.Equal(t, access.ScopeBranch,
		access.ReconcileScope(access.ScopeBranch, access.RoleOwner))

	// branch manager keeps branch, loses organization
	assert.Equal(t, access.ScopeBranch,
		access.ReconcileScope(access.ScopeOrganization, access.RoleBranchManager))
}
