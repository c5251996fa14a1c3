package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleOrder(t *testing.T) {
	assert.True(t, RoleVisitor < RoleUser)
	assert.True(t, RoleUser < RoleModerator)
	assert.True(t, RoleModerator < RoleAdmin)
}

func TestRoleSatisfies(t *testing.T) {
	// Every role satisfies itself and everything below it.
	roles := []Role{RoleVisitor, RoleUser, RoleModerator, RoleAdmin}
	for i, r := range roles {
		for j, required := range roles {
			assert.Equal(t, i >= j, r.Satisfies(required),
				"%s.Satisfies(%s)", r, required)
		}
	}
}

func TestRoleOf(t *testing.T) {
	assert.Equal(t, RoleUser, RoleOf(&User{}))
	assert.Equal(t, RoleModerator, RoleOf(&User{IsModerator: true}))
	assert.Equal(t, RoleAdmin, RoleOf(&User{IsAdmin: true}))

	// The admin flag wins when both are set.
	assert.Equal(t, RoleAdmin, RoleOf(&User{IsAdmin: true, IsModerator: true}))
}

func TestPrincipalCapabilities(t *testing.T) {
	user := Principal{Id: 1, Login: "user", Role: RoleUser}
	assert.False(t, user.CanModerate())
	assert.False(t, user.CanAdminister())

	moderator := Principal{Id: 2, Login: "mod", Role: RoleModerator}
	assert.True(t, moderator.CanModerate())
	assert.False(t, moderator.CanAdminister())

	admin := Principal{Id: 3, Login: "admin", Role: RoleAdmin}
	assert.True(t, admin.CanModerate())
	assert.True(t, admin.CanAdminister())
}
