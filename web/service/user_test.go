package service

import (
	"os"
	"testing"

	"thinker-ui/database"
	"thinker-ui/database/model"

	"github.com/stretchr/testify/assert"
)

func setup() {
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func TestRegisterAndAuthorize(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	err := service.Register("newcomer", "sup3r-secret")
	assert.NoError(t, err)

	// Correct credentials yield a plain-user principal.
	principal, err := service.Authorize("newcomer", "sup3r-secret")
	assert.NoError(t, err)
	assert.Equal(t, "newcomer", principal.Login)
	assert.Equal(t, model.RoleUser, principal.Role)

	// The stored record carries a hash, not the password.
	user, err := service.GetUser(principal.Id)
	assert.NoError(t, err)
	assert.NotEqual(t, "sup3r-secret", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "sup3r-secret")
}

func TestAuthorizeFailures(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	assert.NoError(t, service.Register("someone", "sup3r-secret"))

	// Unknown login and wrong password look identical to the client.
	_, unknownErr := service.Authorize("nobody", "sup3r-secret")
	_, wrongErr := service.Authorize("someone", "not-the-password")

	var unknownAuth, wrongAuth *AuthorizationError
	assert.ErrorAs(t, unknownErr, &unknownAuth)
	assert.ErrorAs(t, wrongErr, &wrongAuth)
	assert.Equal(t, unknownAuth.UserMessage(), wrongAuth.UserMessage())

	// Internally the causes differ, for the log.
	assert.NotEqual(t, unknownErr.Error(), wrongErr.Error())
}

func TestRegisterTakenLogin(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	assert.NoError(t, service.Register("occupied", "sup3r-secret"))

	err := service.Register("occupied", "other-password")
	var regErr *RegistrationError
	assert.ErrorAs(t, err, &regErr)
	assert.NotEmpty(t, regErr.UserMessage())

	// The first account still authorizes with its original password.
	_, err = service.Authorize("occupied", "sup3r-secret")
	assert.NoError(t, err)
}

func TestUpdateLogin(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	assert.NoError(t, service.Register("before", "sup3r-secret"))
	principal, err := service.Authorize("before", "sup3r-secret")
	assert.NoError(t, err)

	// Renaming to a new login works and the old one frees up.
	assert.NoError(t, service.UpdateLogin(principal.Id, "after"))
	_, err = service.Authorize("before", "sup3r-secret")
	assert.Error(t, err)
	_, err = service.Authorize("after", "sup3r-secret")
	assert.NoError(t, err)

	// Saving the settings form with the current login unchanged is a no-op,
	// not a "login is busy" rejection.
	assert.NoError(t, service.UpdateLogin(principal.Id, "after"))

	// Taking someone else's login is rejected.
	assert.NoError(t, service.Register("bystander", "sup3r-secret"))
	err = service.UpdateLogin(principal.Id, "bystander")
	var regErr *RegistrationError
	assert.ErrorAs(t, err, &regErr)
}

func TestUpdatePassword(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	assert.NoError(t, service.Register("changer", "old-password"))
	principal, err := service.Authorize("changer", "old-password")
	assert.NoError(t, err)

	assert.NoError(t, service.UpdatePassword(principal.Id, "new-password"))

	_, err = service.Authorize("changer", "old-password")
	assert.Error(t, err)
	_, err = service.Authorize("changer", "new-password")
	assert.NoError(t, err)
}

func TestModeratorFlag(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	assert.NoError(t, service.Register("promoted", "sup3r-secret"))
	principal, err := service.Authorize("promoted", "sup3r-secret")
	assert.NoError(t, err)

	assert.NoError(t, service.GrantModerator(principal.Id))

	// The new role applies on the next login, not to the old principal.
	assert.Equal(t, model.RoleUser, principal.Role)
	principal, err = service.Authorize("promoted", "sup3r-secret")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleModerator, principal.Role)

	assert.NoError(t, service.RevokeModerator(principal.Id))
	principal, err = service.Authorize("promoted", "sup3r-secret")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleUser, principal.Role)

	// Granting to a missing user surfaces the not-found error.
	err = service.GrantModerator(99999)
	assert.True(t, database.IsNotFound(err))
}

func TestSeededAdmin(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	principal, err := service.Authorize("admin", "admin")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, principal.Role)
}

func TestIsLoginAvailable(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	available, err := service.IsLoginAvailable("alice", 0)
	assert.NoError(t, err)
	assert.True(t, available)

	assert.NoError(t, service.Register("alice", "sup3r-secret"))

	available, err = service.IsLoginAvailable("alice", 0)
	assert.NoError(t, err)
	assert.False(t, available)

	// The login counts as available to the account that holds it.
	principal, err := service.Authorize("alice", "sup3r-secret")
	assert.NoError(t, err)
	available, err = service.IsLoginAvailable("alice", principal.Id)
	assert.NoError(t, err)
	assert.True(t, available)
}
