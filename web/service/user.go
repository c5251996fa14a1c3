package service

import (
	"thinker-ui/database"
	"thinker-ui/database/model"
	"thinker-ui/logger"
	"thinker-ui/util/crypto"
)

// UserService implements registration, login and account management on top of
// the credential records.
type UserService struct{}

func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// IsLoginAvailable reports whether no credential record uses the login. A
// record owned by exceptId does not count as taken, so a user may "change"
// their login to its current value. Pass exceptId 0 for registration.
//
// This check is for form feedback only; the unique index on users.login is
// what actually prevents a race between two registrations.
func (s *UserService) IsLoginAvailable(login string, exceptId int) (bool, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).
		Where("login = ?", login).
		First(user).
		Error
	if database.IsNotFound(err) {
		return true, nil
	} else if err != nil {
		return false, err
	}
	return user.Id == exceptId, nil
}

// Register creates a plain-user credential record. The login must be free; a
// taken login yields a RegistrationError, never a silent overwrite.
func (s *UserService) Register(login string, password string) error {
	available, err := s.IsLoginAvailable(login, 0)
	if err != nil {
		return err
	}
	if !available {
		return &RegistrationError{msg: "Login is busy. Choose another, please!"}
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	return db.Create(&model.User{
		Login:        login,
		PasswordHash: hash,
	}).Error
}

// Authorize checks the credentials and returns the principal to establish in
// the session. A missing login and a wrong password are distinct causes
// internally but indistinguishable in what the user is shown.
func (s *UserService) Authorize(login string, password string) (*model.Principal, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).
		Where("login = ?", login).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, &AuthorizationError{cause: "no such login"}
	} else if err != nil {
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil, &AuthorizationError{cause: "wrong password"}
	}

	return &model.Principal{
		Id:    user.Id,
		Login: user.Login,
		Role:  model.RoleOf(user),
	}, nil
}

// UpdateLogin renames the account. Availability is re-checked with the
// account itself excluded, so saving the settings form unchanged succeeds.
func (s *UserService) UpdateLogin(userId int, newLogin string) error {
	available, err := s.IsLoginAvailable(newLogin, userId)
	if err != nil {
		return err
	}
	if !available {
		return &RegistrationError{msg: "Login is busy. Choose another, please!"}
	}

	db := database.GetDB()
	return db.Model(model.User{}).
		Where("id = ?", userId).
		Update("login", newLogin).
		Error
}

func (s *UserService) UpdatePassword(userId int, newPassword string) error {
	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}

	db := database.GetDB()
	return db.Model(model.User{}).
		Where("id = ?", userId).
		Update("password_hash", hash).
		Error
}

// Users lists all credential records for the admin page.
func (s *UserService) Users() ([]model.User, error) {
	db := database.GetDB()
	var users []model.User
	err := db.Model(model.User{}).
		Order("id").
		Find(&users).
		Error
	return users, err
}

// GrantModerator sets the moderator flag. The change takes effect on the
// user's next login, when the role is recomputed from the flags.
func (s *UserService) GrantModerator(userId int) error {
	return s.setModerator(userId, true)
}

func (s *UserService) RevokeModerator(userId int) error {
	return s.setModerator(userId, false)
}

func (s *UserService) setModerator(userId int, value bool) error {
	db := database.GetDB()
	user := &model.User{}
	if err := db.Where("id = ?", userId).First(user).Error; err != nil {
		return err
	}
	err := db.Model(model.User{}).
		Where("id = ?", userId).
		Update("is_moderator", value).
		Error
	if err != nil {
		return err
	}
	logger.Infof("user %d (%s) moderator flag set to %v", user.Id, user.Login, value)
	return nil
}
