// Package database owns the gorm connection pool and schema migration. All
// persistence goes through the *gorm.DB returned by GetDB; every call borrows
// a pooled connection and releases it when done.
package database

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path"

	"thinker-ui/config"
	"thinker-ui/database/model"
	"thinker-ui/util/common"
	"thinker-ui/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const (
	defaultAdminLogin    = "admin"
	defaultAdminPassword = "admin"
)

func initModels() error {
	models := []any{
		&model.User{},
		&model.PostRubric{},
		&model.Post{},
		&model.NoteRubric{},
		&model.Note{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initAdminUser seeds the admin account when the users table is empty. The
// seeded password is expected to be changed on first login.
func initAdminUser() error {
	empty, err := isTableEmpty("users")
	if err != nil {
		log.Printf("Error checking if users table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}

	hash, err := crypto.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}
	admin := &model.User{
		Login:        defaultAdminLogin,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	return db.Create(admin).Error
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface
	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	for _, pragma := range []string{
		"PRAGMA cache_size = -64000;",
		"PRAGMA temp_store = MEMORY;",
		"PRAGMA foreign_keys = ON;",
	} {
		if _, err = sqlDB.Exec(pragma); err != nil {
			return err
		}
	}

	if err := initModels(); err != nil {
		return err
	}
	return initAdminUser()
}

func CloseDB() error {
	if db == nil {
		return nil
	}
	if err := Checkpoint(); err != nil {
		log.Printf("error executing checkpoint: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func GetDB() *gorm.DB {
	return db
}

// ErrRecordNotFound is the store's "no such row" error, re-exported so
// callers can report a missing record without importing gorm.
var ErrRecordNotFound = gorm.ErrRecordNotFound

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsConstraintViolation reports whether err is a store-level conflict: a
// duplicate unique key or a reference to a row that does not exist. Both mean
// the client sent data the schema rejects.
func IsConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated)
}

// Checkpoint flushes the sqlite WAL into the main database file.
func Checkpoint() error {
	if db == nil {
		return common.NewError("database is not initialized")
	}
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
