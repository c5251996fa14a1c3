// Package model defines the persisted entities of thinker-ui.
package model

import (
	"time"
)

// User is a credential record. Login uniqueness is enforced by the store; the
// role is derived from the two flags at login time, see RoleOf.
type User struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Login        string `json:"login" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	IsAdmin      bool   `json:"isAdmin" gorm:"not null;default:false"`
	IsModerator  bool   `json:"isModerator" gorm:"not null;default:false"`
}

// PostRubric is a public post category. Deleting the owning user keeps the
// rubric but clears the owner.
type PostRubric struct {
	Id     int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title  string `json:"title" gorm:"not null"`
	UserId *int   `json:"userId" gorm:"index"`
	User   *User  `json:"-" gorm:"foreignKey:UserId;constraint:OnDelete:SET NULL"`
}

// Post is a public article. Author and rubric references survive deletion of
// their targets as NULLs.
type Post struct {
	Id        int         `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string      `json:"title" gorm:"not null"`
	Content   string      `json:"content" gorm:"not null"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	UserId    *int        `json:"userId" gorm:"index"`
	User      *User       `json:"-" gorm:"foreignKey:UserId;constraint:OnDelete:SET NULL"`
	RubricId  *int        `json:"rubricId" gorm:"column:post_rubric_id;index"`
	Rubric    *PostRubric `json:"-" gorm:"foreignKey:RubricId;constraint:OnDelete:SET NULL"`
}

// NoteRubric is a private note category, hard-owned by its user: it goes away
// with the account.
type NoteRubric struct {
	Id     int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title  string `json:"title" gorm:"not null"`
	UserId int    `json:"userId" gorm:"not null;index"`
	User   *User  `json:"-" gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

// Note is a private entry, visible only to its owner and cascade-deleted with
// the owner or the rubric.
type Note struct {
	Id        int         `json:"id" gorm:"primaryKey;autoIncrement"`
	Content   string      `json:"content" gorm:"not null"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	UserId    int         `json:"userId" gorm:"not null;index"`
	User      *User       `json:"-" gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	RubricId  *int        `json:"rubricId" gorm:"column:note_rubric_id;index"`
	Rubric    *NoteRubric `json:"-" gorm:"foreignKey:RubricId;constraint:OnDelete:CASCADE"`
}
