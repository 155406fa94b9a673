package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is a CMS login account. Roles and capabilities are stored as JSON documents.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Login        string         `gorm:"column:user_login;size:60;uniqueIndex;not null" json:"user_login"`
	Nicename     string         `gorm:"column:user_nicename;size:50;index" json:"user_nicename"`
	Email        string         `gorm:"column:user_email;size:100" json:"user_email"`
	URL          string         `gorm:"column:user_url;size:100" json:"user_url"`
	DisplayName  string         `gorm:"size:250" json:"display_name"`
	FirstName    string         `gorm:"size:100" json:"first_name"`
	LastName     string         `gorm:"size:100" json:"last_name"`
	Description  string         `gorm:"type:text" json:"description"`
	Registered   time.Time      `gorm:"column:user_registered" json:"user_registered"`
	Roles        datatypes.JSON `json:"roles"`
	Capabilities datatypes.JSON `json:"capabilities"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate fills the registration date when the importer left it empty.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Registered.IsZero() {
		u.Registered = time.Now()
	}
	return nil
}
