package models

import "time"

// GuestAuthor is a byline without a login account.
type GuestAuthor struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	DisplayName   string    `gorm:"size:250;index" json:"display_name"`
	FirstName     string    `gorm:"size:100" json:"first_name"`
	LastName      string    `gorm:"size:100" json:"last_name"`
	UserLogin     string    `gorm:"size:60;uniqueIndex;not null" json:"user_login"`
	UserEmail     string    `gorm:"size:100" json:"user_email"`
	LinkedAccount string    `gorm:"size:60" json:"linked_account"`
	Website       string    `gorm:"size:200" json:"website"`
	AIM           string    `gorm:"column:aim;size:100" json:"aim"`
	YahooIM       string    `gorm:"column:yahooim;size:100" json:"yahooim"`
	Jabber        string    `gorm:"size:100" json:"jabber"`
	Description   string    `gorm:"type:text" json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
