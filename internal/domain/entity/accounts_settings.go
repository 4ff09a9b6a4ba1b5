package entity

import (
	"time"
)

// AccountsSettings is a single-row table of global accounting toggles.
// PostChangeGLEntries controls whether change returned to the customer is
// posted as its own GL entry pair or netted off the cash payment line.
type AccountsSettings struct {
	ID                  uint      `gorm:"primary_key" json:"id"`
	PostChangeGLEntries bool      `gorm:"default:false" json:"post_change_gl_entries"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// TableName returns the table name for the AccountsSettings model
func (AccountsSettings) TableName() string {
	return "accounts_settings"
}
