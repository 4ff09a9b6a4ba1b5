package entity

import (
	"time"
)

// Company represents an accounting company, the root of the chart of accounts
type Company struct {
	Name                     string    `gorm:"primaryKey;size:140" json:"name"`
	CompanyName              string    `gorm:"size:255;not null" json:"company_name"`
	Abbr                     string    `gorm:"size:10" json:"abbr"`
	DefaultCurrency          string    `gorm:"size:10;not null" json:"default_currency"`
	DefaultReceivableAccount string    `gorm:"size:140" json:"default_receivable_account"`
	Country                  string    `gorm:"size:100" json:"country"`
	CostCenter               string    `gorm:"size:140" json:"cost_center"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// TableName returns the table name for the Company model
func (Company) TableName() string {
	return "companies"
}
