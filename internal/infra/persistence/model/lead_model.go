package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LeadModel is the GORM-specific struct for the 'leads' table.
type LeadModel struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string                      `gorm:"size:200;not null"`
	Email         string                      `gorm:"size:320;not null;index"`
	Phone         string                      `gorm:"size:32;not null"`
	WebsiteStatus string                      `gorm:"size:100"`
	Goals         datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Channels      datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Source        string                      `gorm:"size:50;not null"`
	Status        string                      `gorm:"size:20;not null;default:'new';index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeadModel) TableName() string {
	return "leads"
}
