package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountModel struct {
	AccountID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:account_id" json:"account_id"`
	AccountGoogleID     string    `gorm:"type:varchar(128);not null;uniqueIndex;column:account_google_id" json:"account_google_id"`
	AccountName         string    `gorm:"type:varchar(120);not null;column:account_name" json:"account_name"`
	AccountEmail        string    `gorm:"type:varchar(255);not null;column:account_email" json:"account_email"`
	AccountIsInstructor bool      `gorm:"not null;default:false;column:account_is_instructor" json:"account_is_instructor"`

	AccountCreatedAt time.Time      `gorm:"type:timestamptz;column:account_created_at;autoCreateTime" json:"account_created_at"`
	AccountUpdatedAt time.Time      `gorm:"type:timestamptz;column:account_updated_at;autoUpdateTime" json:"account_updated_at"`
	AccountDeletedAt gorm.DeletedAt `gorm:"column:account_deleted_at;index" json:"account_deleted_at,omitempty"`
}

func (AccountModel) TableName() string { return "accounts" }
