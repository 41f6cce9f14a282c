// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
//
// UsernameLower is a stored generated column (see the migrations); its unique
// index is what enforces case-insensitive username uniqueness atomically, so
// two concurrent registrations for the same name cannot both commit. GORM
// never writes it (->:false would drop reads too, so it is read-only here).
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username      string    `gorm:"type:varchar(100);not null"`
	UsernameLower string    `gorm:"type:varchar(100);->"`
	FirstName     string    `gorm:"type:varchar(100);not null;column:fname"`
	LastName      string    `gorm:"type:varchar(100);not null;column:lname"`
	Age           int       `gorm:"not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
