package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users di database.
// Saldo poin hanya boleh berubah lewat settlement (+) dan exchange (−),
// tidak pernah lewat edit profil.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string    `gorm:"size:50;unique;not null" json:"user_name"`
	Email     string    `gorm:"size:255;unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	StudentID string    `gorm:"size:50;unique;not null" json:"student_id"`

	// Wallet eksternal, opsional, hanya sebagai faktor login tambahan
	WalletAddress *string `gorm:"size:100;uniqueIndex" json:"wallet_address,omitempty"`

	Role   string `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Points int    `gorm:"not null;default:0;check:points >= 0" json:"points"`

	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

// Validate menjaga invariant dasar sebelum persist.
func (u *UserModel) Validate() error {
	if u.Points < 0 {
		return errors.New("saldo poin tidak boleh negatif")
	}
	if u.Role != "user" && u.Role != "admin" {
		return errors.New("role tidak dikenal")
	}
	return nil
}

func (u *UserModel) BeforeSave(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = "user"
	}
	return u.Validate()
}
