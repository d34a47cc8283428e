package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID               uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Email            string            `gorm:"uniqueIndex;not null" json:"email"`
	Password         string            `gorm:"not null" json:"-"`
	Metadata         map[string]string `gorm:"type:text;serializer:json" json:"metadata"`
	EmailConfirmedAt *time.Time        `json:"email_confirmed_at,omitempty"`

	Timestamp
}

func (u *User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Profile shares its primary key with the owning user.
type Profile struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone"`
	CPF      string    `gorm:"column:cpf" json:"cpf"`

	Timestamp
}

func (p *Profile) TableName() string {
	return "profiles"
}
