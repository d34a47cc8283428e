package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShoppingList struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string    `gorm:"not null" json:"name"`
	Status string    `gorm:"not null" json:"status"` // previous, ongoing, completed

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}

func (l *ShoppingList) TableName() string {
	return "shopping_lists"
}

func (l *ShoppingList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

type ShoppingListItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ListID    uuid.UUID `gorm:"type:uuid;not null;index" json:"list_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`

	List    *ShoppingList `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
	Product *Product      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (i *ShoppingListItem) TableName() string {
	return "shopping_list_items"
}

func (i *ShoppingListItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
