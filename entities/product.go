package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"not null;index" json:"name"`
	Description *string         `json:"description"`
	Category    string          `gorm:"not null;index" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Barcode     *string         `gorm:"index" json:"barcode"`
	ImageURL    *string         `json:"image_url"`
	Stock       int             `gorm:"not null" json:"stock"`

	Timestamp
}

func (p *Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
