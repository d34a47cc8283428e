package cart

import (
	"context"

	"SmartCart-Backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CartRepository interface {
		GetCartItems(ctx context.Context, userID string) ([]*entities.CartItem, error)
		UpsertCartItem(ctx context.Context, item *entities.CartItem) error
		UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error
		DeleteCartItem(ctx context.Context, userID, productID string) error
		DeleteCartItems(ctx context.Context, userID string) error
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetCartItems(ctx context.Context, userID string) ([]*entities.CartItem, error) {
	var items []*entities.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("added_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpsertCartItem inserts the row or, when the (user, product) pair already
// exists, overwrites its quantity.
func (r *cartRepository) UpsertCartItem(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
		}).
		Create(item).Error
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	return r.db.WithContext(ctx).Model(&entities.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error
}

func (r *cartRepository) DeleteCartItem(ctx context.Context, userID, productID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&entities.CartItem{}).Error
}

func (r *cartRepository) DeleteCartItems(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.CartItem{}).Error
}
