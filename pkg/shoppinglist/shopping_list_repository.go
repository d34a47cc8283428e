package shoppinglist

import (
	"context"
	"time"

	"SmartCart-Backend/domain"
	"SmartCart-Backend/entities"

	"gorm.io/gorm"
)

type (
	// ShoppingListRepository scopes every statement to the owning user, so a
	// list or item belonging to someone else behaves as if it did not exist.
	ShoppingListRepository interface {
		GetLists(ctx context.Context, userID string, status string) ([]*entities.ShoppingList, error)
		CreateList(ctx context.Context, list *entities.ShoppingList) error
		UpdateListStatus(ctx context.Context, userID, listID, status string, at time.Time) error
		DeleteList(ctx context.Context, userID, listID string) error
		GetListItems(ctx context.Context, userID, listID string) ([]*entities.ShoppingListItem, error)
		AddItem(ctx context.Context, userID string, item *entities.ShoppingListItem, at time.Time) error
		UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int, at time.Time) error
		DeleteItem(ctx context.Context, userID, itemID string, at time.Time) error
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) GetLists(ctx context.Context, userID string, status string) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("updated_at desc").Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *shoppingListRepository) CreateList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *shoppingListRepository) UpdateListStatus(ctx context.Context, userID, listID, status string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&entities.ShoppingList{}).
		Where("id = ? AND user_id = ?", listID, userID).
		Updates(map[string]any{"status": status, "updated_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrShoppingListNotFound
	}
	return nil
}

// DeleteList removes the list row only; its items go with it through the
// ON DELETE CASCADE foreign key.
func (r *shoppingListRepository) DeleteList(ctx context.Context, userID, listID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", listID, userID).
		Delete(&entities.ShoppingList{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrShoppingListNotFound
	}
	return nil
}

func (r *shoppingListRepository) GetListItems(ctx context.Context, userID, listID string) ([]*entities.ShoppingListItem, error) {
	var owned int64
	if err := r.ownedLists(ctx, userID).Where("id = ?", listID).Count(&owned).Error; err != nil {
		return nil, err
	}
	if owned == 0 {
		return nil, domain.ErrShoppingListNotFound
	}

	var items []*entities.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Preload("Product", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "price", "image_url")
		}).
		Where("list_id = ?", listID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem inserts the item and refreshes the parent list's updated_at in a
// single transaction.
func (r *shoppingListRepository) AddItem(ctx context.Context, userID string, item *entities.ShoppingListItem, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.ShoppingList{}).
			Where("id = ? AND user_id = ?", item.ListID, userID).
			Update("updated_at", at)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrShoppingListNotFound
		}
		return tx.Create(item).Error
	})
}

func (r *shoppingListRepository) UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := touchParentList(tx, userID, itemID, at); err != nil {
			return err
		}
		return tx.Model(&entities.ShoppingListItem{}).
			Where("id = ?", itemID).
			Update("quantity", quantity).Error
	})
}

func (r *shoppingListRepository) DeleteItem(ctx context.Context, userID, itemID string, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := touchParentList(tx, userID, itemID, at); err != nil {
			return err
		}
		return tx.Where("id = ?", itemID).Delete(&entities.ShoppingListItem{}).Error
	})
}

func (r *shoppingListRepository) ownedLists(ctx context.Context, userID string) *gorm.DB {
	return r.db.WithContext(ctx).Model(&entities.ShoppingList{}).
		Select("id").
		Where("user_id = ?", userID)
}

// touchParentList bumps updated_at on the list that holds itemID. It fails
// with ErrShoppingListItemNotFound when the item does not exist or belongs
// to another user's list.
func touchParentList(tx *gorm.DB, userID, itemID string, at time.Time) error {
	parent := tx.Model(&entities.ShoppingListItem{}).
		Select("list_id").
		Where("id = ?", itemID)

	res := tx.Model(&entities.ShoppingList{}).
		Where("user_id = ? AND id IN (?)", userID, parent).
		Update("updated_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrShoppingListItemNotFound
	}
	return nil
}
