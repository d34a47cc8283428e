package shoppinglist

import (
	"context"
	"time"

	"SmartCart-Backend/domain"
	"SmartCart-Backend/entities"
	"SmartCart-Backend/internal/utils/storage"
	"SmartCart-Backend/pkg/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultQuantity = 1

type (
	ShoppingListService interface {
		GetLists(ctx context.Context, userID string, status string) ([]domain.ShoppingList, error)
		CreateList(ctx context.Context, userID string, name string) (domain.ShoppingList, error)
		UpdateListStatus(ctx context.Context, userID, listID, status string) error
		DeleteList(ctx context.Context, userID, listID string) error
		GetListItems(ctx context.Context, userID, listID string) ([]domain.ShoppingListItem, error)
		AddItemToList(ctx context.Context, userID, listID, productID string, quantity int) error
		UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) error
		RemoveItemFromList(ctx context.Context, userID, itemID string) error
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
		s3                     storage.AwsS3
		now                    func() time.Time
	}
)

func NewShoppingListService(shoppingListRepository ShoppingListRepository, s3 storage.AwsS3) ShoppingListService {
	return &shoppingListService{
		shoppingListRepository: shoppingListRepository,
		s3:                     s3,
		now:                    time.Now,
	}
}

func (s *shoppingListService) GetLists(ctx context.Context, userID string, status string) ([]domain.ShoppingList, error) {
	lists, err := s.shoppingListRepository.GetLists(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ShoppingList, 0, len(lists))
	for _, l := range lists {
		response = append(response, toListResponse(l))
	}
	return response, nil
}

// CreateList always starts a list as "previous".
func (s *shoppingListService) CreateList(ctx context.Context, userID string, name string) (domain.ShoppingList, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingList{}, domain.ErrParseUUID
	}

	list := &entities.ShoppingList{
		ID:     uuid.New(),
		UserID: userUUID,
		Name:   name,
		Status: domain.ListStatusPrevious,
	}
	if err := s.shoppingListRepository.CreateList(ctx, list); err != nil {
		return domain.ShoppingList{}, err
	}
	return toListResponse(list), nil
}

// UpdateListStatus accepts any status after any other; there is no
// transition table.
func (s *shoppingListService) UpdateListStatus(ctx context.Context, userID, listID, status string) error {
	return s.shoppingListRepository.UpdateListStatus(ctx, userID, listID, status, s.now())
}

func (s *shoppingListService) DeleteList(ctx context.Context, userID, listID string) error {
	return s.shoppingListRepository.DeleteList(ctx, userID, listID)
}

func (s *shoppingListService) GetListItems(ctx context.Context, userID, listID string) ([]domain.ShoppingListItem, error) {
	items, err := s.shoppingListRepository.GetListItems(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ShoppingListItem, 0, len(items))
	for _, item := range items {
		res := domain.ShoppingListItem{
			ID:        item.ID.String(),
			ListID:    item.ListID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			CreatedAt: item.CreatedAt,
		}
		if item.Product != nil {
			res.Product = &domain.ProductSnapshot{
				ID:       item.Product.ID.String(),
				Name:     item.Product.Name,
				Price:    item.Product.Price,
				ImageURL: product.ResolveImage(ctx, item.Product.ImageURL, s.s3),
			}
		}
		response = append(response, res)
	}
	return response, nil
}

func (s *shoppingListService) AddItemToList(ctx context.Context, userID, listID, productID string, quantity int) error {
	listUUID, err := uuid.Parse(listID)
	if err != nil {
		return domain.ErrParseUUID
	}
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return domain.ErrParseUUID
	}
	if quantity == 0 {
		quantity = defaultQuantity
	}

	return s.shoppingListRepository.AddItem(ctx, userID, &entities.ShoppingListItem{
		ListID:    listUUID,
		ProductID: productUUID,
		Quantity:  quantity,
	}, s.now())
}

func (s *shoppingListService) UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	return s.shoppingListRepository.UpdateItemQuantity(ctx, userID, itemID, quantity, s.now())
}

func (s *shoppingListService) RemoveItemFromList(ctx context.Context, userID, itemID string) error {
	return s.shoppingListRepository.DeleteItem(ctx, userID, itemID, s.now())
}

// CalculateTotal prices each item from its product snapshot; an item
// without a snapshot counts as zero.
func CalculateTotal(items []domain.ShoppingListItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func toListResponse(l *entities.ShoppingList) domain.ShoppingList {
	return domain.ShoppingList{
		ID:        l.ID.String(),
		Name:      l.Name,
		UserID:    l.UserID.String(),
		Status:    l.Status,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
