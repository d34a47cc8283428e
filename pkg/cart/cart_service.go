package cart

import (
	"context"

	"SmartCart-Backend/domain"
	"SmartCart-Backend/entities"
	"SmartCart-Backend/internal/utils/storage"
	"SmartCart-Backend/pkg/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultQuantity = 1

type (
	CartService interface {
		GetCartItems(ctx context.Context, userID string) ([]domain.CartItem, error)
		AddToCart(ctx context.Context, userID, productID string, quantity int) error
		UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error
		RemoveFromCart(ctx context.Context, userID, productID string) error
		ClearCart(ctx context.Context, userID string) error
	}

	cartService struct {
		cartRepository CartRepository
		s3             storage.AwsS3
	}
)

func NewCartService(cartRepository CartRepository, s3 storage.AwsS3) CartService {
	return &cartService{
		cartRepository: cartRepository,
		s3:             s3,
	}
}

func (s *cartService) GetCartItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	rows, err := s.cartRepository.GetCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.CartItem, 0, len(rows))
	for _, row := range rows {
		if row.Product == nil {
			continue
		}
		cartID := row.ID.String()
		items = append(items, domain.CartItem{
			Product:  product.ToDomain(ctx, row.Product, s.s3),
			Quantity: row.Quantity,
			CartID:   &cartID,
			AddedAt:  row.AddedAt,
		})
	}
	return items, nil
}

// AddToCart sets the cart quantity of productID. A quantity of zero means
// "not given" and stores one unit.
func (s *cartService) AddToCart(ctx context.Context, userID, productID string, quantity int) error {
	userUUID, err := uuid.Parse(userID)
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

	return s.cartRepository.UpsertCartItem(ctx, &entities.CartItem{
		UserID:    userUUID,
		ProductID: productUUID,
		Quantity:  quantity,
	})
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	return s.cartRepository.UpdateQuantity(ctx, userID, productID, quantity)
}

func (s *cartService) RemoveFromCart(ctx context.Context, userID, productID string) error {
	return s.cartRepository.DeleteCartItem(ctx, userID, productID)
}

func (s *cartService) ClearCart(ctx context.Context, userID string) error {
	return s.cartRepository.DeleteCartItems(ctx, userID)
}

// CalculateTotal sums price times quantity. No rounding is applied.
func CalculateTotal(items []domain.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
