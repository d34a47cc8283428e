package shoppinglist

import (
	"context"
	"errors"
	"testing"
	"time"

	"SmartCart-Backend/domain"
	"SmartCart-Backend/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock Repository ---

type MockShoppingListRepo struct {
	Lists []*entities.ShoppingList
	Items []*entities.ShoppingListItem
	Err   error

	LastCreated *entities.ShoppingList
	LastAdded   *entities.ShoppingListItem
	LastStatus  string
	LastAt      time.Time
}

func (m *MockShoppingListRepo) GetLists(ctx context.Context, userID string, status string) ([]*entities.ShoppingList, error) {
	return m.Lists, m.Err
}

func (m *MockShoppingListRepo) CreateList(ctx context.Context, list *entities.ShoppingList) error {
	m.LastCreated = list
	return m.Err
}

func (m *MockShoppingListRepo) UpdateListStatus(ctx context.Context, userID, listID, status string, at time.Time) error {
	m.LastStatus = status
	m.LastAt = at
	return m.Err
}

func (m *MockShoppingListRepo) DeleteList(ctx context.Context, userID, listID string) error {
	return m.Err
}

func (m *MockShoppingListRepo) GetListItems(ctx context.Context, userID, listID string) ([]*entities.ShoppingListItem, error) {
	return m.Items, m.Err
}

func (m *MockShoppingListRepo) AddItem(ctx context.Context, userID string, item *entities.ShoppingListItem, at time.Time) error {
	m.LastAdded = item
	m.LastAt = at
	return m.Err
}

func (m *MockShoppingListRepo) UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int, at time.Time) error {
	m.LastAt = at
	return m.Err
}

func (m *MockShoppingListRepo) DeleteItem(ctx context.Context, userID, itemID string, at time.Time) error {
	m.LastAt = at
	return m.Err
}

func snapshotItem(price string, quantity int) domain.ShoppingListItem {
	return domain.ShoppingListItem{
		Quantity: quantity,
		Product:  &domain.ProductSnapshot{Price: decimal.RequireFromString(price)},
	}
}

// --- Tests ---

func TestListCalculateTotal(t *testing.T) {
	testCases := []struct {
		name     string
		items    []domain.ShoppingListItem
		expected string
	}{
		{"empty list", nil, "0"},
		{"priced items", []domain.ShoppingListItem{snapshotItem("10", 2), snapshotItem("5", 1)}, "25"},
		{"missing snapshot counts as zero", []domain.ShoppingListItem{snapshotItem("3.50", 2), {Quantity: 4}}, "7"},
		{"only missing snapshots", []domain.ShoppingListItem{{Quantity: 1}, {Quantity: 2}}, "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total := CalculateTotal(tc.items)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(total), "got %s", total)
		})
	}
}

func TestCreateListIgnoresCallerStatus(t *testing.T) {
	repo := &MockShoppingListRepo{}
	svc := NewShoppingListService(repo, nil)
	userID := uuid.New()

	list, err := svc.CreateList(context.Background(), userID.String(), "Monthly")
	require.NoError(t, err)
	require.NotNil(t, repo.LastCreated)
	assert.Equal(t, domain.ListStatusPrevious, repo.LastCreated.Status)
	assert.Equal(t, userID, repo.LastCreated.UserID)
	assert.Equal(t, domain.ListStatusPrevious, list.Status)

	_, err = svc.CreateList(context.Background(), "bad", "Monthly")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestAddItemToListDefaultsQuantity(t *testing.T) {
	repo := &MockShoppingListRepo{}
	svc := NewShoppingListService(repo, nil)
	listID, productID := uuid.New(), uuid.New()

	require.NoError(t, svc.AddItemToList(context.Background(), uuid.NewString(), listID.String(), productID.String(), 0))
	require.NotNil(t, repo.LastAdded)
	assert.Equal(t, 1, repo.LastAdded.Quantity)
	assert.Equal(t, listID, repo.LastAdded.ListID)
	assert.Equal(t, productID, repo.LastAdded.ProductID)
	assert.False(t, repo.LastAt.IsZero())

	err := svc.AddItemToList(context.Background(), uuid.NewString(), "x", productID.String(), 1)
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestUpdateListStatusStampsNow(t *testing.T) {
	repo := &MockShoppingListRepo{}
	svc := &shoppingListService{
		shoppingListRepository: repo,
		now:                    func() time.Time { return time.Date(2025, 5, 5, 10, 0, 0, 0, time.UTC) },
	}

	require.NoError(t, svc.UpdateListStatus(context.Background(), uuid.NewString(), uuid.NewString(), domain.ListStatusCompleted))
	assert.Equal(t, domain.ListStatusCompleted, repo.LastStatus)
	assert.Equal(t, time.Date(2025, 5, 5, 10, 0, 0, 0, time.UTC), repo.LastAt)
}

func TestShoppingListServiceReturnsRepositoryErrorUnchanged(t *testing.T) {
	backendErr := errors.New("connection reset by peer")
	svc := NewShoppingListService(&MockShoppingListRepo{Err: backendErr}, nil)
	ctx := context.Background()
	userID, listID, itemID := uuid.NewString(), uuid.NewString(), uuid.NewString()

	_, err := svc.GetLists(ctx, userID, "")
	assert.Same(t, backendErr, err)
	_, err = svc.CreateList(ctx, userID, "x")
	assert.Same(t, backendErr, err)
	_, err = svc.GetListItems(ctx, userID, listID)
	assert.Same(t, backendErr, err)
	assert.Same(t, backendErr, svc.UpdateListStatus(ctx, userID, listID, domain.ListStatusOngoing))
	assert.Same(t, backendErr, svc.DeleteList(ctx, userID, listID))
	assert.Same(t, backendErr, svc.AddItemToList(ctx, userID, listID, uuid.NewString(), 1))
	assert.Same(t, backendErr, svc.UpdateItemQuantity(ctx, userID, itemID, 2))
	assert.Same(t, backendErr, svc.RemoveItemFromList(ctx, userID, itemID))
}

func TestGetListItemsWithoutProduct(t *testing.T) {
	item := &entities.ShoppingListItem{ID: uuid.New(), ListID: uuid.New(), ProductID: uuid.New(), Quantity: 3}
	svc := NewShoppingListService(&MockShoppingListRepo{Items: []*entities.ShoppingListItem{item}}, nil)

	items, err := svc.GetListItems(context.Background(), uuid.NewString(), item.ListID.String())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Product)
	assert.True(t, CalculateTotal(items).IsZero())
}
