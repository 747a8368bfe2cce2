package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/adiwira-dev/stockledger/internal/apperrors"
	"github.com/adiwira-dev/stockledger/internal/core/domain"
	portsrepo "github.com/adiwira-dev/stockledger/internal/core/ports/repositories"
	portssvc "github.com/adiwira-dev/stockledger/internal/core/ports/services"
	"github.com/adiwira-dev/stockledger/internal/core/services"
	"github.com/adiwira-dev/stockledger/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ItemRepository ---
type MockItemRepository struct {
	mock.Mock
}

// Ensure MockItemRepository implements portsrepo.ItemRepositoryFacade
var _ portsrepo.ItemRepositoryFacade = (*MockItemRepository)(nil)

func (m *MockItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) ListItems(ctx context.Context, nameQuery string, limit, offset int) ([]domain.Item, error) {
	args := m.Called(ctx, nameQuery, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type ItemServiceTestSuite struct {
	suite.Suite
	mockItemRepo *MockItemRepository
	service      portssvc.ItemSvcFacade
	userID       string
}

func (suite *ItemServiceTestSuite) SetupTest() {
	suite.mockItemRepo = new(MockItemRepository)
	suite.service = services.NewItemService(suite.mockItemRepo)
	suite.userID = uuid.NewString()
}

func strPtr(s string) *string { return &s }

// --- Test Cases ---

func (suite *ItemServiceTestSuite) TestCreateItem_Success() {
	ctx := context.Background()
	req := dto.CreateItemRequest{Name: "Kopi Susu", CostPrice: 100, SellPrice: 150, Stock: 5}

	suite.mockItemRepo.On("SaveItem", ctx, mock.AnythingOfType("domain.Item")).Return(nil).Once()

	item, err := suite.service.CreateItem(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(item.ItemID)
	suite.Equal("Kopi Susu", item.Name)
	suite.Equal(int64(5), item.Stock)
	suite.Equal(suite.userID, item.CreatedBy)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestCreateItem_NegativePrice() {
	ctx := context.Background()
	req := dto.CreateItemRequest{Name: "Broken", CostPrice: -1}

	_, err := suite.service.CreateItem(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SaveItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestUpdateItem_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.Item{ItemID: uuid.NewString(), Name: "Kopi", CostPrice: 100, SellPrice: 150, Stock: 7}
	req := dto.UpdateItemRequest{SellPrice: int64Ptr(175)}

	suite.mockItemRepo.On("FindItemByID", ctx, existing.ItemID).Return(existing, nil).Once()

	var capturedItem domain.Item
	suite.mockItemRepo.On("UpdateItem", ctx, mock.AnythingOfType("domain.Item")).
		Run(func(args mock.Arguments) {
			capturedItem = args.Get(1).(domain.Item)
		}).
		Return(nil).Once()

	updated, err := suite.service.UpdateItem(ctx, existing.ItemID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(175), updated.SellPrice)
	suite.Equal("Kopi", updated.Name)
	// Stock only moves through transactions.
	suite.Equal(int64(7), capturedItem.Stock)
	suite.Equal(suite.userID, capturedItem.LastUpdatedBy)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestUpdateItem_NoFields() {
	ctx := context.Background()
	existing := &domain.Item{ItemID: uuid.NewString(), Name: "Kopi"}

	suite.mockItemRepo.On("FindItemByID", ctx, existing.ItemID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateItem(ctx, existing.ItemID, dto.UpdateItemRequest{}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Kopi", updated.Name)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "UpdateItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestUpdateItem_NegativeSellPrice() {
	ctx := context.Background()
	existing := &domain.Item{ItemID: uuid.NewString(), Name: "Kopi"}
	req := dto.UpdateItemRequest{SellPrice: int64Ptr(-10)}

	suite.mockItemRepo.On("FindItemByID", ctx, existing.ItemID).Return(existing, nil).Once()

	_, err := suite.service.UpdateItem(ctx, existing.ItemID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "UpdateItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestUpdateItem_Rename() {
	ctx := context.Background()
	existing := &domain.Item{ItemID: uuid.NewString(), Name: "Kopi"}
	req := dto.UpdateItemRequest{Name: strPtr("Kopi Hitam")}

	suite.mockItemRepo.On("FindItemByID", ctx, existing.ItemID).Return(existing, nil).Once()
	suite.mockItemRepo.On("UpdateItem", ctx, mock.AnythingOfType("domain.Item")).Return(nil).Once()

	updated, err := suite.service.UpdateItem(ctx, existing.ItemID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Kopi Hitam", updated.Name)
}

func (suite *ItemServiceTestSuite) TestGetItemByID_NotFound() {
	ctx := context.Background()
	itemID := uuid.NewString()
	suite.mockItemRepo.On("FindItemByID", ctx, itemID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetItemByID(ctx, itemID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ItemServiceTestSuite) TestListItems_PassesFilter() {
	ctx := context.Background()
	suite.mockItemRepo.On("ListItems", ctx, "kopi", 20, 0).Return([]domain.Item{{Name: "Kopi"}}, nil).Once()

	items, err := suite.service.ListItems(ctx, dto.ListItemsParams{Name: "kopi", Page: 1, Limit: 20})

	suite.Require().NoError(err)
	suite.Len(items, 1)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestDeleteItem_NotFound() {
	ctx := context.Background()
	itemID := uuid.NewString()
	suite.mockItemRepo.On("DeleteItem", ctx, itemID).Return(apperrors.NewNotFoundError("item not found")).Once()

	err := suite.service.DeleteItem(ctx, itemID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ItemServiceTestSuite) TestDeleteItem_ReferencedByHistory() {
	ctx := context.Background()
	itemID := uuid.NewString()
	suite.mockItemRepo.On("DeleteItem", ctx, itemID).
		Return(fmt.Errorf("%w: item %s is referenced by transaction history", apperrors.ErrConflict, itemID)).Once()

	err := suite.service.DeleteItem(ctx, itemID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- Run Test Suite ---
func TestItemService(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}
