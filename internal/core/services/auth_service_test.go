package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/adiwira-dev/stockledger/internal/apperrors"
	"github.com/adiwira-dev/stockledger/internal/core/domain"
	portssvc "github.com/adiwira-dev/stockledger/internal/core/ports/services"
	"github.com/adiwira-dev/stockledger/internal/core/services"
	"github.com/adiwira-dev/stockledger/internal/dto"
	"github.com/adiwira-dev/stockledger/internal/platform/config"
	"github.com/adiwira-dev/stockledger/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

// Ensure MockUserService implements portssvc.UserSvcFacade
var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite Setup ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockUserSvc *MockUserService
	cfg         *config.Config
	service     portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserSvc = new(MockUserService)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "stockledger-test",
	}
	suite.service = services.NewAuthService(suite.cfg, suite.mockUserSvc)
}

// --- Test Cases ---

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Username: "admin", Name: "Admin", Role: domain.RoleAdmin}
	suite.mockUserSvc.On("Authenticate", ctx, "admin", "supersecret").Return(user, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Username: "admin", Password: "supersecret"})

	suite.Require().NoError(err)
	suite.Require().NotEmpty(resp.Token)
	suite.Equal(user.UserID, resp.User.UserID)

	claims, err := utils.ParseAndValidateJWT(resp.Token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal(string(domain.RoleAdmin), claims.Role)
	suite.Equal(suite.cfg.JWTIssuer, claims.Issuer)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_BadCredentials() {
	ctx := context.Background()
	suite.mockUserSvc.On("Authenticate", ctx, "admin", "wrong").Return(nil, apperrors.ErrUnauthorized).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{Username: "admin", Password: "wrong"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_TokenRejectedByOtherSecret() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Username: "admin", Role: domain.RoleAdmin}
	suite.mockUserSvc.On("Authenticate", ctx, "admin", "supersecret").Return(user, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Username: "admin", Password: "supersecret"})
	suite.Require().NoError(err)

	_, err = utils.ParseAndValidateJWT(resp.Token, "a-different-secret")
	suite.Require().Error(err)
}

// --- Run Test Suite ---
func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
