package services

import (
	"context"

	portssvc "github.com/adiwira-dev/stockledger/internal/core/ports/services"
	"github.com/adiwira-dev/stockledger/internal/dto"
	"github.com/adiwira-dev/stockledger/internal/platform/config"
	"github.com/adiwira-dev/stockledger/internal/utils"
)

// authService issues access tokens for verified credentials. It needs the
// application configuration for the signing secret and expiry.
type authService struct {
	BaseService
	cfg     *config.Config
	userSvc portssvc.UserSvcFacade
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userSvc: userSvc}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials and returns a signed access token carrying the
// user's role claim.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userSvc.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}
