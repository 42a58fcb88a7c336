package service

import (
	"context"

	"surveybot/internal/domain"

	"go.uber.org/zap"
)

// AdminGateway authenticates the admin and lists responses
type AdminGateway interface {
	Authenticate(ctx context.Context, password string) error
	ListResponses(ctx context.Context, password string) ([]domain.Response, error)
}

// AdminService handles the admin viewer's remote calls
type AdminService struct {
	gateway AdminGateway
	logger  *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(gateway AdminGateway, logger *zap.Logger) *AdminService {
	return &AdminService{
		gateway: gateway,
		logger:  logger,
	}
}

// Login checks the password against the authentication endpoint
func (s *AdminService) Login(ctx context.Context, userID int64, password string) error {
	if err := s.gateway.Authenticate(ctx, password); err != nil {
		s.logger.Warn("Admin authentication failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("Admin authenticated", zap.Int64("user_id", userID))
	return nil
}

// Responses fetches the response list, forwarding the password
func (s *AdminService) Responses(ctx context.Context, userID int64, password string) ([]domain.Response, error) {
	responses, err := s.gateway.ListResponses(ctx, password)
	if err != nil {
		s.logger.Error("Failed to list responses",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}
	return responses, nil
}
