package testutil

import (
	"context"

	"surveybot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSubmitter is a mock for service.Submitter
type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Submit(ctx context.Context, record domain.SurveyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockAdminGateway is a mock for service.AdminGateway
type MockAdminGateway struct {
	mock.Mock
}

func (m *MockAdminGateway) Authenticate(ctx context.Context, password string) error {
	args := m.Called(ctx, password)
	return args.Error(0)
}

func (m *MockAdminGateway) ListResponses(ctx context.Context, password string) ([]domain.Response, error) {
	args := m.Called(ctx, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Response), args.Error(1)
}

// MockResponseRepository is a mock for repository.ResponseRepository
type MockResponseRepository struct {
	mock.Mock
}

func (m *MockResponseRepository) SaveResponse(record domain.SurveyRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockResponseRepository) ListResponses() ([]domain.Response, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Response), args.Error(1)
}
