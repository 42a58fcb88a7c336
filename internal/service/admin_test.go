package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"surveybot/internal/domain"
	"surveybot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminService_Login(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		mockError     error
		expectedError bool
	}{
		{name: "accepted", password: "secret", mockError: nil},
		{name: "rejected", password: "wrong", mockError: errors.New("authenticate: unexpected status 401"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGateway := new(testutil.MockAdminGateway)
			mockGateway.On("Authenticate", mock.Anything, tt.password).Return(tt.mockError)

			service := NewAdminService(mockGateway, testutil.NewTestLogger())

			err := service.Login(context.Background(), 123, tt.password)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockGateway.AssertExpectations(t)
		})
	}
}

func TestAdminService_Responses(t *testing.T) {
	responses := []domain.Response{
		testutil.NewTestResponse(testutil.NewTestRecord(), time.Now()),
	}

	mockGateway := new(testutil.MockAdminGateway)
	mockGateway.On("ListResponses", mock.Anything, "secret").Return(responses, nil)

	service := NewAdminService(mockGateway, testutil.NewTestLogger())

	result, err := service.Responses(context.Background(), 123, "secret")

	assert.NoError(t, err)
	assert.Equal(t, responses, result)
	mockGateway.AssertExpectations(t)
}

func TestAdminService_ResponsesError(t *testing.T) {
	mockGateway := new(testutil.MockAdminGateway)
	mockGateway.On("ListResponses", mock.Anything, "secret").Return(nil, errors.New("list: unexpected status 502"))

	service := NewAdminService(mockGateway, testutil.NewTestLogger())

	result, err := service.Responses(context.Background(), 123, "secret")

	assert.Error(t, err)
	assert.Nil(t, result)
	mockGateway.AssertExpectations(t)
}
