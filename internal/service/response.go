package service

import (
	"errors"
	"fmt"

	"surveybot/internal/domain"
	"surveybot/internal/repository"
)

// ErrInvalidRecord is returned when a submitted record fails validation
var ErrInvalidRecord = errors.New("invalid survey record")

// ResponseService stores and lists survey responses on the backend
type ResponseService struct {
	repo repository.ResponseRepository
}

// NewResponseService creates a new response service
func NewResponseService(repo repository.ResponseRepository) *ResponseService {
	return &ResponseService{repo: repo}
}

// SaveResponse validates and stores a record
func (s *ResponseService) SaveResponse(record domain.SurveyRecord) error {
	if err := ValidateRecord(record); err != nil {
		return err
	}
	return s.repo.SaveResponse(record)
}

// ListResponses returns all stored responses, newest first
func (s *ResponseService) ListResponses() ([]domain.Response, error) {
	responses, err := s.repo.ListResponses()
	if err != nil {
		return nil, err
	}
	if responses == nil {
		responses = []domain.Response{}
	}
	return responses, nil
}

// ValidateRecord checks that every question is answered and choice answers are known
func ValidateRecord(record domain.SurveyRecord) error {
	if field, missing := record.Missing(); missing {
		return fmt.Errorf("%w: %s is required", ErrInvalidRecord, field)
	}

	switch record.HasCard {
	case domain.HasCardYes, domain.HasCardNo:
	default:
		return fmt.Errorf("%w: hasCard must be yes or no", ErrInvalidRecord)
	}

	switch record.Gender {
	case domain.GenderMale, domain.GenderFemale:
	default:
		return fmt.Errorf("%w: gender must be male or female", ErrInvalidRecord)
	}

	return nil
}
