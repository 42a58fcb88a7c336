package repository

import (
	"surveybot/internal/domain"
)

// ResponseRepository defines survey response storage
type ResponseRepository interface {
	SaveResponse(record domain.SurveyRecord) error
	ListResponses() ([]domain.Response, error)
}
