package testutil

import (
	"time"

	"surveybot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRecord creates a fully answered record
func NewTestRecord() domain.SurveyRecord {
	return domain.SurveyRecord{
		City:      "Moscow",
		Age:       "30",
		WorkHours: "4 hours",
		HasCard:   domain.HasCardYes,
		Gender:    domain.GenderMale,
		Name:      "Ivan",
	}
}

// NewTestResponse creates a stored response with a timestamp
func NewTestResponse(record domain.SurveyRecord, createdAt time.Time) domain.Response {
	return domain.Response{
		SurveyRecord: record,
		CreatedAt:    &createdAt,
	}
}
