package service

import (
	"context"
	"errors"
	"fmt"

	"surveybot/internal/domain"

	"go.uber.org/zap"
)

// ErrIncompleteRecord is returned when a record has an unanswered question
var ErrIncompleteRecord = errors.New("survey record is incomplete")

// Submitter sends a completed record to the submission endpoint
type Submitter interface {
	Submit(ctx context.Context, record domain.SurveyRecord) error
}

// SurveyService handles survey submission
type SurveyService struct {
	submitter Submitter
	logger    *zap.Logger
}

// NewSurveyService creates a new survey service
func NewSurveyService(submitter Submitter, logger *zap.Logger) *SurveyService {
	return &SurveyService{
		submitter: submitter,
		logger:    logger,
	}
}

// Submit sends the record once. Failures are not retried.
func (s *SurveyService) Submit(ctx context.Context, userID int64, record domain.SurveyRecord) error {
	if field, missing := record.Missing(); missing {
		s.logger.Warn("Refusing to submit incomplete survey",
			zap.Int64("user_id", userID),
			zap.String("field", string(field)),
		)
		return fmt.Errorf("%w: %s", ErrIncompleteRecord, field)
	}

	if err := s.submitter.Submit(ctx, record); err != nil {
		s.logger.Error("Failed to submit survey",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("Survey submitted", zap.Int64("user_id", userID))
	return nil
}
