package postgres

import (
	"database/sql"

	"surveybot/internal/domain"

	"github.com/google/uuid"
)

// ResponseRepo implements repository.ResponseRepository
type ResponseRepo struct {
	db    *sql.DB
	newID func() uuid.UUID
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *sql.DB) *ResponseRepo {
	return &ResponseRepo{db: db, newID: uuid.New}
}

// SaveResponse stores a record. created_at is assigned by the database.
func (r *ResponseRepo) SaveResponse(record domain.SurveyRecord) error {
	query := `
		INSERT INTO responses (id, city, age, work_hours, has_card, gender, name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(query,
		r.newID().String(),
		record.City,
		record.Age,
		record.WorkHours,
		record.HasCard,
		record.Gender,
		record.Name,
	)
	return err
}

// ListResponses returns all responses, newest first
func (r *ResponseRepo) ListResponses() ([]domain.Response, error) {
	query := `
		SELECT city, age, work_hours, has_card, gender, name, created_at
		FROM responses
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := []domain.Response{}
	for rows.Next() {
		var resp domain.Response
		var createdAt sql.NullTime
		if err := rows.Scan(
			&resp.City, &resp.Age, &resp.WorkHours, &resp.HasCard, &resp.Gender, &resp.Name, &createdAt,
		); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			resp.CreatedAt = &createdAt.Time
		}
		responses = append(responses, resp)
	}

	return responses, rows.Err()
}
