package postgres

import (
	"errors"
	"testing"
	"time"

	"surveybot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseRepo_SaveResponse(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2")
	repo := NewResponseRepo(db)
	repo.newID = func() uuid.UUID { return id }

	record := domain.SurveyRecord{
		City: "Moscow", Age: "30", WorkHours: "4 hours",
		HasCard: "yes", Gender: "male", Name: "Ivan",
	}

	mock.ExpectExec("INSERT INTO responses").
		WithArgs(id.String(), "Moscow", "30", "4 hours", "yes", "male", "Ivan").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SaveResponse(record)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResponseRepo_SaveResponseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewResponseRepo(db)

	mock.ExpectExec("INSERT INTO responses").WillReturnError(errors.New("connection reset"))

	err = repo.SaveResponse(domain.SurveyRecord{})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResponseRepo_ListResponses(t *testing.T) {
	created := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	columns := []string{"city", "age", "work_hours", "has_card", "gender", "name", "created_at"}

	tests := []struct {
		name        string
		rows        *sqlmock.Rows
		expectedLen int
		check       func(t *testing.T, responses []domain.Response)
	}{
		{
			name: "two rows",
			rows: sqlmock.NewRows(columns).
				AddRow("Moscow", "30", "4 hours", "yes", "male", "Ivan", created).
				AddRow("Kazan", "25", "8", "no", "female", "Anna", nil),
			expectedLen: 2,
			check: func(t *testing.T, responses []domain.Response) {
				assert.Equal(t, "Ivan", responses[0].Name)
				require.NotNil(t, responses[0].CreatedAt)
				assert.True(t, created.Equal(*responses[0].CreatedAt))
				assert.Nil(t, responses[1].CreatedAt)
			},
		},
		{
			name:        "no rows",
			rows:        sqlmock.NewRows(columns),
			expectedLen: 0,
			check: func(t *testing.T, responses []domain.Response) {
				assert.NotNil(t, responses)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewResponseRepo(db)

			mock.ExpectQuery("SELECT city, age, work_hours, has_card, gender, name, created_at FROM responses").
				WillReturnRows(tt.rows)

			responses, err := repo.ListResponses()

			require.NoError(t, err)
			assert.Len(t, responses, tt.expectedLen)
			tt.check(t, responses)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestResponseRepo_ListResponsesQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewResponseRepo(db)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("relation does not exist"))

	responses, err := repo.ListResponses()

	assert.Error(t, err)
	assert.Nil(t, responses)
	assert.NoError(t, mock.ExpectationsWereMet())
}
