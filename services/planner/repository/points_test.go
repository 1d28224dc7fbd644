package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/radityabs/rutevis/internal/pkg/models"
)

func newMockRepo(t *testing.T) (*PlannerRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewPlannerRepo(&models.Config{}, sqlxDB, nil), mock
}

func TestCreatePoint(t *testing.T) {
	repo, mock := newMockRepo(t)

	point := &models.PickupPoint{
		Name:      "Halte Dukuh Atas",
		Address:   "Jl. Jenderal Sudirman",
		Latitude:  -6.2008,
		Longitude: 106.8227,
	}

	mock.ExpectExec("INSERT INTO pickup_points").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreatePoint(context.Background(), point)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, point.ID)
	assert.False(t, point.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPoint(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock, id uuid.UUID)
		assertFunc func(t *testing.T, point *models.PickupPoint, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				rows := sqlmock.NewRows([]string{"id", "name", "address", "latitude", "longitude"}).
					AddRow(id, "Halte Dukuh Atas", "Jl. Jenderal Sudirman", -6.2008, 106.8227)
				mock.ExpectQuery("SELECT (.+) FROM pickup_points").
					WithArgs(id).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, point *models.PickupPoint, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Halte Dukuh Atas", point.Name)
				assert.Equal(t, -6.2008, point.Latitude)
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectQuery("SELECT (.+) FROM pickup_points").
					WithArgs(id).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, point *models.PickupPoint, err error) {
				assert.Error(t, err)
				assert.Nil(t, point)
				assert.Contains(t, err.Error(), "not found")
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectQuery("SELECT (.+) FROM pickup_points").
					WithArgs(id).
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, point *models.PickupPoint, err error) {
				assert.Error(t, err)
				assert.Nil(t, point)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			id := uuid.New()
			tc.mockSetup(mock, id)

			point, err := repo.GetPoint(context.Background(), id)

			tc.assertFunc(t, point, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListPointsByGroup(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "group_tag"}).
		AddRow(uuid.New(), "Halte Dukuh Atas", "pagi").
		AddRow(uuid.New(), "Halte Tosari", "pagi")
	mock.ExpectQuery("SELECT (.+) FROM pickup_points").
		WithArgs("pagi").
		WillReturnRows(rows)

	points, err := repo.ListPointsByGroup(context.Background(), "pagi")

	assert.NoError(t, err)
	assert.Len(t, points, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePoint_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE pickup_points").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePoint(context.Background(), &models.PickupPoint{
		ID:   uuid.New(),
		Name: "Halte Dukuh Atas",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePoint(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	mock.ExpectExec("DELETE FROM pickup_points").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeletePoint(context.Background(), id)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
