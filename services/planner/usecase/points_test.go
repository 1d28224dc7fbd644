package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/radityabs/rutevis/internal/pkg/models"
	"github.com/radityabs/rutevis/services/planner/mocks"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestCreatePoint_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	uc := NewPlannerUC(mockRepo, mockGW, &models.Config{})

	point := &models.PickupPoint{
		Name:      "Halte Dukuh Atas",
		Address:   "Jl. Jenderal Sudirman",
		Latitude:  -6.2008,
		Longitude: 106.8227,
		Quantity:  intPtr(3),
	}

	mockRepo.EXPECT().
		CreatePoint(gomock.Any(), point).
		Return(nil).
		Times(1)

	// Act
	err := uc.CreatePoint(context.Background(), point)

	// Assert
	assert.NoError(t, err)
}

func TestCreatePoint_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	uc := NewPlannerUC(mockRepo, mockGW, &models.Config{})

	testCases := []struct {
		name  string
		point *models.PickupPoint
	}{
		{
			name:  "missing name",
			point: &models.PickupPoint{Latitude: -6.2, Longitude: 106.8},
		},
		{
			name:  "latitude out of range",
			point: &models.PickupPoint{Name: "A", Latitude: 91, Longitude: 106.8},
		},
		{
			name:  "longitude out of range",
			point: &models.PickupPoint{Name: "A", Latitude: -6.2, Longitude: 181},
		},
		{
			name:  "negative quantity",
			point: &models.PickupPoint{Name: "A", Latitude: -6.2, Longitude: 106.8, Quantity: intPtr(-1)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.CreatePoint(context.Background(), tc.point)
			assert.Error(t, err)
		})
	}
}

func TestGetPoint_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	uc := NewPlannerUC(mockRepo, mockGW, &models.Config{})

	point, err := uc.GetPoint(context.Background(), "not-a-uuid")

	assert.Error(t, err)
	assert.Nil(t, point)
}

func TestUpdatePoint_RequiresID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	uc := NewPlannerUC(mockRepo, mockGW, &models.Config{})

	err := uc.UpdatePoint(context.Background(), &models.PickupPoint{
		Name:      "Halte Dukuh Atas",
		Latitude:  -6.2,
		Longitude: 106.8,
	})

	assert.Error(t, err)
}

func TestDeletePoint_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	uc := NewPlannerUC(mockRepo, mockGW, &models.Config{})

	id := uuid.New()
	mockRepo.EXPECT().
		DeletePoint(gomock.Any(), id).
		Return(nil).
		Times(1)

	err := uc.DeletePoint(context.Background(), id.String())

	assert.NoError(t, err)
}

func TestCreateVehicle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	uc := NewPlannerUC(mockRepo, mockGW, &models.Config{})

	vehicle := &models.Vehicle{
		Name:           "Bus 01",
		Capacity:       40,
		MaxDistanceKm:  120,
		StartLatitude:  floatPtr(-6.175),
		StartLongitude: floatPtr(106.827),
	}

	mockRepo.EXPECT().
		CreateVehicle(gomock.Any(), vehicle).
		Return(nil).
		Times(1)

	err := uc.CreateVehicle(context.Background(), vehicle)

	assert.NoError(t, err)
}

func TestCreateVehicle_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	uc := NewPlannerUC(mockRepo, mockGW, &models.Config{})

	testCases := []struct {
		name    string
		vehicle *models.Vehicle
	}{
		{
			name:    "missing name",
			vehicle: &models.Vehicle{Capacity: 40},
		},
		{
			name:    "zero capacity",
			vehicle: &models.Vehicle{Name: "Bus 01"},
		},
		{
			name: "incomplete start location",
			vehicle: &models.Vehicle{
				Name:          "Bus 01",
				Capacity:      40,
				StartLatitude: floatPtr(-6.175),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.CreateVehicle(context.Background(), tc.vehicle)
			assert.Error(t, err)
		})
	}
}

func TestListVehicles_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	uc := NewPlannerUC(mockRepo, mockGW, &models.Config{})

	mockRepo.EXPECT().
		ListVehicles(gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(1)

	vehicles, err := uc.ListVehicles(context.Background())

	assert.Error(t, err)
	assert.Nil(t, vehicles)
}
