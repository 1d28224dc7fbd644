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

func testRoutes(optID uuid.UUID, vehicleID, pointID string) []models.Route {
	return []models.Route{
		{
			ID:              uuid.New(),
			OptimizationID:  optID,
			VehicleID:       vehicleID,
			Name:            "Bus 01",
			DistanceMeters:  12500,
			DurationSeconds: 1800,
			Stops: []models.Stop{
				{Seq: 0, ExternalID: vehicleID + "-start", Longitude: 106.80, Latitude: -6.17},
				{Seq: 1, ExternalID: pointID + "__person_42", Longitude: 106.8227, Latitude: -6.2008},
				{Seq: 2, ExternalID: pointID + "-b", Longitude: 106.83, Latitude: -6.21},
				{Seq: 3, ExternalID: vehicleID + "-end", Longitude: 106.80, Latitude: -6.17},
			},
		},
	}
}

func TestBuildMapView_StraightGeometry(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	uc := NewPlannerUC(mockRepo, mockGW, &models.Config{})

	optID := uuid.New()
	vehicleID := uuid.New().String()
	pointID := uuid.New().String()

	mockRepo.EXPECT().
		GetOptimization(gomock.Any(), optID).
		Return(&models.Optimization{ID: optID, Status: models.OptimizationSucceeded}, nil)
	mockRepo.EXPECT().
		GetRoutes(gomock.Any(), optID).
		Return(testRoutes(optID, vehicleID, pointID), nil)

	// Act
	view, err := uc.BuildMapView(context.Background(), optID.String(), false)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, view.Routes, 1)

	rv := view.Routes[0]
	assert.Equal(t, 12.5, rv.DistanceKm)
	assert.Equal(t, 30.0, rv.DurationMinutes)
	assert.Equal(t, models.GeometryStraight, rv.GeometrySource)
	assert.Len(t, rv.Geometry, 4)

	// sentinels stripped, order restarts at 1, person ids decoded
	assert.Len(t, rv.Stops, 2)
	assert.Equal(t, 1, rv.Stops[0].Order)
	assert.Equal(t, pointID, rv.Stops[0].PointID)
	assert.Equal(t, []string{"42"}, rv.Stops[0].PersonIDs)
	assert.Equal(t, 2, rv.Stops[1].Order)
	assert.Empty(t, rv.Stops[1].PersonIDs)
}

func TestBuildMapView_DuplicateVehicleRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	uc := NewPlannerUC(mockRepo, mockGW, &models.Config{})

	optID := uuid.New()
	vehicleID := uuid.New().String()
	pointID := uuid.New().String()

	routes := testRoutes(optID, vehicleID, pointID)
	duplicate := routes[0]
	duplicate.Name = "Bus 01 duplicate"
	routes = append(routes, duplicate)

	mockRepo.EXPECT().
		GetOptimization(gomock.Any(), optID).
		Return(&models.Optimization{ID: optID}, nil)
	mockRepo.EXPECT().
		GetRoutes(gomock.Any(), optID).
		Return(routes, nil)

	view, err := uc.BuildMapView(context.Background(), optID.String(), false)

	assert.NoError(t, err)
	// only the first route per vehicle survives
	assert.Len(t, view.Routes, 1)
	assert.Equal(t, "Bus 01", view.Routes[0].Name)
}

func TestBuildMapView_RoadGeometryCacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	cfg := &models.Config{Mapbox: models.MapboxConfig{Profile: "driving"}}
	uc := NewPlannerUC(mockRepo, mockGW, cfg)

	optID := uuid.New()
	vehicleID := uuid.New().String()
	pointID := uuid.New().String()

	mockRepo.EXPECT().
		GetOptimization(gomock.Any(), optID).
		Return(&models.Optimization{ID: optID}, nil)
	mockRepo.EXPECT().
		GetRoutes(gomock.Any(), optID).
		Return(testRoutes(optID, vehicleID, pointID), nil)

	roadGeometry := [][]float64{
		{106.80, -6.17}, {106.81, -6.18}, {106.8227, -6.2008}, {106.83, -6.21}, {106.80, -6.17},
	}
	mockRepo.EXPECT().
		GetCachedDirections(gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockGW.EXPECT().
		GetDirections(gomock.Any(), gomock.Any()).
		Return(&models.DirectionsResult{Geometry: roadGeometry, DistanceMeters: 13000}, nil)
	mockRepo.EXPECT().
		CacheDirections(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	view, err := uc.BuildMapView(context.Background(), optID.String(), true)

	assert.NoError(t, err)
	assert.Equal(t, models.GeometryRoad, view.Routes[0].GeometrySource)
	assert.Equal(t, roadGeometry, view.Routes[0].Geometry)
}

func TestBuildMapView_RoadGeometryCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	cfg := &models.Config{Mapbox: models.MapboxConfig{Profile: "driving"}}
	uc := NewPlannerUC(mockRepo, mockGW, cfg)

	optID := uuid.New()
	vehicleID := uuid.New().String()
	pointID := uuid.New().String()

	mockRepo.EXPECT().
		GetOptimization(gomock.Any(), optID).
		Return(&models.Optimization{ID: optID}, nil)
	mockRepo.EXPECT().
		GetRoutes(gomock.Any(), optID).
		Return(testRoutes(optID, vehicleID, pointID), nil)

	cached := &models.DirectionsResult{Geometry: [][]float64{{106.80, -6.17}, {106.83, -6.21}}}
	mockRepo.EXPECT().
		GetCachedDirections(gomock.Any(), gomock.Any()).
		Return(cached, nil)
	// no GetDirections call, no CacheDirections call

	view, err := uc.BuildMapView(context.Background(), optID.String(), true)

	assert.NoError(t, err)
	assert.Equal(t, models.GeometryRoad, view.Routes[0].GeometrySource)
	assert.Equal(t, cached.Geometry, view.Routes[0].Geometry)
}

func TestBuildMapView_RoadGeometryFallsBackToStraight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	cfg := &models.Config{Mapbox: models.MapboxConfig{Profile: "driving"}}
	uc := NewPlannerUC(mockRepo, mockGW, cfg)

	optID := uuid.New()
	vehicleID := uuid.New().String()
	pointID := uuid.New().String()

	mockRepo.EXPECT().
		GetOptimization(gomock.Any(), optID).
		Return(&models.Optimization{ID: optID}, nil)
	mockRepo.EXPECT().
		GetRoutes(gomock.Any(), optID).
		Return(testRoutes(optID, vehicleID, pointID), nil)

	mockRepo.EXPECT().
		GetCachedDirections(gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockGW.EXPECT().
		GetDirections(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("rate limited"))

	view, err := uc.BuildMapView(context.Background(), optID.String(), true)

	// a directions failure degrades the view, never errors it
	assert.NoError(t, err)
	assert.Equal(t, models.GeometryStraight, view.Routes[0].GeometrySource)
	assert.Len(t, view.Routes[0].Geometry, 4)
}

func TestParseStopID(t *testing.T) {
	pointID, persons := parseStopID("P1__person_42__person_43")
	assert.Equal(t, "P1", pointID)
	assert.Equal(t, []string{"42", "43"}, persons)

	pointID, persons = parseStopID("P1")
	assert.Equal(t, "P1", pointID)
	assert.Nil(t, persons)
}
