package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/radityabs/rutevis/internal/pkg/jwt"
	"github.com/radityabs/rutevis/internal/pkg/models"
	httpHandler "github.com/radityabs/rutevis/services/planner/handler/http"
	"github.com/radityabs/rutevis/services/planner/mocks"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) (*echo.Echo, *mocks.MockPlannerUC, *models.Config) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockPlannerUC(ctrl)
	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "rutevis",
		},
	}

	h := NewHandler(
		httpHandler.NewAuthHandler(mockUC),
		httpHandler.NewPointHandler(mockUC),
		httpHandler.NewVehicleHandler(mockUC),
		httpHandler.NewOptimizationHandler(mockUC),
		httpHandler.NewExportHandler(mockUC),
		httpHandler.NewProxyHandler(models.NextmvConfig{BaseURL: "http://127.0.0.1:1"}),
		cfg,
	)

	e := echo.New()
	h.RegisterRoutes(e)

	return e, mockUC, cfg
}

func TestRegisterRoutes_ReadEndpointsAreOpen(t *testing.T) {
	e, mockUC, _ := newTestRouter(t)

	testCases := []struct {
		name      string
		path      string
		mockSetup func()
	}{
		{
			name: "List Points",
			path: "/points",
			mockSetup: func() {
				mockUC.EXPECT().ListPoints(gomock.Any()).Return([]models.PickupPoint{}, nil)
			},
		},
		{
			name: "List Vehicles",
			path: "/vehicles",
			mockSetup: func() {
				mockUC.EXPECT().ListVehicles(gomock.Any()).Return([]models.Vehicle{}, nil)
			},
		},
		{
			name: "List Optimizations",
			path: "/optimizations",
			mockSetup: func() {
				mockUC.EXPECT().ListOptimizations(gomock.Any()).Return([]models.Optimization{}, nil)
			},
		},
		{
			name: "Map View",
			path: "/optimizations/abc/map",
			mockSetup: func() {
				mockUC.EXPECT().BuildMapView(gomock.Any(), "abc", false).Return(&models.MapView{}, nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			// no Authorization header on purpose
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRegisterRoutes_MutationsRequireToken(t *testing.T) {
	e, _, _ := newTestRouter(t)

	testCases := []struct {
		name   string
		method string
		path   string
	}{
		{name: "Create Point", method: http.MethodPost, path: "/points"},
		{name: "Update Point", method: http.MethodPut, path: "/points/abc"},
		{name: "Delete Vehicle", method: http.MethodDelete, path: "/vehicles/abc"},
		{name: "Run Optimization", method: http.MethodPost, path: "/optimizations"},
		{name: "Proxy", method: http.MethodGet, path: "/proxy/nextmv/v1/applications"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRegisterRoutes_MutationWithValidToken(t *testing.T) {
	e, mockUC, cfg := newTestRouter(t)

	token, _, err := jwtpkg.GenerateToken("operator@rutevis.id", "operator", cfg)
	assert.NoError(t, err)

	mockUC.EXPECT().CreatePoint(gomock.Any(), gomock.Any()).Return(nil)

	body := `{"name":"Halte Tosari","latitude":-6.21,"longitude":106.83}`
	req := httptest.NewRequest(http.MethodPost, "/points", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
