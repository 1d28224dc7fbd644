package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/radityabs/rutevis/internal/pkg/models"
	"github.com/radityabs/rutevis/services/planner/mocks"
	"github.com/stretchr/testify/assert"
)

func TestLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPlannerUC(ctrl)
	handler := NewAuthHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email": "operator@rutevis.id", "password": "rahasia"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.LoginRequest) (*models.AuthResponse, error) {
			assert.Equal(t, "operator@rutevis.id", req.Email)
			return &models.AuthResponse{Token: "jwt-token", ExpiresAt: 1700000000}, nil
		})

	// Act
	err := handler.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token", data["token"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPlannerUC(ctrl)
	handler := NewAuthHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email": "operator@rutevis.id", "password": "salah"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("invalid credentials"))

	err := handler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
