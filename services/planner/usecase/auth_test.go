package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/radityabs/rutevis/internal/pkg/models"
	"github.com/radityabs/rutevis/services/planner/mocks"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func authConfig(t *testing.T, password string) *models.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &models.Config{
		Auth: models.AuthConfig{
			OperatorEmail: "operator@rutevis.id",
			PasswordHash:  string(hash),
		},
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "rutevis",
		},
	}
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	uc := NewPlannerUC(mockRepo, mockGW, authConfig(t, "rahasia"))

	// Act
	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "Operator@Rutevis.ID",
		Password: "rahasia",
	})

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	uc := NewPlannerUC(mockRepo, mockGW, authConfig(t, "rahasia"))

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "operator@rutevis.id",
		Password: "salah",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	uc := NewPlannerUC(mockRepo, mockGW, authConfig(t, "rahasia"))

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "intruder@rutevis.id",
		Password: "rahasia",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestLogin_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	uc := NewPlannerUC(mockRepo, mockGW, authConfig(t, "rahasia"))

	resp, err := uc.Login(context.Background(), &models.LoginRequest{})

	assert.Error(t, err)
	assert.Nil(t, resp)
}
