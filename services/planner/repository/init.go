package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/radityabs/rutevis/internal/pkg/database"
	"github.com/radityabs/rutevis/internal/pkg/models"
)

// PlannerRepo implements the planner repository interface
type PlannerRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewPlannerRepo creates a new planner repository instance
func NewPlannerRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *PlannerRepo {
	return &PlannerRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
