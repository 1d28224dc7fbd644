package usecase

import (
	"github.com/radityabs/rutevis/internal/pkg/models"
	"github.com/radityabs/rutevis/services/planner"
)

type PlannerUC struct {
	repo planner.PlannerRepo
	gw   planner.PlannerGW
	cfg  *models.Config
}

// NewPlannerUC creates a new planner usecase instance
func NewPlannerUC(
	repo planner.PlannerRepo,
	gw planner.PlannerGW,
	cfg *models.Config,
) *PlannerUC {
	return &PlannerUC{
		repo: repo,
		gw:   gw,
		cfg:  cfg,
	}
}
