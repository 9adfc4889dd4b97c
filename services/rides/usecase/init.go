package usecase

import (
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/services/rides"
)

// RidesUC implements the rides use case interface
type RidesUC struct {
	cfg       *models.Config
	ridesRepo rides.RidesRepo
	ridesGW   rides.RidesGW
	matchOps  rides.MatchOps
}

// NewRidesUC creates a new rides use case
func NewRidesUC(
	cfg *models.Config,
	ridesRepo rides.RidesRepo,
	ridesGW rides.RidesGW,
	matchOps rides.MatchOps,
) *RidesUC {
	return &RidesUC{
		cfg:       cfg,
		ridesRepo: ridesRepo,
		ridesGW:   ridesGW,
		matchOps:  matchOps,
	}
}
