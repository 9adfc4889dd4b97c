package mocks_test

import (
	"github.com/piresc/boleias/services/rides"
	"github.com/piresc/boleias/services/rides/mocks"
	matchUsecase "github.com/piresc/boleias/services/match/usecase"
)

var (
	_ rides.RidesRepo = (*mocks.MockRidesRepo)(nil)
	_ rides.RidesUC   = (*mocks.MockRidesUC)(nil)
	_ rides.RidesGW   = (*mocks.MockRidesGW)(nil)
	_ rides.MatchOps  = (*mocks.MockMatchOps)(nil)
	_ rides.MatchOps  = (*matchUsecase.MatchUC)(nil)
)
