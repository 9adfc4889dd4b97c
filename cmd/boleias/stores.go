package main

import (
	"context"
	"fmt"

	"github.com/piresc/boleias/internal/pkg/audit"
	"github.com/piresc/boleias/internal/pkg/database"
	"github.com/piresc/boleias/internal/pkg/health"
	"github.com/piresc/boleias/internal/pkg/logger"
	"github.com/piresc/boleias/internal/pkg/memstore"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/services/match"
	matchRepository "github.com/piresc/boleias/services/match/repository"
	"github.com/piresc/boleias/services/rides"
	ridesRepository "github.com/piresc/boleias/services/rides/repository"
)

// driverMemory keeps all state in process. Data is lost on restart.
const driverMemory = "memory"

// stores bundles the entity store behind each service
type stores struct {
	match   match.MatchRepo
	rides   rides.RidesRepo
	sink    audit.Sink
	checker health.Checker
	close   func(context.Context) error
}

func openStores(ctx context.Context, cfg models.DatabaseConfig, migrate bool) (*stores, error) {
	if cfg.Driver == driverMemory {
		logger.Warn("Using in-memory store; data will not survive a restart")
		mem := memstore.New()
		return &stores{
			match:   mem,
			rides:   mem,
			sink:    mem,
			checker: health.CheckerFunc(mem.Ping),
			close:   func(context.Context) error { return nil },
		}, nil
	}

	pg, err := database.NewPostgresClient(cfg)
	if err != nil {
		return nil, err
	}
	if migrate {
		applied, err := database.Migrate(ctx, pg.GetDB())
		if err != nil {
			_ = pg.Close()
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
		logger.Info("Migrations applied", logger.Strings("versions", applied))
	}

	db := pg.GetDB()
	return &stores{
		match:   matchRepository.NewMatchRepository(db),
		rides:   ridesRepository.NewRidesRepository(db),
		sink:    audit.NewPostgresSink(db),
		checker: health.CheckerFunc(pg.Ping),
		close:   func(context.Context) error { return pg.Close() },
	}, nil
}
