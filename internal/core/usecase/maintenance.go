package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

type SeedDatabaseUseCase struct {
	uow port.UnitOfWorkPort
}

func NewSeedDatabaseUseCase(uow port.UnitOfWorkPort) *SeedDatabaseUseCase {
	return &SeedDatabaseUseCase{uow: uow}
}

// Execute очищает базу и наполняет ее случайными данными в одной транзакции.
func (uc *SeedDatabaseUseCase) Execute(ctx context.Context, opts domain.SeedOptions) (*domain.SeedStats, error) {
	if opts.RandSeed == 0 {
		opts.RandSeed = time.Now().UnixNano()
	}
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "SeedDatabase",
		"rand_seed": opts.RandSeed,
	})

	ucLogger.Info("Use case started", port.Fields{
		"companies": opts.Companies,
		"realtors":  opts.Realtors,
		"buyers":    opts.Buyers,
		"listings":  opts.Listings,
	})

	fixtures, err := generateFixtures(opts, rand.New(rand.NewSource(opts.RandSeed)))
	if err != nil {
		return nil, err
	}

	stats, err := loadInTransaction(ctx, uc.uow, ucLogger, fixtures)
	if err != nil {
		ucLogger.Error("Seeding failed, transaction rolled back", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", seedStatsFields(stats))
	return stats, nil
}

type LoadFixturesUseCase struct {
	uow port.UnitOfWorkPort
}

func NewLoadFixturesUseCase(uow port.UnitOfWorkPort) *LoadFixturesUseCase {
	return &LoadFixturesUseCase{uow: uow}
}

// Execute загружает детерминированный набор данных. Неизвестная ссылка по имени откатывает все.
func (uc *LoadFixturesUseCase) Execute(ctx context.Context, fixtures domain.Fixtures) (*domain.SeedStats, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "LoadFixtures"})

	ucLogger.Info("Use case started", port.Fields{
		"users":    len(fixtures.Users),
		"listings": len(fixtures.Listings),
	})
	stats, err := loadInTransaction(ctx, uc.uow, ucLogger, fixtures)
	if err != nil {
		ucLogger.Error("Loading fixtures failed, transaction rolled back", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", seedStatsFields(stats))
	return stats, nil
}

func loadInTransaction(ctx context.Context, uow port.UnitOfWorkPort, logger port.LoggerPort, fixtures domain.Fixtures) (*domain.SeedStats, error) {
	var stats *domain.SeedStats
	err := uow.WithinTransaction(ctx, func(ctx context.Context, repos port.Repositories) error {
		var err error
		stats, err = newFixtureLoader(repos, logger).load(ctx, fixtures)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func seedStatsFields(s *domain.SeedStats) port.Fields {
	return port.Fields{
		"companies": s.Companies,
		"realtors":  s.Realtors,
		"buyers":    s.Buyers,
		"listings":  s.Listings,
		"images":    s.Images,
		"features":  s.Features,
	}
}

type TruncateDatabaseUseCase struct {
	maintenance port.MaintenancePort
}

func NewTruncateDatabaseUseCase(maintenance port.MaintenancePort) *TruncateDatabaseUseCase {
	return &TruncateDatabaseUseCase{maintenance: maintenance}
}

func (uc *TruncateDatabaseUseCase) Execute(ctx context.Context) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "TruncateDatabase"})

	if err := uc.maintenance.TruncateAll(ctx); err != nil {
		ucLogger.Error("Failed to truncate tables", err, nil)
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	ucLogger.Info("All tables truncated", nil)
	return nil
}

type MigrateDatabaseUseCase struct {
	migrator port.MigratorPort
}

func NewMigrateDatabaseUseCase(migrator port.MigratorPort) *MigrateDatabaseUseCase {
	return &MigrateDatabaseUseCase{migrator: migrator}
}

func (uc *MigrateDatabaseUseCase) Execute(ctx context.Context) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "MigrateDatabase"})

	ucLogger.Info("Use case started", nil)
	if err := uc.migrator.Migrate(ctx); err != nil {
		ucLogger.Error("Failed to apply schema", err, nil)
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
