package internal

import (
	"context"
	"fmt"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/adapters/cli"
	postgres_adapter "github.com/UA-classroom/db-l2-mo-hemnet/internal/adapters/postgres"
	rabbitmq_adapter "github.com/UA-classroom/db-l2-mo-hemnet/internal/adapters/rabbitmq"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/configs"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/usecase"
)

// NewAdminServices собирает зависимости для moonhem-admin: те же конфигурация,
// логгеры и пул, что у сервиса, но без HTTP. К RabbitMQ команда events подключается сама.
func NewAdminServices(ctx context.Context) (*cli.Services, func(), error) {
	cfg, err := configs.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	baseLogger, fluentClient, err := NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger := baseLogger.WithFields(port.Fields{"component": "admin"})
	closeLogger := func() {
		if fluentClient != nil {
			fluentClient.Close()
		}
	}

	db, err := OpenDatabase(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", err, nil)
		closeLogger()
		return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	closeAll := func() {
		db.Close()
		logger.Debug("PostgreSQL pool closed.", nil)
		closeLogger()
	}

	migrator, err := postgres_adapter.NewMigrator(db)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	maintenance, err := postgres_adapter.NewMaintenanceRepository(db)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	uow, err := postgres_adapter.NewUnitOfWork(db)
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	var events cli.EventStreamer
	if cfg.RabbitMQ.Enabled {
		bridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))
		tail, err := rabbitmq_adapter.NewEventTail(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, bridge)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		events = tail
	}

	return &cli.Services{
		Migrate:      usecase.NewMigrateDatabaseUseCase(migrator),
		Seed:         usecase.NewSeedDatabaseUseCase(uow),
		LoadFixtures: usecase.NewLoadFixturesUseCase(uow),
		Truncate:     usecase.NewTruncateDatabaseUseCase(maintenance),
		Events:       events,
		Logger:       baseLogger,
	}, closeAll, nil
}
