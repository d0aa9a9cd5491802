package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"

	logger_adapter "github.com/UA-classroom/db-l2-mo-hemnet/internal/adapters/logger"
	postgres_adapter "github.com/UA-classroom/db-l2-mo-hemnet/internal/adapters/postgres"
	rabbitmq_adapter "github.com/UA-classroom/db-l2-mo-hemnet/internal/adapters/rabbitmq"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/adapters/rest"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/configs"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/constants"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/usecase"
	fluentlogger "github.com/UA-classroom/db-l2-mo-hemnet/pkg/fluent_logger"
	"github.com/UA-classroom/db-l2-mo-hemnet/pkg/rabbitmq/rabbitmq_common"
	"github.com/UA-classroom/db-l2-mo-hemnet/pkg/rabbitmq/rabbitmq_producer"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	config    *configs.AppConfig
	db        *postgres_adapter.DB
	apiServer *rest.Server

	rabbitConn     *rabbitmq_common.ConnectionManager
	rabbitProducer *rabbitmq_producer.Publisher

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewLogger собирает stdout логгер и, если включен, Fluent Bit.
// Возвращенный fluent-клиент (может быть nil) закрывает вызывающий.
func NewLogger(cfg *configs.AppConfig) (port.LoggerPort, *fluent.Fluent, error) {
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    logger_adapter.ParseLogLevel(cfg.StdoutLogger.Level),
		IsJSON:   cfg.StdoutLogger.IsJSON,
		UseColor: !cfg.StdoutLogger.IsJSON,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if cfg.FluentBit.Enabled {
		var err error
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      cfg.FluentBit.Host,
			Port:      cfg.FluentBit.Port,
			TagPrefix: cfg.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, logger_adapter.ParseLogLevel(cfg.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		if fluentClient != nil {
			fluentClient.Close()
		}
		return nil, nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": cfg.AppName})
	baseLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": cfg.FluentBit.Enabled,
	})
	return baseLogger, fluentClient, nil
}

// OpenDatabase открывает пул с таймаутами из конфигурации.
func OpenDatabase(ctx context.Context, cfg *configs.AppConfig) (*postgres_adapter.DB, error) {
	return postgres_adapter.NewClient(ctx, postgres_adapter.Config{
		DatabaseURL:      cfg.Database.URL,
		MaxConns:         cfg.Database.MaxConns,
		ConnectTimeout:   cfg.Database.ConnectTimeout,
		AcquireTimeout:   cfg.Database.AcquireTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	})
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ЛОГГЕРЫ ---
	baseLogger, fluentClient, err := NewLogger(appConfig)
	if err != nil {
		return nil, err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})

	app := &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	// --- 2. ХРАНИЛИЩЕ ---
	app.db, err = OpenDatabase(context.Background(), appConfig)
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		app.close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	repos, err := postgres_adapter.NewRepositories(app.db)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("failed to create repositories: %w", err)
	}

	// --- 3. СОБЫТИЯ ---
	publisher, err := app.newEventPublisher(baseLogger)
	if err != nil {
		appLogger.Error("Failed to initialize event publisher", err, nil)
		app.close()
		return nil, err
	}
	appLogger.Info("All persistence and messaging adapters initialized.", port.Fields{"events_enabled": appConfig.RabbitMQ.Enabled})

	// --- 4. USE CASES И ОБРАБОТЧИКИ ---
	validator := rest.NewValidator()
	handlers := rest.Handlers{
		Listings: rest.NewListingsHandler(
			usecase.NewGetListingsUseCase(repos.Listings),
			usecase.NewGetListingByIDUseCase(repos.Listings),
			usecase.NewCreateListingUseCase(repos.Listings, publisher),
			usecase.NewUpdateListingUseCase(repos.Listings, publisher),
			usecase.NewUpdateListingPriceUseCase(repos.Listings, publisher),
			usecase.NewUpdateListingStatusUseCase(repos.Listings, publisher),
			usecase.NewDeleteListingUseCase(repos.Listings, publisher),
			validator,
		),
		Users: rest.NewUsersHandler(
			usecase.NewGetUsersUseCase(repos.Users),
			usecase.NewGetUserByIDUseCase(repos.Users),
			usecase.NewCreateUserUseCase(repos.Users),
			usecase.NewUpdateUserUseCase(repos.Users),
			usecase.NewDeleteUserUseCase(repos.Users),
			usecase.NewGetRealtorAgentUseCase(repos.Users),
			usecase.NewSaveRealtorAgentUseCase(repos.Users),
			usecase.NewLoginUserUseCase(repos.Users),
			validator,
		),
		Companies: rest.NewCompaniesHandler(
			usecase.NewGetCompaniesUseCase(repos.Companies),
			usecase.NewGetCompanyByIDUseCase(repos.Companies),
			usecase.NewCreateCompanyUseCase(repos.Companies),
			usecase.NewUpdateCompanyUseCase(repos.Companies),
			usecase.NewDeleteCompanyUseCase(repos.Companies),
			validator,
		),
		Addresses: rest.NewAddressesHandler(
			usecase.NewGetAddressesUseCase(repos.Addresses),
			usecase.NewGetAddressByIDUseCase(repos.Addresses),
			usecase.NewCreateAddressUseCase(repos.Addresses),
			usecase.NewUpdateAddressUseCase(repos.Addresses),
			usecase.NewDeleteAddressUseCase(repos.Addresses),
			validator,
		),
		Features: rest.NewFeaturesHandler(
			usecase.NewGetFeaturesUseCase(repos.Features),
			usecase.NewGetFeatureByIDUseCase(repos.Features),
			usecase.NewCreateFeatureUseCase(repos.Features),
			usecase.NewUpdateFeatureUseCase(repos.Features),
			usecase.NewDeleteFeatureUseCase(repos.Features),
			usecase.NewGetListingFeaturesUseCase(repos.Listings, repos.Features),
			usecase.NewAddListingFeatureUseCase(repos.Features),
			usecase.NewRemoveListingFeatureUseCase(repos.Features),
			validator,
		),
		Dictionaries: rest.NewDictionariesHandler(
			usecase.NewGetRolesUseCase(repos.Dictionaries),
			usecase.NewGetStatusesUseCase(repos.Dictionaries),
			usecase.NewCreateStatusUseCase(repos.Dictionaries),
			usecase.NewGetPropertyTypesUseCase(repos.Dictionaries),
			usecase.NewCreatePropertyTypeUseCase(repos.Dictionaries),
			validator,
		),
		Images: rest.NewImagesHandler(
			usecase.NewGetImagesUseCase(repos.Images, repos.Listings, repos.Users),
			usecase.NewAddImageUseCase(repos.Images),
			usecase.NewDeleteImageUseCase(repos.Images),
			validator,
		),
		Favorites: rest.NewFavoritesHandler(
			usecase.NewGetUserFavoritesUseCase(repos.Favorites, repos.Users),
			usecase.NewAddToFavoritesUseCase(repos.Favorites),
			usecase.NewRemoveFromFavoritesUseCase(repos.Favorites),
			validator,
		),
		Messages: rest.NewMessagesHandler(
			usecase.NewSendMessageUseCase(repos.Messages, publisher),
			usecase.NewGetListingMessagesUseCase(repos.Messages),
			usecase.NewGetUserMessagesUseCase(repos.Messages),
			validator,
		),
	}

	app.apiServer = rest.NewServer(rest.ServerConfig{
		Port:           appConfig.Rest.PORT,
		RequestTimeout: appConfig.Rest.RequestTimeout,
		AllowedOrigins: appConfig.Rest.AllowedOrigins,
	}, handlers, app.db, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return app, nil
}

// newEventPublisher подключается к RabbitMQ, если он включен. Иначе события только логируются.
func (a *App) newEventPublisher(baseLogger port.LoggerPort) (port.EventPublisherPort, error) {
	if !a.config.RabbitMQ.Enabled {
		return rabbitmq_adapter.DisabledEventPublisher{}, nil
	}

	bridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))

	connManager, err := rabbitmq_common.NewConnectionManager(rabbitmq_common.Config{URL: a.config.RabbitMQ.URL}, bridge)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	a.rabbitConn = connManager

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		ExchangeName:             a.config.RabbitMQ.Exchange,
		ExchangeType:             constants.EventsExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   bridge,
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create RabbitMQ publisher: %w", err)
	}
	a.rabbitProducer = producer

	publisher, err := rabbitmq_adapter.NewListingEventsPublisher(producer)
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

// Run запускает сервер и ждет сигнала завершения.
func (a *App) Run() error {
	defer a.close()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
		return fmt.Errorf("http server failed: %w", err)
	}
}

// close освобождает ресурсы в обратном порядке создания.
func (a *App) close() {
	a.logger.Info("Shutdown sequence initiated...", nil)

	if a.apiServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
		}
	}

	if a.rabbitProducer != nil {
		if err := a.rabbitProducer.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ publisher", err, nil)
		}
	}
	if a.rabbitConn != nil {
		if err := a.rabbitConn.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
	}

	if a.db != nil {
		a.db.Close()
		a.logger.Info("PostgreSQL pool closed.", nil)
	}

	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent может быть уже недоступен
			fmt.Fprintf(os.Stderr, "ERROR: Error closing fluent client: %v\n", err)
		}
	}
}
