package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// schemaStatements - итоговая схема. Порядок важен: таблица создается после тех, на которые ссылается.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS addresses (
		id BIGSERIAL PRIMARY KEY,
		street VARCHAR(255) NOT NULL,
		city VARCHAR(255) NOT NULL,
		postcode VARCHAR(20) NOT NULL,
		country VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL UNIQUE,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS realtor_companies (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		address_id BIGINT REFERENCES addresses(id) ON DELETE SET NULL,
		phone VARCHAR(50),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		first_name VARCHAR(255) NOT NULL,
		surname VARCHAR(255) NOT NULL,
		mail VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		phone_number VARCHAR(50),
		birthdate DATE,
		role_id BIGINT NOT NULL REFERENCES roles(id),
		address_id BIGINT REFERENCES addresses(id) ON DELETE SET NULL,
		company_id BIGINT REFERENCES realtor_companies(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS realtor_agent (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		license_number VARCHAR(50) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS property_types (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS status (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS listings (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL,
		living_area NUMERIC(8,2),
		lot_size NUMERIC(10,2),
		room_count INT,
		year_built INT,
		floor_number INT,
		energy_class VARCHAR(10),
		renovation_year INT,
		address_id BIGINT NOT NULL REFERENCES addresses(id),
		property_type_id BIGINT NOT NULL REFERENCES property_types(id),
		realtor_id BIGINT NOT NULL REFERENCES users(id),
		status_id BIGINT NOT NULL REFERENCES status(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS features (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS listing_features (
		listing_id BIGINT NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
		feature_id BIGINT NOT NULL REFERENCES features(id) ON DELETE CASCADE,
		PRIMARY KEY (listing_id, feature_id)
	)`,
	`CREATE TABLE IF NOT EXISTS listing_images (
		id BIGSERIAL PRIMARY KEY,
		listing_id BIGINT NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
		caption VARCHAR(255),
		url TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS user_images (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		caption VARCHAR(255),
		url TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS favorite (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		listing_id BIGINT NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, listing_id)
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id BIGSERIAL PRIMARY KEY,
		sender_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		receiver_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		listing_id BIGINT NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
		content TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_listing_created ON messages (listing_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_sender ON messages (sender_id)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_receiver ON messages (receiver_id)`,
	`CREATE INDEX IF NOT EXISTS idx_listing_images_listing ON listing_images (listing_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_user_images_user ON user_images (user_id, created_at)`,
}

// truncateStatement очищает все таблицы и сбрасывает последовательности id.
const truncateStatement = `TRUNCATE TABLE
	messages, favorite, user_images, listing_images, listing_features, features,
	listings, status, property_types, realtor_agent, users, realtor_companies, roles, addresses
	RESTART IDENTITY CASCADE`

// Migrator создает схему. Повторный запуск ничего не меняет.
type Migrator struct {
	db DBTX
}

func NewMigrator(db DBTX) (*Migrator, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	return &Migrator{db: db}, nil
}

func (m *Migrator) Migrate(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx)
	migLogger := logger.WithFields(port.Fields{
		"component": "Migrator",
		"method":    "Migrate",
	})

	migLogger.Info("Applying database schema.", port.Fields{"statements": len(schemaStatements)})
	for i, stmt := range schemaStatements {
		if _, err := m.db.Exec(ctx, stmt); err != nil {
			// Объект уже существует - схема уже применена ранее.
			if isPgCode(err, pgDuplicateObject, pgDuplicateTable) {
				migLogger.Debug("Schema object already exists, skipping.", port.Fields{"statement_index": i})
				continue
			}
			migLogger.Error("Failed to apply schema statement", err, port.Fields{"statement_index": i})
			return fmt.Errorf("failed to apply schema statement %d: %w", i, err)
		}
	}

	migLogger.Info("Database schema is up to date.", nil)
	return nil
}

// MaintenanceRepository реализует port.MaintenancePort.
type MaintenanceRepository struct {
	db DBTX
}

func NewMaintenanceRepository(db DBTX) (*MaintenanceRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	return &MaintenanceRepository{db: db}, nil
}

func (r *MaintenanceRepository) TruncateAll(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "MaintenanceRepository",
		"method":    "TruncateAll",
	})

	repoLogger.Warn("Truncating all tables.", nil)
	if _, err := r.db.Exec(ctx, truncateStatement); err != nil {
		repoLogger.Error("Failed to truncate tables", err, nil)
		return dbError("failed to truncate tables", err)
	}
	return nil
}
