package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// DictionaryRepository обслуживает справочники: roles, status, property_types.
type DictionaryRepository struct {
	db DBTX
}

func NewDictionaryRepository(db DBTX) (*DictionaryRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	return &DictionaryRepository{db: db}, nil
}

func (r *DictionaryRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "DictionaryRepository",
		"method":    "ListRoles",
	})

	query := `SELECT id, name, description FROM roles ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query roles", err, port.Fields{"query": query})
		return nil, dbError("failed to query roles", err)
	}
	defer rows.Close()

	roles := make([]domain.Role, 0)
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description); err != nil {
			repoLogger.Error("Failed to scan role row", err, nil)
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during roles iteration: %w", err)
	}
	return roles, nil
}

func (r *DictionaryRepository) CreateRole(ctx context.Context, name string, description *string) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "DictionaryRepository",
		"method":    "CreateRole",
		"name":      name,
	})

	query := `INSERT INTO roles (name, description) VALUES ($1, $2) RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, query, name, description).Scan(&id); err != nil {
		repoLogger.Error("Failed to create role", err, port.Fields{"query": query})
		return 0, dbError("failed to create role", err)
	}
	return id, nil
}

func (r *DictionaryRepository) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "DictionaryRepository",
		"method":    "ListStatuses",
	})

	var statuses []domain.Status
	err := r.queryNamed(ctx, repoLogger, `SELECT id, name FROM status ORDER BY id`, func(id int64, name string) {
		statuses = append(statuses, domain.Status{ID: id, Name: name})
	})
	if err != nil {
		return nil, err
	}
	if statuses == nil {
		statuses = make([]domain.Status, 0)
	}
	return statuses, nil
}

func (r *DictionaryRepository) CreateStatus(ctx context.Context, name string) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "DictionaryRepository",
		"method":    "CreateStatus",
		"name":      name,
	})
	return r.insertNamed(ctx, repoLogger, `INSERT INTO status (name) VALUES ($1) RETURNING id`, name, "failed to create status")
}

func (r *DictionaryRepository) ListPropertyTypes(ctx context.Context) ([]domain.PropertyType, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "DictionaryRepository",
		"method":    "ListPropertyTypes",
	})

	var types []domain.PropertyType
	err := r.queryNamed(ctx, repoLogger, `SELECT id, name FROM property_types ORDER BY id`, func(id int64, name string) {
		types = append(types, domain.PropertyType{ID: id, Name: name})
	})
	if err != nil {
		return nil, err
	}
	if types == nil {
		types = make([]domain.PropertyType, 0)
	}
	return types, nil
}

func (r *DictionaryRepository) CreatePropertyType(ctx context.Context, name string) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "DictionaryRepository",
		"method":    "CreatePropertyType",
		"name":      name,
	})
	return r.insertNamed(ctx, repoLogger, `INSERT INTO property_types (name) VALUES ($1) RETURNING id`, name, "failed to create property type")
}

// queryNamed читает справочник из двух колонок (id, name).
func (r *DictionaryRepository) queryNamed(ctx context.Context, repoLogger port.LoggerPort, query string, collect func(id int64, name string)) error {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query dictionary", err, port.Fields{"query": query})
		return dbError("failed to query dictionary", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			repoLogger.Error("Failed to scan dictionary row", err, nil)
			return fmt.Errorf("failed to scan dictionary row: %w", err)
		}
		collect(id, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error during dictionary iteration: %w", err)
	}
	return nil
}

func (r *DictionaryRepository) insertNamed(ctx context.Context, repoLogger port.LoggerPort, query, name, op string) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, query, name).Scan(&id); err != nil {
		repoLogger.Error("Failed to insert dictionary entry", err, port.Fields{"query": query})
		return 0, dbError(op, err)
	}
	return id, nil
}
