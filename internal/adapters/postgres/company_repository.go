package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

type CompanyRepository struct {
	db DBTX
}

func NewCompanyRepository(db DBTX) (*CompanyRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	return &CompanyRepository{db: db}, nil
}

const companyColumns = `id, name, address_id, phone, created_at`

func scanCompany(row pgx.Row, c *domain.RealtorCompany) error {
	return row.Scan(&c.ID, &c.Name, &c.AddressID, &c.Phone, &c.CreatedAt)
}

func (r *CompanyRepository) List(ctx context.Context) ([]domain.RealtorCompany, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "CompanyRepository",
		"method":    "List",
	})

	query := `SELECT ` + companyColumns + ` FROM realtor_companies ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query companies", err, port.Fields{"query": query})
		return nil, dbError("failed to query companies", err)
	}
	defer rows.Close()

	companies := make([]domain.RealtorCompany, 0)
	for rows.Next() {
		var c domain.RealtorCompany
		if err := scanCompany(rows, &c); err != nil {
			repoLogger.Error("Failed to scan company row", err, nil)
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during companies iteration", err, nil)
		return nil, fmt.Errorf("error during companies iteration: %w", err)
	}
	return companies, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*domain.RealtorCompany, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "CompanyRepository",
		"method":     "GetByID",
		"company_id": id,
	})

	query := `SELECT ` + companyColumns + ` FROM realtor_companies WHERE id = $1`
	var c domain.RealtorCompany
	if err := scanCompany(r.db.QueryRow(ctx, query, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("Company not found.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to get company", err, port.Fields{"query": query})
		return nil, dbError("failed to get company", err)
	}
	return &c, nil
}

func (r *CompanyRepository) Create(ctx context.Context, in domain.CompanyInput) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "CompanyRepository",
		"method":    "Create",
		"name":      in.Name,
	})

	query := `INSERT INTO realtor_companies (name, address_id, phone) VALUES ($1, $2, $3) RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, query, in.Name, in.AddressID, in.Phone).Scan(&id); err != nil {
		repoLogger.Error("Failed to create company", err, port.Fields{"query": query})
		return 0, dbError("failed to create company", err)
	}

	repoLogger.Debug("Company created.", port.Fields{"company_id": id})
	return id, nil
}

func (r *CompanyRepository) Update(ctx context.Context, id int64, in domain.CompanyInput) (*int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "CompanyRepository",
		"method":     "Update",
		"company_id": id,
	})

	query := `UPDATE realtor_companies SET name = $1, address_id = $2, phone = $3 WHERE id = $4 RETURNING id`
	return returningID(ctx, r.db, repoLogger, "failed to update company", query, in.Name, in.AddressID, in.Phone, id)
}

func (r *CompanyRepository) Delete(ctx context.Context, id int64) (*int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "CompanyRepository",
		"method":     "Delete",
		"company_id": id,
	})

	query := `DELETE FROM realtor_companies WHERE id = $1 RETURNING id`
	return returningID(ctx, r.db, repoLogger, "failed to delete company", query, id)
}
