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

// UserRepository - реализация UserRepositoryPort для PostgreSQL.
// Колонка password хранит bcrypt-хэш.
type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) (*UserRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	return &UserRepository{db: db}, nil
}

const userColumns = `id, first_name, surname, mail, password, phone_number, birthdate, role_id, address_id, company_id, created_at`

func scanUser(row pgx.Row, u *domain.User) error {
	return row.Scan(
		&u.ID,
		&u.FirstName,
		&u.Surname,
		&u.Mail,
		&u.PasswordHash,
		&u.PhoneNumber,
		&u.Birthdate,
		&u.RoleID,
		&u.AddressID,
		&u.CompanyID,
		&u.CreatedAt,
	)
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "List",
	})

	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query users", err, port.Fields{"query": query})
		return nil, dbError("failed to query users", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := scanUser(rows, &u); err != nil {
			repoLogger.Error("Failed to scan user row", err, nil)
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during users iteration", err, nil)
		return nil, fmt.Errorf("error during users iteration: %w", err)
	}
	return users, nil
}

// GetByID возвращает (nil, nil), если пользователь не найден.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "GetByID",
		"user_id":   id,
	})

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var u domain.User
	if err := scanUser(r.db.QueryRow(ctx, query, id), &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("User not found by ID.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find user by ID", err, port.Fields{"query": query})
		return nil, dbError("failed to find user by id", err)
	}
	return &u, nil
}

// GetByMail находит пользователя по email. Возвращает (nil, nil), если пользователь не найден.
func (r *UserRepository) GetByMail(ctx context.Context, mail string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "GetByMail",
		"mail":      mail,
	})

	query := `SELECT ` + userColumns + ` FROM users WHERE mail = $1`
	var u domain.User
	if err := scanUser(r.db.QueryRow(ctx, query, mail), &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("User not found by mail.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find user by mail", err, port.Fields{"query": query})
		return nil, dbError("failed to find user by mail", err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "Create",
		"mail":      user.Mail,
	})

	query := `INSERT INTO users (first_name, surname, mail, password, phone_number, birthdate, role_id, address_id, company_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

	repoLogger.Debug("Executing query to create user.", nil)
	var id int64
	err := r.db.QueryRow(ctx, query,
		user.FirstName, user.Surname, user.Mail, user.PasswordHash, user.PhoneNumber,
		user.Birthdate, user.RoleID, user.AddressID, user.CompanyID,
	).Scan(&id)
	if err != nil {
		repoLogger.Error("Failed to create user", err, port.Fields{"query": query})
		return 0, dbError("failed to create user", err)
	}

	repoLogger.Debug("User created successfully.", port.Fields{"user_id": id})
	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, user domain.User) (*int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "Update",
		"user_id":   id,
	})

	query := `UPDATE users SET first_name = $1, surname = $2, mail = $3, password = $4, phone_number = $5,
		birthdate = $6, role_id = $7, address_id = $8, company_id = $9
		WHERE id = $10 RETURNING id`
	return returningID(ctx, r.db, repoLogger, "failed to update user", query,
		user.FirstName, user.Surname, user.Mail, user.PasswordHash, user.PhoneNumber,
		user.Birthdate, user.RoleID, user.AddressID, user.CompanyID, id)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (*int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "Delete",
		"user_id":   id,
	})

	query := `DELETE FROM users WHERE id = $1 RETURNING id`
	return returningID(ctx, r.db, repoLogger, "failed to delete user", query, id)
}

func (r *UserRepository) GetAgent(ctx context.Context, userID int64) (*domain.RealtorAgent, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "GetAgent",
		"user_id":   userID,
	})

	query := `SELECT id, user_id, license_number FROM realtor_agent WHERE user_id = $1`
	var a domain.RealtorAgent
	if err := r.db.QueryRow(ctx, query, userID).Scan(&a.ID, &a.UserID, &a.LicenseNumber); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("Realtor agent record not found.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to get realtor agent", err, port.Fields{"query": query})
		return nil, dbError("failed to get realtor agent", err)
	}
	return &a, nil
}

// UpsertAgent создает или обновляет запись риелтора. Уникальность по user_id гарантирует связь 1:1.
func (r *UserRepository) UpsertAgent(ctx context.Context, userID int64, licenseNumber string) (*domain.RealtorAgent, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "UpsertAgent",
		"user_id":   userID,
	})

	query := `INSERT INTO realtor_agent (user_id, license_number) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET license_number = EXCLUDED.license_number
		RETURNING id, user_id, license_number`
	var a domain.RealtorAgent
	if err := r.db.QueryRow(ctx, query, userID, licenseNumber).Scan(&a.ID, &a.UserID, &a.LicenseNumber); err != nil {
		repoLogger.Error("Failed to upsert realtor agent", err, port.Fields{"query": query})
		return nil, dbError("failed to upsert realtor agent", err)
	}

	repoLogger.Debug("Realtor agent saved.", port.Fields{"agent_id": a.ID})
	return &a, nil
}
