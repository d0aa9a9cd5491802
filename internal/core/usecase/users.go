package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// maxPasswordBytes - предел bcrypt, считается в байтах, а не в символах.
const maxPasswordBytes = 72

// userFromInput хэширует пароль и собирает запись для репозитория.
func userFromInput(in domain.UserInput) (domain.User, error) {
	if in.Password == "" {
		return domain.User{}, fmt.Errorf("password is required: %w", domain.ErrInvalidInput)
	}
	if len(in.Password) > maxPasswordBytes {
		return domain.User{}, fmt.Errorf("password must be at most %d bytes: %w", maxPasswordBytes, domain.ErrInvalidInput)
	}
	hash, err := domain.HashPassword(in.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return domain.User{}, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
		}
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	return domain.User{
		FirstName:    in.FirstName,
		Surname:      in.Surname,
		Mail:         strings.TrimSpace(in.Mail),
		PasswordHash: hash,
		PhoneNumber:  in.PhoneNumber,
		Birthdate:    in.Birthdate,
		RoleID:       in.RoleID,
		AddressID:    in.AddressID,
		CompanyID:    in.CompanyID,
	}, nil
}

type GetUsersUseCase struct {
	repo port.UserRepositoryPort
}

func NewGetUsersUseCase(repo port.UserRepositoryPort) *GetUsersUseCase {
	return &GetUsersUseCase{repo: repo}
}

func (uc *GetUsersUseCase) Execute(ctx context.Context) ([]domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetUsers"})

	ucLogger.Info("Use case started", nil)
	users, err := uc.repo.List(ctx)
	if err != nil {
		ucLogger.Error("Failed to list users", err, nil)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(users)})
	return users, nil
}

type GetUserByIDUseCase struct {
	repo port.UserRepositoryPort
}

func NewGetUserByIDUseCase(repo port.UserRepositoryPort) *GetUserByIDUseCase {
	return &GetUserByIDUseCase{repo: repo}
}

func (uc *GetUserByIDUseCase) Execute(ctx context.Context, id int64) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserByID",
		"user_id":  id,
	})

	ucLogger.Info("Use case started", nil)
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to get user", err, nil)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		ucLogger.Warn("User not found", nil)
		return nil, domain.ErrUserNotFound
	}

	ucLogger.Info("Use case finished successfully", nil)
	return user, nil
}

type CreateUserUseCase struct {
	repo port.UserRepositoryPort
}

func NewCreateUserUseCase(repo port.UserRepositoryPort) *CreateUserUseCase {
	return &CreateUserUseCase{repo: repo}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, in domain.UserInput) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateUser",
		"mail":     in.Mail,
	})

	ucLogger.Info("Use case started", nil)
	user, err := userFromInput(in)
	if err != nil {
		ucLogger.Warn("Invalid user input", port.Fields{"error": err.Error()})
		return 0, err
	}

	id, err := uc.repo.Create(ctx, user)
	if err != nil {
		ucLogger.Error("Failed to create user", err, nil)
		return 0, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"user_id": id})
	return id, nil
}

type UpdateUserUseCase struct {
	repo port.UserRepositoryPort
}

func NewUpdateUserUseCase(repo port.UserRepositoryPort) *UpdateUserUseCase {
	return &UpdateUserUseCase{repo: repo}
}

// Execute полностью заменяет пользователя, включая пароль.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, id int64, in domain.UserInput) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateUser",
		"user_id":  id,
	})

	ucLogger.Info("Use case started", nil)
	user, err := userFromInput(in)
	if err != nil {
		ucLogger.Warn("Invalid user input", port.Fields{"error": err.Error()})
		return err
	}

	updated, err := uc.repo.Update(ctx, id, user)
	if err != nil {
		ucLogger.Error("Failed to update user", err, nil)
		return err
	}
	if updated == nil {
		ucLogger.Warn("User not found", nil)
		return domain.ErrUserNotFound
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type DeleteUserUseCase struct {
	repo port.UserRepositoryPort
}

func NewDeleteUserUseCase(repo port.UserRepositoryPort) *DeleteUserUseCase {
	return &DeleteUserUseCase{repo: repo}
}

// Execute удаляет пользователя. Пока у риелтора есть объявления, БД вернет ErrInvalidReference.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteUser",
		"user_id":  id,
	})

	ucLogger.Info("Use case started", nil)
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to delete user", err, nil)
		return err
	}
	if deleted == nil {
		ucLogger.Warn("User not found", nil)
		return domain.ErrUserNotFound
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type GetRealtorAgentUseCase struct {
	repo port.UserRepositoryPort
}

func NewGetRealtorAgentUseCase(repo port.UserRepositoryPort) *GetRealtorAgentUseCase {
	return &GetRealtorAgentUseCase{repo: repo}
}

func (uc *GetRealtorAgentUseCase) Execute(ctx context.Context, userID int64) (*domain.RealtorAgent, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetRealtorAgent",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)
	agent, err := uc.repo.GetAgent(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to get realtor agent", err, nil)
		return nil, fmt.Errorf("failed to get realtor agent: %w", err)
	}
	if agent == nil {
		ucLogger.Warn("Realtor agent not found", nil)
		return nil, domain.ErrAgentNotFound
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"agent_id": agent.ID})
	return agent, nil
}

type SaveRealtorAgentUseCase struct {
	repo port.UserRepositoryPort
}

func NewSaveRealtorAgentUseCase(repo port.UserRepositoryPort) *SaveRealtorAgentUseCase {
	return &SaveRealtorAgentUseCase{repo: repo}
}

// Execute создает или обновляет лицензию риелтора. Несуществующий пользователь - ErrUserNotFound.
func (uc *SaveRealtorAgentUseCase) Execute(ctx context.Context, userID int64, licenseNumber string) (*domain.RealtorAgent, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SaveRealtorAgent",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)
	licenseNumber = strings.TrimSpace(licenseNumber)
	if licenseNumber == "" {
		return nil, fmt.Errorf("license number is required: %w", domain.ErrInvalidInput)
	}

	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to check user", err, nil)
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if user == nil {
		ucLogger.Warn("User not found", nil)
		return nil, domain.ErrUserNotFound
	}

	agent, err := uc.repo.UpsertAgent(ctx, userID, licenseNumber)
	if err != nil {
		ucLogger.Error("Failed to save realtor agent", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"agent_id": agent.ID})
	return agent, nil
}

type LoginUserUseCase struct {
	repo port.UserRepositoryPort
}

func NewLoginUserUseCase(repo port.UserRepositoryPort) *LoginUserUseCase {
	return &LoginUserUseCase{repo: repo}
}

// Execute проверяет почту и пароль. Для неизвестной почты и неверного пароля ошибка одна и та же.
func (uc *LoginUserUseCase) Execute(ctx context.Context, mail, password string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoginUser",
		"mail":     mail,
	})

	ucLogger.Info("Use case started", nil)
	user, err := uc.repo.GetByMail(ctx, strings.TrimSpace(mail))
	if err != nil {
		ucLogger.Error("Failed to find user by mail", err, nil)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil || !user.CheckPassword(password) {
		ucLogger.Warn("Invalid credentials", nil)
		return nil, domain.ErrInvalidCredentials
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"user_id": user.ID})
	return user, nil
}
