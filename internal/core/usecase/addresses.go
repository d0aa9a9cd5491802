package usecase

import (
	"context"
	"fmt"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

type GetAddressesUseCase struct {
	repo port.AddressRepositoryPort
}

func NewGetAddressesUseCase(repo port.AddressRepositoryPort) *GetAddressesUseCase {
	return &GetAddressesUseCase{repo: repo}
}

func (uc *GetAddressesUseCase) Execute(ctx context.Context) ([]domain.Address, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "GetAddresses"})

	addresses, err := uc.repo.List(ctx)
	if err != nil {
		ucLogger.Error("Failed to list addresses", err, nil)
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

type GetAddressByIDUseCase struct {
	repo port.AddressRepositoryPort
}

func NewGetAddressByIDUseCase(repo port.AddressRepositoryPort) *GetAddressByIDUseCase {
	return &GetAddressByIDUseCase{repo: repo}
}

func (uc *GetAddressByIDUseCase) Execute(ctx context.Context, id int64) (*domain.Address, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "GetAddressByID",
		"address_id": id,
	})

	address, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to get address", err, nil)
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	if address == nil {
		return nil, domain.ErrAddressNotFound
	}
	return address, nil
}

type CreateAddressUseCase struct {
	repo port.AddressRepositoryPort
}

func NewCreateAddressUseCase(repo port.AddressRepositoryPort) *CreateAddressUseCase {
	return &CreateAddressUseCase{repo: repo}
}

func (uc *CreateAddressUseCase) Execute(ctx context.Context, in domain.AddressInput) (int64, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CreateAddress",
		"city":     in.City,
	})

	ucLogger.Info("Use case started", nil)
	id, err := uc.repo.Create(ctx, in)
	if err != nil {
		ucLogger.Error("Failed to create address", err, nil)
		return 0, err
	}
	ucLogger.Info("Use case finished successfully", port.Fields{"address_id": id})
	return id, nil
}

type UpdateAddressUseCase struct {
	repo port.AddressRepositoryPort
}

func NewUpdateAddressUseCase(repo port.AddressRepositoryPort) *UpdateAddressUseCase {
	return &UpdateAddressUseCase{repo: repo}
}

func (uc *UpdateAddressUseCase) Execute(ctx context.Context, id int64, in domain.AddressInput) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "UpdateAddress",
		"address_id": id,
	})

	updated, err := uc.repo.Update(ctx, id, in)
	if err != nil {
		ucLogger.Error("Failed to update address", err, nil)
		return err
	}
	if updated == nil {
		return domain.ErrAddressNotFound
	}
	ucLogger.Info("Address updated", nil)
	return nil
}

type DeleteAddressUseCase struct {
	repo port.AddressRepositoryPort
}

func NewDeleteAddressUseCase(repo port.AddressRepositoryPort) *DeleteAddressUseCase {
	return &DeleteAddressUseCase{repo: repo}
}

// Execute удаляет адрес. Если на него ссылается объявление, БД вернет ErrInvalidReference.
func (uc *DeleteAddressUseCase) Execute(ctx context.Context, id int64) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "DeleteAddress",
		"address_id": id,
	})

	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to delete address", err, nil)
		return err
	}
	if deleted == nil {
		return domain.ErrAddressNotFound
	}
	ucLogger.Info("Address deleted", nil)
	return nil
}
