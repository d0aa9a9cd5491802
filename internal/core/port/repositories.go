package port

import (
	"context"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

// Общий контракт репозиториев:
//   - GetByID возвращает (nil, nil), если строки нет;
//   - Update/Delete/Update* возвращают id затронутой строки или nil, если ни одна строка не совпала;
//   - нарушения ограничений БД возвращаются как *domain.ConstraintError.

type AddressRepositoryPort interface {
	List(ctx context.Context) ([]domain.Address, error)
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
	Create(ctx context.Context, in domain.AddressInput) (int64, error)
	Update(ctx context.Context, id int64, in domain.AddressInput) (*int64, error)
	Delete(ctx context.Context, id int64) (*int64, error)
}

type CompanyRepositoryPort interface {
	List(ctx context.Context) ([]domain.RealtorCompany, error)
	GetByID(ctx context.Context, id int64) (*domain.RealtorCompany, error)
	Create(ctx context.Context, in domain.CompanyInput) (int64, error)
	Update(ctx context.Context, id int64, in domain.CompanyInput) (*int64, error)
	Delete(ctx context.Context, id int64) (*int64, error)
}

type UserRepositoryPort interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetByMail нужен для проверки учетных данных.
	GetByMail(ctx context.Context, mail string) (*domain.User, error)
	// Create и Update ожидают уже захэшированный пароль в user.PasswordHash.
	Create(ctx context.Context, user domain.User) (int64, error)
	Update(ctx context.Context, id int64, user domain.User) (*int64, error)
	Delete(ctx context.Context, id int64) (*int64, error)

	GetAgent(ctx context.Context, userID int64) (*domain.RealtorAgent, error)
	UpsertAgent(ctx context.Context, userID int64, licenseNumber string) (*domain.RealtorAgent, error)
}

type ListingRepositoryPort interface {
	List(ctx context.Context) ([]domain.ListingView, error)
	GetByID(ctx context.Context, id int64) (*domain.ListingView, error)
	Create(ctx context.Context, in domain.ListingInput) (int64, error)
	Update(ctx context.Context, id int64, in domain.ListingInput) (*int64, error)
	Delete(ctx context.Context, id int64) (*int64, error)
	UpdatePrice(ctx context.Context, id int64, price float64) (*int64, error)
	UpdateStatus(ctx context.Context, id int64, statusID int64) (*int64, error)
}

type FeatureRepositoryPort interface {
	List(ctx context.Context) ([]domain.Feature, error)
	GetByID(ctx context.Context, id int64) (*domain.Feature, error)
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, id int64, name string) (*int64, error)
	Delete(ctx context.Context, id int64) (*int64, error)

	// Связь объявление <-> особенность. AddToListing идемпотентен.
	ListForListing(ctx context.Context, listingID int64) ([]domain.Feature, error)
	AddToListing(ctx context.Context, listingID, featureID int64) error
	RemoveFromListing(ctx context.Context, listingID, featureID int64) (*int64, error)
}

// DictionaryRepositoryPort - справочники: роли, статусы и типы недвижимости.
type DictionaryRepositoryPort interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
	CreateRole(ctx context.Context, name string, description *string) (int64, error)

	ListStatuses(ctx context.Context) ([]domain.Status, error)
	CreateStatus(ctx context.Context, name string) (int64, error)

	ListPropertyTypes(ctx context.Context) ([]domain.PropertyType, error)
	CreatePropertyType(ctx context.Context, name string) (int64, error)
}

type ImageRepositoryPort interface {
	List(ctx context.Context, owner domain.ImageOwner, ownerID int64) ([]domain.Image, error)
	Create(ctx context.Context, owner domain.ImageOwner, ownerID int64, in domain.ImageInput) (*domain.Image, error)
	Delete(ctx context.Context, owner domain.ImageOwner, id int64) (*int64, error)
}

type FavoriteRepositoryPort interface {
	ListForUser(ctx context.Context, userID int64) ([]domain.FavoriteListing, error)
	// Add идемпотентен: повторное добавление не является ошибкой.
	Add(ctx context.Context, userID, listingID int64) error
	Remove(ctx context.Context, userID, listingID int64) (*int64, error)
}

type MessageRepositoryPort interface {
	Create(ctx context.Context, in domain.MessageInput) (*domain.Message, error)
	ListForListing(ctx context.Context, listingID int64) ([]domain.Message, error)
	// ListForUser возвращает сообщения, где пользователь - отправитель ИЛИ получатель.
	ListForUser(ctx context.Context, userID int64) ([]domain.Message, error)
}

// MaintenancePort - служебные операции над схемой.
type MaintenancePort interface {
	TruncateAll(ctx context.Context) error
}

// MigratorPort применяет схему базы данных. Повторный запуск безопасен.
type MigratorPort interface {
	Migrate(ctx context.Context) error
}

// Repositories - набор репозиториев, привязанных к одному соединению или транзакции.
type Repositories struct {
	Addresses    AddressRepositoryPort
	Companies    CompanyRepositoryPort
	Users        UserRepositoryPort
	Listings     ListingRepositoryPort
	Features     FeatureRepositoryPort
	Dictionaries DictionaryRepositoryPort
	Images       ImageRepositoryPort
	Favorites    FavoriteRepositoryPort
	Messages     MessageRepositoryPort
	Maintenance  MaintenancePort
}

// UnitOfWorkPort выполняет fn в одной транзакции. Ошибка из fn откатывает транзакцию.
type UnitOfWorkPort interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

// HealthCheckerPort проверяет доступность хранилища.
type HealthCheckerPort interface {
	Ping(ctx context.Context) error
}
