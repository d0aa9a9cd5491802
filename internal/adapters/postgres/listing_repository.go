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

// ListingRepository - реализация ListingRepositoryPort для PostgreSQL.
type ListingRepository struct {
	db DBTX
}

func NewListingRepository(db DBTX) (*ListingRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	return &ListingRepository{db: db}, nil
}

// listingViewColumns и listingViewFrom - объявление с адресом, типом и статусом.
// LEFT JOIN, чтобы объявление было видно даже при рассогласованных справочниках.
const (
	listingViewColumns = `l.id, l.title, l.description, l.price, l.living_area, l.lot_size, l.room_count,
		l.year_built, l.floor_number, l.energy_class, l.renovation_year,
		l.address_id, l.property_type_id, l.realtor_id, l.status_id, l.created_at,
		a.street, a.city, a.postcode, a.country,
		pt.name, s.name`
	listingViewFrom = `FROM listings l
	LEFT JOIN addresses a ON l.address_id = a.id
	LEFT JOIN property_types pt ON l.property_type_id = pt.id
	LEFT JOIN status s ON l.status_id = s.id`
	listingViewSelect = `SELECT ` + listingViewColumns + ` ` + listingViewFrom
)

// listingNullable принимает колонки, которые в схеме допускают NULL, но в домене представлены значениями.
type listingNullable struct {
	livingArea  *float64
	lotSize     *float64
	roomCount   *int
	yearBuilt   *int
	floorNumber *int
	energyClass *string
}

func (n listingNullable) apply(l *domain.Listing) {
	if n.livingArea != nil {
		l.LivingArea = *n.livingArea
	}
	if n.lotSize != nil {
		l.LotSize = *n.lotSize
	}
	if n.roomCount != nil {
		l.RoomCount = *n.roomCount
	}
	if n.yearBuilt != nil {
		l.YearBuilt = *n.yearBuilt
	}
	if n.floorNumber != nil {
		l.FloorNumber = *n.floorNumber
	}
	if n.energyClass != nil {
		l.EnergyClass = *n.energyClass
	}
}

// scanListingView читает строку listingViewSelect. extra добавляется в конец списка назначений.
func scanListingView(row pgx.Row, v *domain.ListingView, extra ...any) error {
	var n listingNullable
	dest := []any{
		&v.ID, &v.Title, &v.Description, &v.Price, &n.livingArea, &n.lotSize, &n.roomCount,
		&n.yearBuilt, &n.floorNumber, &n.energyClass, &v.RenovationYear,
		&v.AddressID, &v.PropertyTypeID, &v.RealtorID, &v.StatusID, &v.CreatedAt,
		&v.Street, &v.City, &v.Postcode, &v.Country,
		&v.PropertyType, &v.Status,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}
	n.apply(&v.Listing)
	return nil
}

// List возвращает все объявления по возрастанию id.
func (r *ListingRepository) List(ctx context.Context) ([]domain.ListingView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ListingRepository",
		"method":    "List",
	})

	query := listingViewSelect + ` ORDER BY l.id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query listings", err, port.Fields{"query": query})
		return nil, dbError("failed to query listings", err)
	}
	defer rows.Close()

	listings := make([]domain.ListingView, 0)
	for rows.Next() {
		var v domain.ListingView
		if err := scanListingView(rows, &v); err != nil {
			repoLogger.Error("Failed to scan listing row", err, nil)
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, v)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during listings iteration", err, nil)
		return nil, fmt.Errorf("error during listings iteration: %w", err)
	}

	repoLogger.Debug("Listings fetched.", port.Fields{"count": len(listings)})
	return listings, nil
}

// GetByID возвращает (nil, nil), если объявление не найдено.
func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.ListingView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "ListingRepository",
		"method":     "GetByID",
		"listing_id": id,
	})

	query := listingViewSelect + ` WHERE l.id = $1`
	var v domain.ListingView
	if err := scanListingView(r.db.QueryRow(ctx, query, id), &v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("Listing not found.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to get listing", err, port.Fields{"query": query})
		return nil, dbError("failed to get listing", err)
	}
	return &v, nil
}

func (r *ListingRepository) Create(ctx context.Context, in domain.ListingInput) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ListingRepository",
		"method":    "Create",
		"title":     in.Title,
	})

	query := `INSERT INTO listings (
			title, description, price, living_area, lot_size, room_count,
			year_built, floor_number, energy_class, renovation_year,
			address_id, property_type_id, realtor_id, status_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		in.Title, in.Description, in.Price, in.LivingArea, in.LotSize, in.RoomCount,
		in.YearBuilt, in.FloorNumber, in.EnergyClass, in.RenovationYear,
		in.AddressID, in.PropertyTypeID, in.RealtorID, in.StatusID,
	).Scan(&id)
	if err != nil {
		repoLogger.Error("Failed to create listing", err, port.Fields{"query": query})
		return 0, dbError("failed to create listing", err)
	}

	repoLogger.Debug("Listing created.", port.Fields{"listing_id": id})
	return id, nil
}

// Update полностью заменяет изменяемые поля. Отсутствующая строка не создается.
func (r *ListingRepository) Update(ctx context.Context, id int64, in domain.ListingInput) (*int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "ListingRepository",
		"method":     "Update",
		"listing_id": id,
	})

	query := `UPDATE listings
		SET title = $1,
			description = $2,
			price = $3,
			living_area = $4,
			lot_size = $5,
			room_count = $6,
			year_built = $7,
			floor_number = $8,
			energy_class = $9,
			renovation_year = $10,
			address_id = $11,
			property_type_id = $12,
			realtor_id = $13,
			status_id = $14
		WHERE id = $15
		RETURNING id`
	return returningID(ctx, r.db, repoLogger, "failed to update listing", query,
		in.Title, in.Description, in.Price, in.LivingArea, in.LotSize, in.RoomCount,
		in.YearBuilt, in.FloorNumber, in.EnergyClass, in.RenovationYear,
		in.AddressID, in.PropertyTypeID, in.RealtorID, in.StatusID, id)
}

// Delete удаляет объявление. Изображения, особенности, избранное и сообщения уходят каскадом, адрес остается.
func (r *ListingRepository) Delete(ctx context.Context, id int64) (*int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "ListingRepository",
		"method":     "Delete",
		"listing_id": id,
	})

	query := `DELETE FROM listings WHERE id = $1 RETURNING id`
	return returningID(ctx, r.db, repoLogger, "failed to delete listing", query, id)
}

func (r *ListingRepository) UpdatePrice(ctx context.Context, id int64, price float64) (*int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "ListingRepository",
		"method":     "UpdatePrice",
		"listing_id": id,
		"price":      price,
	})

	query := `UPDATE listings SET price = $1 WHERE id = $2 RETURNING id`
	return returningID(ctx, r.db, repoLogger, "failed to update listing price", query, price, id)
}

func (r *ListingRepository) UpdateStatus(ctx context.Context, id int64, statusID int64) (*int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "ListingRepository",
		"method":     "UpdateStatus",
		"listing_id": id,
		"status_id":  statusID,
	})

	query := `UPDATE listings SET status_id = $1 WHERE id = $2 RETURNING id`
	return returningID(ctx, r.db, repoLogger, "failed to update listing status", query, statusID, id)
}
