package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// seedHashCost - минимальная стоимость bcrypt: сидер хэширует сотни паролей.
const seedHashCost = bcrypt.MinCost

// fixtureLoader вставляет набор данных через репозитории одной транзакции.
// Ссылки по имени/почте разрешаются в id по мере вставки.
type fixtureLoader struct {
	repos  port.Repositories
	logger port.LoggerPort

	roles         map[string]int64
	statuses      map[string]int64
	propertyTypes map[string]int64
	features      map[string]int64
	companies     map[string]int64
	users         map[string]int64
	hashes        map[string]string

	stats domain.SeedStats
}

func newFixtureLoader(repos port.Repositories, logger port.LoggerPort) *fixtureLoader {
	return &fixtureLoader{
		repos:         repos,
		logger:        logger,
		roles:         make(map[string]int64),
		statuses:      make(map[string]int64),
		propertyTypes: make(map[string]int64),
		features:      make(map[string]int64),
		companies:     make(map[string]int64),
		users:         make(map[string]int64),
		hashes:        make(map[string]string),
	}
}

// load очищает все таблицы и вставляет fixtures целиком.
func (l *fixtureLoader) load(ctx context.Context, f domain.Fixtures) (*domain.SeedStats, error) {
	if err := l.repos.Maintenance.TruncateAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to truncate tables: %w", err)
	}

	steps := []struct {
		name string
		fn   func(context.Context, domain.Fixtures) error
	}{
		{"dictionaries", l.loadDictionaries},
		{"companies", l.loadCompanies},
		{"users", l.loadUsers},
		{"listings", l.loadListings},
	}
	for _, step := range steps {
		if err := step.fn(ctx, f); err != nil {
			return nil, fmt.Errorf("failed to seed %s: %w", step.name, err)
		}
		l.logger.Debug("Seed step finished", port.Fields{"step": step.name})
	}

	return &l.stats, nil
}

func (l *fixtureLoader) loadDictionaries(ctx context.Context, f domain.Fixtures) error {
	dict := l.repos.Dictionaries
	for _, r := range f.Roles {
		var description *string
		if r.Description != "" {
			d := r.Description
			description = &d
		}
		id, err := dict.CreateRole(ctx, r.Name, description)
		if err != nil {
			return fmt.Errorf("role %q: %w", r.Name, err)
		}
		l.roles[r.Name] = id
	}
	for _, name := range f.Statuses {
		id, err := dict.CreateStatus(ctx, name)
		if err != nil {
			return fmt.Errorf("status %q: %w", name, err)
		}
		l.statuses[name] = id
	}
	for _, name := range f.PropertyTypes {
		id, err := dict.CreatePropertyType(ctx, name)
		if err != nil {
			return fmt.Errorf("property type %q: %w", name, err)
		}
		l.propertyTypes[name] = id
	}
	for _, name := range f.Features {
		id, err := l.repos.Features.Create(ctx, name)
		if err != nil {
			return fmt.Errorf("feature %q: %w", name, err)
		}
		l.features[name] = id
	}
	return nil
}

func (l *fixtureLoader) createAddress(ctx context.Context, a domain.FixtureAddress) (int64, error) {
	return l.repos.Addresses.Create(ctx, domain.AddressInput{
		Street:   a.Street,
		City:     a.City,
		Postcode: a.Postcode,
		Country:  a.Country,
	})
}

func (l *fixtureLoader) loadCompanies(ctx context.Context, f domain.Fixtures) error {
	for _, c := range f.Companies {
		in := domain.CompanyInput{Name: c.Name}
		if c.Address != nil {
			addressID, err := l.createAddress(ctx, *c.Address)
			if err != nil {
				return fmt.Errorf("company %q address: %w", c.Name, err)
			}
			in.AddressID = &addressID
		}
		id, err := l.repos.Companies.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("company %q: %w", c.Name, err)
		}
		l.companies[c.Name] = id
		l.stats.Companies++
	}
	return nil
}

func (l *fixtureLoader) hash(password string) (string, error) {
	if h, ok := l.hashes[password]; ok {
		return h, nil
	}
	h, err := domain.HashPasswordWithCost(password, seedHashCost)
	if err != nil {
		return "", err
	}
	l.hashes[password] = h
	return h, nil
}

func (l *fixtureLoader) loadUsers(ctx context.Context, f domain.Fixtures) error {
	for _, u := range f.Users {
		roleID, ok := l.roles[u.Role]
		if !ok {
			return fmt.Errorf("user %q: unknown role %q: %w", u.Mail, u.Role, domain.ErrInvalidInput)
		}
		hash, err := l.hash(u.Password)
		if err != nil {
			return fmt.Errorf("user %q: failed to hash password: %w", u.Mail, err)
		}

		user := domain.User{
			FirstName:    u.FirstName,
			Surname:      u.Surname,
			Mail:         u.Mail,
			PasswordHash: hash,
			PhoneNumber:  u.PhoneNumber,
			RoleID:       roleID,
		}
		if u.Company != nil {
			companyID, ok := l.companies[*u.Company]
			if !ok {
				return fmt.Errorf("user %q: unknown company %q: %w", u.Mail, *u.Company, domain.ErrInvalidInput)
			}
			user.CompanyID = &companyID
		}
		if u.Address != nil {
			addressID, err := l.createAddress(ctx, *u.Address)
			if err != nil {
				return fmt.Errorf("user %q address: %w", u.Mail, err)
			}
			user.AddressID = &addressID
		}

		id, err := l.repos.Users.Create(ctx, user)
		if err != nil {
			return fmt.Errorf("user %q: %w", u.Mail, err)
		}
		l.users[u.Mail] = id

		if u.LicenseNumber != nil {
			if _, err := l.repos.Users.UpsertAgent(ctx, id, *u.LicenseNumber); err != nil {
				return fmt.Errorf("user %q agent: %w", u.Mail, err)
			}
		}
		switch u.Role {
		case domain.RoleRealtor:
			l.stats.Realtors++
		case domain.RoleUser:
			l.stats.Buyers++
		case domain.RoleAdmin:
			l.stats.Admins++
		}
	}
	return nil
}

func (l *fixtureLoader) loadListings(ctx context.Context, f domain.Fixtures) error {
	for _, fl := range f.Listings {
		propertyTypeID, ok := l.propertyTypes[fl.PropertyType]
		if !ok {
			return fmt.Errorf("listing %q: unknown property type %q: %w", fl.Title, fl.PropertyType, domain.ErrInvalidInput)
		}
		statusID, ok := l.statuses[fl.Status]
		if !ok {
			return fmt.Errorf("listing %q: unknown status %q: %w", fl.Title, fl.Status, domain.ErrInvalidInput)
		}
		realtorID, ok := l.users[fl.Realtor]
		if !ok {
			return fmt.Errorf("listing %q: unknown realtor %q: %w", fl.Title, fl.Realtor, domain.ErrInvalidInput)
		}
		addressID, err := l.createAddress(ctx, fl.Address)
		if err != nil {
			return fmt.Errorf("listing %q address: %w", fl.Title, err)
		}

		listingID, err := l.repos.Listings.Create(ctx, domain.ListingInput{
			Title:          fl.Title,
			Description:    fl.Description,
			Price:          fl.Price,
			LivingArea:     fl.LivingArea,
			LotSize:        fl.LotSize,
			RoomCount:      fl.RoomCount,
			YearBuilt:      fl.YearBuilt,
			FloorNumber:    fl.FloorNumber,
			EnergyClass:    fl.EnergyClass,
			RenovationYear: fl.RenovationYear,
			AddressID:      addressID,
			PropertyTypeID: propertyTypeID,
			RealtorID:      realtorID,
			StatusID:       statusID,
		})
		if err != nil {
			return fmt.Errorf("listing %q: %w", fl.Title, err)
		}
		l.stats.Listings++

		for _, name := range fl.Features {
			featureID, ok := l.features[name]
			if !ok {
				return fmt.Errorf("listing %q: unknown feature %q: %w", fl.Title, name, domain.ErrInvalidInput)
			}
			if err := l.repos.Features.AddToListing(ctx, listingID, featureID); err != nil {
				return fmt.Errorf("listing %q feature %q: %w", fl.Title, name, err)
			}
			l.stats.Features++
		}

		for i, imageURL := range fl.Images {
			caption := fmt.Sprintf("%s, photo %d", fl.Title, i+1)
			if _, err := l.repos.Images.Create(ctx, domain.ImageOwnerListing, listingID, domain.ImageInput{
				Caption: &caption,
				URL:     imageURL,
			}); err != nil {
				return fmt.Errorf("listing %q image: %w", fl.Title, err)
			}
			l.stats.Images++
		}
	}
	return nil
}
