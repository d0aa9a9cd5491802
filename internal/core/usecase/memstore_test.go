package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// memStore - упрощенное хранилище в памяти для тестов сидера и связанных сценариев.
// Проверяет только уникальность почты и существование ссылок, которые нужны тестам.
type memStore struct {
	nextID int64

	addresses     map[int64]domain.AddressInput
	companies     map[int64]domain.CompanyInput
	users         map[int64]domain.User
	agents        map[int64]string
	listings      map[int64]domain.ListingInput
	features      map[int64]string
	listingFeats  map[[2]int64]bool
	roles         map[int64]string
	statuses      map[int64]string
	propertyTypes map[int64]string
	images        map[int64]domain.Image
	favorites     map[[2]int64]time.Time
	messages      []domain.Message

	truncated int
	failOn    string
}

func newMemStore() *memStore {
	s := &memStore{}
	s.reset()
	return s
}

func (s *memStore) reset() {
	s.nextID = 0
	s.addresses = map[int64]domain.AddressInput{}
	s.companies = map[int64]domain.CompanyInput{}
	s.users = map[int64]domain.User{}
	s.agents = map[int64]string{}
	s.listings = map[int64]domain.ListingInput{}
	s.features = map[int64]string{}
	s.listingFeats = map[[2]int64]bool{}
	s.roles = map[int64]string{}
	s.statuses = map[int64]string{}
	s.propertyTypes = map[int64]string{}
	s.images = map[int64]domain.Image{}
	s.favorites = map[[2]int64]time.Time{}
	s.messages = nil
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) repositories() port.Repositories {
	return port.Repositories{
		Addresses:    memAddresses{s},
		Companies:    memCompanies{s},
		Users:        memUsers{s},
		Listings:     memListings{s},
		Features:     memFeatures{s},
		Dictionaries: memDictionaries{s},
		Images:       memImages{s},
		Favorites:    memFavorites{s},
		Messages:     memMessages{s},
		Maintenance:  memMaintenance{s},
	}
}

// WithinTransaction откатывает состояние, если fn вернула ошибку.
func (s *memStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos port.Repositories) error) error {
	snapshot := *s
	snapshot.messages = append([]domain.Message(nil), s.messages...)
	if err := fn(ctx, s.repositories()); err != nil {
		*s = snapshot
		return err
	}
	return nil
}

type memMaintenance struct{ s *memStore }

func (m memMaintenance) TruncateAll(ctx context.Context) error {
	m.s.reset()
	m.s.truncated++
	return nil
}

type memAddresses struct{ s *memStore }

func (m memAddresses) List(ctx context.Context) ([]domain.Address, error) { return nil, nil }
func (m memAddresses) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	a, ok := m.s.addresses[id]
	if !ok {
		return nil, nil
	}
	return &domain.Address{ID: id, Street: a.Street, City: a.City, Postcode: a.Postcode, Country: a.Country}, nil
}
func (m memAddresses) Create(ctx context.Context, in domain.AddressInput) (int64, error) {
	id := m.s.id()
	m.s.addresses[id] = in
	return id, nil
}
func (m memAddresses) Update(ctx context.Context, id int64, in domain.AddressInput) (*int64, error) {
	return nil, nil
}
func (m memAddresses) Delete(ctx context.Context, id int64) (*int64, error) { return nil, nil }

type memCompanies struct{ s *memStore }

func (m memCompanies) List(ctx context.Context) ([]domain.RealtorCompany, error) { return nil, nil }
func (m memCompanies) GetByID(ctx context.Context, id int64) (*domain.RealtorCompany, error) {
	return nil, nil
}
func (m memCompanies) Create(ctx context.Context, in domain.CompanyInput) (int64, error) {
	id := m.s.id()
	m.s.companies[id] = in
	return id, nil
}
func (m memCompanies) Update(ctx context.Context, id int64, in domain.CompanyInput) (*int64, error) {
	return nil, nil
}
func (m memCompanies) Delete(ctx context.Context, id int64) (*int64, error) { return nil, nil }

type memUsers struct{ s *memStore }

func (m memUsers) List(ctx context.Context) ([]domain.User, error) { return nil, nil }
func (m memUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := m.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
func (m memUsers) GetByMail(ctx context.Context, mail string) (*domain.User, error) {
	for _, u := range m.s.users {
		if u.Mail == mail {
			return &u, nil
		}
	}
	return nil, nil
}
func (m memUsers) Create(ctx context.Context, user domain.User) (int64, error) {
	if existing, _ := m.GetByMail(ctx, user.Mail); existing != nil {
		return 0, &domain.ConstraintError{Kind: domain.ErrAlreadyExists, Constraint: "users_mail_key"}
	}
	user.ID = m.s.id()
	m.s.users[user.ID] = user
	return user.ID, nil
}
func (m memUsers) Update(ctx context.Context, id int64, user domain.User) (*int64, error) {
	return nil, nil
}
func (m memUsers) Delete(ctx context.Context, id int64) (*int64, error) { return nil, nil }
func (m memUsers) GetAgent(ctx context.Context, userID int64) (*domain.RealtorAgent, error) {
	license, ok := m.s.agents[userID]
	if !ok {
		return nil, nil
	}
	return &domain.RealtorAgent{UserID: userID, LicenseNumber: license}, nil
}
func (m memUsers) UpsertAgent(ctx context.Context, userID int64, licenseNumber string) (*domain.RealtorAgent, error) {
	m.s.agents[userID] = licenseNumber
	return &domain.RealtorAgent{ID: userID, UserID: userID, LicenseNumber: licenseNumber}, nil
}

type memListings struct{ s *memStore }

func (m memListings) List(ctx context.Context) ([]domain.ListingView, error) { return nil, nil }
func (m memListings) GetByID(ctx context.Context, id int64) (*domain.ListingView, error) {
	in, ok := m.s.listings[id]
	if !ok {
		return nil, nil
	}
	return &domain.ListingView{Listing: domain.Listing{ID: id, Title: in.Title, Price: in.Price}}, nil
}
func (m memListings) Create(ctx context.Context, in domain.ListingInput) (int64, error) {
	if m.s.failOn == "listings" {
		return 0, fmt.Errorf("insert listing: %w", &domain.ConstraintError{Kind: domain.ErrInvalidInput})
	}
	if _, ok := m.s.users[in.RealtorID]; !ok {
		return 0, &domain.ConstraintError{Kind: domain.ErrInvalidReference, Constraint: "listings_realtor_id_fkey"}
	}
	id := m.s.id()
	m.s.listings[id] = in
	return id, nil
}
func (m memListings) Update(ctx context.Context, id int64, in domain.ListingInput) (*int64, error) {
	return nil, nil
}
func (m memListings) Delete(ctx context.Context, id int64) (*int64, error) { return nil, nil }
func (m memListings) UpdatePrice(ctx context.Context, id int64, price float64) (*int64, error) {
	return nil, nil
}
func (m memListings) UpdateStatus(ctx context.Context, id int64, statusID int64) (*int64, error) {
	return nil, nil
}

type memFeatures struct{ s *memStore }

func (m memFeatures) List(ctx context.Context) ([]domain.Feature, error)             { return nil, nil }
func (m memFeatures) GetByID(ctx context.Context, id int64) (*domain.Feature, error) { return nil, nil }
func (m memFeatures) Update(ctx context.Context, id int64, name string) (*int64, error) {
	return nil, nil
}
func (m memFeatures) Delete(ctx context.Context, id int64) (*int64, error) { return nil, nil }
func (m memFeatures) Create(ctx context.Context, name string) (int64, error) {
	id := m.s.id()
	m.s.features[id] = name
	return id, nil
}
func (m memFeatures) ListForListing(ctx context.Context, listingID int64) ([]domain.Feature, error) {
	var out []domain.Feature
	for key := range m.s.listingFeats {
		if key[0] == listingID {
			out = append(out, domain.Feature{ID: key[1], Name: m.s.features[key[1]]})
		}
	}
	return out, nil
}
func (m memFeatures) AddToListing(ctx context.Context, listingID, featureID int64) error {
	m.s.listingFeats[[2]int64{listingID, featureID}] = true
	return nil
}
func (m memFeatures) RemoveFromListing(ctx context.Context, listingID, featureID int64) (*int64, error) {
	key := [2]int64{listingID, featureID}
	if !m.s.listingFeats[key] {
		return nil, nil
	}
	delete(m.s.listingFeats, key)
	return &featureID, nil
}

type memDictionaries struct{ s *memStore }

func (m memDictionaries) ListRoles(ctx context.Context) ([]domain.Role, error) { return nil, nil }
func (m memDictionaries) CreateRole(ctx context.Context, name string, description *string) (int64, error) {
	id := m.s.id()
	m.s.roles[id] = name
	return id, nil
}
func (m memDictionaries) ListStatuses(ctx context.Context) ([]domain.Status, error) { return nil, nil }
func (m memDictionaries) CreateStatus(ctx context.Context, name string) (int64, error) {
	id := m.s.id()
	m.s.statuses[id] = name
	return id, nil
}
func (m memDictionaries) ListPropertyTypes(ctx context.Context) ([]domain.PropertyType, error) {
	return nil, nil
}
func (m memDictionaries) CreatePropertyType(ctx context.Context, name string) (int64, error) {
	id := m.s.id()
	m.s.propertyTypes[id] = name
	return id, nil
}

type memImages struct{ s *memStore }

func (m memImages) List(ctx context.Context, owner domain.ImageOwner, ownerID int64) ([]domain.Image, error) {
	var out []domain.Image
	for _, img := range m.s.images {
		if img.OwnerID == ownerID {
			out = append(out, img)
		}
	}
	return out, nil
}
func (m memImages) Create(ctx context.Context, owner domain.ImageOwner, ownerID int64, in domain.ImageInput) (*domain.Image, error) {
	img := domain.Image{ID: m.s.id(), OwnerID: ownerID, Caption: in.Caption, URL: in.URL, CreatedAt: time.Now()}
	m.s.images[img.ID] = img
	return &img, nil
}
func (m memImages) Delete(ctx context.Context, owner domain.ImageOwner, id int64) (*int64, error) {
	if _, ok := m.s.images[id]; !ok {
		return nil, nil
	}
	delete(m.s.images, id)
	return &id, nil
}

type memFavorites struct{ s *memStore }

func (m memFavorites) ListForUser(ctx context.Context, userID int64) ([]domain.FavoriteListing, error) {
	var out []domain.FavoriteListing
	for key, at := range m.s.favorites {
		if key[0] == userID {
			out = append(out, domain.FavoriteListing{
				ListingView: domain.ListingView{Listing: domain.Listing{ID: key[1]}},
				FavoritedAt: at,
			})
		}
	}
	return out, nil
}
func (m memFavorites) Add(ctx context.Context, userID, listingID int64) error {
	key := [2]int64{userID, listingID}
	if _, ok := m.s.favorites[key]; !ok {
		m.s.favorites[key] = time.Now()
	}
	return nil
}
func (m memFavorites) Remove(ctx context.Context, userID, listingID int64) (*int64, error) {
	key := [2]int64{userID, listingID}
	if _, ok := m.s.favorites[key]; !ok {
		return nil, nil
	}
	delete(m.s.favorites, key)
	return &listingID, nil
}

type memMessages struct{ s *memStore }

func (m memMessages) Create(ctx context.Context, in domain.MessageInput) (*domain.Message, error) {
	msg := domain.Message{
		ID: m.s.id(), SenderID: in.SenderID, ReceiverID: in.ReceiverID,
		ListingID: in.ListingID, Content: in.Content, CreatedAt: time.Now().UTC(),
	}
	m.s.messages = append(m.s.messages, msg)
	return &msg, nil
}
func (m memMessages) ListForListing(ctx context.Context, listingID int64) ([]domain.Message, error) {
	var out []domain.Message
	for i := len(m.s.messages) - 1; i >= 0; i-- {
		if m.s.messages[i].ListingID == listingID {
			out = append(out, m.s.messages[i])
		}
	}
	return out, nil
}
func (m memMessages) ListForUser(ctx context.Context, userID int64) ([]domain.Message, error) {
	var out []domain.Message
	for i := len(m.s.messages) - 1; i >= 0; i-- {
		msg := m.s.messages[i]
		if msg.SenderID == userID || msg.ReceiverID == userID {
			out = append(out, msg)
		}
	}
	return out, nil
}
