package rest

import (
	"time"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

// dateLayout - формат birthdate в запросах и ответах.
const dateLayout = "2006-01-02"

// --- Общие ответы ---

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type InfoResponse struct {
	Message string `json:"message"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// --- Запросы ---

type ListingRequest struct {
	Title          string   `json:"title" validate:"required,max=255"`
	Description    string   `json:"description" validate:"required"`
	Price          *float64 `json:"price" validate:"required,gte=0"`
	LivingArea     float64  `json:"living_area" validate:"gte=0"`
	LotSize        float64  `json:"lot_size" validate:"gte=0"`
	RoomCount      int      `json:"room_count" validate:"gte=0"`
	YearBuilt      int      `json:"year_built"`
	FloorNumber    int      `json:"floor_number"`
	EnergyClass    string   `json:"energy_class" validate:"max=10"`
	RenovationYear *int     `json:"renovation_year"`
	AddressID      int64    `json:"address_id" validate:"required,gt=0"`
	PropertyTypeID int64    `json:"property_type_id" validate:"required,gt=0"`
	RealtorID      int64    `json:"realtor_id" validate:"required,gt=0"`
	StatusID       int64    `json:"status_id" validate:"required,gt=0"`
}

// toDomain вызывается только после валидации, Price уже не nil.

func (r ListingRequest) toDomain() domain.ListingInput {
	return domain.ListingInput{
		Title:          r.Title,
		Description:    r.Description,
		Price:          *r.Price,
		LivingArea:     r.LivingArea,
		LotSize:        r.LotSize,
		RoomCount:      r.RoomCount,
		YearBuilt:      r.YearBuilt,
		FloorNumber:    r.FloorNumber,
		EnergyClass:    r.EnergyClass,
		RenovationYear: r.RenovationYear,
		AddressID:      r.AddressID,
		PropertyTypeID: r.PropertyTypeID,
		RealtorID:      r.RealtorID,
		StatusID:       r.StatusID,
	}
}

// PriceUpdateRequest - указатель нужен, чтобы отличить отсутствующую цену от нулевой.
type PriceUpdateRequest struct {
	Price *float64 `json:"price" validate:"required,gte=0"`
}

type StatusUpdateRequest struct {
	StatusID int64 `json:"status_id" validate:"required,gt=0"`
}

type UserRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=255"`
	Surname     string  `json:"surname" validate:"required,max=255"`
	Mail        string  `json:"mail" validate:"required,email,max=255"`
	Password    string  `json:"password" validate:"required,min=6,max=72"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=50"`
	Birthdate   *string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	RoleID      int64   `json:"role_id" validate:"required,gt=0"`
	AddressID   *int64  `json:"address_id" validate:"omitempty,gt=0"`
	CompanyID   *int64  `json:"company_id" validate:"omitempty,gt=0"`
}

// toDomain вызывается после валидации, поэтому формат даты уже проверен.
func (r UserRequest) toDomain() domain.UserInput {
	in := domain.UserInput{
		FirstName:   r.FirstName,
		Surname:     r.Surname,
		Mail:        r.Mail,
		Password:    r.Password,
		PhoneNumber: r.PhoneNumber,
		RoleID:      r.RoleID,
		AddressID:   r.AddressID,
		CompanyID:   r.CompanyID,
	}
	if r.Birthdate != nil {
		if t, err := time.Parse(dateLayout, *r.Birthdate); err == nil {
			in.Birthdate = &t
		}
	}
	return in
}

type CompanyRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	AddressID *int64  `json:"address_id" validate:"omitempty,gt=0"`
	Phone     *string `json:"phone" validate:"omitempty,max=50"`
}

type AddressRequest struct {
	Street   string `json:"street" validate:"required,max=255"`
	City     string `json:"city" validate:"required,max=255"`
	Postcode string `json:"postcode" validate:"required,max=20"`
	Country  string `json:"country" validate:"required,max=100"`
}

// NameRequest - тело для особенностей, статусов и типов недвижимости.
type NameRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type ChatMessageRequest struct {
	SenderID   int64  `json:"sender_id" validate:"required,gt=0"`
	ReceiverID int64  `json:"receiver_id" validate:"required,gt=0"`
	ListingID  int64  `json:"listing_id" validate:"required,gt=0"`
	Content    string `json:"content" validate:"required"`
}

type ImageRequest struct {
	Caption *string `json:"caption" validate:"omitempty,max=255"`
	URL     string  `json:"url" validate:"required,url"`
}

type FavoriteRequest struct {
	ListingID int64 `json:"listing_id" validate:"required,gt=0"`
}

type ListingFeatureRequest struct {
	FeatureID int64 `json:"feature_id" validate:"required,gt=0"`
}

type AgentRequest struct {
	LicenseNumber string `json:"license_number" validate:"required,max=50"`
}

// --- Ответы ---

// ListingResponse - объявление вместе с полями адреса, как их отдавал прежний API.
type ListingResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	LivingArea     float64   `json:"living_area"`
	LotSize        float64   `json:"lot_size"`
	RoomCount      int       `json:"room_count"`
	YearBuilt      int       `json:"year_built"`
	FloorNumber    int       `json:"floor_number"`
	EnergyClass    string    `json:"energy_class"`
	RenovationYear *int      `json:"renovation_year"`
	AddressID      int64     `json:"address_id"`
	PropertyTypeID int64     `json:"property_type_id"`
	RealtorID      int64     `json:"realtor_id"`
	StatusID       int64     `json:"status_id"`
	CreatedAt      time.Time `json:"created_at"`

	Address      *string `json:"address"`
	City         *string `json:"city"`
	Postcode     *string `json:"postcode"`
	Country      *string `json:"country"`
	PropertyType *string `json:"property_type"`
	Status       *string `json:"status"`
}

type ListingsResponse struct {
	Listings []ListingResponse `json:"listings"`
}

func toListingResponse(v domain.ListingView) ListingResponse {
	return ListingResponse{
		ID:             v.ID,
		Title:          v.Title,
		Description:    v.Description,
		Price:          v.Price,
		LivingArea:     v.LivingArea,
		LotSize:        v.LotSize,
		RoomCount:      v.RoomCount,
		YearBuilt:      v.YearBuilt,
		FloorNumber:    v.FloorNumber,
		EnergyClass:    v.EnergyClass,
		RenovationYear: v.RenovationYear,
		AddressID:      v.AddressID,
		PropertyTypeID: v.PropertyTypeID,
		RealtorID:      v.RealtorID,
		StatusID:       v.StatusID,
		CreatedAt:      v.CreatedAt,
		Address:        v.Street,
		City:           v.City,
		Postcode:       v.Postcode,
		Country:        v.Country,
		PropertyType:   v.PropertyType,
		Status:         v.Status,
	}
}

// UserResponse никогда не содержит пароль или его хэш.
type UserResponse struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	Surname     string    `json:"surname"`
	Mail        string    `json:"mail"`
	PhoneNumber *string   `json:"phone_number"`
	Birthdate   *string   `json:"birthdate"`
	RoleID      int64     `json:"role_id"`
	AddressID   *int64    `json:"address_id"`
	CompanyID   *int64    `json:"company_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

type LoginResponse struct {
	User UserResponse `json:"user"`
}

func toUserResponse(u domain.User) UserResponse {
	resp := UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		Surname:     u.Surname,
		Mail:        u.Mail,
		PhoneNumber: u.PhoneNumber,
		RoleID:      u.RoleID,
		AddressID:   u.AddressID,
		CompanyID:   u.CompanyID,
		CreatedAt:   u.CreatedAt,
	}
	if u.Birthdate != nil {
		b := u.Birthdate.Format(dateLayout)
		resp.Birthdate = &b
	}
	return resp
}

type AgentResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	LicenseNumber string `json:"license_number"`
}

type CompanyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	AddressID *int64    `json:"address_id"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type CompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

type AddressResponse struct {
	ID       int64  `json:"id"`
	Street   string `json:"street"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

type AddressesResponse struct {
	Addresses []AddressResponse `json:"addresses"`
}

// NamedResponse - элемент справочника: особенность, статус или тип недвижимости.
type NamedResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type FeaturesResponse struct {
	Features []NamedResponse `json:"features"`
}

type StatusesResponse struct {
	Statuses []NamedResponse `json:"statuses"`
}

type PropertyTypesResponse struct {
	PropertyTypes []NamedResponse `json:"property_types"`
}

type RoleResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type RolesResponse struct {
	Roles []RoleResponse `json:"roles"`
}

type ImageResponse struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Caption   *string   `json:"caption"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type ImagesResponse struct {
	Images []ImageResponse `json:"images"`
}

func toImageResponse(img domain.Image) ImageResponse {
	return ImageResponse{ID: img.ID, OwnerID: img.OwnerID, Caption: img.Caption, URL: img.URL, CreatedAt: img.CreatedAt}
}

type FavoriteResponse struct {
	ListingResponse
	FavoritedAt time.Time `json:"favorited_at"`
}

type FavoritesResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
}

type ChatMessageResponse struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	ListingID  int64     `json:"listing_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func toChatMessageResponse(m domain.Message) ChatMessageResponse {
	return ChatMessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		ListingID:  m.ListingID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}

func toChatMessagesResponse(messages []domain.Message) []ChatMessageResponse {
	out := make([]ChatMessageResponse, len(messages))
	for i, m := range messages {
		out[i] = toChatMessageResponse(m)
	}
	return out
}
