package domain

import "time"

// Listing - объявление о продаже объекта недвижимости в том виде, в каком оно хранится.
type Listing struct {
	ID             int64
	Title          string
	Description    string
	Price          float64
	LivingArea     float64
	LotSize        float64
	RoomCount      int
	YearBuilt      int
	FloorNumber    int
	EnergyClass    string
	RenovationYear *int
	AddressID      int64
	PropertyTypeID int64
	RealtorID      int64
	StatusID       int64
	CreatedAt      time.Time
}

// ListingView - объявление вместе с данными адреса и названиями типа и статуса (LEFT JOIN).
// Поля join'а - указатели: LEFT JOIN может их не найти.
type ListingView struct {
	Listing

	Street       *string
	City         *string
	Postcode     *string
	Country      *string
	PropertyType *string
	Status       *string
}

// ListingInput - полный набор изменяемых полей объявления.
type ListingInput struct {
	Title          string
	Description    string
	Price          float64
	LivingArea     float64
	LotSize        float64
	RoomCount      int
	YearBuilt      int
	FloorNumber    int
	EnergyClass    string
	RenovationYear *int
	AddressID      int64
	PropertyTypeID int64
	RealtorID      int64
	StatusID       int64
}
