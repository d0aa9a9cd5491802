package domain

import "time"

// RealtorCompany - риелторское агентство.
type RealtorCompany struct {
	ID        int64
	Name      string
	AddressID *int64
	Phone     *string
	CreatedAt time.Time
}

type CompanyInput struct {
	Name      string
	AddressID *int64
	Phone     *string
}
