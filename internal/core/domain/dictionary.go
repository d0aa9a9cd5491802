package domain

// Названия ролей, которые создает сидер.
const (
	RoleAdmin   = "Admin"
	RoleRealtor = "Realtor"
	RoleUser    = "User"
)

// Названия статусов, которые создает сидер. Статусы хранятся в таблице,
// поэтому список можно расширять без изменения схемы.
const (
	StatusForSale = "For Sale"
	StatusSold    = "Sold"
	StatusBidding = "Bidding in progress"
)

type Role struct {
	ID          int64
	Name        string
	Description *string
}

type PropertyType struct {
	ID   int64
	Name string
}

type Status struct {
	ID   int64
	Name string
}

type Feature struct {
	ID   int64
	Name string
}
