package domain

// SeedOptions - параметры генерации случайных данных.
type SeedOptions struct {
	Companies int
	Realtors  int
	Buyers    int
	Listings  int
	// RandSeed делает генерацию воспроизводимой. 0 - взять текущее время.
	RandSeed int64
}

// DefaultSeedOptions повторяет объемы исходного скрипта наполнения.
func DefaultSeedOptions() SeedOptions {
	return SeedOptions{
		Companies: 6,
		Realtors:  10,
		Buyers:    20,
		Listings:  80,
	}
}

// Fixtures - детерминированный набор данных, загружаемый из JSON-файла.
// Ссылки между сущностями задаются по имени/почте, а не по id.
type Fixtures struct {
	Roles         []FixtureRole    `json:"roles"`
	Statuses      []string         `json:"statuses"`
	PropertyTypes []string         `json:"property_types"`
	Features      []string         `json:"features"`
	Companies     []FixtureCompany `json:"companies"`
	Users         []FixtureUser    `json:"users"`
	Listings      []FixtureListing `json:"listings"`
}

type FixtureRole struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type FixtureAddress struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

type FixtureCompany struct {
	Name    string          `json:"name"`
	Address *FixtureAddress `json:"address,omitempty"`
}

type FixtureUser struct {
	FirstName     string          `json:"first_name"`
	Surname       string          `json:"surname"`
	Mail          string          `json:"mail"`
	Password      string          `json:"password"`
	PhoneNumber   *string         `json:"phone_number,omitempty"`
	Role          string          `json:"role"`
	Company       *string         `json:"company,omitempty"`
	LicenseNumber *string         `json:"license_number,omitempty"`
	Address       *FixtureAddress `json:"address,omitempty"`
}

type FixtureListing struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	LivingArea     float64        `json:"living_area"`
	LotSize        float64        `json:"lot_size"`
	RoomCount      int            `json:"room_count"`
	YearBuilt      int            `json:"year_built"`
	FloorNumber    int            `json:"floor_number"`
	EnergyClass    string         `json:"energy_class"`
	RenovationYear *int           `json:"renovation_year,omitempty"`
	Address        FixtureAddress `json:"address"`
	PropertyType   string         `json:"property_type"`
	Realtor        string         `json:"realtor"`
	Status         string         `json:"status"`
	Features       []string       `json:"features,omitempty"`
	Images         []string       `json:"images,omitempty"`
}

// SeedStats - сколько строк вставил сидер.
type SeedStats struct {
	Companies int
	Realtors  int
	Buyers    int
	// Admins считается только при загрузке фикстур, генератор их не создает.
	Admins   int
	Listings int
	Images   int
	Features int
}
