package usecase

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

var (
	seedRoles = []domain.FixtureRole{
		{Name: domain.RoleAdmin, Description: "Super user"},
		{Name: domain.RoleRealtor, Description: "Can sell houses"},
		{Name: domain.RoleUser, Description: "Looking to buy"},
	}
	seedStatuses      = []string{domain.StatusForSale, domain.StatusSold, domain.StatusBidding}
	seedPropertyTypes = []string{"Villa", "Apartment", "Cottage", "Row House"}
	seedFeatures      = []string{"Balcony", "Fireplace", "Pool", "Garage", "Elevator", "Garden", "Sauna"}
	seedEnergyClasses = []string{"A", "B", "C", "D", "E", "F", "G"}

	seedFirstNames = []string{"Erik", "Anna", "Lars", "Maria", "Johan", "Karin", "Nils", "Elin", "Oskar", "Sara", "Gustav", "Ida"}
	seedSurnames   = []string{"Andersson", "Johansson", "Karlsson", "Nilsson", "Eriksson", "Larsson", "Olsson", "Persson", "Svensson", "Lindberg"}
	seedStreets    = []string{"Storgatan", "Kungsgatan", "Drottninggatan", "Strandvagen", "Sveavagen", "Langgatan", "Skolgatan", "Parkvagen"}
	seedCities     = []struct{ name, postcode string }{
		{"Stockholm", "114"},
		{"Gothenburg", "411"},
		{"Malmo", "211"},
		{"Uppsala", "753"},
		{"Vasteras", "722"},
		{"Orebro", "702"},
	}
	seedAdjectives = []string{"Bright", "Cozy", "Spacious", "Renovated", "Charming", "Modern", "Quiet"}
	seedImageIDs   = []string{
		"photo-1568605114967-8130f3a36994",
		"photo-1570129477492-45c003edd2be",
		"photo-1600585154340-be6161a56a0c",
		"photo-1512917774080-9991f1c4c750",
		"photo-1502672260266-1c1ef2d93688",
		"photo-1493809842364-78817add7ffb",
	}
)

const (
	seedRealtorPassword = "secret123"
	seedBuyerPassword   = "buyer123"
)

// generateFixtures строит случайный, но воспроизводимый при одинаковом rng набор данных.
func generateFixtures(opts domain.SeedOptions, rng *rand.Rand) (domain.Fixtures, error) {
	if opts.Companies < 0 || opts.Realtors < 0 || opts.Buyers < 0 || opts.Listings < 0 {
		return domain.Fixtures{}, fmt.Errorf("seed counts must not be negative: %w", domain.ErrInvalidInput)
	}
	if opts.Listings > 0 && opts.Realtors == 0 {
		return domain.Fixtures{}, fmt.Errorf("listings need at least one realtor: %w", domain.ErrInvalidInput)
	}

	f := domain.Fixtures{
		Roles:         seedRoles,
		Statuses:      seedStatuses,
		PropertyTypes: seedPropertyTypes,
		Features:      seedFeatures,
	}

	for i := 1; i <= opts.Companies; i++ {
		address := randomAddress(rng)
		f.Companies = append(f.Companies, domain.FixtureCompany{
			Name:    fmt.Sprintf("MoonHem Agency %d", i),
			Address: &address,
		})
	}

	realtors := make([]string, 0, opts.Realtors)
	for i := 1; i <= opts.Realtors; i++ {
		u := randomUser(rng, i, domain.RoleRealtor, seedRealtorPassword)
		license := fmt.Sprintf("LIC-%06d", rng.Intn(1000000))
		u.LicenseNumber = &license
		if len(f.Companies) > 0 {
			company := f.Companies[rng.Intn(len(f.Companies))].Name
			u.Company = &company
		}
		f.Users = append(f.Users, u)
		realtors = append(realtors, u.Mail)
	}
	for i := 1; i <= opts.Buyers; i++ {
		u := randomUser(rng, opts.Realtors+i, domain.RoleUser, seedBuyerPassword)
		address := randomAddress(rng)
		u.Address = &address
		f.Users = append(f.Users, u)
	}

	for i := 0; i < opts.Listings; i++ {
		f.Listings = append(f.Listings, randomListing(rng, realtors[rng.Intn(len(realtors))]))
	}
	return f, nil
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

func randomAddress(rng *rand.Rand) domain.FixtureAddress {
	city := pick(rng, seedCities)
	return domain.FixtureAddress{
		Street:   fmt.Sprintf("%s %d", pick(rng, seedStreets), rng.Intn(120)+1),
		City:     city.name,
		Postcode: fmt.Sprintf("%s%02d", city.postcode, rng.Intn(100)),
		Country:  "Sweden",
	}
}

// randomUser - почта включает порядковый номер, поэтому уникальна в пределах одного запуска.
func randomUser(rng *rand.Rand, n int, role, password string) domain.FixtureUser {
	first := pick(rng, seedFirstNames)
	last := pick(rng, seedSurnames)
	phone := fmt.Sprintf("07%08d", rng.Intn(100000000))
	return domain.FixtureUser{
		FirstName:   first,
		Surname:     last,
		Mail:        fmt.Sprintf("%s.%s%d@moonhem.example", strings.ToLower(first), strings.ToLower(last), n),
		Password:    password,
		PhoneNumber: &phone,
		Role:        role,
	}
}

func randomListing(rng *rand.Rand, realtorMail string) domain.FixtureListing {
	propertyType := pick(rng, seedPropertyTypes)
	address := randomAddress(rng)
	livingArea := math.Round((35+rng.Float64()*215)*10) / 10
	pricePerSqm := 25000 + rng.Intn(40001)
	yearBuilt := 1900 + rng.Intn(124)

	l := domain.FixtureListing{
		Title:        fmt.Sprintf("%s %s in %s", pick(rng, seedAdjectives), propertyType, address.City),
		Description:  fmt.Sprintf("%s with %.0f sqm of living space on %s.", propertyType, livingArea, address.Street),
		Price:        math.Round(livingArea * float64(pricePerSqm)),
		LivingArea:   livingArea,
		RoomCount:    int(livingArea/25) + 1,
		YearBuilt:    yearBuilt,
		EnergyClass:  pick(rng, seedEnergyClasses),
		Address:      address,
		PropertyType: propertyType,
		Realtor:      realtorMail,
		Status:       pick(rng, seedStatuses),
	}

	if propertyType == "Apartment" {
		l.FloorNumber = rng.Intn(12) + 1
	} else {
		l.LotSize = float64(200 + rng.Intn(1301))
	}

	// Примерно в двух случаях из трех ремонта не было.
	if rng.Intn(3) == 0 {
		year := yearBuilt + rng.Intn(2025-yearBuilt)
		l.RenovationYear = &year
	}

	for _, idx := range rng.Perm(len(seedFeatures))[:rng.Intn(6)] {
		l.Features = append(l.Features, seedFeatures[idx])
	}
	for i := rng.Intn(5) + 1; i > 0; i-- {
		l.Images = append(l.Images, fmt.Sprintf("https://images.unsplash.com/%s?w=1200", pick(rng, seedImageIDs)))
	}
	return l
}
