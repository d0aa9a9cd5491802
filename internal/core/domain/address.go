package domain

// Address - адрес объекта, пользователя или компании. Листовая сущность:
// удаление ссылающихся строк адрес не удаляет.
type Address struct {
	ID       int64
	Street   string
	City     string
	Postcode string
	Country  string
}

// AddressInput - поля, которые задает клиент при создании или полной замене адреса.
type AddressInput struct {
	Street   string
	City     string
	Postcode string
	Country  string
}
