package domain

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User - пользователь платформы (администратор, риелтор или покупатель).
// PasswordHash никогда не покидает сервис.
type User struct {
	ID           int64
	FirstName    string
	Surname      string
	Mail         string
	PasswordHash string
	PhoneNumber  *string
	Birthdate    *time.Time
	RoleID       int64
	AddressID    *int64
	CompanyID    *int64
	CreatedAt    time.Time
}

// UserInput - данные для создания или полной замены пользователя.
// Password здесь в открытом виде, хэшируется в use case перед записью.
type UserInput struct {
	FirstName   string
	Surname     string
	Mail        string
	Password    string
	PhoneNumber *string
	Birthdate   *time.Time
	RoleID      int64
	AddressID   *int64
	CompanyID   *int64
}

// RealtorAgent - расширение пользователя-риелтора (1:1).
type RealtorAgent struct {
	ID            int64
	UserID        int64
	LicenseNumber string
}

// HashPassword хэширует пароль с использованием bcrypt.
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, bcrypt.DefaultCost)
}

// HashPasswordWithCost нужен сидеру, которому не нужна стойкость DefaultCost на тысячах строк.
func HashPasswordWithCost(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword сравнивает предоставленный пароль с хэшем, хранящимся у пользователя.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
