package domain

import "errors"

// Ошибки, которые use case'ы возвращают наружу. REST-слой сопоставляет их со статус-кодами.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Ошибки "не найдено" для конкретных сущностей. Все они оборачивают ErrNotFound.
var (
	ErrListingNotFound      = notFound("listing")
	ErrUserNotFound         = notFound("user")
	ErrCompanyNotFound      = notFound("company")
	ErrAddressNotFound      = notFound("address")
	ErrFeatureNotFound      = notFound("feature")
	ErrPropertyTypeNotFound = notFound("property type")
	ErrStatusNotFound       = notFound("status")
	ErrImageNotFound        = notFound("image")
	ErrFavoriteNotFound     = notFound("favorite")
	ErrAgentNotFound        = notFound("realtor agent")
)

type entityNotFoundError struct {
	entity string
}

func notFound(entity string) error {
	return &entityNotFoundError{entity: entity}
}

func (e *entityNotFoundError) Error() string {
	return e.entity + " not found"
}

func (e *entityNotFoundError) Unwrap() error {
	return ErrNotFound
}

// ConstraintError описывает нарушение ограничения БД (unique, foreign key, not null...).
type ConstraintError struct {
	Kind       error  // ErrAlreadyExists, ErrInvalidReference или ErrInvalidInput
	Constraint string // имя ограничения из Postgres, если известно
	Detail     string
	Err        error
}

func (e *ConstraintError) Error() string {
	msg := e.Kind.Error()
	if e.Constraint != "" {
		msg += " (" + e.Constraint + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap позволяет делать errors.Is(err, domain.ErrAlreadyExists) и добираться до исходной ошибки драйвера.
func (e *ConstraintError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
