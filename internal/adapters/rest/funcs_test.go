package rest

import (
	"context"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

// Адаптеры функций к портам use case'ов, по аналогии с http.HandlerFunc.

type createAddressFunc func(context.Context, domain.AddressInput) (int64, error)

func (f createAddressFunc) Execute(ctx context.Context, in domain.AddressInput) (int64, error) {
	return f(ctx, in)
}

type getListingsFunc func(context.Context) ([]domain.ListingView, error)

func (f getListingsFunc) Execute(ctx context.Context) ([]domain.ListingView, error) { return f(ctx) }

type getListingFunc func(context.Context, int64) (*domain.ListingView, error)

func (f getListingFunc) Execute(ctx context.Context, id int64) (*domain.ListingView, error) {
	return f(ctx, id)
}

type createListingFunc func(context.Context, domain.ListingInput) (int64, error)

func (f createListingFunc) Execute(ctx context.Context, in domain.ListingInput) (int64, error) {
	return f(ctx, in)
}

type updateListingFunc func(context.Context, int64, domain.ListingInput) error

func (f updateListingFunc) Execute(ctx context.Context, id int64, in domain.ListingInput) error {
	return f(ctx, id, in)
}

type updatePriceFunc func(context.Context, int64, float64) error

func (f updatePriceFunc) Execute(ctx context.Context, id int64, price float64) error {
	return f(ctx, id, price)
}

type updateStatusFunc func(context.Context, int64, int64) error

func (f updateStatusFunc) Execute(ctx context.Context, id int64, statusID int64) error {
	return f(ctx, id, statusID)
}

type deleteFunc func(context.Context, int64) error

func (f deleteFunc) Execute(ctx context.Context, id int64) error { return f(ctx, id) }

type sendMessageFunc func(context.Context, domain.MessageInput) (*domain.Message, error)

func (f sendMessageFunc) Execute(ctx context.Context, in domain.MessageInput) (*domain.Message, error) {
	return f(ctx, in)
}

type listMessagesFunc func(context.Context, int64) ([]domain.Message, error)

func (f listMessagesFunc) Execute(ctx context.Context, id int64) ([]domain.Message, error) {
	return f(ctx, id)
}

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }
