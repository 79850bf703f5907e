// Package api defines remote backend interfaces implemented by concrete clients.
package api

import (
	"context"

	"github.com/genesi-finance/genesi-client/internal/model"
)

// AuthAPI covers the authentication endpoints.
type AuthAPI interface {
	// Login checks credentials and returns the account user on success.
	Login(ctx context.Context, email, password string) (*model.User, error)
	// Register creates a new account. It does not log the user in.
	Register(ctx context.Context, name, email, password, whatsapp string) error
}

// WishAPI covers the purchase-wish endpoints.
type WishAPI interface {
	// ListWishes returns the user's wishes in server order.
	ListWishes(ctx context.Context, userID string) ([]model.Wish, error)
	// SetWishNotified sets the notification flag on a wish.
	SetWishNotified(ctx context.Context, wishID string, notified bool) error
	// DeleteWish removes a wish.
	DeleteWish(ctx context.Context, wishID string) error
}

// FinanceAPI covers the dashboard summary endpoint.
type FinanceAPI interface {
	// Summary returns the user's aggregated finance totals.
	Summary(ctx context.Context, userID string) (*model.FinanceSummary, error)
}
