package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/genesi-finance/genesi-client/internal/model"
)

type toggleRequest struct {
	Notified bool `json:"notificado"`
}

// ListWishes returns the user's wishes preserving server order.
func (c *Client) ListWishes(ctx context.Context, userID string) ([]model.Wish, error) {
	var wishes []model.Wish
	if err := c.do(ctx, http.MethodGet, "/api/wishes/"+url.PathEscape(userID), nil, &wishes); err != nil {
		return nil, err
	}
	return wishes, nil
}

// SetWishNotified flips the notification flag on a single wish.
func (c *Client) SetWishNotified(ctx context.Context, wishID string, notified bool) error {
	return c.do(ctx, http.MethodPatch, "/api/wishes/"+url.PathEscape(wishID), toggleRequest{Notified: notified}, nil)
}

// DeleteWish removes a wish.
func (c *Client) DeleteWish(ctx context.Context, wishID string) error {
	return c.do(ctx, http.MethodDelete, "/api/wishes/"+url.PathEscape(wishID), nil, nil)
}
