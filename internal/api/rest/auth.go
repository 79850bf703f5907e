package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/genesi-finance/genesi-client/internal/errs"
	"github.com/genesi-finance/genesi-client/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User *model.User `json:"user"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	WhatsApp string `json:"whatsapp"`
}

// Login posts credentials and returns the account user. A 200 without a user
// object in the body counts as a failure.
func (c *Client) Login(ctx context.Context, email, password string) (*model.User, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil || resp.User.ID == "" {
		return nil, fmt.Errorf("login: missing user in response: %w", errs.ErrBadResponse)
	}
	return resp.User, nil
}

// Register creates an account. The backend answers 201 on success.
func (c *Client) Register(ctx context.Context, name, email, password, whatsapp string) error {
	req := registerRequest{Name: name, Email: email, Password: password, WhatsApp: whatsapp}
	return c.do(ctx, http.MethodPost, "/api/auth/register", req, nil)
}
