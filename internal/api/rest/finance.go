package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/genesi-finance/genesi-client/internal/model"
)

// Summary returns the aggregated finance totals for the dashboard.
func (c *Client) Summary(ctx context.Context, userID string) (*model.FinanceSummary, error) {
	var s model.FinanceSummary
	if err := c.do(ctx, http.MethodGet, "/api/finance/summary/"+url.PathEscape(userID), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
