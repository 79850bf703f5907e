// Package model defines domain entities shared by managers and API clients.
package model

import "time"

// User is the session subject returned by the login endpoint.
// It is owned by the session manager and only replaced by a re-login.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
}

// Wish is a purchase-wish notification record. Wishes are created
// server-side; the client only lists, toggles and deletes them.
// Wire field names follow the backend schema.
type Wish struct {
	ID               string     `json:"_id"`
	Description      string     `json:"descricao_produto"`
	PriceLimit       *float64   `json:"limite_preco,omitempty"`
	Mode             string     `json:"modo,omitempty"`
	BaseAveragePrice *float64   `json:"preco_medio_base,omitempty"`
	Notified         bool       `json:"notificado"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
}

// FinanceSummary aggregates the dashboard totals for a user.
type FinanceSummary struct {
	Income   float64 `json:"entradas"`
	Expenses float64 `json:"saidas"`
	Balance  float64 `json:"saldo"`
}
