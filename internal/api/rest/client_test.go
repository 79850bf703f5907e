package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/genesi-finance/genesi-client/internal/errs"
	"github.com/genesi-finance/genesi-client/internal/model"
)

func newServer(t *testing.T, h http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv, New(srv.URL, srv.Client(), 5*time.Second)
}

func TestClient_Login_OK(t *testing.T) {
	var gotBody loginRequest
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{"user": map[string]string{
			"id": "u1", "name": "Ana", "email": "a@x.com", "whatsapp": "+550000",
		}})
	})

	u, err := c.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	require.Equal(t, &model.User{ID: "u1", Name: "Ana", Email: "a@x.com", WhatsApp: "+550000"}, u)
	require.Equal(t, loginRequest{Email: "a@x.com", Password: "pw"}, gotBody)
}

func TestClient_Login_Failures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name:    "401",
			handler: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusUnauthorized) },
			wantErr: errs.ErrUnauthorized,
		},
		{
			name:    "500",
			handler: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			wantErr: errs.ErrBadResponse,
		},
		{
			name: "200 without user object",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
			wantErr: errs.ErrBadResponse,
		},
		{
			name: "200 with garbage body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			wantErr: errs.ErrBadResponse,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, c := newServer(t, tc.handler)
			u, err := c.Login(context.Background(), "a@x.com", "pw")
			require.Nil(t, u)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestClient_Register(t *testing.T) {
	var gotBody registerRequest
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	err := c.Register(context.Background(), "Ana", "a@x.com", "pw", "+550000")
	require.NoError(t, err)
	require.Equal(t, registerRequest{Name: "Ana", Email: "a@x.com", Password: "pw", WhatsApp: "+550000"}, gotBody)

	_, c = newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	require.ErrorIs(t, c.Register(context.Background(), "Ana", "a@x.com", "pw", "+550000"), errs.ErrAlreadyExists)
}

func TestClient_ListWishes_PreservesServerOrder(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/wishes/u1", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"_id":"w2","descricao_produto":"monitor","notificado":true},
			{"_id":"w1","descricao_produto":"teclado","limite_preco":150.5,"modo":"preco_alvo","notificado":false}
		]`))
	})

	wishes, err := c.ListWishes(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, wishes, 2)
	require.Equal(t, "w2", wishes[0].ID)
	require.Equal(t, "w1", wishes[1].ID)
	require.NotNil(t, wishes[1].PriceLimit)
	require.Equal(t, 150.5, *wishes[1].PriceLimit)
	require.Equal(t, "preco_alvo", wishes[1].Mode)
}

func TestClient_SetWishNotified_And_Delete(t *testing.T) {
	var method, path string
	var gotBody toggleRequest
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		if r.Method == http.MethodPatch {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		}
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.SetWishNotified(context.Background(), "w1", true))
	require.Equal(t, http.MethodPatch, method)
	require.Equal(t, "/api/wishes/w1", path)
	require.True(t, gotBody.Notified)

	require.NoError(t, c.DeleteWish(context.Background(), "w1"))
	require.Equal(t, http.MethodDelete, method)
	require.Equal(t, "/api/wishes/w1", path)

	_, c = newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	require.ErrorIs(t, c.DeleteWish(context.Background(), "w9"), errs.ErrNotFound)
}

func TestClient_Summary(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/finance/summary/u1", r.URL.Path)
		_, _ = w.Write([]byte(`{"entradas":1000.5,"saidas":300,"saldo":700.5}`))
	})

	s, err := c.Summary(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, &model.FinanceSummary{Income: 1000.5, Expenses: 300, Balance: 700.5}, s)
}

func TestTransport_SetsRequestID(t *testing.T) {
	var gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-Id")
	}))
	t.Cleanup(srv.Close)

	hc := &http.Client{Transport: NewTransport(nil, zap.NewNop())}
	c := New(srv.URL, hc, 0)
	require.NoError(t, c.do(context.Background(), http.MethodGet, "/", nil, nil))
	require.NotEmpty(t, gotID)
}
