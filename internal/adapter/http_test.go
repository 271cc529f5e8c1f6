// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joycesaquino/customer/internal/config"
	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/models"
)

const testCustomerJSON = `{"id":7,"firstName":"John","lastName":"Doe","email":"john.doe@example.com","phone":null,"createdAt":"2026-03-01T10:00:00Z","updatedAt":"2026-03-01T10:00:00Z","status":"ACTIVE"}`

func newTestAdapter(t *testing.T, serverURL string, token string) CustomerAdapter {
	t.Helper()
	a, err := NewHTTPCustomerAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: time.Second,
		Token:          token,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNewHTTPCustomerAdapter_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "full url", address: "http://localhost:8080/"},
		{name: "host and port", address: "localhost:8080"},
		{name: "empty", address: "  ", wantErr: true},
		{name: "scheme without host", address: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewHTTPCustomerAdapter(config.ClientAdapter{HTTPAddress: tt.address}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, a)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, a)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" localhost:8080/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)
}

func TestListCustomers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/customers", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		writeJSON(w, http.StatusOK, "["+testCustomerJSON+"]")
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, "secret-token").ListCustomers(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.CustomerID(7), got[0].ID)
	assert.Equal(t, models.StatusActive, got[0].Status)
}

func TestGetCustomerByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/customers/7":
			writeJSON(w, http.StatusOK, testCustomerJSON)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")

	got, err := a.GetCustomerByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "john.doe@example.com", got.Email)
	assert.Nil(t, got.Phone)

	got, err = a.GetCustomerByID(context.Background(), 8)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, got)
}

func TestGetCustomerByEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customers/by-email", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		if r.URL.Query().Get("email") == "john+doe@example.com" {
			writeJSON(w, http.StatusOK, testCustomerJSON)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")

	got, err := a.GetCustomerByEmail(context.Background(), "john+doe@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.CustomerID(7), got.ID)

	_, err = a.GetCustomerByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCustomer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/customers", r.URL.Path)

		var input models.CustomerCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))

		switch input.Email {
		case "taken@example.com":
			w.WriteHeader(http.StatusConflict)
		case "":
			http.Error(w, "required field is missing: email", http.StatusBadRequest)
		default:
			writeJSON(w, http.StatusCreated, testCustomerJSON)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	ctx := context.Background()

	got, err := a.CreateCustomer(ctx, models.CustomerCreate{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"})
	require.NoError(t, err)
	assert.Equal(t, models.CustomerID(7), got.ID)

	_, err = a.CreateCustomer(ctx, models.CustomerCreate{FirstName: "John", LastName: "Doe", Email: "taken@example.com"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, ErrConflict.Error(), err.Error())

	_, err = a.CreateCustomer(ctx, models.CustomerCreate{FirstName: "John"})
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "required field is missing: email")
}

func TestUpdateCustomer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/customers/7", r.URL.Path)

		var input models.CustomerUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, models.StatusInactive, input.Status)

		writeJSON(w, http.StatusOK, testCustomerJSON)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, "").UpdateCustomer(context.Background(), 7, models.CustomerUpdate{
		FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Status: models.StatusInactive,
	})

	require.NoError(t, err)
	assert.Equal(t, models.CustomerID(7), got.ID)
}

func TestDeleteCustomer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/api/customers/7" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")

	assert.NoError(t, a.DeleteCustomer(context.Background(), 7))
	assert.ErrorIs(t, a.DeleteCustomer(context.Background(), 8), ErrNotFound)
}

func TestGetAppInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/actuator/info", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"version":"1.2.0","buildCommit":"abc123"}`)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, "").GetAppInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.AppInfo{Version: "1.2.0", BuildCommit: "abc123"}, got)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: "Unauthorized", wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, body: "access denied", wantErr: ErrForbidden},
		{name: "internal", status: http.StatusInternalServerError, body: "Internal Server Error", wantErr: ErrInternalServerError},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
		{name: "unmapped with body", status: http.StatusTeapot, body: "short and stout", wantMsg: "http 418: short and stout"},
		{name: "unmapped without body", status: http.StatusBadGateway, wantMsg: "http 502: Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL, "").ListCustomers(context.Background())

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestRequest_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url, "").ListCustomers(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list customers request")
}
