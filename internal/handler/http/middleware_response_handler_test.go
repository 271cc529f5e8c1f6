package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joycesaquino/customer/models"
)

func TestResponseWriter_RecordedByAccessLog(t *testing.T) {
	tests := []struct {
		name      string
		req       func() *http.Request
		setup     func(m testMocks)
		wantCode  int
		wantLevel string
	}{
		{
			name: "duplicate email",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(testCreateBody))
			},
			setup: func(m testMocks) {
				m.customers.EXPECT().ExistsByEmail(gomock.Any(), "john.doe@example.com").Return(true, nil)
			},
			wantCode:  http.StatusConflict,
			wantLevel: "info",
		},
		{
			name: "created",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(testCreateBody))
			},
			setup: func(m testMocks) {
				m.customers.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
				m.customers.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(testCustomerDTO(), nil)
			},
			wantCode:  http.StatusCreated,
			wantLevel: "info",
		},
		{
			name: "deleted",
			req:  func() *http.Request { return httptest.NewRequest(http.MethodDelete, "/api/customers/1", nil) },
			setup: func(m testMocks) {
				m.customers.EXPECT().GetCustomerByID(gomock.Any(), models.CustomerID(1)).Return(testCustomerDTO(), nil)
				m.customers.EXPECT().DeleteCustomer(gomock.Any(), models.CustomerID(1)).Return(nil)
			},
			wantCode:  http.StatusNoContent,
			wantLevel: "info",
		},
		{
			name: "update of unknown customer",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodPut, "/api/customers/5", strings.NewReader(testCreateBody))
			},
			setup: func(m testMocks) {
				m.customers.EXPECT().UpdateCustomer(gomock.Any(), models.CustomerID(5), gomock.Any()).Return(nil, nil)
			},
			wantCode:  http.StatusNotFound,
			wantLevel: "info",
		},
		{
			name: "unknown status value",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/customers",
					strings.NewReader(`{"firstName":"John","lastName":"Doe","email":"a@b.c","status":"DELETED"}`))
			},
			setup:     func(testMocks) {},
			wantCode:  http.StatusBadRequest,
			wantLevel: "info",
		},
		{
			name: "store failure",
			req:  func() *http.Request { return httptest.NewRequest(http.MethodGet, "/api/customers", nil) },
			setup: func(m testMocks) {
				m.customers.EXPECT().ListCustomers(gomock.Any()).Return(nil, errUnexpected)
			},
			wantCode:  http.StatusInternalServerError,
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			logs := captureLogs(h)
			tt.setup(m)

			rr := serve(h.Init(), tt.req())
			require.Equal(t, tt.wantCode, rr.Code)

			entry := accessLogEntry(t, logs)
			assert.EqualValues(t, tt.wantCode, entry["status"])
			assert.EqualValues(t, rr.Body.Len(), entry["size"])
			assert.Equal(t, tt.wantLevel, entry["level"])
		})
	}
}

// withLogging sits outside withGZip, so the recorded size is the wire size.
func TestResponseWriter_RecordsCompressedSize(t *testing.T) {
	h, m := newTestHandler(t)
	logs := captureLogs(h)
	m.customers.EXPECT().GetCustomerByID(gomock.Any(), models.CustomerID(1)).Return(testCustomerDTO(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/customers/1", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := serve(h.Init(), req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	entry := accessLogEntry(t, logs)
	assert.EqualValues(t, rr.Body.Len(), entry["size"])
}

func TestResponseWriter_Status(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantSize   int
	}{
		{
			name: "first header wins",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusConflict)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "body without header",
			write: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`[]`))
			},
			wantStatus: http.StatusOK,
			wantSize:   2,
		},
		{
			name: "header after body is ignored",
			write: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"id":1}`))
				w.WriteHeader(http.StatusCreated)
			},
			wantStatus: http.StatusOK,
			wantSize:   8,
		},
		{
			name: "split body",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":`))
				_, _ = w.Write([]byte(`1}`))
			},
			wantStatus: http.StatusCreated,
			wantSize:   8,
		},
		{
			name:       "nothing written",
			write:      func(http.ResponseWriter) {},
			wantStatus: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			tt.write(w)

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, rr.Code)
			}
		})
	}
}

func TestResponseWriter_ResponseController(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	require.NoError(t, http.NewResponseController(w).Flush())

	assert.True(t, rr.Flushed)
	assert.Same(t, rr, w.Unwrap())
}
