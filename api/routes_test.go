package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type rejectAll struct{}

func (rejectAll) Resolve(context.Context, string) (uuid.UUID, error) {
	return uuid.Nil, ledger.ErrUnauthenticated
}

func newRouter() http.Handler {
	rest := &Rest{
		Logger:   logging.SetupLogging("error"),
		Service:  service.NewService(nil, nil, nil, nil),
		Database: okPinger{},
		Identity: rejectAll{},
	}
	return rest.Router()
}

func TestRouter_StatusIsPublic(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_V1RequiresBearerToken(t *testing.T) {
	router := newRouter()

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/v1/accounts", ""},
		{http.MethodPost, "/v1/transaction/bulk-delete", `{"ids":[]}`},
		{http.MethodPut, "/v1/account/" + uuid.Must(uuid.NewV4()).String() + "/default", ""},
		{http.MethodGet, "/v1/budget?accountID=" + uuid.Must(uuid.NewV4()).String(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer forged")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
