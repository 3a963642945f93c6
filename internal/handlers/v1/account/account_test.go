package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/service"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) CreateAccount(ctx context.Context, ownerID uuid.UUID, input service.NewAccount) (*service.Account, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Account), args.Error(1)
}

func (m *mockAccountService) ListAccounts(ctx context.Context, ownerID uuid.UUID, cursor *service.AccountCursor) ([]service.Account, *service.AccountCursor, error) {
	args := m.Called(ctx, ownerID, cursor)
	var accounts []service.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]service.Account)
	}
	var next *service.AccountCursor
	if args.Get(1) != nil {
		next = args.Get(1).(*service.AccountCursor)
	}
	return accounts, next, args.Error(2)
}

func (m *mockAccountService) GetAccount(ctx context.Context, ownerID, accountID uuid.UUID) (*service.Account, error) {
	args := m.Called(ctx, ownerID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Account), args.Error(1)
}

func (m *mockAccountService) SetDefaultAccount(ctx context.Context, ownerID, accountID uuid.UUID) (*service.Account, error) {
	args := m.Called(ctx, ownerID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Account), args.Error(1)
}

var testOwner = uuid.Must(uuid.NewV4())

// newTestAPI registers every account handler against a humatest API that
// authenticates all requests as testOwner.
func newTestAPI(t *testing.T, svc *mockAccountService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(auth.StaticOwner(testOwner))
	NewCreateAccountHandler(svc).Register(api)
	NewListAccountsHandler(svc).Register(api)
	NewGetAccountHandler(svc).Register(api)
	NewSetDefaultAccountHandler(svc).Register(api)
	return api
}

func sampleAccount(isDefault bool) *service.Account {
	return &service.Account{
		ID:              uuid.Must(uuid.NewV4()),
		Name:            "Everyday",
		Type:            ledger.AccountTypeCurrent,
		Balance:         decimal.RequireFromString("1000"),
		StartingBalance: decimal.RequireFromString("1000"),
		IsDefault:       isDefault,
		CreatedAt:       time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// -- parseCreateAccountInput unit tests --

func TestParseCreateAccountInput_DefaultsBalance(t *testing.T) {
	parsed, err := parseCreateAccountInput(&CreateAccountInput{Body: CreateAccountBody{Name: "Savings", Type: "SAVINGS"}})
	require.NoError(t, err)
	assert.True(t, parsed.InitialBalance.IsZero())
	assert.Equal(t, ledger.AccountTypeSavings, parsed.Type)
}

func TestParseCreateAccountInput_InvalidBalance(t *testing.T) {
	_, err := parseCreateAccountInput(&CreateAccountInput{Body: CreateAccountBody{Name: "x", Type: "SAVINGS", InitialBalance: "lots"}})
	assert.Error(t, err)
}

// -- HTTP tests --

func TestHTTP_CreateAccount_Success(t *testing.T) {
	created := sampleAccount(true)
	mockSvc := new(mockAccountService)
	mockSvc.On("CreateAccount", mock.Anything, testOwner, mock.MatchedBy(func(in service.NewAccount) bool {
		return in.Name == "Everyday" && in.Type == ledger.AccountTypeCurrent &&
			in.InitialBalance.Equal(decimal.RequireFromString("1000"))
	})).Return(created, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/account", CreateAccountBody{
		Name:           "Everyday",
		Type:           "CURRENT",
		InitialBalance: "1000",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, created.ID.String(), body.ID)
	assert.True(t, body.IsDefault)
	assert.Nil(t, body.TransactionCount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_InvalidType(t *testing.T) {
	mockSvc := new(mockAccountService)

	resp := newTestAPI(t, mockSvc).Post("/v1/account", CreateAccountBody{Name: "Cash", Type: "CHECKING"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateAccount")
}

func TestHTTP_CreateAccount_EmptyName(t *testing.T) {
	mockSvc := new(mockAccountService)

	resp := newTestAPI(t, mockSvc).Post("/v1/account", CreateAccountBody{Name: "", Type: "CURRENT"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateAccount")
}

func TestHTTP_CreateAccount_ServiceError(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("CreateAccount", mock.Anything, testOwner, mock.Anything).
		Return(nil, &ledger.StorageError{Stage: ledger.StageCommit, Err: errors.New("eof")})

	resp := newTestAPI(t, mockSvc).Post("/v1/account", CreateAccountBody{Name: "Cash", Type: "CURRENT"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_ListAccounts_Empty(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("ListAccounts", mock.Anything, testOwner, (*service.AccountCursor)(nil)).Return(nil, nil, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/accounts")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.Accounts)
	assert.Empty(t, body.Accounts)
	assert.Nil(t, body.NextCursor)
}

func TestHTTP_ListAccounts_WithCursor(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("ListAccounts", mock.Anything, testOwner, &service.AccountCursor{Position: 2, Limit: 2}).
		Return([]service.Account{*sampleAccount(true), *sampleAccount(false)}, &service.AccountCursor{Position: 4, Limit: 2}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/accounts?position=2&limit=2")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Accounts, 2)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 4, body.NextCursor.Position)
}

func TestHTTP_GetAccount_Success(t *testing.T) {
	acc := sampleAccount(false)
	acc.TransactionCount = 3
	mockSvc := new(mockAccountService)
	mockSvc.On("GetAccount", mock.Anything, testOwner, acc.ID).Return(acc, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/account/" + acc.ID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.TransactionCount)
	assert.Equal(t, 3, *body.TransactionCount)
}

func TestHTTP_GetAccount_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ledger.ErrNotFound, http.StatusNotFound},
		{"forbidden", ledger.ErrForbidden, http.StatusForbidden},
		{"storage", &ledger.StorageError{Stage: ledger.StageFetch, Err: errors.New("down")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.Must(uuid.NewV4())
			mockSvc := new(mockAccountService)
			mockSvc.On("GetAccount", mock.Anything, testOwner, id).Return(nil, tt.err)

			resp := newTestAPI(t, mockSvc).Get("/v1/account/" + id.String())

			assert.Equal(t, tt.want, resp.Code)
		})
	}
}

func TestHTTP_GetAccount_InvalidID(t *testing.T) {
	mockSvc := new(mockAccountService)

	resp := newTestAPI(t, mockSvc).Get("/v1/account/not-a-uuid")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GetAccount")
}

func TestHTTP_SetDefaultAccount_Success(t *testing.T) {
	acc := sampleAccount(true)
	mockSvc := new(mockAccountService)
	mockSvc.On("SetDefaultAccount", mock.Anything, testOwner, acc.ID).Return(acc, nil)

	resp := newTestAPI(t, mockSvc).Put("/v1/account/"+acc.ID.String()+"/default")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.IsDefault)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_SetDefaultAccount_Forbidden(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockAccountService)
	mockSvc.On("SetDefaultAccount", mock.Anything, testOwner, id).Return(nil, ledger.ErrForbidden)

	resp := newTestAPI(t, mockSvc).Put("/v1/account/"+id.String()+"/default")

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHTTP_Unauthenticated(t *testing.T) {
	mockSvc := new(mockAccountService)
	_, api := humatest.New(t)
	NewListAccountsHandler(mockSvc).Register(api)

	resp := api.Get("/v1/accounts")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "ListAccounts")
}
