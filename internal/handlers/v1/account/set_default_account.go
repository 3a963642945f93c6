package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers/herr"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// SetDefaultAccountInput is the Huma input for changing the default account.
type SetDefaultAccountInput struct {
	AccountID string `path:"accountID" format:"uuid" doc:"Account UUID"`
}

// SetDefaultAccountOutput returns the new default account.
type SetDefaultAccountOutput struct {
	Body Account
}

type defaultAccountSetter interface {
	SetDefaultAccount(ctx context.Context, ownerID, accountID uuid.UUID) (*service.Account, error)
}

// SetDefaultAccountHandler handles PUT /v1/account/{accountID}/default.
type SetDefaultAccountHandler struct {
	AccountService defaultAccountSetter
}

func NewSetDefaultAccountHandler(svc defaultAccountSetter) *SetDefaultAccountHandler {
	return &SetDefaultAccountHandler{AccountService: svc}
}

func (h *SetDefaultAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-default-account",
		Method:      http.MethodPut,
		Path:        "/v1/account/{accountID}/default",
		Summary:     "Set the default account",
		Description: "Makes the account the caller's only default account.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *SetDefaultAccountHandler) handle(ctx context.Context, input *SetDefaultAccountInput) (*SetDefaultAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := auth.OwnerFromContext(ctx)
	if err != nil {
		return nil, herr.FromService(err, "unauthenticated")
	}
	accountID, err := uuid.FromString(input.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("setDefaultAccountMs")
	}
	acc, err := h.AccountService.SetDefaultAccount(ctx, ownerID, accountID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, herr.FromService(err, "failed to set default account")
	}

	if logData != nil {
		logData.AddData("accountID", acc.ID.String())
	}
	return &SetDefaultAccountOutput{Body: fromService(acc)}, nil
}
