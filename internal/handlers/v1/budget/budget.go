package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers/herr"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// Budget is the API response model for a monthly budget.
type Budget struct {
	ID        string `json:"id" doc:"Budget UUID"`
	Amount    string `json:"amount" doc:"Monthly spending limit"`
	UpdatedAt string `json:"updatedAt" doc:"RFC3339 time of the last change"`
}

func fromService(b *service.Budget) *Budget {
	if b == nil {
		return nil
	}
	return &Budget{
		ID:        b.ID.String(),
		Amount:    b.Amount.String(),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

type budgetService interface {
	GetCurrentBudget(ctx context.Context, ownerID, accountID uuid.UUID, now time.Time) (*service.BudgetProgress, error)
	UpdateBudget(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) (*service.Budget, error)
}

// GetBudgetInput is the Huma input for the current month's budget progress.
type GetBudgetInput struct {
	AccountID string `query:"accountID" required:"true" format:"uuid" doc:"Account whose expenses count against the budget"`
}

// BudgetProgressBody is the response body for GET /v1/budget.
type BudgetProgressBody struct {
	Budget        *Budget `json:"budget,omitempty" doc:"The owner's budget, absent when none is set"`
	MonthExpenses string  `json:"monthExpenses" doc:"Expenses on the account this calendar month"`
	Remaining     string  `json:"remaining" doc:"Budget minus expenses, may be negative"`
	PercentUsed   string  `json:"percentUsed" doc:"Expenses as a percentage of the budget"`
}

type GetBudgetOutput struct {
	Body BudgetProgressBody
}

// UpdateBudgetInput is the Huma input for setting the monthly budget.
type UpdateBudgetInput struct {
	Body struct {
		Amount string `json:"amount" doc:"Positive monthly spending limit"`
	}
}

type UpdateBudgetOutput struct {
	Body Budget
}

// Handler serves GET and PUT /v1/budget.
type Handler struct {
	BudgetService budgetService
	now           func() time.Time
}

func NewHandler(svc budgetService) *Handler {
	return &Handler{BudgetService: svc, now: time.Now}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budget",
		Summary:     "Get budget progress",
		Description: "Returns this month's expenses on an account against the caller's budget.",
		Tags:        []string{"Budget"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budget",
		Summary:     "Set the monthly budget",
		Tags:        []string{"Budget"},
	}, h.update)
}

func (h *Handler) get(ctx context.Context, input *GetBudgetInput) (*GetBudgetOutput, error) {
	ownerID, err := auth.OwnerFromContext(ctx)
	if err != nil {
		return nil, herr.FromService(err, "unauthenticated")
	}
	accountID, err := uuid.FromString(input.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	var stopTimer func()
	logData := logging.GetLogData(ctx)
	if logData != nil {
		stopTimer = logData.AddTiming("getBudgetMs")
	}
	progress, err := h.BudgetService.GetCurrentBudget(ctx, ownerID, accountID, h.now())
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, herr.FromService(err, "failed to get budget")
	}

	return &GetBudgetOutput{Body: BudgetProgressBody{
		Budget:        fromService(progress.Budget),
		MonthExpenses: progress.MonthExpenses.String(),
		Remaining:     progress.Remaining.String(),
		PercentUsed:   progress.PercentUsed.String(),
	}}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	ownerID, err := auth.OwnerFromContext(ctx)
	if err != nil {
		return nil, herr.FromService(err, "unauthenticated")
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	saved, err := h.BudgetService.UpdateBudget(ctx, ownerID, amount)
	if err != nil {
		return nil, herr.FromService(err, "failed to update budget")
	}
	return &UpdateBudgetOutput{Body: *fromService(saved)}, nil
}
