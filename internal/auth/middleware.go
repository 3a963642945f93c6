package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
)

const bearerPrefix = "Bearer "

// Middleware resolves the caller once per operation and stores the owner id in
// the request context. Requests without a valid identity get a 401.
func Middleware(api huma.API, provider IdentityProvider) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		ownerID, err := provider.Resolve(ctx.Context(), strings.TrimPrefix(header, bearerPrefix))
		if errors.Is(err, ledger.ErrUnauthenticated) {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid bearer token")
			return
		}
		if err != nil {
			if logData := logging.GetLogData(ctx.Context()); logData != nil {
				logData.AddData("authError", err.Error())
			}
			_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "could not resolve identity")
			return
		}

		if logData := logging.GetLogData(ctx.Context()); logData != nil {
			logData.AddData("ownerID", ownerID.String())
		}
		next(huma.WithContext(ctx, WithOwner(ctx.Context(), ownerID)))
	}
}

// StaticOwner authenticates every operation as ownerID. Handler tests use it in
// place of Middleware.
func StaticOwner(ownerID uuid.UUID) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, WithOwner(ctx.Context(), ownerID)))
	}
}
